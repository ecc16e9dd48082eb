package ravdess

import "github.com/neurlang/emotion/datasets"

// Split splits files into train, validation and test lists. A weighted
// split keeps the share of every emotion in each list.
func Split(files []string, testSize float64, seed int64, weighted bool) (datasets.Split, error) {
	if weighted {
		return datasets.WeightedSplit(files, Emotion, testSize, seed)
	}
	return datasets.UnweightedSplit(files, testSize, seed)
}

// SplitDir lists the ext files under root, splits them and records the
// outcome in a manifest.
func SplitDir(root, ext string, testSize float64, seed int64, weighted bool) (*datasets.Manifest, error) {
	files, err := datasets.FilePaths(root, ext)
	if err != nil {
		return nil, err
	}
	s, err := Split(files, testSize, seed, weighted)
	if err != nil {
		return nil, err
	}
	return &datasets.Manifest{
		Root:      root,
		Extension: ext,
		TestSize:  testSize,
		Seed:      seed,
		Weighted:  weighted,
		Split:     s,
	}, nil
}

package datasets

import "math"
import "math/rand"
import "sort"

import "github.com/pkg/errors"

// ErrInvalidTestSize is returned when the test fraction is outside (0, 1).
var ErrInvalidTestSize = errors.New("test size must be in (0, 1)")

// Split holds three disjoint lists of file paths.
type Split struct {
	Train []string `yaml:"train"`
	Valid []string `yaml:"valid"`
	Test  []string `yaml:"test"`
}

// Len reports the total number of files.
func (s Split) Len() int {
	return len(s.Train) + len(s.Valid) + len(s.Test)
}

// UnweightedSplit is a simple hold out split. ceil(testSize*n) files chosen
// by a permutation seeded with seed are held out, and the held out part is
// bisected into validation and test.
func UnweightedSplit(files []string, testSize float64, seed int64) (s Split, err error) {
	if testSize <= 0 || testSize >= 1 {
		return s, errors.Wrapf(ErrInvalidTestSize, "got %v", testSize)
	}
	var nTest = int(math.Ceil(testSize * float64(len(files))))
	if nTest >= len(files) {
		return s, errors.Errorf("cannot hold out %d of %d files", nTest, len(files))
	}

	var rng = rand.New(rand.NewSource(seed))
	var perm = rng.Perm(len(files))
	var held = pick(files, perm[:nTest])
	s.Train = pick(files, perm[nTest:])
	s.Valid, s.Test = bisect(held)
	return s, nil
}

// UnweightedSplitDir lists the ext files under root and splits them with
// UnweightedSplit.
func UnweightedSplitDir(root, ext string, testSize float64, seed int64) (Split, error) {
	files, err := FilePaths(root, ext)
	if err != nil {
		return Split{}, err
	}
	return UnweightedSplit(files, testSize, seed)
}

// WeightedSplit is UnweightedSplit stratified by label, so every class keeps
// its share in each list. Classes hold out round(testSize*n) of their files.
func WeightedSplit(files []string, label func(string) (string, error), testSize float64, seed int64) (s Split, err error) {
	if testSize <= 0 || testSize >= 1 {
		return s, errors.Wrapf(ErrInvalidTestSize, "got %v", testSize)
	}
	var classes = make(map[string][]string)
	for _, f := range files {
		l, err := label(f)
		if err != nil {
			return s, err
		}
		classes[l] = append(classes[l], f)
	}
	var keys = make([]string, 0, len(classes))
	for k := range classes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rng = rand.New(rand.NewSource(seed))
	for _, k := range keys {
		var members = classes[k]
		var nTest = int(math.RoundToEven(testSize * float64(len(members))))
		var perm = rng.Perm(len(members))
		valid, test := bisect(pick(members, perm[:nTest]))
		s.Train = append(s.Train, pick(members, perm[nTest:])...)
		s.Valid = append(s.Valid, valid...)
		s.Test = append(s.Test, test...)
	}
	for _, list := range [][]string{s.Train, s.Valid, s.Test} {
		rng.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
	}
	if len(s.Train) == 0 {
		return s, errors.Errorf("no training files left out of %d", len(files))
	}
	return s, nil
}

func pick(files []string, idx []int) []string {
	var out = make([]string, len(idx))
	for i, j := range idx {
		out[i] = files[j]
	}
	return out
}

// bisect halves held, the first half rounded half to even.
func bisect(held []string) (first, second []string) {
	var half = int(math.RoundToEven(float64(len(held)) / 2))
	return held[:half:half], held[half:]
}

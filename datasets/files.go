package datasets

import "io/fs"
import "path/filepath"
import "strings"

import "github.com/pkg/errors"

// FilePaths recursively lists the files under root with extension ext
// (without the dot), in lexical order. Hidden files are skipped.
func FilePaths(root, ext string) ([]string, error) {
	var suffix = "." + strings.TrimPrefix(ext, ".")
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "list %s files under %s", ext, root)
	}
	return out, nil
}

// Filename returns the last element of a slash separated path.
func Filename(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}

// PureFilename returns the file name up to its first dot.
func PureFilename(path string) string {
	name := Filename(path)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// internal/input/paths.go
package input

import (
	"io/fs"
	"os"
	"path/filepath"
)

// ExpandPaths flattens a mixed list of files and directories into a flat
// list of file paths, so the parser never sees a directory. Directories
// are walked recursively in lexical order; plain files and "-" (stdin)
// pass through unchanged.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		if p == "-" {
			out = append(out, p)
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

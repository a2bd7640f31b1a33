// Package fs provides file system adapters for source discovery, response
// files and output directory management.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root whose name ends with suffix,
// in lexical order. An empty suffix matches every file. Symbolic links are
// yielded when they point at a regular file; linked directories are not
// descended into.
//
// The first walk error is yielded with an empty path and ends the sequence.
func (w *Walker) WalkFiles(root, suffix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
				return nil
			}

			regular, err := isRegular(path, d)
			if err != nil {
				return err
			}
			if !regular {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		// Dangling links are not sources.
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

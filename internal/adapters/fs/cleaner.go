package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cleaner implements ports.OutputCleaner.
type Cleaner struct {
	remove func(string) error
}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{remove: os.Remove}
}

// Clean deletes path and everything below it. Entries are removed in reverse
// walk order so every child goes before its parent. A failed removal does not
// stop the others; all failures are reported together.
//
// A missing path is a successful no-op.
func (c *Cleaner) Clean(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return zerr.With(errors.Join(domain.ErrCleanFailed, err), "path", path)
	}

	var entries []string
	var errs []error
	_ = filepath.WalkDir(path, func(p string, _ fs.DirEntry, err error) error {
		if err != nil {
			// Unlistable directories are still removed below; that removal
			// fails too and both causes are reported.
			errs = append(errs, err)
			return nil
		}
		entries = append(entries, p)
		return nil
	})

	for _, p := range slices.Backward(entries) {
		if err := c.remove(p); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return zerr.With(errors.Join(append([]error{domain.ErrCleanFailed}, errs...)...), "path", path)
	}
	return nil
}

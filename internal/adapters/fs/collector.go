package fs

import (
	"errors"
	"path/filepath"
	"slices"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/zerr"
)

// Collector implements ports.SourceCollector on top of a Walker.
type Collector struct {
	walker *Walker
}

// NewCollector creates a new Collector.
func NewCollector(walker *Walker) *Collector {
	return &Collector{walker: walker}
}

// Collect returns the absolute paths of all files below root ending in suffix,
// sorted lexicographically. Any error while walking fails the whole
// collection; a partial list is never returned.
func (c *Collector) Collect(root, suffix string) (domain.SourceFileSet, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return domain.SourceFileSet{}, zerr.With(errors.Join(domain.ErrSourceDiscoveryFailed, err), "root", root)
	}

	var paths []string
	for path, err := range c.walker.WalkFiles(abs, suffix) {
		if err != nil {
			return domain.SourceFileSet{}, zerr.With(errors.Join(domain.ErrSourceDiscoveryFailed, err), "root", abs)
		}
		paths = append(paths, path)
	}

	slices.Sort(paths)
	return domain.NewSourceFileSet(paths), nil
}

package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// SourceFileSet is the ordered list of source files handed to the compiler.
// It is derived fresh for every build and never cached.
type SourceFileSet struct {
	paths []string
}

// NewSourceFileSet creates a set from paths, keeping their order.
func NewSourceFileSet(paths []string) SourceFileSet {
	return SourceFileSet{paths: slices.Clone(paths)}
}

// Len returns the number of files in the set.
func (s SourceFileSet) Len() int {
	return len(s.paths)
}

// Paths returns a copy of the file paths in order.
func (s SourceFileSet) Paths() []string {
	return slices.Clone(s.paths)
}

// Fingerprint identifies the set of paths for log correlation.
// It covers names and order only, not file contents.
func (s SourceFileSet) Fingerprint() string {
	h := xxhash.New()
	for _, p := range s.paths {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

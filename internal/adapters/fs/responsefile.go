package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResponseFile implements ports.ResponseFileWriter.
type ResponseFile struct{}

// NewResponseFile creates a new ResponseFile.
func NewResponseFile() *ResponseFile {
	return &ResponseFile{}
}

// Write replaces path with one line per entry. The content goes to a
// temporary file in the same directory first and is renamed into place, so
// readers see either the old file or the complete new one.
//
// The returned release function removes path and is safe to call even when
// Write failed.
func (r *ResponseFile) Write(path string, lines []string) (func(), error) {
	release := func() {
		_ = os.Remove(path)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return release, r.fail(path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(b.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return release, r.fail(path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return release, r.fail(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return release, r.fail(path, err)
	}

	return release, nil
}

func (r *ResponseFile) fail(path string, err error) error {
	return zerr.With(errors.Join(domain.ErrResponseFileWriteFailed, err), "path", path)
}

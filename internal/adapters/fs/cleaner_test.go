package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/adapters/fs"
	"go.trai.ch/javelin/internal/core/domain"
)

func TestCleaner_Clean(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bin")
	writeFile(t, filepath.Join(out, "Main.class"), "")
	writeFile(t, filepath.Join(out, "pkg", "sub", "Helper.class"), "")
	require.NoError(t, os.MkdirAll(filepath.Join(out, "empty"), 0o750))

	require.NoError(t, fs.NewCleaner().Clean(out))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestCleaner_Clean_MissingIsNoop(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bin")

	require.NoError(t, fs.NewCleaner().Clean(out))
	require.NoError(t, fs.NewCleaner().Clean(out))
}

func TestCleaner_Clean_SingleFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bin")
	writeFile(t, out, "not a directory")

	require.NoError(t, fs.NewCleaner().Clean(out))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestCleaner_Clean_ChildrenBeforeParents(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bin")
	writeFile(t, filepath.Join(out, "a", "A.class"), "")
	writeFile(t, filepath.Join(out, "b", "B.class"), "")

	var removed []string
	cleaner := fs.NewCleaner()
	cleaner.SetRemove(func(p string) error {
		removed = append(removed, p)
		return os.Remove(p)
	})

	require.NoError(t, cleaner.Clean(out))

	require.Len(t, removed, 5)
	assert.Equal(t, out, removed[len(removed)-1])
	index := make(map[string]int, len(removed))
	for i, p := range removed {
		index[p] = i
	}
	for _, p := range removed {
		if p == out {
			continue
		}
		assert.Less(t, index[p], index[filepath.Dir(p)], "%s removed after its parent", p)
	}
}

func TestCleaner_Clean_ContinuesPastFailures(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bin")
	locked := filepath.Join(out, "a", "Locked.class")
	free := filepath.Join(out, "b", "Free.class")
	writeFile(t, locked, "")
	writeFile(t, free, "")

	boom := errors.New("boom")
	cleaner := fs.NewCleaner()
	cleaner.SetRemove(func(p string) error {
		if p == locked {
			return boom
		}
		return os.Remove(p)
	})

	err := cleaner.Clean(out)
	require.ErrorIs(t, err, domain.ErrCleanFailed)
	require.ErrorIs(t, err, boom)

	_, statErr := os.Stat(free)
	assert.True(t, os.IsNotExist(statErr), "removal must continue after a failure")
	_, statErr = os.Stat(locked)
	assert.NoError(t, statErr)
}

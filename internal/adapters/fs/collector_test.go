package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/javelin/internal/adapters/fs"
	"go.trai.ch/javelin/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestCollector_Collect_SortedAbsolute(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b", "B.java"), "class B {}")
	writeFile(t, filepath.Join(root, "a", "deep", "nested", "A.java"), "class A {}")
	writeFile(t, filepath.Join(root, "Main.java"), "class Main {}")
	writeFile(t, filepath.Join(root, "notes.txt"), "ignore me")

	collector := fs.NewCollector(fs.NewWalker())

	set, err := collector.Collect(root, ".java")
	require.NoError(t, err)

	want := []string{
		filepath.Join(root, "Main.java"),
		filepath.Join(root, "a", "deep", "nested", "A.java"),
		filepath.Join(root, "b", "B.java"),
	}
	assert.Equal(t, want, set.Paths())
	for _, p := range set.Paths() {
		assert.True(t, filepath.IsAbs(p), p)
	}
}

func TestCollector_Collect_RelativeRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "Main.java"), "class Main {}")
	t.Chdir(root)

	set, err := fs.NewCollector(fs.NewWalker()).Collect("src", ".java")
	require.NoError(t, err)

	require.Equal(t, 1, set.Len())
	abs, err := filepath.Abs(filepath.Join("src", "Main.java"))
	require.NoError(t, err)
	assert.Equal(t, abs, set.Paths()[0])
}

func TestCollector_Collect_SkipsDirectoriesWithSuffix(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "weird.java"), 0o750))
	writeFile(t, filepath.Join(root, "weird.java", "Real.java"), "class Real {}")

	set, err := fs.NewCollector(fs.NewWalker()).Collect(root, ".java")
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "weird.java", "Real.java")}, set.Paths())
}

func TestCollector_Collect_EmptySuffixMatchesAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x.txt"), "")
	writeFile(t, filepath.Join(root, "Y.java"), "")

	set, err := fs.NewCollector(fs.NewWalker()).Collect(root, "")
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
}

func TestCollector_Collect_SuffixIsLiteral(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.java"), "")
	writeFile(t, filepath.Join(root, "B.JAVA"), "")
	writeFile(t, filepath.Join(root, "C.javax"), "")

	set, err := fs.NewCollector(fs.NewWalker()).Collect(root, ".java")
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "A.java")}, set.Paths())
}

func TestCollector_Collect_EmptyTree(t *testing.T) {
	set, err := fs.NewCollector(fs.NewWalker()).Collect(t.TempDir(), ".java")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestCollector_Collect_FollowsFileLinks(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(t.TempDir(), "Linked.java")
	writeFile(t, target, "class Linked {}")
	if err := os.Symlink(target, filepath.Join(root, "Linked.java")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "Dangling.java")))

	set, err := fs.NewCollector(fs.NewWalker()).Collect(root, ".java")
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "Linked.java")}, set.Paths())
}

func TestCollector_Collect_MissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	set, err := fs.NewCollector(fs.NewWalker()).Collect(root, ".java")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrSourceDiscoveryFailed)
	assert.Equal(t, 0, set.Len())
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.java"), "")
	writeFile(t, filepath.Join(root, "b.java"), "")

	var seen []string
	for path, err := range fs.NewWalker().WalkFiles(root, ".java") {
		require.NoError(t, err)
		seen = append(seen, path)
		break
	}

	assert.Equal(t, []string{filepath.Join(root, "a.java")}, seen)
}

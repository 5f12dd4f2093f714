package sync

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/ironscribe/pkg/errors"
)

func newTestRoot(t *testing.T) (*Root, afero.Fs) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv", 0755))

	root, err := NewRoot(fs, "/srv", DefaultHasher)
	require.NoError(t, err)
	return root, fs
}

func writeFiles(t *testing.T, fs afero.Fs, files map[string]string) {
	for path, contents := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(contents), 0644))
	}
}

func assertExists(t *testing.T, fs afero.Fs, exp bool, paths ...string) {
	for _, path := range paths {
		exists, err := afero.Exists(fs, path)
		assert.NoError(t, err)
		assert.Equal(t, exp, exists, path)
	}
}

func TestReconcile(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{
		"/srv/keep":       "keep",
		"/srv/stale":      "stale",
		"/srv/dir/nested": "nested",
		"/srv/dir/extra":  "extra",
		"/srv/old/x":      "x",
		"/srv/old/sub/y":  "y",
	})
	require.NoError(t, root.SeedIndex())

	report, err := root.Reconcile([]PathEntry{
		{Path: "keep"},
		{Path: "dir", IsDir: true},
		{Path: "dir/nested"},
		{Path: "new", IsDir: true},
		{Path: "new/sub", IsDir: true},
		{Path: "new/sub", IsDir: true},
		{Path: "not-yet-uploaded"},
	})
	require.NoError(t, err)

	assertExists(t, fs, true, "/srv/keep", "/srv/dir/nested", "/srv/new/sub")
	assertExists(t, fs, false, "/srv/stale", "/srv/dir/extra", "/srv/old",
		"/srv/old/x", "/srv/old/sub/y", "/srv/not-yet-uploaded")

	assert.Equal(t, []string{"/srv/new", "/srv/new/sub"}, report.Created)
	assert.ElementsMatch(t, []string{"/srv/dir/extra", "/srv/old", "/srv/stale"}, report.Removed)

	for _, path := range []string{"/srv/stale", "/srv/old/x", "/srv/old/sub/y", "/srv/dir/extra"} {
		_, ok := root.Index().Lookup(path)
		assert.False(t, ok, path)
	}
	_, ok := root.Index().Lookup("/srv/keep")
	assert.True(t, ok)
}

func TestReconcileIdempotent(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/dir/file": "contents"})

	entries := []PathEntry{{Path: "dir", IsDir: true}, {Path: "dir/file"}}
	_, err := root.Reconcile(entries)
	require.NoError(t, err)

	report, err := root.Reconcile(entries)
	require.NoError(t, err)
	assert.Empty(t, report.Created)
	assert.Empty(t, report.Removed)
	assertExists(t, fs, true, "/srv/dir/file")
}

func TestReconcileEmptyTree(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/a": "a", "/srv/dir/b": "b"})

	_, err := root.Reconcile(nil)
	require.NoError(t, err)
	assertExists(t, fs, false, "/srv/a", "/srv/dir")
	assertExists(t, fs, true, "/srv")
}

func TestReconcileRejectsEscapes(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/stale": "stale"})

	_, err := root.Reconcile([]PathEntry{
		{Path: "new", IsDir: true},
		{Path: "../escape", IsDir: true},
	})
	assert.IsType(t, errors.InvalidPathError{}, err)

	// Nothing is changed if any path is invalid.
	assertExists(t, fs, false, "/srv/new", "/escape")
	assertExists(t, fs, true, "/srv/stale")
}

func TestApplyChangeSet(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{
		"/srv/a":        "a",
		"/srv/dir/b":    "b",
		"/srv/dir/c":    "c",
		"/srv/unlisted": "unlisted",
	})
	require.NoError(t, root.SeedIndex())

	changes := ChangeSet{
		Created: []PathEntry{{Path: "new/sub", IsDir: true}, {Path: "ignored-file"}},
		Deleted: []PathEntry{{Path: "a"}, {Path: "dir", IsDir: true}, {Path: "never-existed"}},
	}
	report, err := root.ApplyChangeSet(changes)
	require.NoError(t, err)

	assertExists(t, fs, true, "/srv/new/sub", "/srv/unlisted")
	assertExists(t, fs, false, "/srv/a", "/srv/dir", "/srv/ignored-file")
	assert.Equal(t, []string{"/srv/new/sub"}, report.Created)
	assert.Equal(t, []string{"/srv/a", "/srv/dir", "/srv/never-existed"}, report.Removed)

	_, ok := root.Index().Lookup("/srv/dir/b")
	assert.False(t, ok)

	// Applying the same changes again is harmless.
	_, err = root.ApplyChangeSet(changes)
	assert.NoError(t, err)
}

func TestApplyChangeSetRejectsEscapes(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/a": "a"})

	_, err := root.ApplyChangeSet(ChangeSet{
		Created: []PathEntry{{Path: "new", IsDir: true}},
		Deleted: []PathEntry{{Path: "a"}, {Path: "../../etc", IsDir: true}},
	})
	assert.IsType(t, errors.InvalidPathError{}, err)
	assertExists(t, fs, true, "/srv/a")
	assertExists(t, fs, false, "/srv/new")
}

func TestReconcileTypeChanges(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{
		"/srv/was-file":          "file",
		"/srv/was-dir/inner.txt": "inner",
	})
	require.NoError(t, root.SeedIndex())

	report, err := root.Reconcile([]PathEntry{
		{Path: "was-file", IsDir: true},
		{Path: "was-file/sub", IsDir: true},
		{Path: "was-dir"},
	})
	require.NoError(t, err)

	isDir, err := afero.IsDir(fs, "/srv/was-file/sub")
	require.NoError(t, err)
	assert.True(t, isDir)

	// The directory is gone, so the file's contents can be uploaded.
	assertExists(t, fs, false, "/srv/was-dir")

	assert.Equal(t, []string{"/srv/was-file", "/srv/was-file/sub"}, report.Created)
	assert.ElementsMatch(t, []string{"/srv/was-dir", "/srv/was-file"}, report.Removed)

	for _, path := range []string{"/srv/was-file", "/srv/was-dir/inner.txt"} {
		_, ok := root.Index().Lookup(path)
		assert.False(t, ok, path)
	}

	// The new layout is stable.
	report, err = root.Reconcile([]PathEntry{
		{Path: "was-file", IsDir: true},
		{Path: "was-file/sub", IsDir: true},
	})
	require.NoError(t, err)
	assert.Empty(t, report.Created)
	assert.Empty(t, report.Removed)
}

func TestApplyChangeSetTypeChanges(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{
		"/srv/to-dir":          "file",
		"/srv/to-file/old.txt": "old",
	})

	// This is the change-set a client produces when a file is replaced by a
	// directory, and a directory by a file.
	report, err := root.ApplyChangeSet(ChangeSet{
		Created: []PathEntry{{Path: "to-dir", IsDir: true}},
		Deleted: []PathEntry{{Path: "to-dir"}, {Path: "to-file", IsDir: true}},
	})
	require.NoError(t, err)

	isDir, err := afero.IsDir(fs, "/srv/to-dir")
	require.NoError(t, err)
	assert.True(t, isDir)
	assertExists(t, fs, false, "/srv/to-file")

	assert.Equal(t, []string{"/srv/to-dir"}, report.Created)
	assert.Equal(t, []string{"/srv/to-dir", "/srv/to-file"}, report.Removed)

	// A created file entry replaces a directory in the way.
	require.NoError(t, fs.MkdirAll("/srv/blocker/nested", 0755))
	_, err = root.ApplyChangeSet(ChangeSet{Created: []PathEntry{{Path: "blocker"}}})
	require.NoError(t, err)
	assertExists(t, fs, false, "/srv/blocker")
}

package sync

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/ironscribe/pkg/errors"
)

func TestCheckInvalidArguments(t *testing.T) {
	root, _ := newTestRoot(t)
	digest := DefaultHasher.Strong([]byte("contents"))

	_, err := root.Check("file", 0, digest[:])
	assert.Equal(t, errors.MissingFieldError{Field: "block_size"}, err)

	_, err = root.Check("file", 4, digest[:10])
	assert.Equal(t, errors.InvalidDigestError{Length: 10}, err)

	_, err = root.Check("../file", 4, digest[:])
	assert.IsType(t, errors.InvalidPathError{}, err)
}

func TestCheckAlreadySynced(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/file": "contents"})
	digest := DefaultHasher.Strong([]byte("contents"))

	result, err := root.Check("file", 4, digest[:])
	require.NoError(t, err)
	assert.Equal(t, ChecksumResult{Path: "/srv/file", Synced: true}, result)

	recorded, ok := root.Index().Lookup("/srv/file")
	assert.True(t, ok)
	assert.Equal(t, digest, recorded)
}

func TestCheckAbsentFile(t *testing.T) {
	root, _ := newTestRoot(t)
	digest := DefaultHasher.Strong([]byte("contents"))

	result, err := root.Check("file", 4, digest[:])
	require.NoError(t, err)
	assert.False(t, result.Synced)
	assert.Empty(t, result.Checksums)
}

func TestCheckReturnsBlockChecksums(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/file": "abcdefghij"})
	digest := DefaultHasher.Strong([]byte("abcdXXXXij"))

	result, err := root.Check("file", 4, digest[:])
	require.NoError(t, err)
	assert.False(t, result.Synced)

	exp, err := DefaultHasher.BlockChecksums(fs, "/srv/file", 4)
	require.NoError(t, err)
	assert.Equal(t, exp, result.Checksums)

	// Nothing is changed on the server.
	contents, err := afero.ReadFile(fs, "/srv/file")
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij", string(contents))
}

func TestCheckCopyShortcut(t *testing.T) {
	root, fs := newTestRoot(t)
	require.NoError(t, afero.WriteFile(fs, "/srv/original", []byte("contents"), 0600))
	require.NoError(t, fs.MkdirAll("/srv/moved", 0755))
	require.NoError(t, root.SeedIndex())
	digest := DefaultHasher.Strong([]byte("contents"))

	result, err := root.Check("moved/file", 4, digest[:])
	require.NoError(t, err)
	assert.True(t, result.Synced)
	assert.Equal(t, "/srv/original", result.CopiedFrom)
	assert.Empty(t, result.Checksums)

	contents, err := afero.ReadFile(fs, "/srv/moved/file")
	require.NoError(t, err)
	assert.Equal(t, "contents", string(contents))

	fi, err := fs.Stat("/srv/moved/file")
	require.NoError(t, err)
	assert.Equal(t, 0600, int(fi.Mode().Perm()))

	recorded, ok := root.Index().Lookup("/srv/moved/file")
	assert.True(t, ok)
	assert.Equal(t, digest, recorded)
}

func TestCheckCopyShortcutOverwrites(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{
		"/srv/original": "new contents",
		"/srv/target":   "old contents",
	})
	require.NoError(t, root.SeedIndex())
	digest := DefaultHasher.Strong([]byte("new contents"))

	result, err := root.Check("target", 4, digest[:])
	require.NoError(t, err)
	assert.True(t, result.Synced)

	contents, err := afero.ReadFile(fs, "/srv/target")
	require.NoError(t, err)
	assert.Equal(t, "new contents", string(contents))
}

func TestCheckStaleIndexEntry(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/original": "modified"})
	digest := DefaultHasher.Strong([]byte("contents"))

	// The index claims that /srv/original has the client's contents, but the
	// file was modified behind the server's back.
	root.Index().Record("/srv/original", digest)

	result, err := root.Check("file", 4, digest[:])
	require.NoError(t, err)
	assert.False(t, result.Synced)
	assert.Empty(t, result.CopiedFrom)
	assertExists(t, fs, false, "/srv/file")

	recorded, ok := root.Index().Lookup("/srv/original")
	assert.True(t, ok)
	assert.Equal(t, DefaultHasher.Strong([]byte("modified")), recorded)
}

func TestCheckVanishedIndexEntry(t *testing.T) {
	root, _ := newTestRoot(t)
	digest := DefaultHasher.Strong([]byte("contents"))
	root.Index().Record("/srv/deleted", digest)

	result, err := root.Check("file", 4, digest[:])
	require.NoError(t, err)
	assert.False(t, result.Synced)

	_, ok := root.Index().Lookup("/srv/deleted")
	assert.False(t, ok)
}

func TestCheckCopyShortcutMissingParent(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/original": "contents"})
	require.NoError(t, root.SeedIndex())
	digest := DefaultHasher.Strong([]byte("contents"))

	_, err := root.Check("missing/file", 4, digest[:])
	assert.IsType(t, errors.InvalidPathError{}, err)

	_, ok := root.Index().Lookup("/srv/missing/file")
	assert.False(t, ok)
}

package sync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/ironscribe/pkg/errors"
)

func TestSanitizerClean(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv", 0755))

	sanitizer, err := NewSanitizer(fs, "/srv")
	require.NoError(t, err)

	tests := []struct {
		path     string
		exp      string
		expError bool
	}{
		{path: "foo", exp: "/srv/foo"},
		{path: "/foo/bar", exp: "/srv/foo/bar"},
		{path: "foo/../bar", exp: "/srv/bar"},
		{path: "not/yet/created", exp: "/srv/not/yet/created"},
		{path: ".", exp: "/srv"},
		{path: "", exp: "/srv"},
		{path: "../etc/passwd", expError: true},
		{path: "foo/../../etc", expError: true},
		{path: "..", expError: true},
	}

	for _, test := range tests {
		abs, err := sanitizer.Clean(test.path)
		if test.expError {
			assert.IsType(t, errors.InvalidPathError{}, err, test.path)
			continue
		}
		assert.NoError(t, err, test.path)
		assert.Equal(t, test.exp, abs, test.path)
	}
}

func TestSanitizerCleanEntry(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv", 0755))

	sanitizer, err := NewSanitizer(fs, "/srv")
	require.NoError(t, err)

	abs, err := sanitizer.CleanEntry("dir/file")
	assert.NoError(t, err)
	assert.Equal(t, "/srv/dir/file", abs)

	for _, path := range []string{"", ".", "/", "dir/.."} {
		_, err := sanitizer.CleanEntry(path)
		assert.IsType(t, errors.InvalidPathError{}, err, path)
	}

	rel, err := sanitizer.Rel("/srv/dir/file")
	assert.NoError(t, err)
	assert.Equal(t, "dir/file", rel)
}

func TestNewSanitizerErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file", nil, 0644))

	_, err := NewSanitizer(fs, "relative")
	assert.Error(t, err)

	_, err = NewSanitizer(fs, "/missing")
	assert.Equal(t, errors.FileNotFound{Path: "/missing"}, err)

	_, err = NewSanitizer(fs, "/file")
	assert.Error(t, err)
}

func TestSanitizerSymlinkEscape(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "root")
	outside := filepath.Join(tmp, "outside")
	require.NoError(t, os.Mkdir(root, 0755))
	require.NoError(t, os.Mkdir(outside, 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "inside"), 0755))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "escape")))
	require.NoError(t, os.Symlink(filepath.Join(root, "inside"), filepath.Join(root, "internal")))

	sanitizer, err := NewSanitizer(afero.NewOsFs(), root)
	require.NoError(t, err)

	_, err = sanitizer.Clean("escape/file")
	assert.IsType(t, errors.InvalidPathError{}, err)

	// Links that stay within the root are fine.
	abs, err := sanitizer.Clean("internal/file")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(sanitizer.Root(), "inside", "file"), abs)
}

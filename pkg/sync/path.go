package sync

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// Mocked out for unit testing.
var (
	evalSymlinks = filepath.EvalSymlinks
	lstat        = os.Lstat
)

// Sanitizer resolves client supplied paths against the sync root, and
// guarantees that the result can't escape it.
type Sanitizer struct {
	root string

	// resolveLinks is only set for the OS filesystem. In-memory filesystems
	// don't have symlinks.
	resolveLinks bool
}

// NewSanitizer returns a Sanitizer confined to `root`. The root must be an
// absolute path to an existing directory.
func NewSanitizer(fs afero.Fs, root string) (Sanitizer, error) {
	if !filepath.IsAbs(root) {
		return Sanitizer{}, errors.New("root %q must be an absolute path", root)
	}
	root = filepath.Clean(root)

	fi, err := fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return Sanitizer{}, errors.FileNotFound{Path: root}
		}
		return Sanitizer{}, errors.WithContext(err, "stat root")
	}
	if !fi.IsDir() {
		return Sanitizer{}, errors.New("root %q is not a directory", root)
	}

	_, isOsFs := fs.(*afero.OsFs)
	if isOsFs {
		root, err = evalSymlinks(root)
		if err != nil {
			return Sanitizer{}, errors.WithContext(err, "resolve root")
		}
	}
	return Sanitizer{root: root, resolveLinks: isOsFs}, nil
}

// Root returns the absolute path of the sync root.
func (s Sanitizer) Root() string {
	return s.root
}

// Clean converts a path relative to the root into an absolute path. Leading
// separators are ignored, so "/foo" and "foo" are the same path. The path
// doesn't have to exist yet.
func (s Sanitizer) Clean(relative string) (string, error) {
	rel := strings.TrimLeft(filepath.FromSlash(relative), string(filepath.Separator))
	abs := filepath.Join(s.root, rel)
	if !within(s.root, abs) {
		return "", errors.InvalidPathError{Path: relative, Root: s.root}
	}

	if !s.resolveLinks {
		return abs, nil
	}

	resolved, err := resolveExisting(abs)
	if err != nil {
		return "", errors.InvalidPathError{Path: relative, Root: s.root,
			Reason: err.Error()}
	}
	if !within(s.root, resolved) {
		return "", errors.InvalidPathError{Path: relative, Root: s.root}
	}
	return resolved, nil
}

// CleanEntry is like Clean, but rejects paths that resolve to the root
// itself. It's used for paths that are about to be created or removed.
func (s Sanitizer) CleanEntry(relative string) (string, error) {
	abs, err := s.Clean(relative)
	if err != nil {
		return "", err
	}
	if abs == s.root {
		return "", errors.InvalidPathError{Path: relative, Root: s.root,
			Reason: "refers to the sync root"}
	}
	return abs, nil
}

// Rel returns `abs` relative to the root, using forward slashes.
func (s Sanitizer) Rel(abs string) (string, error) {
	rel, err := filepath.Rel(s.root, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// within returns whether `path` is `root` or a child of it. Both paths must
// be clean.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// resolveExisting resolves symlinks in the longest prefix of `path` that
// exists, and re-appends the rest.
func resolveExisting(path string) (string, error) {
	existing := path
	var missing []string
	for {
		_, err := lstat(existing)
		if err == nil {
			break
		}
		if !os.IsNotExist(err) {
			return "", err
		}

		parent := filepath.Dir(existing)
		if parent == existing {
			return path, nil
		}
		missing = append([]string{filepath.Base(existing)}, missing...)
		existing = parent
	}

	resolved, err := evalSymlinks(existing)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{resolved}, missing...)...), nil
}

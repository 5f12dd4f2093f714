package sync

import (
	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// Root is the server side of a sync: the directory that clients sync into,
// and the checksum index for the files below it.
//
// The index is the only state shared between concurrent requests. The
// filesystem itself isn't locked, so concurrent requests that touch the same
// paths may race.
type Root struct {
	fs        afero.Fs
	sanitizer Sanitizer
	index     *ChecksumIndex
	hasher    Hasher
}

// NewRoot returns a Root for the directory at `path`.
func NewRoot(fs afero.Fs, path string, hasher Hasher) (*Root, error) {
	sanitizer, err := NewSanitizer(fs, path)
	if err != nil {
		return nil, errors.WithContext(err, "root")
	}

	return &Root{
		fs:        fs,
		sanitizer: sanitizer,
		index:     NewChecksumIndex(),
		hasher:    hasher,
	}, nil
}

// Path returns the absolute path of the root directory.
func (r *Root) Path() string {
	return r.sanitizer.Root()
}

// Index returns the checksum index for files below the root.
func (r *Root) Index() *ChecksumIndex {
	return r.index
}

// Hasher returns the Hasher used for all digests in the index.
func (r *Root) Hasher() Hasher {
	return r.hasher
}

// Resolve converts a client path into an absolute path below the root.
func (r *Root) Resolve(relative string) (string, error) {
	return r.sanitizer.CleanEntry(relative)
}

// Rel converts an absolute path below the root back into a client path.
func (r *Root) Rel(abs string) (string, error) {
	return r.sanitizer.Rel(abs)
}

// SeedIndex hashes every file below the root so that the copy shortcut
// works for files that were present before the server started.
func (r *Root) SeedIndex() error {
	return r.index.Seed(r.fs, r.Path(), r.hasher)
}

package sync

import (
	"os"
	"path/filepath"
	"strings"
	goSync "sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// ChecksumIndex maps absolute paths to the last known strong digest of their
// contents. It's only an optimization: an entry may be stale if the file was
// modified outside of the sync server, so anything that relies on an entry
// has to verify it first.
type ChecksumIndex struct {
	lock    goSync.RWMutex
	digests map[string]Digest
}

// NewChecksumIndex returns an empty index.
func NewChecksumIndex() *ChecksumIndex {
	return &ChecksumIndex{digests: map[string]Digest{}}
}

// Record sets the digest for `path`, overwriting any previous value.
func (index *ChecksumIndex) Record(path string, digest Digest) {
	index.lock.Lock()
	defer index.lock.Unlock()
	index.digests[path] = digest
}

// Forget removes the entry for `path`, if there is one.
func (index *ChecksumIndex) Forget(path string) {
	index.lock.Lock()
	defer index.lock.Unlock()
	delete(index.digests, path)
}

// ForgetTree removes the entry for `dir` and every entry nested below it.
func (index *ChecksumIndex) ForgetTree(dir string) {
	prefix := dir + string(filepath.Separator)
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		prefix = dir
	}

	index.lock.Lock()
	defer index.lock.Unlock()
	for path := range index.digests {
		if path == dir || strings.HasPrefix(path, prefix) {
			delete(index.digests, path)
		}
	}
}

// Lookup returns the recorded digest for `path`.
func (index *ChecksumIndex) Lookup(path string) (Digest, bool) {
	index.lock.RLock()
	defer index.lock.RUnlock()
	d, ok := index.digests[path]
	return d, ok
}

// FindByDigest returns a path whose recorded digest is `digest`. If several
// paths match, which one is returned is unspecified.
func (index *ChecksumIndex) FindByDigest(digest Digest) (string, bool) {
	return index.findByDigest(digest, nil)
}

func (index *ChecksumIndex) findByDigest(digest Digest, skip map[string]struct{}) (string, bool) {
	index.lock.RLock()
	defer index.lock.RUnlock()
	for path, d := range index.digests {
		if d != digest {
			continue
		}
		if _, ok := skip[path]; ok {
			continue
		}
		return path, true
	}
	return "", false
}

// Len returns the number of entries in the index.
func (index *ChecksumIndex) Len() int {
	index.lock.RLock()
	defer index.lock.RUnlock()
	return len(index.digests)
}

// Seed records the digest of every regular file below `root`. Files that
// can't be read are skipped with a warning.
func (index *ChecksumIndex) Seed(fs afero.Fs, root string, hasher Hasher) error {
	return afero.Walk(fs, root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return errors.WithContext(err, "walk")
		}

		if !fi.Mode().IsRegular() {
			return nil
		}

		digest, err := hasher.FileDigest(fs, path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn(
				"Failed to hash file while seeding the checksum index. Skipping it.")
			return nil
		}
		if digest != nil {
			index.Record(path, *digest)
		}
		return nil
	})
}

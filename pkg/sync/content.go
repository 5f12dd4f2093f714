package sync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// ChecksumResult is the server's answer to a content check for a single file.
type ChecksumResult struct {
	// Path is the absolute path of the file on the server.
	Path string

	// Synced is true if the server's copy now matches the client's digest,
	// either because it already did, or because it was copied from another
	// file with the same contents.
	Synced bool

	// CopiedFrom is set if the file was populated by the copy shortcut.
	CopiedFrom string

	// Checksums are the block checksums of the server's current copy. It's
	// empty if Synced is true, or if the file doesn't exist on the server.
	Checksums []BlockChecksum
}

// Check decides what the client has to send so that the file at `relative`
// ends up with the contents described by `clientDigest`.
//
// If the server's copy already matches, nothing happens. Otherwise, if the
// index knows of another file with the same contents, that file is copied
// into place. Otherwise the block checksums of the server's copy are
// returned so that the client can upload just the blocks that differ.
func (r *Root) Check(relative string, blockSize int, clientDigest []byte) (ChecksumResult, error) {
	if blockSize <= 0 {
		return ChecksumResult{}, errors.MissingFieldError{Field: "block_size"}
	}
	if blockSize > MaxBlockSize {
		return ChecksumResult{}, errors.InvalidBlockSizeError{Size: uint64(blockSize), Max: MaxBlockSize}
	}

	want, err := ParseDigest(clientDigest)
	if err != nil {
		return ChecksumResult{}, err
	}

	target, err := r.sanitizer.CleanEntry(relative)
	if err != nil {
		return ChecksumResult{}, err
	}
	result := ChecksumResult{Path: target}

	current, err := r.hasher.FileDigest(r.fs, target)
	if err != nil {
		return ChecksumResult{}, errors.WithContext(err, "hash current contents")
	}

	if current != nil && *current == want {
		r.index.Record(target, want)
		result.Synced = true
		return result, nil
	}

	src, copied, err := r.copyShortcut(target, want)
	if err != nil {
		return ChecksumResult{}, err
	}
	if copied {
		result.Synced = true
		result.CopiedFrom = src
		return result, nil
	}

	if current == nil {
		return result, nil
	}

	result.Checksums, err = r.hasher.BlockChecksums(r.fs, target, blockSize)
	if err != nil {
		return ChecksumResult{}, errors.WithContext(err, "compute block checksums")
	}
	return result, nil
}

// copyShortcut populates `target` by copying another file whose recorded
// digest is `want`. Index entries are re-verified before they're trusted,
// and stale entries are corrected.
func (r *Root) copyShortcut(target string, want Digest) (string, bool, error) {
	skip := map[string]struct{}{target: {}}
	for {
		src, ok := r.index.findByDigest(want, skip)
		if !ok {
			return "", false, nil
		}
		skip[src] = struct{}{}

		actual, err := r.hasher.FileDigest(r.fs, src)
		if err != nil || actual == nil || *actual != want {
			logger := log.WithField("path", src)
			if err != nil {
				logger = logger.WithError(err)
			}
			logger.Debug("Checksum index entry is stale")

			if err == nil && actual != nil {
				r.index.Record(src, *actual)
			} else {
				r.index.Forget(src)
			}
			continue
		}

		if err := r.checkParent(target); err != nil {
			return "", false, err
		}

		copiedDigest, err := copyFile(r.fs, r.hasher, src, target)
		if err != nil {
			return "", false, errors.WithContext(err, fmt.Sprintf("copy %s", src))
		}

		// The source could have changed between the check and the copy.
		if copiedDigest != want {
			r.index.Record(src, copiedDigest)
			r.index.Record(target, copiedDigest)
			continue
		}

		r.index.Record(target, want)
		log.WithFields(log.Fields{
			"src": src,
			"dst": target,
		}).Debug("Populated file from existing copy")
		return src, true, nil
	}
}

// checkParent returns an error if the parent directory of `path` doesn't
// exist. Directories are only created by structural syncs.
func (r *Root) checkParent(path string) error {
	parent := filepath.Dir(path)
	exists, err := afero.DirExists(r.fs, parent)
	if err != nil {
		return errors.WithContext(err, fmt.Sprintf("stat %s", parent))
	}
	if !exists {
		rel, _ := r.Rel(path)
		return errors.InvalidPathError{Path: rel, Root: r.Path(),
			Reason: "parent directory does not exist"}
	}
	return nil
}

// copyFile copies `src` to `dst`, and returns the digest of the bytes that
// were copied.
func copyFile(fs afero.Fs, hasher Hasher, src, dst string) (Digest, error) {
	srcFile, err := fs.Open(src)
	if err != nil {
		return Digest{}, errors.WithContext(err, "open source")
	}
	defer srcFile.Close()

	fileInfo, err := srcFile.Stat()
	if err != nil {
		return Digest{}, errors.WithContext(err, "stat")
	}

	dstFile, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileInfo.Mode().Perm())
	if err != nil {
		return Digest{}, errors.WithContext(err, "open destination")
	}
	defer dstFile.Close()

	hash := hasher.newHash()
	if _, err := io.Copy(io.MultiWriter(dstFile, hash), srcFile); err != nil {
		return Digest{}, errors.WithContext(err, "copy")
	}

	var digest Digest
	copy(digest[:], hash.Sum(nil))

	if err := dstFile.Sync(); err != nil {
		return Digest{}, errors.WithContext(err, "sync")
	}
	return digest, nil
}

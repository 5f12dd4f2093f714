package sync

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/adler32"
	"io"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/crypto/blake2b"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// DigestSize is the length in bytes of a strong digest.
const DigestSize = 32

// Digest is the strong digest of a file or block.
type Digest [DigestSize]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest converts the raw bytes sent over the wire into a Digest.
func ParseDigest(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestSize {
		return d, errors.InvalidDigestError{Length: len(b)}
	}
	copy(d[:], b)
	return d, nil
}

// ParseDigestHex parses the hex encoding produced by Digest.String.
func ParseDigestHex(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, errors.WithContext(err, "decode hex")
	}
	return ParseDigest(b)
}

// Algorithm names a strong hash function. The client and server must agree
// on it, otherwise no file will ever compare equal.
type Algorithm string

const (
	// SHA256 is the default strong hash.
	SHA256 Algorithm = "sha256"

	// BLAKE2b is BLAKE2b-256.
	BLAKE2b Algorithm = "blake2b"
)

// Hasher computes strong digests with a fixed algorithm.
type Hasher struct {
	algorithm Algorithm
	newHash   func() hash.Hash
}

// NewHasher returns a Hasher for the given algorithm. The empty string
// selects SHA256.
func NewHasher(algorithm Algorithm) (Hasher, error) {
	switch algorithm {
	case SHA256, "":
		return Hasher{algorithm: SHA256, newHash: sha256.New}, nil
	case BLAKE2b:
		return Hasher{algorithm: BLAKE2b, newHash: newBlake2b}, nil
	}
	return Hasher{}, errors.New("unsupported digest algorithm %q", algorithm)
}

// DefaultHasher is the SHA256 Hasher.
var DefaultHasher, _ = NewHasher(SHA256)

func newBlake2b() hash.Hash {
	// New256 only fails when given a key that's too long.
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("blake2b: %s", err))
	}
	return h
}

// Algorithm returns the name of the hash function used by the Hasher.
func (h Hasher) Algorithm() Algorithm {
	return h.algorithm
}

// Strong returns the strong digest of `b`.
func (h Hasher) Strong(b []byte) Digest {
	hasher := h.newHash()
	hasher.Write(b)

	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d
}

// Weak returns the Adler-32 checksum of `b`. It's only used as a cheap
// pre-filter before comparing strong digests.
func Weak(b []byte) uint32 {
	return adler32.Checksum(b)
}

// DigestReader returns the strong digest of everything read from `r`.
func (h Hasher) DigestReader(r io.Reader) (Digest, error) {
	hasher := h.newHash()
	if _, err := io.Copy(hasher, r); err != nil {
		return Digest{}, errors.WithContext(err, "read")
	}

	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d, nil
}

// FileDigest returns the strong digest of the file at `path`. A nil digest
// and nil error mean that the file doesn't exist. A file that exists but
// can't be read is an error.
func (h Hasher) FileDigest(fs afero.Fs, path string) (*Digest, error) {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WithContext(err, "open")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.WithContext(err, "stat")
	}
	if fi.IsDir() {
		return nil, errors.WithContext(&os.PathError{Op: "hash", Path: path,
			Err: errors.New("is a directory")}, "open")
	}

	d, err := h.DigestReader(f)
	if err != nil {
		return nil, errors.WithContext(err, fmt.Sprintf("hash %s", path))
	}
	return &d, nil
}

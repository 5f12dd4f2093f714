package sync

import (
	"io"

	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// MaxBlockSize is the largest block size that clients may request.
const MaxBlockSize = 64 << 20

// Chunker splits a file into fixed size blocks. Every block is blockSize
// bytes long except possibly the last one.
//
// It's used like a bufio.Scanner:
//
//	for chunker.Scan() {
//		block := chunker.Block()
//	}
//	if err := chunker.Err(); err != nil {
//	}
//
// A Chunker can't be rewound. To iterate again, create a new Chunker for the
// same path.
type Chunker struct {
	r         io.Reader
	closer    io.Closer
	blockSize int

	block []byte
	err   error
	done  bool
}

// NewChunker opens `path` and returns a Chunker over its contents.
func NewChunker(fs afero.Fs, path string, blockSize int) (*Chunker, error) {
	if blockSize <= 0 {
		return nil, errors.New("block size must be positive, got %d", blockSize)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.WithContext(err, "open")
	}

	c := ChunkReader(f, blockSize)
	c.closer = f
	return c, nil
}

// ChunkReader returns a Chunker over an arbitrary reader. `blockSize` must be
// positive.
func ChunkReader(r io.Reader, blockSize int) *Chunker {
	return &Chunker{r: r, blockSize: blockSize}
}

// Scan reads the next block. It returns false at the end of the input or
// after a read error, which is then available from Err.
func (c *Chunker) Scan() bool {
	if c.done {
		return false
	}

	buf := make([]byte, c.blockSize)
	n, err := io.ReadFull(c.r, buf)
	switch {
	case err == io.EOF:
		c.done = true
		c.block = nil
		return false
	case err == io.ErrUnexpectedEOF:
		// Short final block.
		c.done = true
	case err != nil:
		c.done = true
		c.block = nil
		c.err = errors.WithContext(err, "read block")
		return false
	}

	c.block = buf[:n]
	return true
}

// Block returns the block read by the most recent call to Scan. The returned
// slice isn't reused by later calls.
func (c *Chunker) Block() []byte {
	return c.block
}

// Err returns the read error that stopped iteration, if any.
func (c *Chunker) Err() error {
	return c.err
}

// Close closes the underlying file if the Chunker opened it.
func (c *Chunker) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// BlockChecksum is the pair of digests for a single block.
type BlockChecksum struct {
	Strong Digest
	Weak   uint32
}

// Matches returns whether `block` has the same contents as the block this
// checksum was computed from. The strong digest is only computed if the weak
// checksum matches.
func (sum BlockChecksum) Matches(h Hasher, block []byte) bool {
	if Weak(block) != sum.Weak {
		return false
	}
	return h.Strong(block) == sum.Strong
}

// BlockChecksums returns the checksums of every block of `path`, in order.
func (h Hasher) BlockChecksums(fs afero.Fs, path string, blockSize int) ([]BlockChecksum, error) {
	chunker, err := NewChunker(fs, path, blockSize)
	if err != nil {
		return nil, err
	}
	defer chunker.Close()

	var sums []BlockChecksum
	for chunker.Scan() {
		block := chunker.Block()
		sums = append(sums, BlockChecksum{
			Strong: h.Strong(block),
			Weak:   Weak(block),
		})
	}
	if err := chunker.Err(); err != nil {
		return nil, err
	}
	return sums, nil
}

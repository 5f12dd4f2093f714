package sync

import (
	"fmt"
	"io"
	"math"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// BlockSource returns the blocks of an upload in arrival order. It returns
// io.EOF once the client has finished sending.
type BlockSource func() (index uint64, data []byte, err error)

// UploadResult describes a completed block upload.
type UploadResult struct {
	Path         string
	BytesWritten int64
	Digest       Digest
}

// ApplyBlocks patches the file described by `meta` with the blocks returned
// by `next`. Each block is written at offset index*BlockSize, so blocks that
// the client didn't send keep their current contents.
//
// Every block must be exactly BlockSize long, except for the last one.
// Blocks may not start past the current end of the file, so the file only
// grows by the data that was actually sent. If meta.Size is set, no block
// may extend past it, and the file is truncated to that length once all
// blocks are written. If meta.Checksum is set, the result is verified against it
// and ErrFileChanged is returned if it doesn't match.
func (r *Root) ApplyBlocks(meta UploadMetadata, next BlockSource) (UploadResult, error) {
	if meta.BlockSize <= 0 {
		return UploadResult{}, errors.MissingFieldError{Field: BlockSizeKey}
	}

	target, err := r.sanitizer.CleanEntry(meta.Path)
	if err != nil {
		return UploadResult{}, err
	}
	if err := r.checkParent(target); err != nil {
		return UploadResult{}, err
	}

	result := UploadResult{Path: target}
	f, err := r.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return UploadResult{}, errors.WithContext(err, "open")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return UploadResult{}, errors.WithContext(err, "stat")
	}
	end := fi.Size()

	// The file is about to change, so the old digest can't be trusted for
	// copies anymore.
	r.index.Forget(target)

	sawShortBlock := false
	for {
		index, data, err := next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return UploadResult{}, errors.WithContext(err, "receive block")
		}

		if sawShortBlock {
			return UploadResult{}, errors.ProtocolError{
				Expected: "end of stream",
				Got:      fmt.Sprintf("block %d after a short block", index),
			}
		}
		if len(data) > meta.BlockSize {
			return UploadResult{}, errors.ProtocolError{
				Expected: fmt.Sprintf("block of at most %d bytes", meta.BlockSize),
				Got:      fmt.Sprintf("block %d of %d bytes", index, len(data)),
			}
		}
		sawShortBlock = len(data) < meta.BlockSize

		offset, err := blockOffset(index, meta.BlockSize, len(data), end, meta.Size)
		if err != nil {
			return UploadResult{}, err
		}
		if _, err := f.WriteAt(data, offset); err != nil {
			return UploadResult{}, errors.WithContext(err, fmt.Sprintf("write block %d", index))
		}
		if blockEnd := offset + int64(len(data)); blockEnd > end {
			end = blockEnd
		}
		result.BytesWritten += int64(len(data))
	}

	if meta.Size > end {
		return UploadResult{}, errors.ProtocolError{
			Expected: fmt.Sprintf("blocks up to the declared size of %d bytes", meta.Size),
			Got:      fmt.Sprintf("end of stream at %d bytes", end),
		}
	}

	if meta.Size >= 0 {
		if err := f.Truncate(meta.Size); err != nil {
			return UploadResult{}, errors.WithContext(err, "truncate")
		}
	}

	if err := f.Sync(); err != nil {
		return UploadResult{}, errors.WithContext(err, "sync")
	}

	digest, err := r.hasher.FileDigest(r.fs, target)
	if err != nil {
		return UploadResult{}, errors.WithContext(err, "hash result")
	}
	if digest == nil {
		return UploadResult{}, errors.FileNotFound{Path: meta.Path}
	}

	if meta.Checksum != nil && *meta.Checksum != *digest {
		log.WithFields(log.Fields{
			"path":     target,
			"expected": meta.Checksum.String(),
			"actual":   digest.String(),
		}).Warn("Patched file doesn't match the declared checksum")
		return UploadResult{}, errors.ErrFileChanged
	}

	r.index.Record(target, *digest)
	result.Digest = *digest
	return result, nil
}

// blockOffset returns where block `index` starts. The block must start at or
// before `end`, the current length of the file, and must fit within `size`
// when the final size is known.
func blockOffset(index uint64, blockSize, length int, end, size int64) (int64, error) {
	if index > uint64(math.MaxInt64)/uint64(blockSize) {
		return 0, errors.ProtocolError{
			Expected: "block within the maximum file size",
			Got:      fmt.Sprintf("block %d", index),
		}
	}

	offset := int64(index) * int64(blockSize)
	if offset > end {
		return 0, errors.ProtocolError{
			Expected: fmt.Sprintf("block starting at or before offset %d", end),
			Got:      fmt.Sprintf("block %d at offset %d", index, offset),
		}
	}
	if size >= 0 && offset+int64(length) > size {
		return 0, errors.ProtocolError{
			Expected: fmt.Sprintf("block ending within the declared size of %d bytes", size),
			Got:      fmt.Sprintf("block %d ending at offset %d", index, offset+int64(length)),
		}
	}
	return offset, nil
}

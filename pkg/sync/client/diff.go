package client

import (
	"io"

	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/sync"
)

// Block is a block of a local file that has to be sent to the server.
type Block struct {
	Index uint64
	Data  []byte
}

// DiffBlocks splits `local` into blocks of `blockSize` bytes and calls `send`
// for each block that doesn't match the server's checksum at the same index.
// Blocks past the end of `remote` are always sent. Blocks are sent in
// increasing index order.
//
// The weak checksum is compared first so that the strong digest is only
// computed for blocks that are likely unchanged.
func DiffBlocks(hasher sync.Hasher, local io.Reader, blockSize int,
	remote []sync.BlockChecksum, send func(Block) error) error {

	if blockSize <= 0 {
		return errors.MissingFieldError{Field: "block_size"}
	}

	chunker := sync.ChunkReader(local, blockSize)
	for index := 0; chunker.Scan(); index++ {
		data := chunker.Block()
		if index < len(remote) && remote[index].Matches(hasher, data) {
			continue
		}

		if err := send(Block{Index: uint64(index), Data: data}); err != nil {
			return err
		}
	}
	return chunker.Err()
}

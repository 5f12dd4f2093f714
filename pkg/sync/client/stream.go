package client

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/proto/dirsync"
)

// pendingChunks is the number of chunks that are read ahead of the network.
// The producer blocks once the buffer is full.
const pendingChunks = 10

// AddBook streams `contents` to the server, which stores it as `name`
// directly in its root.
func (c *client) AddBook(name string, contents io.Reader) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.streamTimeout)
	defer cancel()

	stream, err := c.pbClient.AddBook(ctx)
	if err != nil {
		return errors.WithContext(fromStatus(err), "start stream")
	}

	requests := make(chan *dirsync.AddBookRequest, pendingChunks)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(requests)
		return produceChunks(gctx, name, contents, c.chunkSize, requests)
	})
	g.Go(func() error {
		for req := range requests {
			if err := stream.Send(req); err != nil {
				if err == io.EOF {
					// The server stopped reading. Receive the response to
					// find out why.
					_, err = stream.CloseAndRecv()
				}
				return errors.WithContext(fromStatus(err), "send chunk")
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	_, err = stream.CloseAndRecv()
	return fromStatus(err)
}

// produceChunks sends the header for `name` followed by the contents of `r`
// split into messages of at most `chunkSize` bytes. It stops after the first
// short or empty read.
func produceChunks(ctx context.Context, name string, r io.Reader, chunkSize int,
	requests chan<- *dirsync.AddBookRequest) error {

	send := func(req *dirsync.AddBookRequest) error {
		select {
		case requests <- req:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	header := &dirsync.AddBookRequest_Header{Header: &dirsync.AddBookHeader{Name: name}}
	if err := send(&dirsync.AddBookRequest{Type: header}); err != nil {
		return err
	}

	for {
		buf := make([]byte, chunkSize)
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			chunk := &dirsync.AddBookRequest_Chunk{Chunk: buf[:n]}
			if err := send(&dirsync.AddBookRequest{Type: chunk}); err != nil {
				return err
			}
		}

		switch {
		case err == io.EOF || err == io.ErrUnexpectedEOF:
			return nil
		case err != nil:
			return errors.WithContext(err, "read")
		}
	}
}

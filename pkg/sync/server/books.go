package server

import (
	"context"
	"io"

	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/proto/dirsync"
)

// AddBook writes a whole file streamed by the client. The first message
// must be a header naming the file, and every later message must be a
// chunk of its contents.
func (s *server) AddBook(stream dirsync.DirSync_AddBookServer) error {
	first, err := stream.Recv()
	if err == io.EOF {
		return errors.ProtocolError{Expected: "header", Got: "end of stream"}
	}
	if err != nil {
		return errors.WithContext(err, "read header")
	}

	header, ok := first.GetType().(*dirsync.AddBookRequest_Header)
	if !ok {
		return errors.ProtocolError{Expected: "header", Got: messageKind(first)}
	}

	result, err := s.root.ReceiveFile(header.Header.GetName(), func() ([]byte, error) {
		msg, err := stream.Recv()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, errors.WithContext(err, "read chunk")
		}

		chunk, ok := msg.GetType().(*dirsync.AddBookRequest_Chunk)
		if !ok {
			return nil, errors.ProtocolError{Expected: "chunk", Got: messageKind(msg)}
		}
		return chunk.Chunk, nil
	})
	if err != nil {
		return err
	}

	loggerFrom(stream.Context()).WithFields(log.Fields{
		"path": result.Path,
		"size": humanize.Bytes(uint64(result.BytesWritten)),
	}).Info("Added book")
	return stream.SendAndClose(&dirsync.AddBookResponse{})
}

func messageKind(msg *dirsync.AddBookRequest) string {
	switch msg.GetType().(type) {
	case *dirsync.AddBookRequest_Header:
		return "header"
	case *dirsync.AddBookRequest_Chunk:
		return "chunk"
	default:
		return "empty message"
	}
}

// ListBooks streams the name and size of every regular file directly in the
// root.
func (s *server) ListBooks(_ *dirsync.ListBooksRequest, stream dirsync.DirSync_ListBooksServer) error {
	files, err := s.root.ListFiles()
	if err != nil {
		return err
	}

	for _, f := range files {
		err := stream.Send(&dirsync.ListBooksResponse{
			Name: f.Name,
			Size: uint64(f.Size),
		})
		if err != nil {
			return errors.WithContext(err, "send")
		}
	}
	return nil
}

// DeleteBook removes a file or directory below the root.
func (s *server) DeleteBook(ctx context.Context, req *dirsync.DeleteBookRequest) (
	*dirsync.DeleteBookResponse, error) {

	path, err := s.root.Delete(req.GetPath())
	if err != nil {
		return nil, err
	}

	loggerFrom(ctx).WithField("path", path).Info("Deleted book")
	return &dirsync.DeleteBookResponse{}, nil
}

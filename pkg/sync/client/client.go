package client

import (
	"context"
	"io"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding/gzip"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/proto/dirsync"
	"github.com/sidkik/ironscribe/pkg/sync"
	"github.com/sidkik/ironscribe/pkg/version"
)

// Client is the interface for pushing a directory tree to an ironscribe
// server.
type Client interface {
	SyncStructure([]sync.PathEntry) error
	DiffStructure(sync.ChangeSet) error
	GetChecksum(path string, blockSize int, digest sync.Digest) (RemoteFile, error)
	UploadBlocks(meta sync.UploadMetadata, local io.Reader, remote []sync.BlockChecksum) (uint64, error)
	AddBook(name string, contents io.Reader) error
	ListBooks() ([]sync.FileInfo, error)
	DeleteBook(path string) error
	Close() error
}

// RemoteFile is the server's view of a file.
type RemoteFile struct {
	// Synced is true if the server already has the requested contents,
	// either because the file was unchanged or because the server copied
	// an identical file into place.
	Synced bool

	// Checksums are the block checksums of the server's current copy. It's
	// empty if the file doesn't exist on the server, or is empty.
	Checksums []sync.BlockChecksum
}

// Options configures a Client.
type Options struct {
	TLS config.TLS

	// ChunkSize is the size of the messages used to stream whole files.
	ChunkSize int

	// StreamTimeout bounds the duration of each streaming call.
	StreamTimeout time.Duration
}

const (
	unaryTimeout = 30 * time.Second

	// maxMessageSize leaves room for a full block plus the message framing.
	maxMessageSize = sync.MaxBlockSize + 1<<20
)

type client struct {
	pbClient dirsync.DirSyncClient
	grpcConn *grpc.ClientConn

	hasher        sync.Hasher
	chunkSize     int
	streamTimeout time.Duration
}

// New returns a new Client connected to the server at `addr`.
func New(addr string, hasher sync.Hasher, opts Options) (Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithUserAgent(version.UserAgent()),
		grpc.WithDefaultCallOptions(
			grpc.UseCompressor(gzip.Name),
			grpc.MaxCallSendMsgSize(maxMessageSize)),
	}

	if opts.TLS.Enabled() {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, errors.WithContext(err, "parse address")
		}

		creds, err := opts.TLS.ClientCredentials(host)
		if err != nil {
			return nil, errors.WithContext(err, "load TLS credentials")
		}
		dialOpts = append(dialOpts, grpc.WithTransportCredentials(creds))
	} else {
		dialOpts = append(dialOpts, grpc.WithInsecure())
	}

	conn, err := grpc.Dial(addr, dialOpts...)
	if err != nil {
		return nil, errors.WithContext(err, "dial")
	}
	return newClient(conn, hasher, opts), nil
}

func newClient(conn *grpc.ClientConn, hasher sync.Hasher, opts Options) *client {
	c := &client{
		pbClient:      dirsync.NewDirSyncClient(conn),
		grpcConn:      conn,
		hasher:        hasher,
		chunkSize:     opts.ChunkSize,
		streamTimeout: opts.StreamTimeout,
	}
	if c.chunkSize <= 0 {
		c.chunkSize = int(config.DefaultChunkSize)
	}
	if c.streamTimeout <= 0 {
		c.streamTimeout = config.DefaultStreamTimeout
	}
	return c
}

func (c *client) SyncStructure(entries []sync.PathEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), unaryTimeout)
	defer cancel()

	_, err := c.pbClient.SyncStructure(ctx, &dirsync.SyncRequest{
		Elements: toProtoEntries(entries),
	})
	return fromStatus(err)
}

func (c *client) DiffStructure(changes sync.ChangeSet) error {
	ctx, cancel := context.WithTimeout(context.Background(), unaryTimeout)
	defer cancel()

	_, err := c.pbClient.DiffStructure(ctx, &dirsync.DiffRequest{
		Created: toProtoEntries(changes.Created),
		Deleted: toProtoEntries(changes.Deleted),
	})
	return fromStatus(err)
}

func (c *client) GetChecksum(path string, blockSize int, digest sync.Digest) (RemoteFile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), unaryTimeout)
	defer cancel()

	resp, err := c.pbClient.GetChecksum(ctx, &dirsync.ChecksumRequest{
		Path:      path,
		BlockSize: uint64(blockSize),
		Checksum:  digest[:],
	})
	if err != nil {
		return RemoteFile{}, fromStatus(err)
	}

	remote := RemoteFile{Synced: resp.GetSynced()}
	for _, pbSum := range resp.GetChecksums() {
		strong, err := sync.ParseDigest(pbSum.GetStrong())
		if err != nil {
			return RemoteFile{}, errors.WithContext(err, "parse block checksum")
		}
		remote.Checksums = append(remote.Checksums, sync.BlockChecksum{
			Strong: strong,
			Weak:   pbSum.GetWeak(),
		})
	}
	return remote, nil
}

// UploadBlocks sends the blocks of `local` that differ from `remote`. The
// server patches its copy of the file in place.
func (c *client) UploadBlocks(meta sync.UploadMetadata, local io.Reader,
	remote []sync.BlockChecksum) (uint64, error) {

	ctx, cancel := context.WithTimeout(context.Background(), c.streamTimeout)
	defer cancel()

	ctx = metadata.NewOutgoingContext(ctx, metadata.New(meta.Metadata()))
	stream, err := c.pbClient.UploadBlocks(ctx)
	if err != nil {
		return 0, errors.WithContext(fromStatus(err), "start stream")
	}

	err = DiffBlocks(c.hasher, local, meta.BlockSize, remote, func(block Block) error {
		err := stream.Send(&dirsync.Block{Index: block.Index, Data: block.Data})
		if err == io.EOF {
			// The server closed the stream early. The actual error is
			// returned when receiving the response.
			_, err = stream.CloseAndRecv()
		}
		return err
	})
	if err != nil {
		return 0, errors.WithContext(fromStatus(err), "send blocks")
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		return 0, fromStatus(err)
	}
	return resp.GetBytesWritten(), nil
}

func (c *client) ListBooks() ([]sync.FileInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.streamTimeout)
	defer cancel()

	stream, err := c.pbClient.ListBooks(ctx, &dirsync.ListBooksRequest{})
	if err != nil {
		return nil, fromStatus(err)
	}

	var books []sync.FileInfo
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return books, nil
		}
		if err != nil {
			return nil, fromStatus(err)
		}
		books = append(books, sync.FileInfo{Name: resp.GetName(), Size: int64(resp.GetSize())})
	}
}

// DeleteBook removes the file or directory at `path` on the server. It
// returns errors.FileNotFound if nothing exists there.
func (c *client) DeleteBook(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), unaryTimeout)
	defer cancel()

	_, err := c.pbClient.DeleteBook(ctx, &dirsync.DeleteBookRequest{Path: path})
	if status.Code(err) == codes.NotFound {
		return errors.FileNotFound{Path: path}
	}
	return fromStatus(err)
}

func (c *client) Close() error {
	return c.grpcConn.Close()
}

func toProtoEntries(entries []sync.PathEntry) []*dirsync.PathEntry {
	var pbEntries []*dirsync.PathEntry
	for _, entry := range entries {
		pbEntries = append(pbEntries, &dirsync.PathEntry{
			Path:  entry.Path,
			IsDir: entry.IsDir,
		})
	}
	return pbEntries
}

// fromStatus converts the gRPC status errors returned by the server into
// the errors that callers check for.
func fromStatus(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.FailedPrecondition:
		return errors.WithContext(errors.ErrFileChanged, st.Message())
	case codes.Unavailable:
		return errors.NewFriendlyError("Failed to connect to the ironscribe server.\n"+
			"Is `ironscribe server` running, and is the address correct?\n\n"+
			"Error: %s", st.Message())
	}
	return err
}

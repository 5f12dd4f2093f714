package server

import (
	"context"
	"fmt"
	"net"
	"time"

	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/proto/dirsync"
	"github.com/sidkik/ironscribe/pkg/sync"

	_ "google.golang.org/grpc/encoding/gzip" // Install the gzip compressor
)

// Mocked out for unit testing.
var fs = afero.NewOsFs()

// maxMessageSize leaves room for a full block plus the message framing.
const maxMessageSize = sync.MaxBlockSize + 1<<20

// Config configures the sync server.
type Config struct {
	// Root is the directory that clients sync into.
	Root      string
	Port      int
	Digest    sync.Algorithm
	SeedIndex bool
	TLS       config.TLS
}

type server struct {
	root *sync.Root
}

// Run starts the sync server and listens for connections until `ctx` is
// cancelled.
func Run(ctx context.Context, cfg Config) error {
	hasher, err := sync.NewHasher(cfg.Digest)
	if err != nil {
		return err
	}

	root, err := sync.NewRoot(fs, cfg.Root, hasher)
	if err != nil {
		return err
	}

	if cfg.SeedIndex {
		start := time.Now()
		if err := root.SeedIndex(); err != nil {
			return errors.WithContext(err, "seed checksum index")
		}
		log.WithFields(log.Fields{
			"files":    root.Index().Len(),
			"duration": time.Since(start),
		}).Info("Seeded checksum index")
	}

	var opts []grpc.ServerOption
	if cfg.TLS.Enabled() {
		creds, err := cfg.TLS.ServerCredentials()
		if err != nil {
			return errors.WithContext(err, "load TLS credentials")
		}
		opts = append(opts, grpc.Creds(creds))
	}

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WithContext(err, "listen")
	}

	grpcServer := NewGRPCServer(root, opts...)
	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		grpcServer.GracefulStop()
	}()

	log.WithFields(log.Fields{
		"root":    root.Path(),
		"address": addr,
		"tls":     cfg.TLS.Enabled(),
		"digest":  hasher.Algorithm(),
	}).Info("ironscribe server is ready")
	if err := grpcServer.Serve(lis); err != nil {
		return errors.WithContext(err, "serve")
	}
	return nil
}

// NewGRPCServer returns a gRPC server that syncs into `root`. The caller is
// responsible for calling Serve.
func NewGRPCServer(root *sync.Root, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts,
		grpc.UnaryInterceptor(unaryInterceptor),
		grpc.StreamInterceptor(streamInterceptor),
		grpc.MaxRecvMsgSize(maxMessageSize))
	grpcServer := grpc.NewServer(opts...)
	dirsync.RegisterDirSyncServer(grpcServer, &server{root: root})
	return grpcServer
}

func (s *server) SyncStructure(ctx context.Context, req *dirsync.SyncRequest) (
	*dirsync.SyncResponse, error) {

	report, err := s.root.Reconcile(toEntries(req.GetElements()))
	logReport(loggerFrom(ctx), report)
	if err != nil {
		return nil, errors.WithContext(err, "reconcile")
	}
	return &dirsync.SyncResponse{}, nil
}

func (s *server) DiffStructure(ctx context.Context, req *dirsync.DiffRequest) (
	*dirsync.DiffResponse, error) {

	report, err := s.root.ApplyChangeSet(sync.ChangeSet{
		Created: toEntries(req.GetCreated()),
		Deleted: toEntries(req.GetDeleted()),
	})
	logReport(loggerFrom(ctx), report)
	if err != nil {
		return nil, errors.WithContext(err, "apply changes")
	}
	return &dirsync.DiffResponse{}, nil
}

func (s *server) GetChecksum(ctx context.Context, req *dirsync.ChecksumRequest) (
	*dirsync.ChecksumResponse, error) {

	if req.GetBlockSize() > sync.MaxBlockSize {
		return nil, errors.InvalidBlockSizeError{Size: req.GetBlockSize(), Max: sync.MaxBlockSize}
	}

	result, err := s.root.Check(req.GetPath(), int(req.GetBlockSize()), req.GetChecksum())
	if err != nil {
		return nil, err
	}

	if result.CopiedFrom != "" {
		loggerFrom(ctx).WithFields(log.Fields{
			"src": result.CopiedFrom,
			"dst": result.Path,
		}).Info("Reused existing copy of file")
	}

	resp := &dirsync.ChecksumResponse{
		Path:     req.GetPath(),
		Checksum: req.GetChecksum(),
		Synced:   result.Synced,
	}
	for _, sum := range result.Checksums {
		resp.Checksums = append(resp.Checksums, &dirsync.Checksum{
			Strong: sum.Strong[:],
			Weak:   sum.Weak,
		})
	}
	return resp, nil
}

func (s *server) UploadBlocks(stream dirsync.DirSync_UploadBlocksServer) error {
	// The path and block size are sent as request metadata so that the
	// stream only has to carry blocks.
	md, _ := metadata.FromIncomingContext(stream.Context())
	meta, err := sync.ExtractUploadMetadata(md)
	if err != nil {
		return err
	}

	result, err := s.root.ApplyBlocks(meta, func() (uint64, []byte, error) {
		block, err := stream.Recv()
		if err != nil {
			return 0, nil, err
		}
		return block.GetIndex(), block.GetData(), nil
	})
	if err != nil {
		return err
	}

	loggerFrom(stream.Context()).WithFields(log.Fields{
		"path":    result.Path,
		"written": humanize.Bytes(uint64(result.BytesWritten)),
	}).Info("Patched file")
	return stream.SendAndClose(&dirsync.UploadResponse{
		BytesWritten: uint64(result.BytesWritten),
	})
}

func toEntries(pbEntries []*dirsync.PathEntry) []sync.PathEntry {
	var entries []sync.PathEntry
	for _, entry := range pbEntries {
		entries = append(entries, sync.PathEntry{
			Path:  entry.GetPath(),
			IsDir: entry.GetIsDir(),
		})
	}
	return entries
}

func logReport(logger *log.Entry, report sync.Report) {
	logFields := log.Fields{}
	if len(report.Created) > 0 {
		logFields["created"] = truncateSlice(report.Created, 5)
	}
	if len(report.Removed) > 0 {
		logFields["removed"] = truncateSlice(report.Removed, 5)
	}

	if len(logFields) > 0 {
		logger.WithFields(logFields).Info("Synced structure..")
	}
}

// truncateSlice truncates the given slice of strings to the given length. If
// the slice is longer than `length`, a message is appended saying how many
// more items are in the slice.
func truncateSlice(slc []string, length int) (truncated []string) {
	if len(slc) <= length {
		return slc
	}
	msg := fmt.Sprintf("... %d more ...", len(slc)-length)
	return append(slc[:length:length], msg)
}

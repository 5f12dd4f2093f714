package server

import (
	"context"
	"net"
	"os"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/proto/dirsync"
	"github.com/sidkik/ironscribe/pkg/sync"
)

type testServer struct {
	client dirsync.DirSyncClient
	fs     afero.Fs
	root   *sync.Root
}

func newTestServer(t *testing.T) testServer {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/srv", 0755))

	root, err := sync.NewRoot(fs, "/srv", sync.DefaultHasher)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	grpcServer := NewGRPCServer(root)
	go grpcServer.Serve(lis)

	conn, err := grpc.Dial("bufconn",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithInsecure())
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		grpcServer.Stop()
	})
	return testServer{client: dirsync.NewDirSyncClient(conn), fs: fs, root: root}
}

func (ts testServer) writeFiles(t *testing.T, files map[string]string) {
	for path, contents := range files {
		require.NoError(t, afero.WriteFile(ts.fs, path, []byte(contents), 0644))
	}
}

func (ts testServer) readFile(t *testing.T, path string) string {
	contents, err := afero.ReadFile(ts.fs, path)
	require.NoError(t, err)
	return string(contents)
}

func (ts testServer) exists(t *testing.T, path string) bool {
	exists, err := afero.Exists(ts.fs, path)
	require.NoError(t, err)
	return exists
}

func assertCode(t *testing.T, exp codes.Code, err error) {
	require.Error(t, err)
	assert.Equal(t, exp, status.Code(err), err.Error())
}

func TestSyncStructure(t *testing.T) {
	ts := newTestServer(t)
	ts.writeFiles(t, map[string]string{
		"/srv/keep":      "keep",
		"/srv/stale":     "stale",
		"/srv/old/child": "child",
	})

	_, err := ts.client.SyncStructure(context.Background(), &dirsync.SyncRequest{
		Elements: []*dirsync.PathEntry{
			{Path: "keep"},
			{Path: "new", IsDir: true},
		},
	})
	require.NoError(t, err)

	assert.True(t, ts.exists(t, "/srv/keep"))
	assert.True(t, ts.exists(t, "/srv/new"))
	assert.False(t, ts.exists(t, "/srv/stale"))
	assert.False(t, ts.exists(t, "/srv/old"))

	_, err = ts.client.SyncStructure(context.Background(), &dirsync.SyncRequest{
		Elements: []*dirsync.PathEntry{{Path: "../escape", IsDir: true}},
	})
	assertCode(t, codes.InvalidArgument, err)
	assert.True(t, ts.exists(t, "/srv/keep"))
}

func TestDiffStructure(t *testing.T) {
	ts := newTestServer(t)
	ts.writeFiles(t, map[string]string{
		"/srv/a":       "a",
		"/srv/dir/b":   "b",
		"/srv/another": "another",
	})

	req := &dirsync.DiffRequest{
		Created: []*dirsync.PathEntry{{Path: "new/sub", IsDir: true}},
		Deleted: []*dirsync.PathEntry{{Path: "a"}, {Path: "dir", IsDir: true}},
	}
	_, err := ts.client.DiffStructure(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, ts.exists(t, "/srv/new/sub"))
	assert.True(t, ts.exists(t, "/srv/another"))
	assert.False(t, ts.exists(t, "/srv/a"))
	assert.False(t, ts.exists(t, "/srv/dir"))

	// Replaying the same diff is harmless.
	_, err = ts.client.DiffStructure(context.Background(), req)
	assert.NoError(t, err)
}

func TestGetChecksum(t *testing.T) {
	ts := newTestServer(t)
	ts.writeFiles(t, map[string]string{
		"/srv/synced":  "contents",
		"/srv/changed": "abcdefghij",
	})

	contentsDigest := sync.DefaultHasher.Strong([]byte("contents"))
	resp, err := ts.client.GetChecksum(context.Background(), &dirsync.ChecksumRequest{
		Path:      "synced",
		BlockSize: 4,
		Checksum:  contentsDigest[:],
	})
	require.NoError(t, err)
	assert.True(t, resp.GetSynced())
	assert.Empty(t, resp.GetChecksums())
	assert.Equal(t, "synced", resp.GetPath())
	assert.Equal(t, contentsDigest[:], resp.GetChecksum())

	otherDigest := sync.DefaultHasher.Strong([]byte("abcdXXXXij"))
	resp, err = ts.client.GetChecksum(context.Background(), &dirsync.ChecksumRequest{
		Path:      "changed",
		BlockSize: 4,
		Checksum:  otherDigest[:],
	})
	require.NoError(t, err)
	assert.False(t, resp.GetSynced())
	require.Len(t, resp.GetChecksums(), 3)
	for i, block := range []string{"abcd", "efgh", "ij"} {
		exp := sync.DefaultHasher.Strong([]byte(block))
		assert.Equal(t, exp[:], resp.GetChecksums()[i].GetStrong())
		assert.Equal(t, sync.Weak([]byte(block)), resp.GetChecksums()[i].GetWeak())
	}

	// The server has another file with the requested contents.
	require.NoError(t, ts.root.SeedIndex())
	resp, err = ts.client.GetChecksum(context.Background(), &dirsync.ChecksumRequest{
		Path:      "copy",
		BlockSize: 4,
		Checksum:  contentsDigest[:],
	})
	require.NoError(t, err)
	assert.True(t, resp.GetSynced())
	assert.Equal(t, "contents", ts.readFile(t, "/srv/copy"))
}

func TestGetChecksumErrors(t *testing.T) {
	ts := newTestServer(t)
	ts.writeFiles(t, map[string]string{"/srv/file": "contents"})
	digest := sync.DefaultHasher.Strong([]byte("other"))

	tests := []struct {
		name    string
		req     *dirsync.ChecksumRequest
		expCode codes.Code
	}{
		{
			name:    "ZeroBlockSize",
			req:     &dirsync.ChecksumRequest{Path: "file", Checksum: digest[:]},
			expCode: codes.InvalidArgument,
		},
		{
			name:    "HugeBlockSize",
			req:     &dirsync.ChecksumRequest{Path: "file", BlockSize: 1 << 40, Checksum: digest[:]},
			expCode: codes.InvalidArgument,
		},
		{
			name:    "ShortDigest",
			req:     &dirsync.ChecksumRequest{Path: "file", BlockSize: 4, Checksum: digest[:4]},
			expCode: codes.InvalidArgument,
		},
		{
			name:    "Escape",
			req:     &dirsync.ChecksumRequest{Path: "../../etc/passwd", BlockSize: 4, Checksum: digest[:]},
			expCode: codes.InvalidArgument,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			_, err := ts.client.GetChecksum(context.Background(), test.req)
			assertCode(t, test.expCode, err)
		})
	}
}

func uploadContext(meta sync.UploadMetadata) context.Context {
	return metadata.NewOutgoingContext(context.Background(), metadata.New(meta.Metadata()))
}

func TestUploadBlocks(t *testing.T) {
	ts := newTestServer(t)
	ts.writeFiles(t, map[string]string{"/srv/file": "aaaabbbbcccc"})

	desired := []byte("aaaaXXXXccccdd")
	digest := sync.DefaultHasher.Strong(desired)
	stream, err := ts.client.UploadBlocks(uploadContext(sync.UploadMetadata{
		Path:      "file",
		BlockSize: 4,
		Size:      int64(len(desired)),
		Checksum:  &digest,
	}))
	require.NoError(t, err)

	require.NoError(t, stream.Send(&dirsync.Block{Index: 1, Data: []byte("XXXX")}))
	require.NoError(t, stream.Send(&dirsync.Block{Index: 3, Data: []byte("dd")}))
	resp, err := stream.CloseAndRecv()
	require.NoError(t, err)

	assert.Equal(t, uint64(6), resp.GetBytesWritten())
	assert.Equal(t, string(desired), ts.readFile(t, "/srv/file"))
}

func TestUploadBlocksErrors(t *testing.T) {
	ts := newTestServer(t)
	ts.writeFiles(t, map[string]string{"/srv/file": "aaaabbbb"})

	// Missing metadata.
	stream, err := ts.client.UploadBlocks(context.Background())
	require.NoError(t, err)
	_, err = stream.CloseAndRecv()
	assertCode(t, codes.InvalidArgument, err)

	// Unparsable block size.
	ctx := metadata.NewOutgoingContext(context.Background(),
		metadata.Pairs("path", "file", "block_size", "abc"))
	stream, err = ts.client.UploadBlocks(ctx)
	require.NoError(t, err)
	_, err = stream.CloseAndRecv()
	assertCode(t, codes.InvalidArgument, err)

	// The result doesn't match the declared checksum.
	wrong := sync.DefaultHasher.Strong([]byte("wrong"))
	stream, err = ts.client.UploadBlocks(uploadContext(sync.UploadMetadata{
		Path:      "file",
		BlockSize: 4,
		Size:      -1,
		Checksum:  &wrong,
	}))
	require.NoError(t, err)
	require.NoError(t, stream.Send(&dirsync.Block{Index: 0, Data: []byte("cccc")}))
	_, err = stream.CloseAndRecv()
	assertCode(t, codes.FailedPrecondition, err)
}

func headerMsg(name string) *dirsync.AddBookRequest {
	return &dirsync.AddBookRequest{
		Type: &dirsync.AddBookRequest_Header{Header: &dirsync.AddBookHeader{Name: name}},
	}
}

func chunkMsg(data string) *dirsync.AddBookRequest {
	return &dirsync.AddBookRequest{Type: &dirsync.AddBookRequest_Chunk{Chunk: []byte(data)}}
}

// mixedRequest has the same field numbers as dirsync.AddBookRequest, but
// without the oneof, so that a single message can carry both a header and a
// chunk on the wire.
type mixedRequest struct {
	Header *dirsync.AddBookHeader `protobuf:"bytes,1,opt,name=header,proto3" json:"header,omitempty"`
	Chunk  []byte                 `protobuf:"bytes,2,opt,name=chunk,proto3" json:"chunk,omitempty"`
}

func (m *mixedRequest) Reset()         { *m = mixedRequest{} }
func (m *mixedRequest) String() string { return proto.CompactTextString(m) }
func (*mixedRequest) ProtoMessage()    {}

func TestAddBook(t *testing.T) {
	ts := newTestServer(t)

	stream, err := ts.client.AddBook(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(headerMsg("book.epub")))
	require.NoError(t, stream.Send(chunkMsg("chapter one, ")))
	require.NoError(t, stream.Send(chunkMsg("chapter two")))
	_, err = stream.CloseAndRecv()
	require.NoError(t, err)

	assert.Equal(t, "chapter one, chapter two", ts.readFile(t, "/srv/book.epub"))

	digest, ok := ts.root.Index().Lookup("/srv/book.epub")
	assert.True(t, ok)
	assert.Equal(t, sync.DefaultHasher.Strong([]byte("chapter one, chapter two")), digest)
}

func TestAddBookProtocolViolations(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		msgs []proto.Message
	}{
		{
			name: "ChunkFirst",
			msgs: []proto.Message{chunkMsg("data")},
		},
		{
			name: "HeaderTwice",
			msgs: []proto.Message{headerMsg("book"), chunkMsg("data"), headerMsg("other")},
		},
		{
			name: "Empty",
			msgs: nil,
		},
		{
			name: "Escape",
			msgs: []proto.Message{headerMsg("../book")},
		},
		{
			// The chunk is decoded last, so the first message reads as a
			// chunk rather than a header and nothing is written.
			name: "HeaderAndChunk",
			msgs: []proto.Message{
				&mixedRequest{Header: &dirsync.AddBookHeader{Name: "mixed"}, Chunk: []byte("first ")},
				chunkMsg("second"),
			},
		},
		{
			name: "EmptyFirstMessage",
			msgs: []proto.Message{&dirsync.AddBookRequest{}},
		},
		{
			name: "EmptyLaterMessage",
			msgs: []proto.Message{headerMsg("blank"), chunkMsg("data"), &dirsync.AddBookRequest{}},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			stream, err := ts.client.AddBook(context.Background())
			require.NoError(t, err)
			for _, msg := range test.msgs {
				// The server may reject the stream before every message is
				// sent, in which case SendMsg returns io.EOF.
				if err := stream.SendMsg(msg); err != nil {
					break
				}
			}
			_, err = stream.CloseAndRecv()
			assertCode(t, codes.InvalidArgument, err)
		})
	}
	assert.False(t, ts.exists(t, "/srv/other"))
	assert.False(t, ts.exists(t, "/srv/mixed"))
}

func TestListBooks(t *testing.T) {
	ts := newTestServer(t)
	ts.writeFiles(t, map[string]string{
		"/srv/b.epub":    "bb",
		"/srv/a.pdf":     "a",
		"/srv/dir/c.txt": "ccc",
	})

	stream, err := ts.client.ListBooks(context.Background(), &dirsync.ListBooksRequest{})
	require.NoError(t, err)

	var books []*dirsync.ListBooksResponse
	for {
		book, err := stream.Recv()
		if err != nil {
			break
		}
		books = append(books, book)
	}

	require.Len(t, books, 2)
	assert.Equal(t, "a.pdf", books[0].GetName())
	assert.Equal(t, uint64(1), books[0].GetSize())
	assert.Equal(t, "b.epub", books[1].GetName())
	assert.Equal(t, uint64(2), books[1].GetSize())
}

func TestDeleteBook(t *testing.T) {
	ts := newTestServer(t)
	ts.writeFiles(t, map[string]string{
		"/srv/book.epub":     "book",
		"/srv/series/one.md": "one",
	})

	_, err := ts.client.DeleteBook(context.Background(), &dirsync.DeleteBookRequest{Path: "book.epub"})
	require.NoError(t, err)
	assert.False(t, ts.exists(t, "/srv/book.epub"))

	_, err = ts.client.DeleteBook(context.Background(), &dirsync.DeleteBookRequest{Path: "series"})
	require.NoError(t, err)
	assert.False(t, ts.exists(t, "/srv/series"))
	assert.False(t, ts.exists(t, "/srv/series/one.md"))

	_, err = ts.client.DeleteBook(context.Background(), &dirsync.DeleteBookRequest{Path: "book.epub"})
	assertCode(t, codes.NotFound, err)

	_, err = ts.client.DeleteBook(context.Background(), &dirsync.DeleteBookRequest{Path: "../etc"})
	assertCode(t, codes.InvalidArgument, err)

	_, err = ts.client.DeleteBook(context.Background(), &dirsync.DeleteBookRequest{})
	assertCode(t, codes.InvalidArgument, err)
	assert.True(t, ts.exists(t, "/srv"))
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		expCode codes.Code
	}{
		{
			name:    "Metadata",
			err:     errors.MetadataError{Kind: errors.KeyNotFound, Key: "path"},
			expCode: codes.InvalidArgument,
		},
		{
			name:    "WrappedPath",
			err:     errors.WithContext(errors.InvalidPathError{Path: "..", Root: "/srv"}, "reconcile"),
			expCode: codes.InvalidArgument,
		},
		{
			name:    "Protocol",
			err:     errors.ProtocolError{Expected: "header", Got: "chunk"},
			expCode: codes.InvalidArgument,
		},
		{
			name:    "FileChanged",
			err:     errors.ErrFileChanged,
			expCode: codes.FailedPrecondition,
		},
		{
			name: "IO",
			err: errors.WithContext(&os.PathError{Op: "open", Path: "/srv/file",
				Err: os.ErrPermission}, "open"),
			expCode: codes.Aborted,
		},
		{
			name:    "Transport",
			err:     errors.WithContext(status.Error(codes.Canceled, "canceled"), "receive block"),
			expCode: codes.Canceled,
		},
		{
			name:    "Other",
			err:     errors.New("unexpected"),
			expCode: codes.Internal,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expCode, status.Code(toStatus(test.err)))
		})
	}
	assert.NoError(t, toStatus(nil))
}

func TestTruncateSlice(t *testing.T) {
	tests := []struct {
		name   string
		slc    []string
		length int
		exp    []string
	}{
		{
			name:   "NoTruncate",
			slc:    []string{"foo", "bar"},
			length: 5,
			exp:    []string{"foo", "bar"},
		},
		{
			name:   "NoTruncateExactLength",
			slc:    []string{"foo", "bar"},
			length: 2,
			exp:    []string{"foo", "bar"},
		},
		{
			name:   "Truncate",
			slc:    []string{"foo", "bar"},
			length: 1,
			exp:    []string{"foo", "... 1 more ..."},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, truncateSlice(test.slc, test.length))
		})
	}
}

func TestClientVersionFrom(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("user-agent", "ironscribe/v1.4.0 grpc-go/1.23.0"))
	clientVersion, ok := clientVersionFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "v1.4.0", clientVersion)

	_, ok = clientVersionFrom(context.Background())
	assert.False(t, ok)
}

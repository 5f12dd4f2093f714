package sync

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/ironscribe/pkg/errors"
)

type testBlock struct {
	index uint64
	data  string
}

func blockSource(blocks ...testBlock) BlockSource {
	return func() (uint64, []byte, error) {
		if len(blocks) == 0 {
			return 0, nil, io.EOF
		}
		next := blocks[0]
		blocks = blocks[1:]
		return next.index, []byte(next.data), nil
	}
}

func TestApplyBlocks(t *testing.T) {
	desired := "aaaaXXXXccccdd"
	digest := DefaultHasher.Strong([]byte(desired))

	tests := []struct {
		name     string
		current  *string
		blocks   []testBlock
		size     int64
		expWrote int64
	}{
		{
			name:     "PatchAndExtend",
			current:  strPtr("aaaabbbbcccc"),
			blocks:   []testBlock{{1, "XXXX"}, {3, "dd"}},
			size:     int64(len(desired)),
			expWrote: 6,
		},
		{
			name:     "Truncate",
			current:  strPtr("aaaaXXXXccccddeeeeffff"),
			size:     int64(len(desired)),
			expWrote: 0,
		},
		{
			name:    "NewFile",
			current: nil,
			blocks: []testBlock{
				{0, "aaaa"}, {1, "XXXX"}, {2, "cccc"}, {3, "dd"},
			},
			size:     int64(len(desired)),
			expWrote: int64(len(desired)),
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			root, fs := newTestRoot(t)
			if test.current != nil {
				writeFiles(t, fs, map[string]string{"/srv/file": *test.current})
			}

			result, err := root.ApplyBlocks(UploadMetadata{
				Path:      "file",
				BlockSize: 4,
				Size:      test.size,
				Checksum:  &digest,
			}, blockSource(test.blocks...))
			require.NoError(t, err)
			assert.Equal(t, test.expWrote, result.BytesWritten)
			assert.Equal(t, digest, result.Digest)

			contents, err := afero.ReadFile(fs, "/srv/file")
			require.NoError(t, err)
			assert.Equal(t, desired, string(contents))

			recorded, ok := root.Index().Lookup("/srv/file")
			assert.True(t, ok)
			assert.Equal(t, digest, recorded)
		})
	}
}

func TestApplyBlocksProtocolViolations(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/file": "aaaabbbb"})
	meta := UploadMetadata{Path: "file", BlockSize: 4, Size: -1}

	_, err := root.ApplyBlocks(meta, blockSource(testBlock{0, "too long"}))
	assert.IsType(t, errors.ProtocolError{}, err)

	_, err = root.ApplyBlocks(meta, blockSource(testBlock{0, "ab"}, testBlock{1, "cdef"}))
	assert.IsType(t, errors.ProtocolError{}, err)
}

func TestApplyBlocksOutOfRange(t *testing.T) {
	tests := []struct {
		name      string
		blockSize int
		size      int64
		blocks    []testBlock
	}{
		{
			name:      "StartsPastEnd",
			blockSize: 4096,
			size:      -1,
			blocks:    []testBlock{{65536, "z"}},
		},
		{
			name:      "StartsPastEndWithSize",
			blockSize: 4,
			size:      21,
			blocks:    []testBlock{{5, "z"}},
		},
		{
			name:      "OffsetOverflow",
			blockSize: MaxBlockSize,
			size:      -1,
			blocks:    []testBlock{{1 << 38, "zz"}},
		},
		{
			name:      "EndsPastDeclaredSize",
			blockSize: 4,
			size:      6,
			blocks:    []testBlock{{1, "XXXX"}},
		},
		{
			name:      "DeclaredSizeWithoutData",
			blockSize: 4,
			size:      1 << 30,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			root, fs := newTestRoot(t)
			writeFiles(t, fs, map[string]string{"/srv/file": "aaaabbbb"})

			_, err := root.ApplyBlocks(UploadMetadata{
				Path:      "file",
				BlockSize: test.blockSize,
				Size:      test.size,
			}, blockSource(test.blocks...))
			assert.IsType(t, errors.ProtocolError{}, err)

			contents, err := afero.ReadFile(fs, "/srv/file")
			require.NoError(t, err)
			assert.Equal(t, "aaaabbbb", string(contents))
		})
	}
}

func TestApplyBlocksAppendWithoutSize(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/file": "aaaabbbb"})

	result, err := root.ApplyBlocks(UploadMetadata{Path: "file", BlockSize: 4, Size: -1},
		blockSource(testBlock{2, "cccc"}, testBlock{3, "dd"}))
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.BytesWritten)

	contents, err := afero.ReadFile(fs, "/srv/file")
	require.NoError(t, err)
	assert.Equal(t, "aaaabbbbccccdd", string(contents))
}

func TestApplyBlocksChecksumMismatch(t *testing.T) {
	root, fs := newTestRoot(t)
	writeFiles(t, fs, map[string]string{"/srv/file": "aaaabbbb"})
	require.NoError(t, root.SeedIndex())

	expected := DefaultHasher.Strong([]byte("something else"))
	_, err := root.ApplyBlocks(UploadMetadata{
		Path:      "file",
		BlockSize: 4,
		Size:      -1,
		Checksum:  &expected,
	}, blockSource(testBlock{1, "cccc"}))
	assert.Equal(t, errors.ErrFileChanged, err)

	_, ok := root.Index().Lookup("/srv/file")
	assert.False(t, ok)
}

func TestApplyBlocksSourceError(t *testing.T) {
	root, _ := newTestRoot(t)
	recvErr := errors.New("stream reset")

	_, err := root.ApplyBlocks(UploadMetadata{Path: "file", BlockSize: 4, Size: -1},
		func() (uint64, []byte, error) {
			return 0, nil, recvErr
		})
	assert.Error(t, err)
	assert.Equal(t, recvErr, errors.RootCause(err))
}

func TestApplyBlocksMissingParent(t *testing.T) {
	root, fs := newTestRoot(t)

	_, err := root.ApplyBlocks(UploadMetadata{Path: "missing/file", BlockSize: 4, Size: -1},
		blockSource(testBlock{0, "aaaa"}))
	assert.IsType(t, errors.InvalidPathError{}, err)
	assertExists(t, fs, false, "/srv/missing")
}

func strPtr(s string) *string {
	return &s
}

package sync

import (
	"strconv"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// Keys of the request metadata attached to an UploadBlocks call.
const (
	PathKey      = "path"
	BlockSizeKey = "block_size"
	SizeKey      = "size"
	ChecksumKey  = "checksum"
)

// UploadMetadata describes a block upload. It's sent out of band with the
// request, and doesn't change for the duration of the upload.
type UploadMetadata struct {
	Path      string
	BlockSize int

	// Size is the final length of the file, or -1 if the client didn't send
	// it.
	Size int64

	// Checksum is the expected digest of the file after the upload, if the
	// client sent one.
	Checksum *Digest
}

// ExtractUploadMetadata parses the metadata of an upload request. It
// accepts a grpc metadata.MD.
func ExtractUploadMetadata(md map[string][]string) (UploadMetadata, error) {
	meta := UploadMetadata{Size: -1}

	path, err := requiredValue(md, PathKey)
	if err != nil {
		return UploadMetadata{}, err
	}
	meta.Path = path

	blockSizeStr, err := requiredValue(md, BlockSizeKey)
	if err != nil {
		return UploadMetadata{}, err
	}
	blockSize, err := strconv.Atoi(blockSizeStr)
	if err == nil && blockSize <= 0 {
		err = errors.New("must be positive")
	}
	if err == nil && blockSize > MaxBlockSize {
		err = errors.InvalidBlockSizeError{Size: uint64(blockSize), Max: MaxBlockSize}
	}
	if err != nil {
		return UploadMetadata{}, errors.MetadataError{
			Kind: errors.ParseError, Key: BlockSizeKey, Value: blockSizeStr, Err: err}
	}
	meta.BlockSize = blockSize

	if _, ok := md[SizeKey]; ok {
		sizeStr, err := requiredValue(md, SizeKey)
		if err != nil {
			return UploadMetadata{}, err
		}
		size, err := strconv.ParseInt(sizeStr, 10, 64)
		if err == nil && size < 0 {
			err = errors.New("must not be negative")
		}
		if err != nil {
			return UploadMetadata{}, errors.MetadataError{
				Kind: errors.ParseError, Key: SizeKey, Value: sizeStr, Err: err}
		}
		meta.Size = size
	}

	if _, ok := md[ChecksumKey]; ok {
		checksumStr, err := requiredValue(md, ChecksumKey)
		if err != nil {
			return UploadMetadata{}, err
		}
		checksum, err := ParseDigestHex(checksumStr)
		if err != nil {
			return UploadMetadata{}, errors.MetadataError{
				Kind: errors.ParseError, Key: ChecksumKey, Value: checksumStr, Err: err}
		}
		meta.Checksum = &checksum
	}

	return meta, nil
}

// Metadata returns the key/value representation of `meta`, suitable for
// metadata.New.
func (meta UploadMetadata) Metadata() map[string]string {
	md := map[string]string{
		PathKey:      meta.Path,
		BlockSizeKey: strconv.Itoa(meta.BlockSize),
	}
	if meta.Size >= 0 {
		md[SizeKey] = strconv.FormatInt(meta.Size, 10)
	}
	if meta.Checksum != nil {
		md[ChecksumKey] = meta.Checksum.String()
	}
	return md
}

func requiredValue(md map[string][]string, key string) (string, error) {
	values, ok := md[key]
	if !ok || len(values) == 0 {
		return "", errors.MetadataError{Kind: errors.KeyNotFound, Key: key}
	}
	if len(values) != 1 {
		return "", errors.MetadataError{Kind: errors.InvalidLength, Key: key}
	}
	if values[0] == "" {
		return "", errors.MetadataError{Kind: errors.EmptyValue, Key: key}
	}
	return values[0], nil
}

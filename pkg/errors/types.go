package errors

import (
	"fmt"
)

// ErrFileChanged is returned when the contents of a file don't match the
// digest the client declared for it.
var ErrFileChanged = New("file contents changed during sync")

// MissingFieldError represents a missing required field.
type MissingFieldError struct {
	Field string
}

func (err MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", err.Field)
}

// FileNotFound represents when we were unable to access a file
// because the path didn't exist.
type FileNotFound struct {
	Path string
}

func (err FileNotFound) Error() string {
	return fmt.Sprintf("%q does not exist", err.Path)
}

// MetadataErrorKind describes why a request metadata key was rejected.
type MetadataErrorKind int

const (
	// KeyNotFound means the key was absent.
	KeyNotFound MetadataErrorKind = iota
	// InvalidLength means the key had more than one value.
	InvalidLength
	// EmptyValue means the key's only value was the empty string.
	EmptyValue
	// ParseError means the value couldn't be parsed into the expected type.
	ParseError
)

func (kind MetadataErrorKind) String() string {
	switch kind {
	case KeyNotFound:
		return "key not found"
	case InvalidLength:
		return "invalid length"
	case EmptyValue:
		return "empty value"
	case ParseError:
		return "parse error"
	}
	return "unknown"
}

// MetadataError is returned when the key/value metadata attached to a request
// is malformed. It's detected before any filesystem access.
type MetadataError struct {
	Kind MetadataErrorKind
	Key  string

	// Value is only set for ParseError.
	Value string
	Err   error
}

func (err MetadataError) Error() string {
	switch err.Kind {
	case KeyNotFound:
		return fmt.Sprintf("metadata key %q not found", err.Key)
	case InvalidLength:
		return fmt.Sprintf("metadata key %q must have exactly one value", err.Key)
	case EmptyValue:
		return fmt.Sprintf("metadata key %q has an empty value", err.Key)
	case ParseError:
		msg := fmt.Sprintf("metadata key %q has unparsable value %q", err.Key, err.Value)
		if err.Err != nil {
			msg += ": " + err.Err.Error()
		}
		return msg
	}
	return fmt.Sprintf("metadata key %q is invalid", err.Key)
}

func (err MetadataError) Unwrap() error {
	return err.Err
}

// InvalidPathError is returned when a client supplied path would resolve
// outside of the sync root, or names the root itself where that isn't
// allowed.
type InvalidPathError struct {
	Path   string
	Root   string
	Reason string
}

func (err InvalidPathError) Error() string {
	if err.Reason == "" {
		return fmt.Sprintf("invalid path %q: escapes root %q", err.Path, err.Root)
	}
	return fmt.Sprintf("invalid path %q: %s", err.Path, err.Reason)
}

// ProtocolError is returned when a streamed message arrives at a position
// where it isn't allowed.
type ProtocolError struct {
	Expected string
	Got      string
}

func (err ProtocolError) Error() string {
	return fmt.Sprintf("protocol violation: expected %s message, got %s", err.Expected, err.Got)
}

// InvalidDigestError is returned when a digest has the wrong length.
type InvalidDigestError struct {
	Length int
}

func (err InvalidDigestError) Error() string {
	return fmt.Sprintf("digest must be 32 bytes, got %d", err.Length)
}

// InvalidBlockSizeError is returned when a block size is out of range.
type InvalidBlockSizeError struct {
	Size uint64
	Max  uint64
}

func (err InvalidBlockSizeError) Error() string {
	return fmt.Sprintf("block size %d is larger than the maximum of %d", err.Size, err.Max)
}

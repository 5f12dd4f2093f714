package server

import (
	"context"
	"os"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// toStatus converts an error returned by a handler into a gRPC status so
// that clients can tell bad input apart from server side failures.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	// Errors from the transport itself, such as a cancelled stream, already
	// have a status.
	if _, ok := status.FromError(errors.RootCause(err)); ok {
		return errors.RootCause(err)
	}
	return status.Error(code(err), err.Error())
}

func code(err error) codes.Code {
	var (
		metadataErr  errors.MetadataError
		pathErr      errors.InvalidPathError
		protocolErr  errors.ProtocolError
		digestErr    errors.InvalidDigestError
		blockSizeErr errors.InvalidBlockSizeError
		missingErr   errors.MissingFieldError
		notFoundErr  errors.FileNotFound
	)

	switch {
	case errors.As(err, &metadataErr), errors.As(err, &pathErr),
		errors.As(err, &protocolErr), errors.As(err, &digestErr),
		errors.As(err, &blockSizeErr), errors.As(err, &missingErr):
		return codes.InvalidArgument
	case errors.Is(err, errors.ErrFileChanged):
		return codes.FailedPrecondition
	case errors.As(err, &notFoundErr):
		return codes.NotFound
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case isIOError(err):
		return codes.Aborted
	}
	return codes.Internal
}

func isIOError(err error) bool {
	var (
		pathErr    *os.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)
	return errors.As(err, &pathErr) || errors.As(err, &linkErr) ||
		errors.As(err, &syscallErr)
}

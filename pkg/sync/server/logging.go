package server

import (
	"context"
	goSync "sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/sidkik/ironscribe/pkg/version"
)

type loggerKey struct{}

// loggerFrom returns the request scoped logger stored by the interceptors.
func loggerFrom(ctx context.Context) *log.Entry {
	if logger, ok := ctx.Value(loggerKey{}).(*log.Entry); ok {
		return logger
	}
	return log.NewEntry(log.StandardLogger())
}

func newRequestLogger(ctx context.Context, method string) *log.Entry {
	logger := log.WithFields(log.Fields{
		"method":    method,
		"requestID": uuid.New().String(),
	})

	if clientVersion, ok := clientVersionFrom(ctx); ok {
		logger = logger.WithField("clientVersion", clientVersion)
		checkClientVersion(clientVersion)
	}
	return logger
}

func clientVersionFrom(ctx context.Context) (string, bool) {
	md, _ := metadata.FromIncomingContext(ctx)
	for _, userAgent := range md.Get("user-agent") {
		if clientVersion, ok := version.FromUserAgent(userAgent); ok {
			return clientVersion, true
		}
	}
	return "", false
}

// warnedVersions contains the client versions that were already reported as
// incompatible.
var warnedVersions goSync.Map

func checkClientVersion(clientVersion string) {
	compatible, err := version.Compatible(clientVersion)
	if err == nil && compatible {
		return
	}

	if _, warned := warnedVersions.LoadOrStore(clientVersion, struct{}{}); warned {
		return
	}

	logger := log.WithFields(log.Fields{
		"clientVersion": clientVersion,
		"serverVersion": version.Version,
	})
	if err != nil {
		logger.WithError(err).Warn("Failed to parse client version")
		return
	}
	logger.Warn("Client version is incompatible with the server. Requests may fail.")
}

func logResult(logger *log.Entry, start time.Time, err error) {
	logger = logger.WithField("duration", time.Since(start))
	if err != nil {
		logger.WithError(err).Warn("Request failed")
		return
	}
	logger.Debug("Request complete")
}

func unaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler) (interface{}, error) {

	logger := newRequestLogger(ctx, info.FullMethod)
	start := time.Now()
	resp, err := handler(context.WithValue(ctx, loggerKey{}, logger), req)
	logResult(logger, start, err)
	return resp, toStatus(err)
}

func streamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo,
	handler grpc.StreamHandler) error {

	logger := newRequestLogger(ss.Context(), info.FullMethod)
	start := time.Now()
	err := handler(srv, loggedStream{
		ServerStream: ss,
		ctx:          context.WithValue(ss.Context(), loggerKey{}, logger),
	})
	logResult(logger, start, err)
	return toStatus(err)
}

// loggedStream overrides the context of a stream so that handlers can find
// the request logger.
type loggedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s loggedStream) Context() context.Context {
	return s.ctx
}

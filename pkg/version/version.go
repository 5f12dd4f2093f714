package version

import (
	"strings"

	goversion "github.com/hashicorp/go-version"

	"github.com/sidkik/ironscribe/pkg/errors"
)

// EmptyValue is the value we use when running a version that wasn't compiled
// by `make`. This is helpful for telling when we're running in a unit test.
const EmptyValue = "set-by-make"

// Version is the latest tag on git for releases. On non-release commits, it may
// include additional information such as the most recent commit hash.
var Version = EmptyValue

const userAgentPrefix = "ironscribe/"

// UserAgent identifies this build of ironscribe in gRPC requests.
func UserAgent() string {
	return userAgentPrefix + Version
}

// FromUserAgent extracts the ironscribe version from a gRPC user agent. gRPC
// appends its own product token, e.g. "ironscribe/v0.3.0 grpc-go/1.23.0".
func FromUserAgent(userAgent string) (string, bool) {
	for _, product := range strings.Fields(userAgent) {
		if strings.HasPrefix(product, userAgentPrefix) {
			return strings.TrimPrefix(product, userAgentPrefix), true
		}
	}
	return "", false
}

// Compatible returns whether a peer running version `peer` can sync with
// this build. Peers must have the same major version. Development builds
// are compatible with everything.
func Compatible(peer string) (bool, error) {
	if Version == EmptyValue || peer == EmptyValue {
		return true, nil
	}

	ownVersion, err := goversion.NewVersion(Version)
	if err != nil {
		return false, errors.WithContext(err, "parse own version")
	}

	peerVersion, err := goversion.NewVersion(peer)
	if err != nil {
		return false, errors.WithContext(err, "parse peer version")
	}

	return ownVersion.Segments()[0] == peerVersion.Segments()[0], nil
}

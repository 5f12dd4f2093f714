package util

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/sync"
	syncClient "github.com/sidkik/ironscribe/pkg/sync/client"
)

// ConfigFlag is the name of the global flag that selects the config file.
const ConfigFlag = "config"

// Mocked for unit testing.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

type friendlyError interface {
	FriendlyMessage() string
}

// HandleFatalError handles errors that are severe enough to terminate the
// program. Errors that are meant for the user are printed as is, and all
// other errors are logged with their full context.
func HandleFatalError(err error) {
	if msg, ok := FriendlyMessage(err); ok {
		fmt.Fprintln(stderr, msg)
	} else {
		log.WithError(err).Error("Fatal error")
	}
	exit(1)
}

// FriendlyMessage returns the user facing message of `err`, if the root
// cause of the error has one.
func FriendlyMessage(err error) (string, bool) {
	if friendly, ok := errors.RootCause(err).(friendlyError); ok {
		return friendly.FriendlyMessage(), true
	}
	return "", false
}

// HandlePanic logs panics before exiting. It must be deferred.
func HandlePanic() {
	if r := recover(); r != nil {
		log.WithField("stack", string(debug.Stack())).Errorf("Panic: %v", r)
		exit(1)
	}
}

// LoadConfig parses the config file selected by the global --config flag.
func LoadConfig(cmd *cobra.Command) config.Config {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		HandleFatalError(errors.WithContext(err, "get config flag"))
	}

	cfg, err := config.Parse(path)
	if err != nil {
		HandleFatalError(errors.WithContext(err, "parse config"))
	}
	return cfg
}

// AddTLSFlags adds the flags that override the TLS section of the config.
func AddTLSFlags(cmd *cobra.Command, tls *config.TLS) {
	cmd.Flags().StringVar(&tls.CACert, "ca-cert", "",
		"PEM encoded CA certificate used to verify the peer.")
	cmd.Flags().StringVar(&tls.Cert, "cert", "", "PEM encoded certificate.")
	cmd.Flags().StringVar(&tls.Key, "key", "", "PEM encoded private key for --cert.")
}

// MergeTLS overrides the TLS files in `cfg` with the flags that were set.
func MergeTLS(cmd *cobra.Command, cfg *config.TLS, flags config.TLS) {
	if cmd.Flags().Changed("ca-cert") {
		cfg.CACert = flags.CACert
	}
	if cmd.Flags().Changed("cert") {
		cfg.Cert = flags.Cert
	}
	if cmd.Flags().Changed("key") {
		cfg.Key = flags.Key
	}
}

// ServerAddress returns the address of the server to connect to.
func ServerAddress(cfg config.ClientConfig) string {
	if cfg.Address != "" {
		return cfg.Address
	}
	return fmt.Sprintf("localhost:%d", config.DefaultPort)
}

// NewClient connects to the server configured in `cfg`.
func NewClient(cfg config.Config, hasher sync.Hasher) (syncClient.Client, error) {
	if err := cfg.TLS.Validate(); err != nil {
		return nil, err
	}

	sc, err := syncClient.New(ServerAddress(cfg.Client), hasher, syncClient.Options{
		TLS:           cfg.TLS,
		ChunkSize:     int(cfg.Client.ChunkSize.Bytes()),
		StreamTimeout: time.Duration(cfg.Client.StreamTimeout),
	})
	if err != nil {
		return nil, errors.WithContext(err, "connect to server")
	}
	return sc, nil
}

// ConnectionFlags are the flags shared by the commands that connect to a
// server.
type ConnectionFlags struct {
	Address string
	TLS     config.TLS
}

// AddConnectionFlags adds the --address and TLS flags to `cmd`.
func AddConnectionFlags(cmd *cobra.Command, flags *ConnectionFlags) {
	cmd.Flags().StringVar(&flags.Address, "address", "",
		fmt.Sprintf("The address of the server. Defaults to localhost:%d.", config.DefaultPort))
	AddTLSFlags(cmd, &flags.TLS)
}

// Merge overrides the connection settings in `cfg` with the flags that were
// set.
func (flags ConnectionFlags) Merge(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("address") {
		cfg.Client.Address = flags.Address
	}
	MergeTLS(cmd, &cfg.TLS, flags.TLS)
}

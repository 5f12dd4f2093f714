package config

import (
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/sidkik/ironscribe/pkg/errors"
)

const (
	// DefaultConfigPath is the default path to the ironscribe config.
	DefaultConfigPath = "~/.ironscribe.yaml"

	// SupportedConfigVersion is the config version understood by this
	// binary. Config files that don't specify a version default to it.
	SupportedConfigVersion = "v1alpha1"

	// DefaultPort is the port the server listens on if none is configured.
	DefaultPort = 50051

	// DefaultBlockSize is the block size used for content syncs.
	DefaultBlockSize = 4 * datasize.KB

	// DefaultChunkSize is the size of the chunks used for whole-file
	// uploads.
	DefaultChunkSize = 1 * datasize.MB

	// DefaultWorkers is the number of files the client syncs in parallel.
	DefaultWorkers = 8

	// DefaultStreamTimeout bounds how long a single file upload may take.
	DefaultStreamTimeout = 10 * time.Minute
)

// Config is the contents of the ironscribe config file. Flags passed on the
// command line take precedence over it.
type Config struct {
	Version string       `json:"version,omitempty"`
	Server  ServerConfig `json:"server,omitempty"`
	Client  ClientConfig `json:"client,omitempty"`
	TLS     TLS          `json:"tls,omitempty"`
}

// ServerConfig configures `ironscribe server`.
type ServerConfig struct {
	// Root is the directory that clients sync into.
	Root string `json:"root,omitempty"`
	Port int    `json:"port,omitempty"`

	// Digest is the strong hash algorithm. It must match the clients'.
	Digest string `json:"digest,omitempty"`

	// SeedIndex hashes the existing files in Root at startup so that they
	// can be used by the copy shortcut.
	SeedIndex bool `json:"seedIndex,omitempty"`
}

// ClientConfig configures the commands that connect to a server.
type ClientConfig struct {
	// Address is the host:port of the server.
	Address       string   `json:"address,omitempty"`
	Digest        string   `json:"digest,omitempty"`
	BlockSize     ByteSize `json:"blockSize,omitempty"`
	ChunkSize     ByteSize `json:"chunkSize,omitempty"`
	Workers       int      `json:"workers,omitempty"`
	StreamTimeout Duration `json:"streamTimeout,omitempty"`

	// Exclude are glob patterns for paths that `push` ignores.
	Exclude []string `json:"exclude,omitempty"`
}

func (c Config) getVersion() string {
	return c.Version
}

// Default returns the config used when there's no config file.
func Default() Config {
	return Config{
		Version: SupportedConfigVersion,
		Server: ServerConfig{
			Port: DefaultPort,
		},
		Client: ClientConfig{
			BlockSize:     ByteSize(DefaultBlockSize),
			ChunkSize:     ByteSize(DefaultChunkSize),
			Workers:       DefaultWorkers,
			StreamTimeout: Duration(DefaultStreamTimeout),
		},
	}
}

// homedirExpand will be overridden in mock tests
var homedirExpand = homedir.Expand

// Parse parses the config at `path`. The empty string selects the default
// path. A missing config file at the default path isn't an error, but a
// missing file that was explicitly requested is.
func Parse(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	path, err := homedirExpand(path)
	if err != nil {
		return Config{}, errors.WithContext(err, "expand config path")
	}

	config := Default()
	if err := parseConfig(path, &config, SupportedConfigVersion); err != nil {
		if _, ok := err.(errors.FileNotFound); ok && !explicit {
			return Default(), nil
		}
		if _, ok := err.(errors.FileNotFound); ok {
			return Config{}, errors.NewFriendlyError(
				"The ironscribe config file doesn't exist at %q.", path)
		}
		return Config{}, errors.WithContext(err, "parse")
	}

	if config.Server.Root != "" {
		config.Server.Root, err = homedirExpand(config.Server.Root)
		if err != nil {
			return Config{}, errors.WithContext(err, "expand root path")
		}

		// Evaluate relative paths relative to the config path.
		if !filepath.IsAbs(config.Server.Root) {
			config.Server.Root = filepath.Join(filepath.Dir(path), config.Server.Root)
		}
	}

	for _, file := range []*string{&config.TLS.CACert, &config.TLS.Cert, &config.TLS.Key} {
		if *file == "" {
			continue
		}
		*file, err = homedirExpand(*file)
		if err != nil {
			return Config{}, errors.WithContext(err, "expand TLS path")
		}
	}
	return config, nil
}

// Write writes the given config to `path`.
func Write(path string, cfg Config) error {
	cfg.Version = SupportedConfigVersion
	path, err := homedirExpand(path)
	if err != nil {
		return errors.WithContext(err, "expand config path")
	}

	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WithContext(err, "marshal")
	}

	if err := afero.WriteFile(fs, path, yamlBytes, 0644); err != nil {
		return errors.WithContext(err, "write")
	}
	return nil
}

// ByteSize is a size that's written in config files as a human readable
// string such as "4KB" or "1MB". Plain numbers are read as bytes.
type ByteSize datasize.ByteSize

// ParseByteSize parses a human readable size.
func ParseByteSize(s string) (ByteSize, error) {
	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(s)); err != nil {
		return 0, errors.NewFriendlyError("Invalid size %q. "+
			"Sizes are written like 4096, 4KB or 1MB.", s)
	}
	return ByteSize(size), nil
}

// Bytes returns the size in bytes.
func (size ByteSize) Bytes() uint64 {
	return datasize.ByteSize(size).Bytes()
}

func (size ByteSize) String() string {
	return datasize.ByteSize(size).String()
}

// MarshalJSON implements json.Marshaler.
func (size ByteSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(size.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (size *ByteSize) UnmarshalJSON(b []byte) error {
	var bytes uint64
	if err := json.Unmarshal(b, &bytes); err == nil {
		*size = ByteSize(bytes)
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.WithContext(err, "size must be a number or a string")
	}

	parsed, err := ParseByteSize(str)
	if err != nil {
		return err
	}
	*size = parsed
	return nil
}

// Duration is a time.Duration that's written in config files as a string
// such as "30s" or "10m".
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return errors.WithContext(err, "duration must be a string")
	}

	parsed, err := time.ParseDuration(str)
	if err != nil {
		return errors.WithContext(err, "parse duration")
	}
	*d = Duration(parsed)
	return nil
}

package server

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/cmd/util"
	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/sync"
	syncServer "github.com/sidkik/ironscribe/pkg/sync/server"
)

// New creates a new `server` command.
func New() *cobra.Command {
	var flags config.ServerConfig
	var tlsFlags config.TLS
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve a directory that clients push into",
		Long: "Serve the directory at --root. Clients push the structure and " +
			"contents of a local directory into it.\n\n" +
			"TLS is enabled when --ca-cert, --cert and --key are all set. " +
			"Clients must then present a certificate signed by the CA.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := util.LoadConfig(cmd)
			mergeFlags(cmd, &cfg, flags, tlsFlags)

			serverCfg, err := toServerConfig(cfg)
			if err != nil {
				util.HandleFatalError(err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			if err := syncServer.Run(ctx, serverCfg); err != nil {
				util.HandleFatalError(errors.WithContext(err, "run server"))
			}
		},
	}

	cmd.Flags().StringVar(&flags.Root, "root", "", "The directory to sync into.")
	cmd.Flags().IntVar(&flags.Port, "port", config.DefaultPort, "The port to listen on.")
	cmd.Flags().StringVar(&flags.Digest, "digest", string(sync.SHA256),
		"The strong digest algorithm (sha256 or blake2b). Clients must use the same one.")
	cmd.Flags().BoolVar(&flags.SeedIndex, "seed-index", false,
		"Hash the files already in the root at startup so that clients "+
			"can reuse them without uploading.")
	util.AddTLSFlags(cmd, &tlsFlags)
	return cmd
}

func mergeFlags(cmd *cobra.Command, cfg *config.Config, flags config.ServerConfig, tlsFlags config.TLS) {
	if cmd.Flags().Changed("root") {
		cfg.Server.Root = flags.Root
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = flags.Port
	}
	if cmd.Flags().Changed("digest") {
		cfg.Server.Digest = flags.Digest
	}
	if cmd.Flags().Changed("seed-index") {
		cfg.Server.SeedIndex = flags.SeedIndex
	}
	util.MergeTLS(cmd, &cfg.TLS, tlsFlags)
}

func toServerConfig(cfg config.Config) (syncServer.Config, error) {
	if cfg.Server.Root == "" {
		return syncServer.Config{}, errors.NewFriendlyError(
			"The directory to serve is required.\n" +
				"Set it with --root, or `server.root` in the config file.")
	}

	if err := cfg.TLS.Validate(); err != nil {
		return syncServer.Config{}, err
	}

	root, err := filepath.Abs(cfg.Server.Root)
	if err != nil {
		return syncServer.Config{}, errors.WithContext(err, "resolve root")
	}

	return syncServer.Config{
		Root:      root,
		Port:      cfg.Server.Port,
		Digest:    sync.Algorithm(cfg.Server.Digest),
		SeedIndex: cfg.Server.SeedIndex,
		TLS:       cfg.TLS,
	}, nil
}

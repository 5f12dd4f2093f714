package push

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/buger/goterm"
	humanize "github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/cmd/util"
	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/fswatch"
	"github.com/sidkik/ironscribe/pkg/sync"
	syncClient "github.com/sidkik/ironscribe/pkg/sync/client"
)

// The interval to poll the filesystem for any changes that need to be synced.
const pollInterval = 15 * time.Second

// Mocked for unit testing.
var fs = afero.NewOsFs()

type flagValues struct {
	digest    string
	blockSize string
	workers   int
	exclude   []string
}

// New creates a new `push` command.
func New() *cobra.Command {
	var flags flagValues
	var connFlags util.ConnectionFlags
	var watch bool
	cmd := &cobra.Command{
		Use:   "push [directory]",
		Short: "Make the server's directory match a local directory",
		Long: "Push the structure and contents of a local directory to an ironscribe " +
			"server. Paths on the server that don't exist locally are removed.\n\n" +
			"Files that the server already has, at any path, aren't uploaded " +
			"again. Changed files are patched by sending only the blocks that " +
			"differ.\n\n" +
			"If no directory is provided, the current directory is pushed.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg := util.LoadConfig(cmd)
			connFlags.Merge(cmd, &cfg)
			if err := mergeFlags(cmd, &cfg.Client, flags); err != nil {
				util.HandleFatalError(err)
			}

			if err := run(cfg, dir, watch); err != nil {
				util.HandleFatalError(err)
			}
		},
	}

	cmd.Flags().StringVar(&flags.digest, "digest", string(sync.SHA256),
		"The strong digest algorithm. It must match the server's.")
	cmd.Flags().StringVar(&flags.blockSize, "block-size", config.DefaultBlockSize.HumanReadable(),
		"The size of the blocks that changed files are compared in.")
	cmd.Flags().IntVar(&flags.workers, "workers", config.DefaultWorkers,
		"The number of files to push in parallel.")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil,
		"Glob patterns for paths to leave out, in addition to the config file's. "+
			"Patterns without a slash match file names at any depth.")
	cmd.Flags().BoolVar(&watch, "watch", false,
		"Keep running, and push again whenever the directory changes.")
	util.AddConnectionFlags(cmd, &connFlags)
	return cmd
}

func mergeFlags(cmd *cobra.Command, cfg *config.ClientConfig, flags flagValues) error {
	if cmd.Flags().Changed("digest") {
		cfg.Digest = flags.digest
	}
	if cmd.Flags().Changed("block-size") {
		size, err := config.ParseByteSize(flags.blockSize)
		if err != nil {
			return err
		}
		cfg.BlockSize = size
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flags.workers
	}
	cfg.Exclude = append(cfg.Exclude, flags.exclude...)
	return validate(*cfg)
}

func validate(cfg config.ClientConfig) error {
	blockSize := cfg.BlockSize.Bytes()
	if blockSize == 0 || blockSize > sync.MaxBlockSize {
		return errors.NewFriendlyError("The block size must be between 1 byte and %s, got %s.",
			humanize.IBytes(sync.MaxBlockSize), cfg.BlockSize)
	}

	if cfg.Workers <= 0 {
		return errors.NewFriendlyError("At least one worker is required, got %d.", cfg.Workers)
	}
	return nil
}

func run(cfg config.Config, dir string, watch bool) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return errors.WithContext(err, "get absolute path")
	}

	hasher, err := sync.NewHasher(sync.Algorithm(cfg.Client.Digest))
	if err != nil {
		return errors.NewFriendlyError("Invalid digest: %s", err)
	}

	snapshotter, err := sync.NewSnapshotter(fs, dir, hasher, cfg.Client.Exclude)
	if err != nil {
		return errors.WithContext(err, "read directory")
	}

	sc, err := util.NewClient(cfg, hasher)
	if err != nil {
		return err
	}
	defer sc.Close()

	pusher := syncClient.NewPusher(sc, fs, snapshotter,
		int(cfg.Client.BlockSize.Bytes()), cfg.Client.Workers)
	if !watch {
		stats, err := pusher.Push()
		if err != nil {
			return err
		}
		fmt.Println(summarize(stats))
		return nil
	}

	events, err := fswatch.Watch(dir, snapshotter.Excluded)
	if err != nil {
		if !strings.Contains(errors.RootCause(err).Error(), "too many open files") {
			return errors.WithContext(err, "watch files")
		}

		log.Warnf("Too many files to watch for changes. "+
			"ironscribe will poll for changes every %s instead.", pollInterval)

		// Disable the file watcher channel.
		events = nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.WithField("dir", dir).Info("Watching for changes. Press Ctrl-C to stop.")
	fswatch.Run(ctx, clockwork.NewRealClock(), events, pollInterval, func() {
		stats, err := pusher.PushChanges()
		if err != nil {
			if msg, ok := util.FriendlyMessage(err); ok {
				log.Error(msg)
			} else {
				log.WithError(err).Error("Push failed")
			}
			return
		}

		if stats != (syncClient.PushStats{}) {
			log.Info(summarize(stats))
		}
	})
	return nil
}

func summarize(stats syncClient.PushStats) string {
	msg := fmt.Sprintf("Pushed %d files (%d patched, %d uploaded, %d already synced). Sent %s.",
		stats.Patched+stats.Uploaded+stats.Unchanged, stats.Patched, stats.Uploaded,
		stats.Unchanged, humanize.Bytes(uint64(stats.BytesSent)))
	if stats.Skipped > 0 {
		msg += goterm.Color(fmt.Sprintf(
			" %d files changed during the push and will be pushed again.", stats.Skipped),
			goterm.YELLOW)
	}
	return msg
}

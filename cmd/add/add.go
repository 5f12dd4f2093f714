package add

import (
	"fmt"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/cmd/util"
	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/sync"
)

// New creates a new `add` command.
func New() *cobra.Command {
	var name string
	var connFlags util.ConnectionFlags
	cmd := &cobra.Command{
		Use:   "add <file>",
		Short: "Upload a single file into the root of the server's directory",
		Long: "Stream a local file to the server. It's stored directly in the " +
			"served directory, under its base name unless --name is set. " +
			"An existing file with the same name is replaced.",
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := util.LoadConfig(cmd)
			connFlags.Merge(cmd, &cfg)
			if err := run(cfg, args[0], name); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "The name to store the file as.")
	util.AddConnectionFlags(cmd, &connFlags)
	return cmd
}

func run(cfg config.Config, path, name string) error {
	if name == "" {
		name = filepath.Base(path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewFriendlyError("%s doesn't exist.", path)
		}
		return errors.WithContext(err, "open")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return errors.WithContext(err, "stat")
	}
	if !fi.Mode().IsRegular() {
		return errors.NewFriendlyError("%s is not a regular file.", path)
	}

	hasher, err := sync.NewHasher(sync.Algorithm(cfg.Client.Digest))
	if err != nil {
		return err
	}

	sc, err := util.NewClient(cfg, hasher)
	if err != nil {
		return err
	}
	defer sc.Close()

	if err := sc.AddBook(name, f); err != nil {
		return errors.WithContext(err, "upload")
	}

	fmt.Printf("Added %s (%s).\n", name, humanize.Bytes(uint64(fi.Size())))
	return nil
}

package delete

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/cmd/util"
	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/sync"
)

// Mocked for unit testing.
var (
	stdout    io.Writer = os.Stdout
	newClient           = util.NewClient
)

// New creates a new `delete` command.
func New() *cobra.Command {
	var connFlags util.ConnectionFlags
	cmd := &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a file or directory from the server's directory",
		Long: "Remove a path below the served directory. Directories are " +
			"removed along with their contents.",
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := util.LoadConfig(cmd)
			connFlags.Merge(cmd, &cfg)
			if err := run(cfg, args[0]); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	util.AddConnectionFlags(cmd, &connFlags)
	return cmd
}

func run(cfg config.Config, path string) error {
	hasher, err := sync.NewHasher(sync.Algorithm(cfg.Client.Digest))
	if err != nil {
		return err
	}

	sc, err := newClient(cfg, hasher)
	if err != nil {
		return err
	}
	defer sc.Close()

	err = sc.DeleteBook(path)
	var notFound errors.FileNotFound
	if errors.As(err, &notFound) {
		fmt.Fprintf(stdout, "%s doesn't exist. Nothing to do.\n", path)
		return nil
	}
	if err != nil {
		return errors.WithContext(err, "delete")
	}

	fmt.Fprintf(stdout, "Deleted %s.\n", path)
	return nil
}

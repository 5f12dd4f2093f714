package list

import (
	"fmt"
	"io"
	"os"

	"github.com/buger/goterm"
	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/cmd/util"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/sync"
)

// Mocked for unit testing.
var stdout io.Writer = os.Stdout

// New creates a new `list` command.
func New() *cobra.Command {
	var connFlags util.ConnectionFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the files in the root of the server's directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := util.LoadConfig(cmd)
			connFlags.Merge(cmd, &cfg)
			hasher, err := sync.NewHasher(sync.Algorithm(cfg.Client.Digest))
			if err != nil {
				util.HandleFatalError(err)
			}

			sc, err := util.NewClient(cfg, hasher)
			if err != nil {
				util.HandleFatalError(err)
			}
			defer sc.Close()

			books, err := sc.ListBooks()
			if err != nil {
				util.HandleFatalError(errors.WithContext(err, "list"))
			}
			printBooks(books)
		},
	}
	util.AddConnectionFlags(cmd, &connFlags)
	return cmd
}

func printBooks(books []sync.FileInfo) {
	if len(books) == 0 {
		fmt.Fprintln(stdout, "No files.")
		return
	}

	table := goterm.NewTable(0, 10, 3, ' ', 0)
	fmt.Fprintln(table, "NAME\tSIZE")
	for _, book := range books {
		fmt.Fprintf(table, "%s\t%s\n", book.Name, humanize.Bytes(uint64(book.Size)))
	}
	fmt.Fprint(stdout, table.String())
}

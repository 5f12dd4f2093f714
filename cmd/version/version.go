package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/pkg/version"
)

// New creates a new `version` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of ironscribe",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("ironscribe %s (%s %s/%s)\n", version.Version,
				runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

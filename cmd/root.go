package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/cmd/add"
	configCmd "github.com/sidkik/ironscribe/cmd/config"
	"github.com/sidkik/ironscribe/cmd/delete"
	"github.com/sidkik/ironscribe/cmd/list"
	"github.com/sidkik/ironscribe/cmd/push"
	"github.com/sidkik/ironscribe/cmd/server"
	"github.com/sidkik/ironscribe/cmd/util"
	"github.com/sidkik/ironscribe/cmd/version"
)

// verboseLogKey is the environment variable used to enable verbose logging.
// When it's set to `true`, Debug events are logged, rather than just Info and
// above.
const verboseLogKey = "IRONSCRIBE_LOG_VERBOSE"

// Execute runs the main CLI process.
func Execute() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd := &cobra.Command{
		Use:          "ironscribe",
		Short:        "Content addressed directory sync",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence errors
		// here to avoid double printing.
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(util.ConfigFlag, "",
		"Path to the config file. Defaults to ~/.ironscribe.yaml if it exists.")
	rootCmd.AddCommand(
		add.New(),
		configCmd.New(),
		delete.New(),
		list.New(),
		push.New(),
		server.New(),
		version.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		util.HandleFatalError(err)
	}
}

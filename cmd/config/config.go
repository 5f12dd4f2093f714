package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sidkik/ironscribe/cmd/util"
	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
)

// Mocked for unit testing.
var (
	stdout    io.Writer = os.Stdout
	fs                  = afero.NewOsFs()
	expand              = homedir.Expand
	writeFile           = config.Write
)

// New creates a new `config` command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the ironscribe configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			path, _ := cmd.Flags().GetString(util.ConfigFlag)
			if err := initConfig(path, force); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file.")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration after applying defaults",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := show(util.LoadConfig(cmd)); err != nil {
				util.HandleFatalError(err)
			}
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func initConfig(path string, force bool) error {
	if path == "" {
		path = config.DefaultConfigPath
	}

	expanded, err := expand(path)
	if err != nil {
		return errors.WithContext(err, "expand path")
	}

	exists, err := afero.Exists(fs, expanded)
	if err != nil {
		return errors.WithContext(err, "stat")
	}
	if exists && !force {
		return errors.NewFriendlyError("%s already exists. "+
			"Use --force to overwrite it.", expanded)
	}

	if err := writeFile(path, config.Default()); err != nil {
		return errors.WithContext(err, "write config")
	}
	fmt.Fprintf(stdout, "Wrote the default configuration to %s.\n", expanded)
	return nil
}

func show(cfg config.Config) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WithContext(err, "marshal")
	}
	_, err = stdout.Write(yamlBytes)
	return err
}

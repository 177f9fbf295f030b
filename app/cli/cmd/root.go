package cmd

import (
	"cidash/pkg/util/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewRootCommand returns a new instance of a cidash command
func NewRootCommand() *cobra.Command {
	var configFile string
	rootCmd := &cobra.Command{
		Use:   "cidash",
		Short: "cidash is the command line dashboard of CI pipelines",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.SetConfigFile(configFile)
			return errors.Wrap(config.ReadInConfig(), "cannot read config")
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path of the JSON config file")

	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewGetCommand())
	rootCmd.AddCommand(NewWatchCommand())
	rootCmd.AddCommand(NewJobCommand())
	rootCmd.AddCommand(NewJobsCommand())
	rootCmd.AddCommand(NewSubmitCommand())
	rootCmd.AddCommand(NewCancelCommand())
	rootCmd.AddCommand(NewUpdateCommand())
	return rootCmd
}

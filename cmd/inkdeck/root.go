package main

import (
	"github.com/spf13/cobra"

	"github.com/inkmatch/inkdeck/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

// newLogger builds the command logger, honoring --verbose.
func (f *rootFlags) newLogger() *logger.Logger {
	return logger.New(logger.Options{Verbose: f.verbose, HumanReadable: true})
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "inkdeck",
		Short:         "inkdeck runs the InkMatch showcase in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation launches the showcase directly.
			return runShow(flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a showcase config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newSyncCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkmatch/inkdeck/internal/config"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a showcase config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if len(args) == 1 {
				cfg, err = config.ParseConfig(args[0])
			} else {
				cfg, err = loadConfig(flags)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%q is valid: %d items\n", cfg.Title, len(cfg.Items))
			return nil
		},
	}
}

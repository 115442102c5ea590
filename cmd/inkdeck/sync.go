package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkmatch/inkdeck/internal/content"
)

func newSyncCmd(flags *rootFlags) *cobra.Command {
	var (
		repoURL string
		dir     string
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the showcase content repository",
		Long:  `Clone or update the marketing content repository that holds the showcase config and image assets.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := flags.newLogger()

			if dir == "" {
				resolved, err := defaultContentDir()
				if err != nil {
					return fmt.Errorf("failed to determine content directory: %w", err)
				}
				dir = resolved
			}

			hash, err := content.NewSyncer(log).Sync(cmd.Context(), repoURL, dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "content synced to %s (%s)\n", dir, hash[:12])
			return nil
		},
	}

	cmd.Flags().StringVarP(&repoURL, "repo", "r", "", "Content repository URL")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Checkout directory (defaults to the user config dir)")
	_ = cmd.MarkFlagRequired("repo")

	return cmd
}

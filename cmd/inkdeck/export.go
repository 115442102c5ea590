package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkmatch/inkdeck/internal/poster"
	"github.com/inkmatch/inkdeck/internal/theme"
)

func newExportCmd(flags *rootFlags) *cobra.Command {
	var (
		outPath string
		index   int
		mode    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a showcase card as a PNG poster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			if index < 0 || index >= len(cfg.Items) {
				return fmt.Errorf("item index %d out of range: config has %d items", index, len(cfg.Items))
			}

			m := theme.ModeDark
			if mode == "light" {
				m = theme.ModeLight
			}

			items := cfg.CarouselItems()
			card := poster.Card{Item: items[index], Palette: theme.PaletteFor(m)}

			if outPath == "" {
				outPath = fmt.Sprintf("inkdeck-%s.png", items[index].ID)
			}

			if err := poster.Save(card, outPath); err != nil {
				return fmt.Errorf("failed to export poster: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "poster written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output PNG path (defaults to inkdeck-<id>.png)")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Item index to export")
	cmd.Flags().StringVar(&mode, "mode", "dark", "Palette to render with (light or dark)")

	return cmd
}

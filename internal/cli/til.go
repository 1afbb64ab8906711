package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keethesh/profilectl/internal/config"
	"github.com/keethesh/profilectl/internal/readme"
	"github.com/keethesh/profilectl/internal/til"
)

// newTILCommand creates "til", which renders the newest learning notes into
// the README list block.
func newTILCommand(opts *Options) *cobra.Command {
	var (
		dir        string
		limit      int
		readmePath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "til",
		Short: "Render the newest TIL notes into the README list block",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dir") {
				cfg.TIL.Dir = dir
			}
			if cmd.Flags().Changed("limit") {
				cfg.TIL.Limit = limit
			}
			if cmd.Flags().Changed("readme") {
				cfg.Readme = readmePath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			entries, err := til.List(cfg.TIL.Dir, cfg.TIL.Limit)
			if err != nil {
				return err
			}
			fragment := til.RenderList(entries)
			logger.Info("til list rendered", "dir", cfg.TIL.Dir, "notes", len(entries))

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), fragment)
				return nil
			}

			changed, err := readme.UpdateFile(cfg.Readme, readme.TILStartMarker, readme.TILEndMarker, fragment)
			if err != nil {
				return err
			}
			if changed {
				logger.Info("README til block updated", "readme", cfg.Readme)
			} else {
				logger.Info("README til block already up to date", "readme", cfg.Readme)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory holding TIL markdown notes (overrides config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "How many of the newest notes to list (overrides config)")
	cmd.Flags().StringVar(&readmePath, "readme", "", "README path to splice into (overrides config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the fragment to stdout instead of writing the README")

	return cmd
}

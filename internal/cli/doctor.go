package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keethesh/profilectl/internal/config"
	"github.com/keethesh/profilectl/internal/readme"
)

// newDoctorCommand creates the "doctor" subcommand that runs preflight checks
// over the configuration, token, README markers and TIL directory.
func newDoctorCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run preflight checks for the README update jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			logger.Info("doctor check ok", "check", "config", "path", opts.ConfigPath)

			var failed []string
			if _, err := lookupGitHubToken(); err != nil {
				logger.Error("doctor check failed: no GitHub token in environment", "error", err)
				failed = append(failed, "token")
			} else {
				logger.Info("doctor check ok", "check", "token")
			}

			if cfg.Repo == "" {
				logger.Error("doctor check failed: repository slug not configured")
				failed = append(failed, "repo")
			} else {
				logger.Info("doctor check ok", "check", "repo", "repo", cfg.Repo)
			}

			failed = append(failed, checkMarkers(logger, cfg.Readme)...)

			if _, err := os.ReadDir(cfg.TIL.Dir); err != nil {
				logger.Error("doctor check failed: til directory unreadable", "dir", cfg.TIL.Dir, "error", err)
				failed = append(failed, "til-dir")
			} else {
				logger.Info("doctor check ok", "check", "til-dir", "dir", cfg.TIL.Dir)
			}

			if len(failed) > 0 {
				return fmt.Errorf("doctor checks failed: %s", strings.Join(failed, ", "))
			}
			logger.Info("doctor checks completed successfully")
			return nil
		},
	}

	return cmd
}

// checkMarkers verifies that the README exists and carries both marker pairs.
func checkMarkers(logger *slog.Logger, path string) []string {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("doctor check failed: README unreadable", "readme", path, "error", err)
		return []string{"readme"}
	}
	doc := string(raw)

	var failed []string
	pairs := map[string][2]string{
		"chat-markers": {readme.ChatStartMarker, readme.ChatEndMarker},
		"til-markers":  {readme.TILStartMarker, readme.TILEndMarker},
	}
	for name, pair := range pairs {
		if !strings.Contains(doc, pair[0]) || !strings.Contains(doc, pair[1]) {
			logger.Error("doctor check failed: marker pair missing", "check", name, "readme", path)
			failed = append(failed, name)
			continue
		}
		logger.Info("doctor check ok", "check", name)
	}
	return failed
}

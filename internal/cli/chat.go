package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/keethesh/profilectl/internal/chat"
	"github.com/keethesh/profilectl/internal/config"
	"github.com/keethesh/profilectl/internal/githubapi"
	"github.com/keethesh/profilectl/internal/readme"
)

// newChatCommand creates "chat", which fetches the featured issue's comments,
// renders the chat fragment and splices it into the README.
func newChatCommand(opts *Options) *cobra.Command {
	var (
		issue      int
		repoSlug   string
		format     string
		readmePath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Render recent issue comments into the README chat block",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("issue") {
				cfg.Issue = issue
			}
			if cmd.Flags().Changed("repo") {
				cfg.Repo = repoSlug
			}
			if cmd.Flags().Changed("format") {
				cfg.Chat.Format = format
			}
			if cmd.Flags().Changed("readme") {
				cfg.Readme = readmePath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Repo == "" {
				return fmt.Errorf("repository is required; set repo in %s, PROFILECTL_REPO or --repo", opts.ConfigPath)
			}

			token, err := lookupGitHubToken()
			if err != nil {
				return err
			}

			client, err := newGitHubClient(logger, token, cfg)
			if err != nil {
				return err
			}

			logger.Info("fetching issue comments", "repo", cfg.Repo, "issue", cfg.Issue)
			comments, err := client.FetchIssueComments(cmd.Context(), cfg.Issue)
			if err != nil {
				return err
			}
			logger.Info("comments fetched", "count", len(comments))

			renderOpts := renderOptions(cfg)
			msgs := chat.Prepare(logger, comments, renderOpts, time.Now())

			renderer, err := chat.NewRenderer(cfg.Chat.Format)
			if err != nil {
				return err
			}
			fragment, err := renderer.Render(msgs, renderOpts)
			if err != nil {
				return err
			}
			if cfg.Chat.Format == config.FormatASCII {
				// The monospace block only survives GitHub's markdown
				// rendering inside a code fence.
				fragment = "```\n" + fragment + "\n```"
			}
			logger.Info("chat fragment rendered", "messages", len(msgs), "format", cfg.Chat.Format)

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), fragment)
				return nil
			}

			changed, err := readme.UpdateFile(cfg.Readme, readme.ChatStartMarker, readme.ChatEndMarker, fragment)
			if err != nil {
				return err
			}
			if changed {
				logger.Info("README chat block updated", "readme", cfg.Readme)
			} else {
				logger.Info("README chat block already up to date", "readme", cfg.Readme)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&issue, "issue", 0, "Issue number whose comments feed the chat (overrides config)")
	cmd.Flags().StringVar(&repoSlug, "repo", "", "Repository slug owner/name (overrides config)")
	cmd.Flags().StringVar(&format, "format", "", "Chat fragment format: html or ascii (overrides config)")
	cmd.Flags().StringVar(&readmePath, "readme", "", "README path to splice into (overrides config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the fragment to stdout instead of writing the README")

	return cmd
}

// newGitHubClient wires fetch settings from the validated config.
func newGitHubClient(logger *slog.Logger, token string, cfg *config.Config) (*githubapi.Client, error) {
	timeout, err := cfg.FetchTimeout()
	if err != nil {
		return nil, err
	}
	delay, err := cfg.RetryDelay()
	if err != nil {
		return nil, err
	}
	return githubapi.NewClient(logger, token, cfg.Repo, githubapi.Options{
		Timeout:    timeout,
		MaxRetries: cfg.Fetch.MaxRetries,
		RetryDelay: delay,
	})
}

// renderOptions distills the chat policy from the loaded config.
func renderOptions(cfg *config.Config) chat.Options {
	return chat.Options{
		Repo:               cfg.Repo,
		Issue:              cfg.Issue,
		Title:              cfg.Chat.Title,
		Width:              cfg.Chat.Width,
		MaxMessages:        cfg.Chat.MaxMessages,
		MaxMessageLength:   cfg.Chat.MaxMessageLength,
		MaxLinesPerMessage: cfg.Chat.MaxLinesPerMessage,
		FilterBots:         cfg.Chat.FilterBots,
		ShowTimestamps:     cfg.Chat.ShowTimestamps,
		HumanFriendlyTime:  cfg.Chat.HumanFriendlyTime,
		ShowReactions:      cfg.Chat.ShowReactions,
		ShowAvatars:        cfg.Chat.ShowAvatars,
		AvatarSize:         cfg.Chat.AvatarSize,
	}
}

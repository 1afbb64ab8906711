// Package cli defines the command-line interface for profilectl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/keethesh/profilectl/internal/logging"
)

const (
	// defaultConfigPath is the default path to the profile configuration file.
	defaultConfigPath = "profile.yaml"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	LogLevel   logging.Level
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		ConfigPath: defaultConfigPath,
		LogLevel:   logging.LevelInfo,
	}

	var envCfg baseEnv
	if err := parseEnv(&envCfg); err != nil {
		return err
	}
	if envPresent("PROFILECTL_CONFIG") {
		rootOpts.ConfigPath = envCfg.ConfigPath
	}

	rootCmd := newRootCommand(rootOpts, logger, envCfg)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger, envCfg baseEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profilectl",
		Short: "profilectl keeps a GitHub profile README alive",
		Long:  "profilectl renders recent issue comments into a chat block and the latest TIL notes into a list, splicing both between markers in the profile README.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			levelText := cmd.Flag("log-level").Value.String()
			if !cmd.Flags().Changed("log-level") && envPresent("PROFILECTL_LOG_LEVEL") {
				levelText = envCfg.LogLevel
			}
			level := logging.ParseLevel(levelText)
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", opts.ConfigPath, "Path to profile.yaml configuration file")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newChatCommand(opts),
		newTILCommand(opts),
		newDoctorCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}

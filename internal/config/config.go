// Package config contains the loader and strongly typed model for profile.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	envparse "github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/keethesh/profilectl/internal/env"
)

// Chat fragment output formats.
const (
	// FormatHTML renders the chat as a styled HTML block.
	FormatHTML = "html"
	// FormatASCII renders the chat as a monospace terminal block.
	FormatASCII = "ascii"
)

// Config represents the full profile.yaml document after defaulting and
// environment overrides. PROFILECTL_* variables override file values.
type Config struct {
	// Repo is the owner/name slug of the profile repository.
	Repo string `yaml:"repo" env:"PROFILECTL_REPO"`
	// Issue is the number of the issue whose comments feed the chat.
	Issue int `yaml:"issue" env:"PROFILECTL_ISSUE"`
	// Readme is the path of the README to splice fragments into.
	Readme string `yaml:"readme" env:"PROFILECTL_README"`
	// EnvFiles lists .env files loaded (relative to the config file) before
	// environment overrides are applied.
	EnvFiles []string `yaml:"envFiles,omitempty"`
	// Chat configures the comment chat fragment.
	Chat ChatConfig `yaml:"chat"`
	// TIL configures the "Today I Learned" list fragment.
	TIL TILConfig `yaml:"til"`
	// Fetch configures the GitHub API fetch behavior.
	Fetch FetchConfig `yaml:"fetch"`
}

// ChatConfig describes chat display limits and feature toggles.
type ChatConfig struct {
	// MaxMessages caps how many comments are rendered (trailing window).
	MaxMessages int `yaml:"maxMessages" env:"PROFILECTL_MAX_MESSAGES"`
	// MaxMessageLength caps the character length of a single message body.
	MaxMessageLength int `yaml:"maxMessageLength" env:"PROFILECTL_MAX_MESSAGE_LENGTH"`
	// MaxLinesPerMessage caps the line count of a single message body.
	MaxLinesPerMessage int `yaml:"maxLinesPerMessage" env:"PROFILECTL_MAX_LINES_PER_MESSAGE"`
	// Width is the column width of the ASCII chat frame.
	Width int `yaml:"width" env:"PROFILECTL_CHAT_WIDTH"`
	// Title is the channel-style title shown in the chat header.
	Title string `yaml:"title" env:"PROFILECTL_CHAT_TITLE"`
	// Format selects the renderer backend: "html" or "ascii".
	Format string `yaml:"format" env:"PROFILECTL_CHAT_FORMAT"`
	// FilterBots drops comments written by bot accounts.
	FilterBots bool `yaml:"filterBots" env:"PROFILECTL_FILTER_BOTS"`
	// ShowTimestamps toggles per-message timestamps.
	ShowTimestamps bool `yaml:"showTimestamps" env:"PROFILECTL_SHOW_TIMESTAMPS"`
	// HumanFriendlyTime renders timestamps relative to now ("2 minutes ago")
	// instead of absolute HH:MM.
	HumanFriendlyTime bool `yaml:"humanFriendlyTime" env:"PROFILECTL_HUMAN_FRIENDLY_TIME"`
	// ShowReactions renders nonzero reaction counts under each message.
	ShowReactions bool `yaml:"showReactions" env:"PROFILECTL_SHOW_REACTIONS"`
	// ShowAvatars renders author avatars in the HTML backend.
	ShowAvatars bool `yaml:"showAvatars" env:"PROFILECTL_SHOW_AVATARS"`
	// AvatarSize is the avatar edge size in pixels for the HTML backend.
	AvatarSize string `yaml:"avatarSize" env:"PROFILECTL_AVATAR_SIZE"`
}

// TILConfig describes the "Today I Learned" list fragment.
type TILConfig struct {
	// Dir is the directory holding TIL markdown notes.
	Dir string `yaml:"dir" env:"PROFILECTL_TIL_DIR"`
	// Limit is how many of the newest notes are listed.
	Limit int `yaml:"limit" env:"PROFILECTL_TIL_LIMIT"`
}

// FetchConfig holds retry and timeout settings for the comments fetch.
// Durations are string-form (e.g. "30s") and validated at load time.
type FetchConfig struct {
	// Timeout is the per-attempt HTTP timeout.
	Timeout string `yaml:"timeout" env:"PROFILECTL_FETCH_TIMEOUT"`
	// MaxRetries is how many attempts are made before giving up.
	MaxRetries int `yaml:"maxRetries" env:"PROFILECTL_FETCH_MAX_RETRIES"`
	// RetryDelay is the fixed pause between attempts.
	RetryDelay string `yaml:"retryDelay" env:"PROFILECTL_FETCH_RETRY_DELAY"`
}

// Default returns the built-in configuration used when profile.yaml omits values.
func Default() Config {
	return Config{
		Issue:  1,
		Readme: "README.md",
		Chat: ChatConfig{
			MaxMessages:        10,
			MaxMessageLength:   500,
			MaxLinesPerMessage: 4,
			Width:              50,
			Title:              "#readme-chat",
			Format:             FormatASCII,
			FilterBots:         true,
			ShowTimestamps:     true,
			ShowReactions:      true,
			AvatarSize:         "20",
		},
		TIL: TILConfig{
			Dir:   "til",
			Limit: 5,
		},
		Fetch: FetchConfig{
			Timeout:    "30s",
			MaxRetries: 3,
			RetryDelay: "1s",
		},
	}
}

// Load reads profile.yaml from path, layers .env files and PROFILECTL_*
// environment variables on top of the defaults, and validates the result.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	raw, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", absPath, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", absPath, err)
	}

	envFileVars, err := env.LoadEnvFiles(filepath.Dir(absPath), cfg.EnvFiles)
	if err != nil {
		return nil, err
	}
	merged := env.Merge(envFileVars, env.FromOS())

	if err := envparse.ParseWithOptions(&cfg, envparse.Options{Environment: merged}); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants that later stages depend on.
func (c *Config) Validate() error {
	if c.Repo != "" {
		parts := strings.Split(c.Repo, "/")
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return fmt.Errorf("invalid repository slug %q, expected owner/repo", c.Repo)
		}
	}
	if c.Issue <= 0 {
		return fmt.Errorf("issue number must be positive, got %d", c.Issue)
	}
	if c.Chat.Format != FormatHTML && c.Chat.Format != FormatASCII {
		return fmt.Errorf("unknown chat format %q, expected %q or %q", c.Chat.Format, FormatHTML, FormatASCII)
	}
	if c.Chat.Width < 24 {
		return fmt.Errorf("chat.width must be at least 24, got %d", c.Chat.Width)
	}
	if c.Chat.MaxMessages <= 0 {
		return fmt.Errorf("chat.maxMessages must be positive, got %d", c.Chat.MaxMessages)
	}
	if c.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("chat.maxMessageLength must be positive, got %d", c.Chat.MaxMessageLength)
	}
	if c.Chat.MaxLinesPerMessage <= 0 {
		return fmt.Errorf("chat.maxLinesPerMessage must be positive, got %d", c.Chat.MaxLinesPerMessage)
	}
	if c.TIL.Limit <= 0 {
		return fmt.Errorf("til.limit must be positive, got %d", c.TIL.Limit)
	}
	if c.Fetch.MaxRetries <= 0 {
		return fmt.Errorf("fetch.maxRetries must be positive, got %d", c.Fetch.MaxRetries)
	}
	if _, err := c.FetchTimeout(); err != nil {
		return err
	}
	if _, err := c.RetryDelay(); err != nil {
		return err
	}
	return nil
}

// Owner returns the owner part of the repository slug.
func (c *Config) Owner() string {
	owner, _, _ := strings.Cut(c.Repo, "/")
	return owner
}

// FetchTimeout parses the per-attempt HTTP timeout.
func (c *Config) FetchTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Fetch.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parse fetch.timeout %q: %w", c.Fetch.Timeout, err)
	}
	return d, nil
}

// RetryDelay parses the pause between fetch attempts.
func (c *Config) RetryDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Fetch.RetryDelay)
	if err != nil {
		return 0, fmt.Errorf("parse fetch.retryDelay %q: %w", c.Fetch.RetryDelay, err)
	}
	return d, nil
}

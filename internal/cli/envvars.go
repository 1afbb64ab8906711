package cli

import (
	"fmt"
	"os"
	"strings"

	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from PROFILECTL_* env vars.
// Flags beat env vars; env vars beat profile.yaml values.
type baseEnv struct {
	// ConfigPath is the profile.yaml path from PROFILECTL_CONFIG.
	ConfigPath string `env:"PROFILECTL_CONFIG"`
	// LogLevel is the logging level from PROFILECTL_LOG_LEVEL.
	LogLevel string `env:"PROFILECTL_LOG_LEVEL"`
}

// parseEnv fills target from PROFILECTL_* env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}

// envPresent reports whether a non-empty env var exists.
func envPresent(key string) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	return strings.TrimSpace(val) != ""
}

// lookupGitHubToken returns the API token from the environment. The token is
// never read from profile.yaml.
func lookupGitHubToken() (string, error) {
	candidates := []string{
		os.Getenv("GH_TOKEN"),
		os.Getenv("GITHUB_TOKEN"),
	}
	for _, v := range candidates {
		if strings.TrimSpace(v) != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("GitHub token is required; set GH_TOKEN or GITHUB_TOKEN")
}

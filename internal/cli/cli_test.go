package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProfileFixture(t *testing.T, withMarkers bool) string {
	t.Helper()
	dir := t.TempDir()

	readmePath := filepath.Join(dir, "README.md")
	doc := "# Hi\n"
	if withMarkers {
		doc += "<!-- CHAT_START -->\n<!-- CHAT_END -->\n<!-- TIL_START -->\n<!-- TIL_END -->\n"
	}
	require.NoError(t, os.WriteFile(readmePath, []byte(doc), 0o644))

	tilDir := filepath.Join(dir, "til")
	require.NoError(t, os.Mkdir(tilDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tilDir, "01-go-slices.md"), []byte("note"), 0o644))

	cfgPath := filepath.Join(dir, "profile.yaml")
	cfg := fmt.Sprintf("repo: keethesh/keethesh\nissue: 2\nreadme: %s\ntil:\n  dir: %s\n", readmePath, tilDir)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	return cfgPath
}

func TestExecuteDoctorPasses(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "test-token")
	cfgPath := writeProfileFixture(t, true)

	err := Execute([]string{"--config", cfgPath, "doctor"}, nil)
	require.NoError(t, err)
}

func TestExecuteDoctorFailsWithoutMarkers(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "test-token")
	cfgPath := writeProfileFixture(t, false)

	err := Execute([]string{"--config", cfgPath, "doctor"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "doctor checks failed")
}

func TestExecuteTILUpdatesReadme(t *testing.T) {
	cfgPath := writeProfileFixture(t, true)

	err := Execute([]string{"--config", cfgPath, "til"}, nil)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(filepath.Dir(cfgPath), "README.md"))
	require.NoError(t, err)
	require.Contains(t, string(raw), "[Go slices]")
}

func TestExecuteChatRequiresToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")
	cfgPath := writeProfileFixture(t, true)

	err := Execute([]string{"--config", cfgPath, "chat"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "GitHub token is required")
}

func TestExecuteUnknownFormatFails(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "test-token")
	cfgPath := writeProfileFixture(t, true)

	err := Execute([]string{"--config", cfgPath, "chat", "--format", "svg"}, nil)
	require.Error(t, err)
}

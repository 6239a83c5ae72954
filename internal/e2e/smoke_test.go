package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeViewsFixture(home))

	stdout, stderr, err := runPT(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "pt dev\n", stdout)

	stdout, stderr, err = runPT(t, binaryPath, home, "watch", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "views: 1")
	assert.Contains(t, stdout, "Libraries")
	assert.Contains(t, stdout, "last 2w · country:GB")

	stdout, stderr, err = runPT(t, binaryPath, home, "watch", "rm", "700001")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "stopped watching petition 700001\n", stdout)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "pt-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pt")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build pt binary: %s", string(output))
	return binaryPath
}

func runPT(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeViewsFixture(home string) error {
	configDir := filepath.Join(home, ".petition-tracker")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	views := `version = 1

[[views]]
petition_id = 700001
name = "Libraries"
show_total = false

[views.window]
since = "2w"

[[views.selections]]
geography = "country"
code = "GB"
name = "United Kingdom"
`

	return os.WriteFile(filepath.Join(configDir, "views.toml"), []byte(views), 0o600)
}

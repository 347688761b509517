package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runTetrisStack(t, binaryPath, home, "", "config", "init")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runTetrisStack(t, binaryPath, home, "2\n2\n2\n5\n0\n", "play", "--seed", "11")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "reserve: 3/3")
	assert.Contains(t, stdout, "swapped queue front")
	assert.Contains(t, stdout, "Session closed.")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "tetris-stack-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tetris-stack")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build tetris-stack binary: %s", string(output))
	return binaryPath
}

func runTetrisStack(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

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

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot executes the real root command with args and returns its output.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCompletionBash(t *testing.T) {
	output, err := runRoot(t, "completion", "bash")
	require.NoError(t, err)

	assert.Contains(t, output, "# bash completion for medstock")
	assert.Contains(t, output, "__start_medstock")
	assert.Contains(t, output, "_medstock_stats()")
	assert.Contains(t, output, "_medstock_completion()")
}

func TestCompletionZsh(t *testing.T) {
	output, err := runRoot(t, "completion", "zsh")
	require.NoError(t, err)

	assert.Contains(t, output, "#compdef medstock")
	assert.Contains(t, output, "_medstock()")
}

func TestCompletionFish(t *testing.T) {
	output, err := runRoot(t, "completion", "fish")
	require.NoError(t, err)

	assert.Contains(t, output, "fish completion for medstock")
	assert.Contains(t, output, "complete -c medstock")
}

func TestCompletionPowershell(t *testing.T) {
	output, err := runRoot(t, "completion", "powershell")
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(output), "powershell completion")
	assert.Contains(t, output, "Register-ArgumentCompleter")
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	_, err := runRoot(t, "completion", "tcsh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newApp()
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestBSTCmd(t *testing.T) {
	out, _, err := execute(t, "1 5 1 3 1 8 6 6 8 3 8 9", "bst")
	require.NoError(t, err)
	require.Equal(t, "5\n3 5\n3 5 8\nMAX: 8 MIN: 3\n5\n", out)
}

func TestBSTCmd_Dump(t *testing.T) {
	out, _, err := execute(t, "1 5 1 3", "bst", "--dump", "--capacity", "2")
	require.NoError(t, err)
	require.Contains(t, out, "────┤ 5 (depth 0)")
	require.Contains(t, out, "└───┤ 3 (depth 1)")
}

func TestBSTCmd_BadInput(t *testing.T) {
	_, _, err := execute(t, "1 five", "bst")
	require.ErrorContains(t, err, "reading operands of insert")
}

func TestBSTCmd_LogsToStderr(t *testing.T) {
	out, logs, err := execute(t, "4 1 9", "bst", "--log-format", "json", "--log-level", "debug")
	require.NoError(t, err)
	require.Equal(t, "Empty Tree\n", out)
	require.Contains(t, logs, `"message":"command failed"`)
	require.Contains(t, logs, `"message":"bst console started"`)
}

func TestBSTCmd_EnvConfig(t *testing.T) {
	t.Setenv("DSLAB_LOG_FORMAT", "xml")
	_, _, err := execute(t, "", "bst")
	require.ErrorContains(t, err, `unknown log format "xml"`)
}

func TestBSTCmd_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "dslab.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log-level: warn\nlog-format: json\n"), 0600))

	_, logs, err := execute(t, "3 1 4 1 9", "bst", "--config", cfg)
	require.NoError(t, err)
	require.Contains(t, logs, `"level":"warn"`)
	require.NotContains(t, logs, "bst console started")

	// flags win over the file.
	_, logs, err = execute(t, "9", "bst", "--config", cfg, "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, logs, "bst console started")

	_, _, err = execute(t, "", "bst", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "reading configuration")
}

func TestGraphCmd(t *testing.T) {
	out, _, err := execute(t, "3 2 0 1 1 2", "graph")
	require.NoError(t, err)
	require.Contains(t, out, "BFS Traversal: 0 1 2\n")
	require.Contains(t, out, "Node 2: 2\n")
}

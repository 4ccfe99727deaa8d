package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunPrintsUnchangedLeafAndZeroCost(t *testing.T) {
	from := writeTemp(t, "a.json", `1`)
	to := writeTemp(t, "b.json", `1`)

	cmd := buildRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--no-color", from, to})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "1\n", stdout.String())
	require.Equal(t, "cost: 0\n", stderr.String())
}

func TestRunPrintsChangedLeafAndNonZeroCost(t *testing.T) {
	from := writeTemp(t, "a.json", `1`)
	to := writeTemp(t, "b.json", `9`)

	cmd := buildRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--no-color", from, to})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "1 -> 9\n", stdout.String())
	require.Equal(t, "cost: 8\n", stderr.String())
}

func TestRunRejectsWrongArgumentCount(t *testing.T) {
	cmd := buildRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"only-one-file.json"})

	err := cmd.Execute()
	require.Error(t, err)
	var ec exitCoder
	require.ErrorAs(t, err, &ec)
	require.Equal(t, 2, ec.ExitCode())
}

func TestRunRejectsUnsupportedOutputFormat(t *testing.T) {
	from := writeTemp(t, "a.json", `1`)
	to := writeTemp(t, "b.json", `1`)

	cmd := buildRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "yaml", from, to})

	err := cmd.Execute()
	require.Error(t, err)
	var ec exitCoder
	require.ErrorAs(t, err, &ec)
	require.Equal(t, 2, ec.ExitCode())
}

func TestRunReportsParseErrorForMissingFile(t *testing.T) {
	to := writeTemp(t, "b.json", `1`)

	cmd := buildRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json"), to})

	err := cmd.Execute()
	require.Error(t, err)
	require.Equal(t, 1, exitCodeFor(err))
}

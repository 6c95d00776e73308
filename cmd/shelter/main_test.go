package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSampleThenReport(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	pdf := filepath.Join(dir, "report.pdf")
	txt := filepath.Join(dir, "report.txt")

	out, err := execute(t, "sample", "--rows", "5", "--output", raw)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 5 rows")

	out, err = execute(t, "report", "--input", raw, "--output", pdf, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "total=4")
	b, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	_, err = execute(t, "report", "--input", raw, "--output", txt, "--format", "text",
		"--status", "departed", "--log-level", "error")
	require.NoError(t, err)
	b, err = os.ReadFile(txt)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Total Beneficiaries: 1")
	assert.Contains(t, string(b), "REF-003")
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "raw.csv")
	_, err := execute(t, "sample", "--rows", "5", "--output", raw)
	require.NoError(t, err)

	out, err := execute(t, "report", "--input", raw, "--output", filepath.Join(dir, "a.txt"),
		"--format", "text", "--status", "departed", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "total=1")

	pdf := filepath.Join(dir, "b.pdf")
	out, err = execute(t, "report", "--input", raw, "--output", pdf, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "total=4", "default statuses apply again")
	b, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "default format applies again")
}

func TestReportMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "report", "--input", filepath.Join(dir, "nope.csv"),
		"--output", filepath.Join(dir, "r.pdf"), "--log-level", "error")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "shelter dev\n", out)
}

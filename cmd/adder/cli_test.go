package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"regexadder/internal/config"
	"regexadder/internal/export"
	"regexadder/internal/store"
)

// setupWorkspace points the global config at a store inside a temp dir.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()
	path := filepath.Join(t.TempDir(), "memory.txt")
	cfg = config.DefaultConfig()
	cfg.Store.Path = path
	t.Cleanup(func() {
		cfg = nil
		dryRun = false
		exactCount = false
		exportFormat = "chat"
		exportOutput = "dataset.jsonl"
	})
	return path
}

func newTestCmd(input string) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	return cmd, &out
}

func TestRecordAppendsConfirmedPrompt(t *testing.T) {
	path := setupWorkspace(t)
	cmd, out := newTestCmd("1\nHello\nWorld\ny\n2\n")

	require.NoError(t, runRecord(cmd, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]string
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, map[string]string{"instruction": "Hello", "output": "World"}, rec)
	assert.Contains(t, out.String(), "data saved successfully!")
	assert.Contains(t, out.String(), "operation cancelled")
}

func TestRecordDeclinedLeavesStoreUntouched(t *testing.T) {
	path := setupWorkspace(t)
	cmd, out := newTestCmd("1\nA\nB\nn\n")

	require.NoError(t, runRecord(cmd, nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "operation cancelled")
}

func TestRecordDryRun(t *testing.T) {
	path := setupWorkspace(t)
	dryRun = true
	cmd, out := newTestCmd("1\nA\nB\ny\n2\n")

	require.NoError(t, runRecord(cmd, nil))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, out.String(), "data saved successfully!")
}

func TestRecordInputClosedIsAnError(t *testing.T) {
	setupWorkspace(t)
	cmd, _ := newTestCmd("1\n")

	assert.Error(t, runRecord(cmd, nil))
}

func TestCountCommand(t *testing.T) {
	setupWorkspace(t)
	rec, _ := newTestCmd("1\nq1\na1\ny\n1\nq2\na2\ny\n2\n")
	require.NoError(t, runRecord(rec, nil))

	cmd, out := newTestCmd("")
	require.NoError(t, runCount(cmd, nil))
	assert.Equal(t, "3\n", out.String())

	exactCount = true
	cmd, out = newTestCmd("")
	require.NoError(t, runCount(cmd, nil))
	assert.Equal(t, "2\n", out.String())
}

func TestCountCommandEmptyStore(t *testing.T) {
	path := setupWorkspace(t)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cmd, out := newTestCmd("")
	require.NoError(t, runCount(cmd, nil))
	assert.Equal(t, "1\n", out.String())
}

func TestCountCommandMissingStore(t *testing.T) {
	setupWorkspace(t)
	cmd, out := newTestCmd("")

	err := runCount(cmd, nil)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "failed to count prompts"))
	assert.Empty(t, out.String(), "the error is reported once, by main")
}

func TestRootCommandSilencesErrors(t *testing.T) {
	for _, k := range []string{"REGEXADDER_STORE", "REGEXADDER_LOG_LEVEL", "REGEXADDER_DEBUG"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	var out bytes.Buffer
	rootCmd.SetArgs([]string{"count",
		"--config", filepath.Join(dir, "absent.yaml"),
		"--store", filepath.Join(dir, "missing.txt")})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		storePath = ""
		configPath = config.DefaultPath
		cfg = nil
		logger = nil
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count prompts")
	assert.NotContains(t, out.String(), "Error:")
	assert.Empty(t, out.String())
}

func TestExportCommand(t *testing.T) {
	path := setupWorkspace(t)
	rec, _ := newTestCmd("1\nq\na\ny\n1\nq\na\ny\n2\n")
	require.NoError(t, runRecord(rec, nil))

	exportFormat = "alpaca"
	exportOutput = filepath.Join(filepath.Dir(path), "out", "dataset.jsonl")
	cmd, out := newTestCmd("")
	require.NoError(t, runExport(cmd, nil))
	assert.Contains(t, out.String(), "exported 1 records")

	data, err := os.ReadFile(exportOutput)
	require.NoError(t, err)
	assert.Equal(t, `{"instruction":"q","output":"a"}`+"\n", string(data))
}

func TestExportToFile(t *testing.T) {
	path := setupWorkspace(t)
	rec, _ := newTestCmd("1\nq\na\ny\n2\n")
	require.NoError(t, runRecord(rec, nil))

	src, err := store.NewFileStore(path)
	require.NoError(t, err)

	outPath := filepath.Join(filepath.Dir(path), "dataset.jsonl")
	stats, err := exportToFile(src, outPath, export.FormatChat)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Written)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))

	// A directory cannot be opened as the output file.
	_, err = exportToFile(src, filepath.Dir(path), export.FormatChat)
	assert.ErrorContains(t, err, "failed to create output")
}

func TestExportCommandStdoutAndBadFormat(t *testing.T) {
	setupWorkspace(t)
	rec, _ := newTestCmd("1\nq\na\ny\n2\n")
	require.NoError(t, runRecord(rec, nil))

	exportOutput = "-"
	cmd, out := newTestCmd("")
	require.NoError(t, runExport(cmd, nil))
	assert.Equal(t, `{"messages":[{"role":"user","content":"q"},{"role":"assistant","content":"a"}]}`+"\n", out.String())

	exportFormat = "csv"
	assert.Error(t, runExport(cmd, nil))
}

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["record"])
	assert.True(t, names["count"])
	assert.True(t, names["export"])
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("store"))
	assert.NotNil(t, countCmd.Flags().Lookup("exact"))
}

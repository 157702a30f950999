package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexadder/internal/export"
	"regexadder/internal/store"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd converts the store into a JSONL dataset
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert the store into a JSONL dataset",
	Long: `Parses every record in the store and writes one JSON object per line.

Formats:
  - chat:   {"messages":[{"role":"user",...},{"role":"assistant",...}]}
  - alpaca: {"instruction":...,"output":...}

Exact duplicate pairs are written once.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	src, err := store.NewFileStore(currentConfig().Store.Path)
	if err != nil {
		return err
	}

	if exportOutput == "-" {
		stats, err := export.FromStore(src, cmd.OutOrStdout(), format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		logExport(src, format, stats)
		return nil
	}

	stats, err := exportToFile(src, exportOutput, format)
	if err != nil {
		return err
	}
	logExport(src, format, stats)

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s (%d duplicates skipped)\n",
		stats.Written, exportOutput, stats.Duplicates)
	return nil
}

// exportToFile writes the dataset to path. The close error is returned
// since it can carry the final write failure.
func exportToFile(src store.Reader, path string, format export.Format) (export.Stats, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return export.Stats{}, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return export.Stats{}, fmt.Errorf("failed to create output: %w", err)
	}

	stats, err := export.FromStore(src, f, format)
	if err != nil {
		f.Close()
		return stats, fmt.Errorf("export failed: %w", err)
	}
	if err := f.Close(); err != nil {
		return stats, fmt.Errorf("failed to close output: %w", err)
	}
	return stats, nil
}

func logExport(src store.Store, format export.Format, stats export.Stats) {
	currentLogger().Info("store exported",
		zap.String("path", src.Location()),
		zap.String("output", exportOutput),
		zap.String("format", string(format)),
		zap.Int("read", stats.Read),
		zap.Int("written", stats.Written),
		zap.Int("duplicates", stats.Duplicates))
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexadder/internal/config"
	"regexadder/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string
	storePath  string

	// Loaded by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "adder",
	Short: "Collect instruction/output prompt pairs into a text file",
	Long: `adder interactively asks for an instruction and its expected output,
shows the pair back for confirmation and appends it as a JSON block to the
record store (memory.txt by default).

Run without arguments to start recording.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if storePath != "" {
			cfg.Store.Path = storePath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Debug("config loaded",
			zap.String("config", configPath),
			zap.String("store", cfg.Store.Path),
			zap.String("backend", cfg.Store.Backend))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: record prompts
		return runRecord(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Record store path (overrides config)")

	recordCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Keep records in memory instead of writing the store")
	countCmd.Flags().BoolVar(&exactCount, "exact", false, "Count record matches instead of split fragments")
	exportCmd.Flags().StringVar(&exportFormat, "format", "chat", "Export format: chat, alpaca")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "dataset.jsonl", "Output JSONL file (- for stdout)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// currentLogger returns the configured logger or a no-op one.
func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// currentConfig returns the loaded config or defaults.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexadder/internal/counter"
)

var exactCount bool

// countCmd prints the approximate record count of the store
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print how many records the store holds",
	Long: `Reads the store and splits it on the record pattern, printing the
number of resulting fragments. For N records written back to back this is
N+1. Use --exact to print the number of pattern matches instead.`,
	Args: cobra.NoArgs,
	RunE: runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	path := currentConfig().Store.Path
	mode := counter.ModeFragments
	if exactCount {
		mode = counter.ModeMatches
	}

	n, err := counter.CountFile(path, mode)
	if err != nil {
		return err
	}

	currentLogger().Debug("store counted",
		zap.String("path", path),
		zap.Stringer("mode", mode),
		zap.Int("count", n))
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

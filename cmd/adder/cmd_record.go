package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regexadder/internal/prompt"
	"regexadder/internal/recorder"
	"regexadder/internal/store"
	"regexadder/internal/ui"
)

var dryRun bool

// recordCmd runs the interactive append loop
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Interactively add prompt/output pairs to the store",
	Long: `Asks for a prompt and its output, echoes the pair and asks for
confirmation. Confirmed pairs are appended to the store and the next round
starts. Choosing "Cancel" at the menu or answering "n" at the confirmation
ends the run.`,
	Args: cobra.NoArgs,
	RunE: runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	backend := c.Store.Backend
	if dryRun {
		backend = "memory"
	}

	s, err := store.New(backend, c.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to create store (backend=%s): %w", backend, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runID := uuid.NewString()
	log := currentLogger()
	log.Info("recording started", zap.String("run_id", runID), zap.String("path", s.Location()))

	loop := &recorder.Loop{
		Session:  prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), ui.DefaultStyles()),
		Store:    s,
		Logger:   log,
		RunID:    runID,
		Location: s.Location(),
	}

	sum, err := loop.Run(ctx)
	if err != nil {
		return err
	}
	log.Info("recording finished", zap.String("run_id", runID), zap.Int("saved", sum.Saved))
	return nil
}

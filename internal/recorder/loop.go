// Package recorder runs the append loop: collect a record, persist it,
// repeat until the user cancels.
package recorder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"regexadder/internal/prompt"
	"regexadder/internal/store"
)

const (
	cancelNotice  = "operation cancelled"
	partialNotice = "    --> NOTE: only the LAST prompt was discarded, all earlier prompts were saved"
	savedNotice   = "data saved successfully!"
	failedNotice  = "failed to create prompt!"
)

// Summary describes how a run ended.
type Summary struct {
	Saved     int  // records appended during this run
	Cancelled bool // the user ended the run
}

// Loop ties a session to a store.
type Loop struct {
	Session *prompt.Session
	Store   store.Appender
	Logger  *zap.Logger
	RunID   string
	// Location is only used for log fields.
	Location string
}

// Run collects and appends records until a round is rejected or fails.
// A rejected round ends the run with a nil error; the caller picks the
// exit status.
func (l *Loop) Run(ctx context.Context) (Summary, error) {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run_id", l.RunID), zap.String("path", l.Location))
	out := l.Session.Out()
	styles := l.Session.Styles()

	var sum Summary
	for {
		res, err := l.Session.Collect(ctx)
		if err != nil {
			fmt.Fprintln(out, styles.Err.Render(failedNotice), err)
			logger.Error("collect failed", zap.Int("saved", sum.Saved), zap.Error(err))
			return sum, err
		}

		if !res.Accepted {
			fmt.Fprintln(out, "\n"+styles.Err.Render(cancelNotice))
			if sum.Saved > 0 {
				fmt.Fprintln(out, partialNotice)
			}
			sum.Cancelled = true
			logger.Info("run cancelled", zap.Int("saved", sum.Saved))
			return sum, nil
		}

		if err := l.Store.Append(*res.Record); err != nil {
			fmt.Fprintln(out, styles.Err.Render(failedNotice), err)
			logger.Error("append failed", zap.Int("saved", sum.Saved), zap.Error(err))
			return sum, fmt.Errorf("append record: %w", err)
		}

		sum.Saved++
		fmt.Fprintln(out, styles.Info.Render(savedNotice))
		fmt.Fprintln(out)
		logger.Debug("record appended",
			zap.Int("saved", sum.Saved),
			zap.Int("instruction_len", len(res.Record.Instruction)),
			zap.Int("output_len", len(res.Record.Output)))
	}
}

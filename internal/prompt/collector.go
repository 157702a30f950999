package prompt

import (
	"context"
	"fmt"
	"strings"

	"regexadder/internal/store"
	"regexadder/internal/validate"
)

const (
	menuQuestion        = "1. Create prompt\n2. Cancel\n\nChoice: "
	instructionQuestion = "1.1 Enter the prompt: "
	outputQuestion      = "\n1.2 Enter the output (answer) for the model: "
	confirmQuestion     = "Confirm [Y/n]: "

	menuCancel = "2"
)

// Result is the outcome of one collection round. Record is nil when the
// round was cancelled at the menu and discarded when Accepted is false.
type Result struct {
	Record   *store.Record
	Accepted bool
}

// Collect runs one round: menu, instruction, output, confirmation.
// Input failures are reported on the session output and returned wrapped;
// no record is produced in that case.
func (s *Session) Collect(ctx context.Context) (Result, error) {
	res, err := s.collect(ctx)
	if err != nil {
		fmt.Fprintln(s.out, s.styles.Err.Render("failed to collect data!"), err)
		return Result{}, fmt.Errorf("collect prompt: %w", err)
	}
	return res, nil
}

func (s *Session) collect(ctx context.Context) (Result, error) {
	choice, err := s.Ask(ctx, validate.Menu, menuQuestion)
	if err != nil {
		return Result{}, err
	}
	if choice == menuCancel {
		return Result{Accepted: false}, nil
	}

	instruction, err := s.Ask(ctx, validate.UserPrompt, instructionQuestion)
	if err != nil {
		return Result{}, err
	}
	output, err := s.Ask(ctx, validate.UserOutput, outputQuestion)
	if err != nil {
		return Result{}, err
	}

	rec := &store.Record{Instruction: instruction, Output: output}

	fmt.Fprintf(s.out, "\n%s %s\n%s %s\n\n\n",
		s.styles.Out.Render("PROMPT:"), instruction,
		s.styles.Out.Render("OUTPUT:"), output)

	answer, err := s.Ask(ctx, validate.Confirm, confirmQuestion)
	if err != nil {
		return Result{}, err
	}

	return Result{Record: rec, Accepted: strings.EqualFold(answer, "y")}, nil
}

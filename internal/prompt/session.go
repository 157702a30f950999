// Package prompt implements the interactive collector that asks the user for
// one instruction/output pair and a confirmation.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"regexadder/internal/ui"
	"regexadder/internal/validate"
)

// ErrInputClosed is returned when input ends before a full answer is read.
var ErrInputClosed = errors.New("input closed")

// Session is one interactive terminal conversation. It owns the line reader,
// so a single Session must be reused across rounds to keep buffered input.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	styles ui.Styles
}

// NewSession creates a session reading lines from in and writing prompts to out.
func NewSession(in io.Reader, out io.Writer, styles ui.Styles) *Session {
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

// Out returns the writer status text goes to.
func (s *Session) Out() io.Writer { return s.out }

// Styles returns the session colour roles.
func (s *Session) Styles() ui.Styles { return s.styles }

// Ask prints question and reads answers until field accepts one.
func (s *Session) Ask(ctx context.Context, field validate.Field, question string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(s.out, question)
		answer, err := s.readLine()
		if err != nil {
			return "", fmt.Errorf("%s: %w", field.Name(), err)
		}

		if !field.Accept(answer) {
			fmt.Fprintln(s.out, s.styles.Warn.Render("invalid choice, try again!"))
			fmt.Fprintln(s.out)
			continue
		}
		return answer, nil
	}
}

// readLine reads one line without its terminator. A final line that is not
// newline-terminated still counts; EOF with nothing read is ErrInputClosed.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

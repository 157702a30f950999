package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"regexadder/internal/store"
	"regexadder/internal/ui"
	"regexadder/internal/validate"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestSession(input string) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	return NewSession(strings.NewReader(input), &out, ui.Plain()), &out
}

func TestCollectAccepted(t *testing.T) {
	s, out := newTestSession("1\nHello\nWorld\ny\n")

	res, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	require.NotNil(t, res.Record)
	assert.Equal(t, store.Record{Instruction: "Hello", Output: "World"}, *res.Record)

	text := out.String()
	assert.Contains(t, text, "Choice: ")
	assert.Contains(t, text, "PROMPT: Hello")
	assert.Contains(t, text, "OUTPUT: World")
	assert.Contains(t, text, "Confirm [Y/n]: ")
}

func TestCollectUppercaseConfirm(t *testing.T) {
	s, _ := newTestSession("1\nA\nB\nY\n")

	res, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Accepted)
}

func TestCollectMenuCancelAsksNothingElse(t *testing.T) {
	s, out := newTestSession("2\nleftover\n")

	res, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Nil(t, res.Record)
	assert.NotContains(t, out.String(), "1.1 Enter the prompt")

	// The unread line stays buffered for the next round.
	line, err := s.readLine()
	require.NoError(t, err)
	assert.Equal(t, "leftover", line)
}

func TestCollectConfirmNo(t *testing.T) {
	s, _ := newTestSession("1\nA\nB\nN\n")

	res, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Accepted)
}

func TestCollectRepromptsOnInvalidInput(t *testing.T) {
	s, out := newTestSession("9\n\n1\nA\nB\nmaybe\nyes\ny\n")

	res, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, 4, strings.Count(out.String(), "invalid choice, try again!"))
	assert.Equal(t, 3, strings.Count(out.String(), "Choice: "))
}

func TestCollectEmptyFieldsAreAccepted(t *testing.T) {
	s, _ := newTestSession("1\n\n\ny\n")

	res, err := s.Collect(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res.Record)
	assert.Equal(t, store.Record{}, *res.Record)
}

func TestCollectHandlesCRLF(t *testing.T) {
	s, _ := newTestSession("1\r\nHello\r\nWorld\r\ny\r\n")

	res, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, "Hello", res.Record.Instruction)
}

func TestCollectFinalLineWithoutNewline(t *testing.T) {
	s, _ := newTestSession("1\nA\nB\ny")

	res, err := s.Collect(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Accepted)
}

func TestCollectInputClosed(t *testing.T) {
	s, out := newTestSession("1\nHello\n")

	res, err := s.Collect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInputClosed))
	assert.Nil(t, res.Record)
	assert.Contains(t, out.String(), "failed to collect data!")
}

func TestCollectCancelledContext(t *testing.T) {
	s, _ := newTestSession("1\nA\nB\ny\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAskUsesFieldPattern(t *testing.T) {
	s, out := newTestSession("x\nn\n")

	got, err := s.Ask(context.Background(), validate.Confirm, "? ")
	require.NoError(t, err)
	assert.Equal(t, "n", got)
	assert.Equal(t, 2, strings.Count(out.String(), "? "))
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/sandevgo/calcbot/internal/service/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines []string
	errs  []error
	pos   int
}

func (s *scriptedReader) Readline() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line, err := s.lines[s.pos], s.errs[s.pos]
	s.pos++
	return line, err
}

func script(lines ...string) *scriptedReader {
	return &scriptedReader{lines: lines, errs: make([]error, len(lines))}
}

func newTestReadLine() *ReadLine {
	return &ReadLine{handler: command.NewHandler(command.NewInterpreter())}
}

func TestLoop_QuitStopsReading(t *testing.T) {
	in := script("add 1 2", "", "add x 1", "QUIT", "multiply 2 2")
	var out bytes.Buffer

	err := newTestReadLine().loop(context.Background(), in, &out)
	require.NoError(t, err)

	assert.Equal(t, "1 + 2 = 3\nPlease enter two numbers separated by a space.\nBye!\n", out.String())
	assert.Equal(t, 4, in.pos)
}

func TestLoop_EOF(t *testing.T) {
	var out bytes.Buffer
	err := newTestReadLine().loop(context.Background(), script("help"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "6. quit\n")
}

func TestLoop_Interrupt(t *testing.T) {
	in := &scriptedReader{
		lines: []string{"partial", "divide 9 3", ""},
		errs:  []error{readline.ErrInterrupt, nil, readline.ErrInterrupt},
	}
	var out bytes.Buffer

	err := newTestReadLine().loop(context.Background(), in, &out)
	require.NoError(t, err)
	assert.Equal(t, "9 / 3 = 3\n", out.String())
	assert.Equal(t, 3, in.pos)
}

func TestLoop_ReadError(t *testing.T) {
	boom := errors.New("tty gone")
	in := &scriptedReader{lines: []string{""}, errs: []error{boom}}

	err := newTestReadLine().loop(context.Background(), in, io.Discard)
	assert.ErrorIs(t, err, boom)
}

func TestLoop_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := script("add 1 1")
	err := newTestReadLine().loop(ctx, in, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 0, in.pos)
}

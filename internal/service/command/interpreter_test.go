package command

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantReplies   []string
		wantTerminate bool
		wantErr       error
	}{
		{
			name:          "quit",
			input:         "quit",
			wantReplies:   []string{"Bye!"},
			wantTerminate: true,
		},
		{
			name:          "quit upper case ignores the rest",
			input:         "QUIT now please",
			wantReplies:   []string{"Bye!"},
			wantTerminate: true,
		},
		{
			name:        "add",
			input:       "add 2 3",
			wantReplies: []string{"2 + 3 = 5"},
		},
		{
			name:        "subtract",
			input:       "subtract 2 5",
			wantReplies: []string{"2 - 5 = -3"},
		},
		{
			name:        "legacy subtract spelling",
			input:       "substract 10 4",
			wantReplies: []string{"10 - 4 = 6"},
		},
		{
			name:        "multiply",
			input:       "multiply -4 6",
			wantReplies: []string{"-4 * 6 = -24"},
		},
		{
			name:        "divide truncates toward zero",
			input:       "divide -7 2",
			wantReplies: []string{"-7 / 2 = -3"},
		},
		{
			name:        "divide by zero",
			input:       "divide 1 0",
			wantReplies: []string{"Sorry, I could not perform the operation."},
		},
		{
			name:        "extra whitespace between words",
			input:       "  add\t1    2 ",
			wantReplies: []string{"1 + 2 = 3"},
		},
		{
			name:        "missing operand",
			input:       "add 2",
			wantReplies: []string{"Please provide the numbers to perform the operation add."},
		},
		{
			name:        "too many operands",
			input:       "divide 1 2 3",
			wantReplies: []string{"Please provide the numbers to perform the operation divide."},
		},
		{
			name:        "non numeric operand",
			input:       "add x 2",
			wantReplies: []string{"Please enter two numbers separated by a space."},
			wantErr:     ErrParse,
		},
		{
			name:        "operand out of 32-bit range",
			input:       "multiply 2147483648 1",
			wantReplies: []string{"Please enter two numbers separated by a space."},
			wantErr:     ErrParse,
		},
		{
			name:        "operation names are case sensitive",
			input:       "ADD 1 2",
			wantReplies: []string{"Sorry I did not understand the command ADD, for a list of available commands 'type help'."},
		},
		{
			name:        "unknown command",
			input:       "fly away",
			wantReplies: []string{"Sorry I did not understand the command fly, for a list of available commands 'type help'."},
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "whitespace only",
			input: " \t\n",
		},
	}

	interp := NewInterpreter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := interp.Interpret(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantReplies, got.Replies)
			assert.Equal(t, tt.wantTerminate, got.Terminate)
		})
	}
}

func TestInterpret_Help(t *testing.T) {
	interp := NewInterpreter()

	for _, input := range []string{"help", "HeLp", "help me"} {
		got, err := interp.Interpret(input)
		require.NoError(t, err)
		require.Len(t, got.Replies, 1)
		assert.False(t, got.Terminate)

		lines := strings.Split(got.Replies[0], "\n")
		assert.Equal(t, []string{
			"1. add 'number 1' 'number 2'",
			"2. subtract 'number 1' 'number 2'",
			"3. multiply 'number 1' 'number 2'",
			"4. divide 'number 1' 'number 2'",
			"5. help",
			"6. quit",
		}, lines)
	}
}

func TestInterpret_Idempotent(t *testing.T) {
	interp := NewInterpreter()
	inputs := []string{"add 1 2", "help", "quit", "fly", "add x 1", "divide 3 0"}

	for _, input := range inputs {
		first, firstErr := interp.Interpret(input)
		for i := 0; i < 3; i++ {
			again, err := interp.Interpret(input)
			assert.Equal(t, first, again, input)
			assert.Equal(t, firstErr, err, input)
		}
	}
}

func TestApplyOperation_Add(t *testing.T) {
	values := []int64{0, 1, -1, 42, math.MaxInt32, math.MinInt32}
	for _, a := range values {
		for _, b := range values {
			got := ApplyOperation(OpAdd, a, b)
			assert.Contains(t, got, formatSum(a, b))
		}
	}
}

func TestApplyOperation_Bounds(t *testing.T) {
	assert.Equal(t, "2147483647 * 2147483647 = 4611686014132420609",
		ApplyOperation(OpMultiply, math.MaxInt32, math.MaxInt32))
	assert.Equal(t, "-2147483648 / -1 = 2147483648",
		ApplyOperation(OpDivide, math.MinInt32, -1))
}

func TestApplyOperation_DivideByZero(t *testing.T) {
	for _, a := range []int64{0, 5, -5, math.MinInt32} {
		assert.Equal(t, "Sorry, I could not perform the operation.", ApplyOperation(OpDivide, a, 0))
	}

	_, err := Apply(OperationRequest{Operation: OpDivide, First: 1})
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestApplyOperation_UnknownIsSilent(t *testing.T) {
	assert.Empty(t, ApplyOperation(Operation("modulo"), 1, 2))
}

func formatSum(a, b int64) string {
	return strings.Join([]string{itoa(a), "+", itoa(b), "=", itoa(a + b)}, " ")
}

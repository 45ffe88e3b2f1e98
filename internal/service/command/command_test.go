package command

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		wantKind Kind
		wantName string
		wantOp   Operation
		wantArgs []string
	}{
		{input: "quit", wantKind: KindQuit, wantName: "quit", wantArgs: []string{}},
		{input: "Quit", wantKind: KindQuit, wantName: "Quit", wantArgs: []string{}},
		{input: "HELP x", wantKind: KindHelp, wantName: "HELP", wantArgs: []string{"x"}},
		{input: "add 1 2", wantKind: KindOperation, wantName: "add", wantOp: OpAdd, wantArgs: []string{"1", "2"}},
		{input: "substract 1 2", wantKind: KindOperation, wantName: "substract", wantOp: OpSubtract, wantArgs: []string{"1", "2"}},
		{input: "Divide 1 2", wantKind: KindUnknown, wantName: "Divide", wantArgs: []string{"1", "2"}},
		{input: "fly away", wantKind: KindUnknown, wantName: "fly", wantArgs: []string{"away"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, ok := Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, cmd.Kind)
			assert.Equal(t, tt.wantName, cmd.Name)
			assert.Equal(t, tt.wantOp, cmd.Operation)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParse_NoWords(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, ok := Parse(input)
		assert.False(t, ok, "%q", input)
	}
}

func TestOperations_Order(t *testing.T) {
	ops := Operations()
	assert.Equal(t, []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}, ops)

	// The returned slice is a copy.
	ops[0] = OpDivide
	assert.Equal(t, OpAdd, Operations()[0])
}

func TestNewOperationRequest(t *testing.T) {
	cmd, _ := Parse("multiply +7 -3")
	req, err := NewOperationRequest(cmd)
	require.NoError(t, err)
	assert.Equal(t, OperationRequest{Operation: OpMultiply, First: 7, Second: -3}, req)

	cmd, _ = Parse("multiply 7")
	_, err = NewOperationRequest(cmd)
	assert.ErrorIs(t, err, ErrArity)

	cmd, _ = Parse("multiply 7 3.5")
	_, err = NewOperationRequest(cmd)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), `"3.5"`)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

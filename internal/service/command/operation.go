package command

import (
	"errors"
	"fmt"
	"strconv"
)

type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

var (
	ErrParse          = errors.New("operands are not base-10 integers")
	ErrArity          = errors.New("operation needs exactly two operands")
	ErrDivisionByZero = errors.New("division by zero")
)

// operations is ordered; help output depends on it.
var operations = [...]Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// aliases maps legacy spellings that older clients still send.
var aliases = map[string]Operation{
	"substract": OpSubtract,
}

// Operations returns the recognized operations in help order.
func Operations() []Operation {
	res := make([]Operation, len(operations))
	copy(res, operations[:])
	return res
}

// LookupOperation resolves an exact, case-sensitive operation name or alias.
func LookupOperation(name string) (Operation, bool) {
	for _, op := range operations {
		if string(op) == name {
			return op, true
		}
	}
	op, ok := aliases[name]
	return op, ok
}

type OperationRequest struct {
	Operation Operation
	First     int64
	Second    int64
}

// NewOperationRequest builds a request from an operation command.
// Operands must fit in a signed 32-bit integer.
func NewOperationRequest(cmd Command) (OperationRequest, error) {
	if cmd.Words() != 3 {
		return OperationRequest{}, ErrArity
	}

	first, err := parseOperand(cmd.Args[0])
	if err != nil {
		return OperationRequest{}, err
	}
	second, err := parseOperand(cmd.Args[1])
	if err != nil {
		return OperationRequest{}, err
	}

	return OperationRequest{
		Operation: cmd.Operation,
		First:     first,
		Second:    second,
	}, nil
}

func parseOperand(token string) (int64, error) {
	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, token)
	}
	return n, nil
}

// Apply computes the reply for req. Operands are int32-bounded and the
// arithmetic runs in int64, so results never wrap.
// An unrecognized operation yields an empty reply and no error.
func Apply(req OperationRequest) (string, error) {
	a, b := req.First, req.Second

	switch req.Operation {
	case OpAdd:
		return fmt.Sprintf("%d + %d = %d", a, b, a+b), nil
	case OpSubtract:
		return fmt.Sprintf("%d - %d = %d", a, b, a-b), nil
	case OpMultiply:
		return fmt.Sprintf("%d * %d = %d", a, b, a*b), nil
	case OpDivide:
		if b == 0 {
			return "", ErrDivisionByZero
		}
		return fmt.Sprintf("%d / %d = %d", a, b, a/b), nil
	default:
		return "", nil
	}
}

// ApplyOperation is Apply with arithmetic failures turned into the apology reply.
func ApplyOperation(op Operation, a, b int64) string {
	reply, err := Apply(OperationRequest{Operation: op, First: a, Second: b})
	if err != nil {
		return operationFailedReply
	}
	return reply
}

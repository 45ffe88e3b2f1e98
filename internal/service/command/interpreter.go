package command

import (
	"errors"
)

// Outcome is what one turn produced. Terminate asks the host to stop once
// every reply has been delivered.
type Outcome struct {
	Replies   []string
	Terminate bool
}

// Interpreter maps one line of text to replies. It keeps no state between calls.
type Interpreter struct {
	formatter *ResponseFormatter
}

func NewInterpreter() *Interpreter {
	return &Interpreter{
		formatter: NewResponseFormatter(),
	}
}

// Interpret returns ErrParse (wrapped) together with the reply asking for
// numbers when an operand is not an integer. Callers must still send the reply.
func (i *Interpreter) Interpret(text string) (Outcome, error) {
	cmd, ok := Parse(text)
	if !ok {
		return Outcome{}, nil
	}

	switch cmd.Kind {
	case KindQuit:
		return Outcome{Replies: []string{i.formatter.Bye()}, Terminate: true}, nil
	case KindHelp:
		return reply(i.formatter.Help()), nil
	case KindOperation:
		return i.operation(cmd)
	default:
		return reply(i.formatter.Unknown(cmd.Name)), nil
	}
}

func (i *Interpreter) operation(cmd Command) (Outcome, error) {
	req, err := NewOperationRequest(cmd)
	switch {
	case errors.Is(err, ErrArity):
		return reply(i.formatter.MissingOperands(cmd.Name)), nil
	case err != nil:
		return reply(i.formatter.BadOperands()), err
	}

	text := ApplyOperation(req.Operation, req.First, req.Second)
	if text == "" {
		return Outcome{}, nil
	}
	return reply(text), nil
}

func reply(text string) Outcome {
	return Outcome{Replies: []string{text}}
}

package command

import (
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindQuit
	KindHelp
	KindOperation
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "quit"
	case KindHelp:
		return "help"
	case KindOperation:
		return "operation"
	default:
		return "unknown"
	}
}

const (
	quitCommand = "quit"
	helpCommand = "help"
)

// Command is the classified first word of a message plus the words after it.
type Command struct {
	Kind Kind
	// Name is the first word exactly as typed.
	Name string
	Args []string
	// Operation is set only for KindOperation.
	Operation Operation
}

// Parse splits text on whitespace and classifies the first word.
// It reports false when the text has no words.
func Parse(text string) (Command, bool) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Command{}, false
	}

	cmd := Command{
		Kind: KindUnknown,
		Name: words[0],
		Args: words[1:],
	}

	switch {
	case strings.EqualFold(cmd.Name, quitCommand):
		cmd.Kind = KindQuit
	case strings.EqualFold(cmd.Name, helpCommand):
		cmd.Kind = KindHelp
	default:
		// Operation names are matched case-sensitively.
		if op, ok := LookupOperation(cmd.Name); ok {
			cmd.Kind = KindOperation
			cmd.Operation = op
		}
	}
	return cmd, true
}

// Words returns the total word count including the command name.
func (c Command) Words() int {
	return len(c.Args) + 1
}

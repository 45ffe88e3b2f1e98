package command

import (
	"fmt"
	"strings"

	"github.com/sandevgo/calcbot/internal/core"
)

const (
	byeReply             = "Bye!"
	badOperandsReply     = "Please enter two numbers separated by a space."
	operationFailedReply = "Sorry, I could not perform the operation."
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Bye() string {
	return byeReply
}

// Help lists every operation in order, then help and quit, numbered from 1.
func (f *ResponseFormatter) Help() string {
	items := make([]string, 0, len(operations)+2)
	for _, op := range operations {
		items = append(items, fmt.Sprintf("%s 'number 1' 'number 2'", op))
	}
	items = append(items, helpCommand, quitCommand)
	return f.Numbered(items)
}

func (f *ResponseFormatter) MissingOperands(name string) string {
	return fmt.Sprintf("Please provide the numbers to perform the operation %s.", name)
}

func (f *ResponseFormatter) BadOperands() string {
	return badOperandsReply
}

func (f *ResponseFormatter) Unknown(name string) string {
	return fmt.Sprintf("Sorry I did not understand the command %s, for a list of available commands 'type help'.", name)
}

func (f *ResponseFormatter) Event(t core.ActivityType) string {
	return fmt.Sprintf("%s event detected", t)
}

func (f *ResponseFormatter) Numbered(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return f.Combine(lines...)
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n")
}

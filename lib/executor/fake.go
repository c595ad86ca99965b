package executor

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Handler func(cmd Command) ([]byte, error)

// FakeRunner answers commands with registered handlers instead of starting
// processes. Commands without a handler fail like a missing executable.
type FakeRunner struct {
	handlers map[string]Handler

	Calls []Command
}

func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		handlers: map[string]Handler{},
	}
}

func (f *FakeRunner) Handle(name string, handler Handler) *FakeRunner {
	f.handlers[name] = handler
	return f
}

func (f *FakeRunner) Run(cmd Command) ([]byte, error) {
	f.Calls = append(f.Calls, cmd)

	handler, ok := f.handlers[cmd.Name]
	if !ok {
		return nil, &ExitError{
			Command:  cmd,
			ExitCode: 127,
			Err:      errors.Errorf("%v: command not found", cmd.Name),
		}
	}

	return handler(cmd)
}

func (f *FakeRunner) CallsTo(name string) []Command {
	return lo.Filter(f.Calls, func(c Command, _ int) bool { return c.Name == name })
}

func (f *FakeRunner) Reset() {
	f.Calls = nil
}

// Fail returns a handler that exits with the given code and stderr.
func Fail(exitCode int, stderr string) Handler {
	return func(cmd Command) ([]byte, error) {
		return nil, &ExitError{
			Command:  cmd,
			ExitCode: exitCode,
			Stderr:   []byte(stderr),
			Err:      errors.Errorf("exit status %v", exitCode),
		}
	}
}

// Output returns a handler that succeeds printing the given text.
func Output(stdout string) Handler {
	return func(Command) ([]byte, error) {
		return []byte(stdout), nil
	}
}

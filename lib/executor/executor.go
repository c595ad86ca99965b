// Package executor runs the external tools used by a comparison (git, make
// and size) behind a narrow interface, so tests can replace them with canned
// output.
package executor

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/abiosoft/lineprefix"
	"github.com/pkg/errors"

	"github.com/pescuma/codesize/lib/consoles"
)

// Command describes a single tool invocation. The environment is always
// inherited from the current process.
type Command struct {
	Dir  string
	Name string
	Args []string
}

func NewCommand(dir string, name string, args ...string) Command {
	return Command{
		Dir:  dir,
		Name: name,
		Args: args,
	}
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

type Runner interface {
	// Run blocks until the command exits and returns what it wrote to stdout.
	// A non-zero exit is reported as an *ExitError.
	Run(cmd Command) ([]byte, error)
}

type ExitError struct {
	Command  Command
	ExitCode int
	Stderr   []byte
	Err      error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("'%v' failed with exit code %v", e.Command, e.ExitCode)
	if e.Command.Dir != "" {
		msg = fmt.Sprintf("'%v' in %v failed with exit code %v", e.Command, e.Command.Dir, e.ExitCode)
	}

	stderr := strings.TrimSpace(string(e.Stderr))
	if stderr != "" {
		msg += ": " + lastLines(stderr, 10)
	}

	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func lastLines(text string, count int) string {
	lines := strings.Split(text, "\n")
	if len(lines) > count {
		lines = lines[len(lines)-count:]
	}
	return strings.Join(lines, "\n")
}

type execRunner struct {
	console consoles.Console
	stream  io.Writer
}

// NewExecRunner creates a Runner that starts real processes. When stream is not
// nil, the command line and its output are also written there, each line
// prefixed with the console's current prefix.
func NewExecRunner(console consoles.Console, stream io.Writer) Runner {
	return &execRunner{
		console: console,
		stream:  stream,
	}
}

func (r *execRunner) Run(c Command) ([]byte, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer

	if r.stream != nil {
		r.console.Printf("Executing '%v'\n", strings.Join(cmd.Args, "' '"))

		prefix := lineprefix.PrefixFunc(func() string {
			return r.console.Prepare("")
		})

		cmd.Stdout = io.MultiWriter(&stdout, lineprefix.New(lineprefix.Writer(r.stream), prefix))
		cmd.Stderr = io.MultiWriter(&stderr, lineprefix.New(lineprefix.Writer(r.stream), prefix))
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), &ExitError{
				Command:  c,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.Bytes(),
				Err:      err,
			}
		}

		return stdout.Bytes(), errors.Wrapf(err, "error executing '%v'", c)
	}

	return stdout.Bytes(), nil
}

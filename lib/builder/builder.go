package builder

import (
	"github.com/pkg/errors"

	"github.com/pescuma/codesize/lib/consoles"
	"github.com/pescuma/codesize/lib/executor"
)

type Options struct {
	MakeCommand string
	Target      string
}

type Builder struct {
	console consoles.Console
	runner  executor.Runner
	opts    *Options
}

func NewBuilder(console consoles.Console, runner executor.Runner, opts *Options) *Builder {
	if opts.MakeCommand == "" {
		opts.MakeCommand = "make"
	}
	if opts.Target == "" {
		opts.Target = "lib"
	}

	return &Builder{
		console: console,
		runner:  runner,
		opts:    opts,
	}
}

// Build compiles the static libraries in dir. There is no retry: a failed
// build aborts the comparison.
func (b *Builder) Build(dir string) error {
	b.console.Printf("Building libraries in %v\n", dir)

	_, err := b.runner.Run(executor.NewCommand(dir, b.opts.MakeCommand, "-j", b.opts.Target))
	if err != nil {
		return errors.Wrapf(err, "error building libraries in %v", dir)
	}

	return nil
}

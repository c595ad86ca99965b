package sizes

import (
	"path/filepath"

	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/pescuma/codesize/lib/consoles"
	"github.com/pescuma/codesize/lib/executor"
	"github.com/pescuma/codesize/lib/model"
	"github.com/pescuma/codesize/lib/utils"
)

type Archive struct {
	Library string
	Path    string
}

// Archives are the static libraries measured for each revision, relative to
// the source tree root.
var Archives = []Archive{
	{model.LibraryCrypto, filepath.Join("library", "libmbedcrypto.a")},
	{model.LibraryX509, filepath.Join("library", "libmbedx509.a")},
	{model.LibraryTLS, filepath.Join("library", "libmbedtls.a")},
}

type Options struct {
	SizeCommand  string
	ShowProgress bool
}

type Reporter struct {
	console consoles.Console
	runner  executor.Runner
	opts    *Options
	plural  *pluralize.Client
}

func NewReporter(console consoles.Console, runner executor.Runner, opts *Options) *Reporter {
	if opts.SizeCommand == "" {
		opts.SizeCommand = "size"
	}

	return &Reporter{
		console: console,
		runner:  runner,
		opts:    opts,
		plural:  pluralize.NewClient(),
	}
}

// Report runs the size tool over every archive built in dir.
func (r *Reporter) Report(revision string, dir string) (*model.RevisionSizes, error) {
	if model.IsCurrent(revision) {
		r.console.Printf("Measuring code size in current work directory.\n")
	} else {
		r.console.Printf("Measuring code size for %v\n", revision)
	}

	result := model.NewRevisionSizes(revision)

	var bar *progressbar.ProgressBar
	if r.opts.ShowProgress {
		bar = utils.NewProgressBar(len(Archives))
	}

	for _, archive := range Archives {
		lib, err := r.measure(dir, archive)
		if err != nil {
			return nil, err
		}

		result.Add(lib)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	for _, lib := range result.Libraries() {
		r.console.Printf("%v: %v\n", lib.Name, r.plural.Pluralize("entry", lib.Len(), true))
	}

	return result, nil
}

func (r *Reporter) measure(dir string, archive Archive) (*model.LibrarySizes, error) {
	output, err := r.runner.Run(executor.NewCommand(dir, r.opts.SizeCommand, "-t", archive.Path))
	if err != nil {
		return nil, errors.Wrapf(err, "error measuring %v", archive.Path)
	}

	return Parse(archive.Library, output)
}

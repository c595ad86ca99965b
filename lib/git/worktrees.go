package git

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/pescuma/codesize/lib/consoles"
	"github.com/pescuma/codesize/lib/executor"
	"github.com/pescuma/codesize/lib/model"
)

const worktreePrefix = "temp-"

type WorktreeOptions struct {
	RepoDir    string
	GitCommand string
}

// Worktrees creates detached checkouts next to the repository so that a
// revision can be built without touching the caller's working copy.
type Worktrees struct {
	console consoles.Console
	runner  executor.Runner
	opts    *WorktreeOptions
}

func NewWorktrees(console consoles.Console, runner executor.Runner, opts *WorktreeOptions) *Worktrees {
	if opts.GitCommand == "" {
		opts.GitCommand = "git"
	}

	return &Worktrees{
		console: console,
		runner:  runner,
		opts:    opts,
	}
}

func (w *Worktrees) PathFor(revision string) string {
	if model.IsCurrent(revision) {
		return w.opts.RepoDir
	}

	return filepath.Join(w.opts.RepoDir, worktreePrefix+revision)
}

// Create returns the directory holding the sources of revision.
func (w *Worktrees) Create(revision string) (string, error) {
	if model.IsCurrent(revision) {
		w.console.Printf("Using current work directory.\n")
		return w.opts.RepoDir, nil
	}

	w.console.Printf("Creating git worktree for %v\n", revision)

	path := w.PathFor(revision)

	_, err := w.runner.Run(executor.NewCommand(w.opts.RepoDir, w.opts.GitCommand,
		"worktree", "add", "--detach", path, revision))
	if err != nil {
		return "", errors.Wrapf(err, "error creating worktree for %v", revision)
	}

	return path, nil
}

// Remove deletes a worktree created by Create. The repository directory itself
// is never removed.
func (w *Worktrees) Remove(path string) error {
	if filepath.Clean(path) == filepath.Clean(w.opts.RepoDir) {
		return nil
	}

	w.console.Printf("Removing temporary worktree %v\n", path)

	_, err := w.runner.Run(executor.NewCommand(w.opts.RepoDir, w.opts.GitCommand,
		"worktree", "remove", "--force", path))
	if err != nil {
		return errors.Wrapf(err, "error removing worktree %v", path)
	}

	return nil
}

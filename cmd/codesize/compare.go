package main

import (
	"os"

	"github.com/pescuma/codesize/lib/consoles"
	"github.com/pescuma/codesize/lib/executor"
	"github.com/pescuma/codesize/lib/git"
	"github.com/pescuma/codesize/lib/model"
	"github.com/pescuma/codesize/lib/workspace"
)

type CompareCmd struct {
	OldRev    string `short:"r" required:"" help:"Old revision for comparison."`
	NewRev    string `short:"n" default:"current" help:"New revision for comparison. Default is the current work directory, including uncommitted changes."`
	ResultDir string `short:"o" default:"comparison" help:"Directory where the comparison result is stored."`

	RecordsDir string `default:"code_size_records" help:"Directory where the code size of each revision is cached."`
	History    string `type:"path" help:"Sqlite file where the overall result of each comparison is recorded."`

	Git  string `default:"git" env:"CODESIZE_GIT" help:"Git command."`
	Make string `default:"make" env:"CODESIZE_MAKE" help:"Make command used to build the libraries."`
	Size string `default:"size" env:"CODESIZE_SIZE" help:"Size command used to measure the libraries."`

	Verbose  bool `short:"v" help:"Show the output of the executed commands."`
	Progress bool `default:"true" negatable:"" help:"Show progress while measuring."`
}

func (c *CompareCmd) Run() error {
	console := consoles.NewStdOutConsole()

	repo, err := git.Open(".")
	if err != nil {
		return err
	}

	oldRev, newRev, err := c.resolveRevisions(repo)
	if err != nil {
		return err
	}

	ws, err := workspace.NewWorkspace(console, c.newRunner(console), &workspace.Options{
		RepoDir:      ".",
		ResultDir:    c.ResultDir,
		RecordsDir:   c.RecordsDir,
		GitCommand:   c.Git,
		MakeCommand:  c.Make,
		SizeCommand:  c.Size,
		ShowProgress: c.Progress && !c.Verbose,
		HistoryFile:  c.History,
	})
	if err != nil {
		return err
	}
	defer ws.Close()

	_, err = ws.Compare(oldRev, newRev)
	return err
}

type revisionResolver interface {
	ResolveRevision(revision string) (string, error)
}

func (c *CompareCmd) resolveRevisions(repo revisionResolver) (string, string, error) {
	oldRev, err := repo.ResolveRevision(c.OldRev)
	if err != nil {
		return "", "", err
	}

	newRev := model.Current
	if c.NewRev != "" {
		newRev, err = repo.ResolveRevision(c.NewRev)
		if err != nil {
			return "", "", err
		}
	}

	return oldRev, newRev, nil
}

func (c *CompareCmd) newRunner(console consoles.Console) executor.Runner {
	if c.Verbose {
		return executor.NewExecRunner(console, os.Stdout)
	}

	return executor.NewExecRunner(console, nil)
}

package git

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/pescuma/codesize/lib/consoles"
	"github.com/pescuma/codesize/lib/executor"
	"github.com/pescuma/codesize/lib/model"
)

func TestWorktrees(t *testing.T) {
	testgroup.RunInParallel(t, &WorktreesTests{})
}

type WorktreesTests struct {
}

func (g *WorktreesTests) create(runner executor.Runner) *Worktrees {
	return NewWorktrees(consoles.NewWriterConsole(&bytes.Buffer{}), runner, &WorktreeOptions{
		RepoDir: "/src/mbedtls",
	})
}

func (g *WorktreesTests) CurrentUsesRepoDir(t *testgroup.T) {
	runner := executor.NewFakeRunner()
	w := g.create(runner)

	path, err := w.Create(model.Current)

	t.NoError(err)
	t.Equal("/src/mbedtls", path)
	t.Empty(runner.Calls)
}

func (g *WorktreesTests) CreateAddsDetachedWorktree(t *testgroup.T) {
	runner := executor.NewFakeRunner().Handle("git", executor.Output(""))
	w := g.create(runner)

	path, err := w.Create("abc123")

	t.NoError(err)
	t.Equal(filepath.Join("/src/mbedtls", "temp-abc123"), path)
	t.Equal([]executor.Command{{
		Dir:  "/src/mbedtls",
		Name: "git",
		Args: []string{"worktree", "add", "--detach", path, "abc123"},
	}}, runner.Calls)
}

func (g *WorktreesTests) CreatePropagatesFailure(t *testgroup.T) {
	runner := executor.NewFakeRunner().Handle("git", executor.Fail(128, "fatal: 'temp-abc' already exists"))
	w := g.create(runner)

	_, err := w.Create("abc")

	t.ErrorContains(err, "already exists")
}

func (g *WorktreesTests) RemoveForcesRemoval(t *testgroup.T) {
	runner := executor.NewFakeRunner().Handle("git", executor.Output(""))
	w := g.create(runner)

	err := w.Remove("/src/mbedtls/temp-abc")

	t.NoError(err)
	t.Equal([]string{"worktree", "remove", "--force", "/src/mbedtls/temp-abc"}, runner.Calls[0].Args)
}

func (g *WorktreesTests) RemoveNeverTouchesRepoDir(t *testgroup.T) {
	runner := executor.NewFakeRunner()
	w := g.create(runner)

	t.NoError(w.Remove("/src/mbedtls"))
	t.NoError(w.Remove("/src/mbedtls/"))
	t.Empty(runner.Calls)
}

func (g *WorktreesTests) UsesConfiguredGit(t *testgroup.T) {
	runner := executor.NewFakeRunner().Handle("/opt/git/bin/git", executor.Output(""))
	w := NewWorktrees(consoles.NewWriterConsole(&bytes.Buffer{}), runner, &WorktreeOptions{
		RepoDir:    "/src",
		GitCommand: "/opt/git/bin/git",
	})

	_, err := w.Create("v3.4.0")

	t.NoError(err)
	t.Len(runner.Calls, 1)
}

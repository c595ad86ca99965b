package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/codesize/lib/model"
)

func newSignature() *object.Signature {
	return &object.Signature{
		Name:  "Tester",
		Email: "tester@example.com",
		When:  time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC),
	}
}

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) plumbing.Hash {
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))

	wt, err := repo.Worktree()
	require.NoError(t, err)

	_, err = wt.Add(name)
	require.NoError(t, err)

	hash, err := wt.Commit("change "+name, &git.CommitOptions{Author: newSignature()})
	require.NoError(t, err)

	return hash
}

func newTestRepo(t *testing.T) (string, *git.Repository) {
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	return dir, repo
}

func TestResolveRevision(t *testing.T) {
	t.Parallel()

	dir, repo := newTestRepo(t)
	first := commitFile(t, repo, dir, "a.c", "int a;")
	second := commitFile(t, repo, dir, "a.c", "int a; int b;")

	_, err := repo.CreateTag("light", first, nil)
	require.NoError(t, err)
	_, err = repo.CreateTag("v1.0", first, &git.CreateTagOptions{Tagger: newSignature(), Message: "v1.0"})
	require.NoError(t, err)

	r, err := Open(dir)
	require.NoError(t, err)

	for rev, expected := range map[string]plumbing.Hash{
		"HEAD":          second,
		"HEAD~1":        first,
		"light":         first,
		"v1.0":          first,
		second.String(): second,
	} {
		hash, err := r.ResolveRevision(rev)
		require.NoError(t, err, rev)
		assert.Equal(t, expected.String(), hash, rev)
	}
}

func TestResolveRevisionKeepsCurrent(t *testing.T) {
	t.Parallel()

	dir, repo := newTestRepo(t)
	commitFile(t, repo, dir, "a.c", "int a;")

	r, err := Open(dir)
	require.NoError(t, err)

	rev, err := r.ResolveRevision(model.Current)

	require.NoError(t, err)
	assert.Equal(t, model.Current, rev)
}

func TestResolveRevisionUnknown(t *testing.T) {
	t.Parallel()

	dir, repo := newTestRepo(t)
	commitFile(t, repo, dir, "a.c", "int a;")

	r, err := Open(dir)
	require.NoError(t, err)

	_, err = r.ResolveRevision("does-not-exist")

	assert.ErrorContains(t, err, "invalid revision: does-not-exist")
}

func TestOpenFindsRepoFromSubdir(t *testing.T) {
	t.Parallel()

	dir, repo := newTestRepo(t)
	commitFile(t, repo, dir, "a.c", "int a;")
	sub := filepath.Join(dir, "library")
	require.NoError(t, os.MkdirAll(sub, 0o700))

	_, err := Open(sub)

	assert.NoError(t, err)
}

func TestOpenNotARepo(t *testing.T) {
	t.Parallel()

	_, err := Open(t.TempDir())

	assert.Error(t, err)
}

func TestCheckRepoPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.ErrorContains(t, CheckRepoPath(dir), "missing directory")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "include", "mbedtls"), 0o700))
	assert.ErrorContains(t, CheckRepoPath(dir), "library")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "library"), 0o700))
	assert.NoError(t, CheckRepoPath(dir))
}

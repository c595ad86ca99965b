package git

import (
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"

	"github.com/pescuma/codesize/lib/model"
	"github.com/pescuma/codesize/lib/utils"
)

type Repository struct {
	dir  string
	repo *git.Repository
}

func Open(dir string) (*Repository, error) {
	dir, err := utils.PathAbs(dir)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error opening git repository at %v", dir)
	}

	return &Repository{
		dir:  dir,
		repo: repo,
	}, nil
}

func (r *Repository) Dir() string {
	return r.dir
}

// ResolveRevision verifies that revision names a commit and returns its full
// hash. The current work directory is returned unchanged.
func (r *Repository) ResolveRevision(revision string) (string, error) {
	if model.IsCurrent(revision) {
		return revision, nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return "", errors.Wrapf(err, "invalid revision: %v", revision)
	}

	commit, err := r.peelToCommit(*hash)
	if err != nil {
		return "", errors.Wrapf(err, "invalid revision: %v", revision)
	}

	return commit.Hash.String(), nil
}

func (r *Repository) peelToCommit(hash plumbing.Hash) (*object.Commit, error) {
	for i := 0; i < 10; i++ {
		obj, err := r.repo.Object(plumbing.AnyObject, hash)
		if err != nil {
			return nil, err
		}

		switch o := obj.(type) {
		case *object.Commit:
			return o, nil
		case *object.Tag:
			hash = o.Target
		default:
			return nil, errors.Errorf("%v is a %v, not a commit", hash, obj.Type())
		}
	}

	return nil, errors.Errorf("too many nested tags at %v", hash)
}

// CheckRepoPath fails unless dir is the root of the library source tree.
func CheckRepoPath(dir string) error {
	for _, sub := range []string{filepath.Join("include", "mbedtls"), "library"} {
		if !utils.IsDir(filepath.Join(dir, sub)) {
			return errors.Errorf("%v does not look like the library root: missing directory %v", dir, sub)
		}
	}

	return nil
}

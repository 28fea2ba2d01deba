// Package git wraps the handful of go-git operations used to keep a
// mirrored palette committed inside an end-4 dotfiles repository.
package git

import (
	"fmt"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo represents a git repository rooted at Path. A Repo for a path
// that is not a repository is valid; IsRepo reports false and commits
// become no-ops for the caller to skip.
type Repo struct {
	Path string
	repo *gogit.Repository
}

// NewRepo opens the repository at path, if there is one.
func NewRepo(path string) *Repo {
	r := &Repo{Path: path}
	if repo, err := gogit.PlainOpen(path); err == nil {
		r.repo = repo
	}
	return r
}

// IsRepo reports whether the path is a git repository.
func (r *Repo) IsRepo() bool {
	return r.repo != nil
}

// CommitFile stages the given file (absolute or repo-relative) and
// commits it with message. Committing an unchanged file is not an
// error; the commit is skipped.
func (r *Repo) CommitFile(path, message string) error {
	if r.repo == nil {
		return fmt.Errorf("%s is not a git repository", r.Path)
	}

	rel := path
	if filepath.IsAbs(path) {
		var err error
		rel, err = filepath.Rel(r.Path, path)
		if err != nil {
			return fmt.Errorf("path %s is outside repository %s: %w", path, r.Path, err)
		}
	}
	rel = filepath.ToSlash(rel)

	worktree, err := r.repo.Worktree()
	if err != nil {
		return err
	}
	if _, err := worktree.Add(rel); err != nil {
		return fmt.Errorf("stage %s: %w", rel, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return err
	}
	if status.IsClean() {
		return nil
	}

	_, err = worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "matugenium",
			Email: "matugenium@localhost",
			When:  time.Now(),
		},
	})
	return err
}

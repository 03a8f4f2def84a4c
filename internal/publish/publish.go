// Package publish commits prepared wiki content to the wiki's own git
// repository. GitHub serves wiki pages straight from that repository, so a
// commit is the unit of publication; pushing remains the operator's call.
package publish

import (
	"log/slog"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	wberrors "git.home.luguber.info/inful/wikibuilder/internal/errors"
	"git.home.luguber.info/inful/wikibuilder/internal/logfields"
)

// Options controls the commit metadata.
type Options struct {
	Message string
	Author  string
	Email   string
}

func (o Options) withDefaults() Options {
	if o.Message == "" {
		o.Message = "Update wiki content"
	}
	if o.Author == "" {
		o.Author = "wikibuilder"
	}
	if o.Email == "" {
		o.Email = "wikibuilder@localhost"
	}
	return o
}

// HasChanges reports whether the wiki repository worktree has uncommitted
// changes.
func HasChanges(dir string) (bool, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return false, wberrors.GitOpenError(dir, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return false, wberrors.GitOpenError(dir, err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, wberrors.GitOpenError(dir, err)
	}
	return !status.IsClean(), nil
}

// CommitAll stages every change in the wiki repository and commits it.
// It returns the new commit hash, or an empty string when there was nothing
// to commit.
func CommitAll(dir string, opts Options) (string, error) {
	opts = opts.withDefaults()

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", wberrors.GitOpenError(dir, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", wberrors.GitOpenError(dir, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return "", wberrors.GitOpenError(dir, err)
	}
	if status.IsClean() {
		slog.Info("Wiki repository already up to date", logfields.Dest(dir))
		return "", nil
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return "", wberrors.GitCommitError(dir, err)
	}

	hash, err := worktree.Commit(opts.Message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  opts.Author,
			Email: opts.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", wberrors.GitCommitError(dir, err)
	}

	slog.Info("Committed wiki changes", logfields.Dest(dir), slog.String("commit", hash.String()))
	return hash.String(), nil
}

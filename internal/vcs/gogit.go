package vcs

import (
	"context"
	"errors"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/firefly-engineering/spaces/internal/logging"
	"github.com/firefly-engineering/spaces/internal/system"
)

// GoGitBackend clones in-process without a git binary.
type GoGitBackend struct {
	fs system.FileSystem
}

// GoGit returns the go-git backend. A nil fs uses system.DefaultFS.
func GoGit(fs system.FileSystem) *GoGitBackend {
	if fs == nil {
		fs = system.DefaultFS()
	}
	return &GoGitBackend{fs: fs}
}

func (b *GoGitBackend) Name() string {
	return "go-git"
}

func (b *GoGitBackend) CloneBranch(ctx context.Context, url, branch, dest string) error {
	return b.clone(ctx, dest, &git.CloneOptions{
		URL:           url,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  true,
	})
}

func (b *GoGitBackend) CloneDefault(ctx context.Context, url, dest string) error {
	return b.clone(ctx, dest, &git.CloneOptions{URL: url})
}

func (b *GoGitBackend) CheckoutNewBranch(ctx context.Context, dest, branch string) error {
	logging.Debug("go-git checkout", "path", dest, "branch", branch)

	repo, err := git.PlainOpen(dest)
	if err != nil {
		return &CommandError{Op: "go-git open", Err: err}
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return &CommandError{Op: "go-git worktree", Err: err}
	}

	err = worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
	})
	if err != nil {
		return &CommandError{Op: "go-git checkout", Err: err}
	}
	return nil
}

func (b *GoGitBackend) clone(ctx context.Context, dest string, opts *git.CloneOptions) error {
	logging.Debug("go-git clone", "url", RedactURL(opts.URL), "branch", opts.ReferenceName.Short(), "path", dest)

	// git refuses a non-empty destination; go-git would clone into it.
	if b.fs.Exists(dest) && !b.isEmptyDir(dest) {
		return &CommandError{Op: "go-git clone", Err: ErrDestinationExists}
	}

	_, err := git.PlainCloneContext(ctx, dest, false, opts)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, git.NoMatchingRefSpecError{}),
		errors.Is(err, plumbing.ErrReferenceNotFound),
		strings.Contains(err.Error(), "couldn't find remote ref"):
		err = errors.Join(ErrBranchNotFound, err)
	case errors.Is(err, git.ErrRepositoryAlreadyExists):
		err = errors.Join(ErrDestinationExists, err)
	}
	return &CommandError{Op: "go-git clone", Err: err}
}

func (b *GoGitBackend) isEmptyDir(path string) bool {
	entries, err := b.fs.ReadDir(path)
	return err == nil && len(entries) == 0
}

package clone

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"

	"github.com/firefly-engineering/spaces/internal/config"
	spaceserrors "github.com/firefly-engineering/spaces/internal/errors"
	"github.com/firefly-engineering/spaces/internal/logging"
	"github.com/firefly-engineering/spaces/internal/space"
	"github.com/firefly-engineering/spaces/internal/vcs"
)

// Orchestrator materializes spaces through a vcs.Backend.
type Orchestrator struct {
	backend   vcs.Backend
	clipboard Clipboard
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClipboard sets where the destination is copied after a clone. A
// nil clipboard disables copying.
func WithClipboard(c Clipboard) Option {
	return func(o *Orchestrator) {
		o.clipboard = c
	}
}

// New returns an Orchestrator cloning through backend. The system
// clipboard is used unless WithClipboard says otherwise.
func New(backend vcs.Backend, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		backend:   backend,
		clipboard: SystemClipboard{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Execute creates the space for repo at branchInput, forking from
// baseBranchInput when it is set. An empty branchInput selects the
// repository's default branch. It returns a message naming the
// destination.
func (o *Orchestrator) Execute(ctx context.Context, cfg *config.Config, repo config.Repo, branchInput, baseBranchInput string) (string, error) {
	branch := branchInput
	if branch == "" {
		branch = cfg.BranchFor(repo)
	}

	dest, err := space.Path(cfg.Settings.SpacesDir, repo.Name, branch)
	if err != nil {
		return "", spaceserrors.ParseFailure("invalid space destination", err)
	}

	username, token := cfg.CredentialsFor(repo)
	remote, err := AuthenticatedURL(repo.Name, username, token)
	if err != nil {
		return "", spaceserrors.ParseFailure(fmt.Sprintf("invalid repository location %s", repo.Name), err)
	}

	logging.Debug("creating space",
		"repo", repo.Name,
		"branch", branch,
		"base", baseBranchInput,
		"destination", dest,
		"backend", o.backend.Name(),
	)

	var created bool
	if baseBranchInput == "" {
		created, err = o.cloneBranch(ctx, remote, branch, dest)
	} else {
		created, err = o.forkBranch(ctx, remote, baseBranchInput, branch, dest)
	}
	if err != nil {
		return "", err
	}

	if cfg.ClipboardEnabled() && o.clipboard != nil {
		if err := o.clipboard.WriteAll(dest); err != nil {
			logging.Warn("failed to copy destination to clipboard", "error", err)
		}
	}

	if !created {
		return fmt.Sprintf("Space already exists at %s", dest), nil
	}
	return fmt.Sprintf("Cloned into %s", dest), nil
}

// cloneBranch clones branch, falling back to the default branch plus a
// new local branch when it is missing upstream. It reports false when
// dest was already populated.
func (o *Orchestrator) cloneBranch(ctx context.Context, remote, branch, dest string) (bool, error) {
	err := o.backend.CloneBranch(ctx, remote, branch, dest)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, vcs.ErrDestinationExists):
		logging.Debug("space already exists", "destination", dest)
		return false, nil
	case !errors.Is(err, vcs.ErrBranchNotFound):
		return false, classify(fmt.Sprintf("failed to clone branch %s", branch), err)
	}

	logging.Debug("branch not found upstream, cloning default branch", "branch", branch)

	err = o.backend.CloneDefault(ctx, remote, dest)
	if errors.Is(err, vcs.ErrDestinationExists) {
		return false, nil
	}
	if err != nil {
		return false, classify("failed to clone default branch", err)
	}

	if err := o.backend.CheckoutNewBranch(ctx, dest, branch); err != nil {
		return false, classify(fmt.Sprintf("failed to create branch %s", branch), err)
	}
	return true, nil
}

// forkBranch clones base and creates branch from it.
func (o *Orchestrator) forkBranch(ctx context.Context, remote, base, branch, dest string) (bool, error) {
	err := o.backend.CloneBranch(ctx, remote, base, dest)
	if errors.Is(err, vcs.ErrDestinationExists) {
		logging.Debug("space already exists", "destination", dest)
		return false, nil
	}
	if err != nil {
		return false, classify(fmt.Sprintf("failed to clone base branch %s", base), err)
	}

	if err := o.backend.CheckoutNewBranch(ctx, dest, branch); err != nil {
		return false, classify(fmt.Sprintf("failed to create branch %s from %s", branch, base), err)
	}
	return true, nil
}

// classify maps a backend failure to a typed error: the VCS could not be
// started or touch the filesystem, or it ran and failed.
func classify(msg string, err error) error {
	var execErr *exec.Error
	var pathErr *fs.PathError
	if errors.As(err, &execErr) || errors.As(err, &pathErr) {
		return spaceserrors.IOFailure(msg, err)
	}
	return spaceserrors.VCSFailure(msg, err)
}

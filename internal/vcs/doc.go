// Package vcs clones repositories into spaces.
//
// A Backend offers the three operations a space needs: clone one branch,
// clone the default branch, and create a new local branch in an existing
// clone. Two backends are available:
//
//   - Git runs the git binary through system.CommandExecutor
//   - GoGit clones in-process with github.com/go-git/go-git/v5
//
// Both report the two outcomes callers recover from as sentinel errors:
//
//	err := backend.CloneBranch(ctx, url, "feature/x", dest)
//	switch {
//	case errors.Is(err, vcs.ErrBranchNotFound):
//	    // fall back to the default branch
//	case errors.Is(err, vcs.ErrDestinationExists):
//	    // the space is already there
//	}
package vcs

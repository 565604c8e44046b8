package vcs

import (
	"context"
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/spaces/internal/logging"
	"github.com/firefly-engineering/spaces/internal/system"
)

// GitBackend runs the git binary.
type GitBackend struct {
	executor system.CommandExecutor
}

// Git returns a backend that runs git through executor. A nil executor
// uses system.DefaultExecutor.
func Git(executor system.CommandExecutor) *GitBackend {
	if executor == nil {
		executor = system.DefaultExecutor()
	}
	return &GitBackend{executor: executor}
}

func (b *GitBackend) Name() string {
	return "git"
}

func (b *GitBackend) CloneBranch(ctx context.Context, url, branch, dest string) error {
	return b.run(ctx, "git clone", "clone", "--branch", branch, "--single-branch", url, dest)
}

func (b *GitBackend) CloneDefault(ctx context.Context, url, dest string) error {
	return b.run(ctx, "git clone", "clone", url, dest)
}

func (b *GitBackend) CheckoutNewBranch(ctx context.Context, dest, branch string) error {
	return b.run(ctx, "git checkout", "-C", dest, "checkout", "-b", branch)
}

// run executes git with args. Failures are returned as a *CommandError
// named op, classified against the sentinel errors by git's output.
func (b *GitBackend) run(ctx context.Context, op string, args ...string) error {
	logged := make([]string, len(args))
	for i, a := range args {
		logged[i] = RedactURL(a)
	}
	cmdStr := shellquote.Join(append([]string{"git"}, logged...)...)
	logging.Debug("running git", "command", cmdStr)

	output, err := b.executor.Execute(ctx, "git", args...)
	if err == nil {
		return nil
	}

	out := string(output)
	cmdErr := &CommandError{
		Op:     op,
		Output: out,
		Err:    err,
	}
	switch {
	case strings.Contains(out, "not found in upstream"):
		cmdErr.Err = fmt.Errorf("%w: %w", ErrBranchNotFound, err)
	case strings.Contains(out, "already exists and is not an empty directory"):
		cmdErr.Err = fmt.Errorf("%w: %w", ErrDestinationExists, err)
	}
	logging.Debug("git failed", "command", cmdStr, "error", err, "output", strings.TrimSpace(out))
	return cmdErr
}

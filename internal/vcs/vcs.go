package vcs

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrBranchNotFound means the requested branch does not exist upstream.
	ErrBranchNotFound = errors.New("remote branch not found")

	// ErrDestinationExists means the clone target is already populated.
	ErrDestinationExists = errors.New("destination already exists")
)

// Backend materializes branches of a remote repository on disk.
type Backend interface {
	// Name returns the backend name, "git" or "go-git".
	Name() string

	// CloneBranch clones only branch of url into dest.
	CloneBranch(ctx context.Context, url, branch, dest string) error

	// CloneDefault clones url into dest at its default branch.
	CloneDefault(ctx context.Context, url, dest string) error

	// CheckoutNewBranch creates branch from HEAD in the clone at dest and
	// checks it out.
	CheckoutNewBranch(ctx context.Context, dest, branch string) error
}

// CommandError is a failed VCS operation with the output it produced.
type CommandError struct {
	Op     string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	if out := strings.TrimSpace(e.Output); out != "" {
		return fmt.Sprintf("%s: %s", e.Op, out)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// RedactURL hides the credentials of a remote URL for logging. Strings
// that are not URLs with userinfo are returned unchanged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.User("redacted")
	return u.String()
}

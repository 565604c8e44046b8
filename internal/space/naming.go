package space

import (
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
)

// Location is a repository location split into its addressing parts.
type Location struct {
	Owner string
	Name  string
}

// ParseLocation splits a repository location such as
// "github.com/acme/widgets.git" or "https://github.com/acme/widgets" into
// owner "acme" and name "widgets". Owner is empty when the location has a
// single segment.
func ParseLocation(location string) Location {
	segments := strings.Split(strings.TrimRight(location, "/"), "/")

	var loc Location
	loc.Name = strings.TrimSuffix(segments[len(segments)-1], ".git")
	if len(segments) > 1 {
		loc.Owner = segments[len(segments)-2]
	}
	return loc
}

// DirPrefix returns the prefix shared by every space directory of repoName.
func DirPrefix(repoName string) string {
	return repoName + "-"
}

// DirName returns the directory name of the space for repoName at branch.
func DirName(repoName, branch string) string {
	return DirPrefix(repoName) + branch
}

// BranchFromDir recovers the branch from a space directory name. It
// reports false when dir does not belong to repoName.
func BranchFromDir(repoName, dir string) (string, bool) {
	prefix := DirPrefix(repoName)
	if !strings.HasPrefix(dir, prefix) {
		return "", false
	}
	return strings.TrimPrefix(dir, prefix), true
}

// Path computes the destination of the space for location at branch.
// The result always stays inside root, even when owner or branch contain
// ".." segments.
func Path(root, location, branch string) (string, error) {
	loc := ParseLocation(location)
	if loc.Owner == "" || loc.Name == "" {
		return "", fmt.Errorf("repository location %q must have the form owner/name", location)
	}
	if branch == "" {
		return "", fmt.Errorf("branch for %q is empty", location)
	}

	return securejoin.SecureJoin(filepath.Clean(root), filepath.Join(loc.Owner, DirName(loc.Name, branch)))
}

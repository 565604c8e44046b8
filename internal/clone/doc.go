// Package clone turns a wizard selection into a space on disk.
//
// Orchestrator.Execute resolves the branch, computes the destination
// <spaces_dir>/<owner>/<repo>-<branch>, builds an authenticated remote
// URL and runs the clone through a vcs.Backend:
//
//   - without a base branch, the branch is cloned directly; if it does
//     not exist upstream the default branch is cloned and the branch is
//     created locally
//   - with a base branch, the base is cloned and the branch is created
//     from it
//
// A destination that already holds a clone is reported as success
// without touching it.
package clone

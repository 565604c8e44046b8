// Package space defines how spaces are named and laid out on disk.
//
// A space is one checkout of one repository at one branch. Every space
// lives at
//
//	<spacesRoot>/<owner>/<repoName>-<branch>
//
// where owner and repoName come from the last two "/"-separated segments
// of the repository location (a trailing ".git" is dropped). The clone
// orchestrator and the interactive selector both derive names through
// this package so that existing spaces can be found again by name.
//
// The package also scans the spaces root into an Index and removes it
// entirely for the purge command.
package space

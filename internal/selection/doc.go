// Package selection holds the state of the "new space" wizard.
//
// A Machine walks three stages: pick a cataloged repository, pick or
// type a branch, then optionally type a base branch to fork from. Each
// keystroke is applied through a method on the Machine; rendering is
// left to the caller, which reads the active Query.
//
//	m := selection.New(cfg.Repos, cfg.Spaces)
//	m.Input('w')
//	m.Next()
//	m.Confirm() // Advanced: now in StageBranch
//
// The Machine never fails. Input that matches nothing leaves an empty
// candidate list and confirming it is Rejected.
package selection

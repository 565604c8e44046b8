// Package tui renders the spaces terminal interface.
//
// # New Space Wizard
//
// RunNewSpace drives a selection.Machine from keyboard input and draws
// the active stage:
//
//	res, ok, err := tui.RunNewSpace(cfg.Repos, cfg.Spaces)
//	if err != nil {
//	    // terminal could not be driven
//	}
//	if !ok {
//	    // cancelled with ctrl+c
//	}
//
// Keys: type to filter, up/down or tab to move the highlight, esc to go
// back to the typed text, enter to confirm, ctrl+c to cancel.
//
// # Space Listing
//
// RenderSpaceIndex formats the spaces found on disk for "spaces list".
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - key bindings and help
//   - github.com/charmbracelet/lipgloss - Styling
package tui

package tui

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/spaces/internal/space"
)

// RenderSpaceIndex lists the spaces found under root, grouped by owner.
func RenderSpaceIndex(root string, index space.Index) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Spaces in %s\n", root))
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if index.Count() == 0 {
		sb.WriteString("No spaces found.\n")
		sb.WriteString("Create one with: spaces new\n")
		return sb.String()
	}

	for _, owner := range index.Owners() {
		dirs := index.For(owner)
		if len(dirs) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%d)\n", owner, len(dirs)))
		for _, dir := range dirs {
			sb.WriteString(fmt.Sprintf("   %s\n", dir))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/spaces/internal/config"
	"github.com/firefly-engineering/spaces/internal/fuzzy"
	"github.com/firefly-engineering/spaces/internal/selection"
	"github.com/firefly-engineering/spaces/internal/space"
)

// maxVisibleItems bounds the candidate list drawn under the prompt.
const maxVisibleItems = 10

var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				MarginBottom(1)

	wizardStepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	wizardActiveStepStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	wizardValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("39"))

	wizardDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1)
)

// wizardModel adapts a selection.Machine to bubbletea.
type wizardModel struct {
	machine *selection.Machine
	keys    keyMap
	help    help.Model
	width   int
}

func newWizardModel(repos []config.Repo, index space.Index) wizardModel {
	return wizardModel{
		machine: selection.New(repos, index),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (w wizardModel) Init() tea.Cmd {
	return nil
}

func (w wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.help.Width = msg.Width
		return w, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, w.keys.Cancel):
			w.machine.Cancel()
			return w, tea.Quit
		case key.Matches(msg, w.keys.Confirm):
			if w.machine.Confirm() == selection.Completed {
				return w, tea.Quit
			}
		case key.Matches(msg, w.keys.Next):
			w.machine.Next()
		case key.Matches(msg, w.keys.Prev):
			w.machine.Prev()
		case key.Matches(msg, w.keys.Clear):
			w.machine.ClearHighlight()
		case key.Matches(msg, w.keys.Backspace):
			w.machine.Backspace()
		case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
			for _, r := range msg.Runes {
				w.machine.Input(r)
			}
		}
	}

	return w, nil
}

func (w wizardModel) View() string {
	if w.machine.Done() {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(wizardTitleStyle.Render("spaces - New Space"))
	sb.WriteString("\n")
	sb.WriteString(w.renderStepIndicator())
	sb.WriteString("\n\n")

	if repo, ok := w.machine.SelectedRepo(); ok {
		sb.WriteString(wizardDimStyle.Render("Repository: "))
		sb.WriteString(wizardValueStyle.Render(repo.Name))
		sb.WriteString("\n")
	}

	switch w.machine.Stage() {
	case selection.StageRepo:
		q := w.machine.RepoQuery()
		sb.WriteString(renderPrompt("Repository", q.Text))
		sb.WriteString(renderList(&q.List, "No matching repositories"))
	case selection.StageBranch:
		q := w.machine.BranchQuery()
		sb.WriteString(renderPrompt("Branch", q.Text))
		sb.WriteString(renderList(&q.List, "No existing spaces, enter creates one"))
	case selection.StageBaseBranch:
		sb.WriteString(wizardDimStyle.Render("Branch: "))
		sb.WriteString(wizardValueStyle.Render(w.machine.BranchQuery().Text))
		sb.WriteString("\n")
		sb.WriteString(renderPrompt("Base branch", w.machine.BaseBranch()))
		sb.WriteString(wizardDimStyle.Render("  empty clones the branch or the default branch"))
		sb.WriteString("\n")
	}

	keys := w.keys.withList(w.machine.Stage() != selection.StageBaseBranch)
	sb.WriteString(helpStyle.Render(w.help.View(keys)))

	return sb.String()
}

func (w wizardModel) renderStepIndicator() string {
	stages := []selection.Stage{selection.StageRepo, selection.StageBranch, selection.StageBaseBranch}
	parts := make([]string, len(stages))
	for i, s := range stages {
		label := fmt.Sprintf("%d. %s", i+1, s)
		if s == w.machine.Stage() {
			parts[i] = wizardActiveStepStyle.Render(label)
		} else {
			parts[i] = wizardStepStyle.Render(label)
		}
	}
	return strings.Join(parts, wizardStepStyle.Render(" > "))
}

func renderPrompt(label, text string) string {
	return fmt.Sprintf("%s %s%s\n", wizardDimStyle.Render(label+":"), text, wizardDimStyle.Render("█"))
}

func renderList[T any](l *selection.List[T], empty string) string {
	if len(l.Items) == 0 {
		return wizardDimStyle.Render("  "+empty) + "\n"
	}

	start := 0
	if h := l.Highlighted(); h >= maxVisibleItems {
		start = h - maxVisibleItems + 1
	}
	end := min(start+maxVisibleItems, len(l.Items))

	var sb strings.Builder
	for i := start; i < end; i++ {
		item := l.Items[i]
		if i == l.Highlighted() {
			sb.WriteString(selectedStyle.Render("> " + item.Label))
		} else {
			sb.WriteString("  " + highlightMatches(item))
		}
		sb.WriteString("\n")
	}
	if rest := len(l.Items) - end; rest > 0 {
		sb.WriteString(wizardDimStyle.Render(fmt.Sprintf("  ... %d more", rest)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// highlightMatches styles the label bytes the query matched.
func highlightMatches[T any](m fuzzy.Match[T]) string {
	if len(m.Positions) == 0 {
		return m.Label
	}

	matched := make(map[int]bool, len(m.Positions))
	for _, p := range m.Positions {
		matched[p] = true
	}

	var sb strings.Builder
	for i, r := range m.Label {
		if matched[i] {
			sb.WriteString(matchStyle.Render(string(r)))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// RunNewSpace runs the interactive new space wizard. It reports false
// when the user cancelled.
func RunNewSpace(repos []config.Repo, index space.Index) (selection.Result, bool, error) {
	p := tea.NewProgram(newWizardModel(repos, index), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return selection.Result{}, false, err
	}

	res, ok := finalModel.(wizardModel).machine.Result()
	return res, ok, nil
}

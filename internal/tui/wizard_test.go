package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/spaces/internal/config"
	"github.com/firefly-engineering/spaces/internal/fuzzy"
	"github.com/firefly-engineering/spaces/internal/selection"
	"github.com/firefly-engineering/spaces/internal/space"
)

func newTestWizard() wizardModel {
	repos := []config.Repo{
		{Name: "github.com/acme/widgets"},
		{Name: "github.com/acme/gadgets"},
	}
	index := space.Index{"acme": {"widgets-main"}}
	return newWizardModel(repos, index)
}

// send applies msgs in order and returns the final model and last command.
func send(w wizardModel, msgs ...tea.Msg) (wizardModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var m tea.Model
		m, cmd = w.Update(msg)
		w = m.(wizardModel)
	}
	return w, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestWizardStageTransitions(t *testing.T) {
	t.Run("repo to branch", func(t *testing.T) {
		w, cmd := send(newTestWizard(),
			runes("widg"),
			tea.KeyMsg{Type: tea.KeyDown},
			tea.KeyMsg{Type: tea.KeyEnter},
		)
		if isQuit(cmd) {
			t.Error("should not quit after repo stage")
		}
		if w.machine.Stage() != selection.StageBranch {
			t.Errorf("stage = %v, want StageBranch", w.machine.Stage())
		}
	})

	t.Run("enter without highlight rejected", func(t *testing.T) {
		w, cmd := send(newTestWizard(), runes("widg"), tea.KeyMsg{Type: tea.KeyEnter})
		if isQuit(cmd) {
			t.Error("should not quit")
		}
		if w.machine.Stage() != selection.StageRepo {
			t.Error("should stay on StageRepo")
		}
	})

	t.Run("existing space completes", func(t *testing.T) {
		w, cmd := send(newTestWizard(),
			runes("widg"),
			tea.KeyMsg{Type: tea.KeyTab},
			tea.KeyMsg{Type: tea.KeyEnter},
			tea.KeyMsg{Type: tea.KeyDown},
			tea.KeyMsg{Type: tea.KeyEnter},
		)
		if !isQuit(cmd) {
			t.Fatal("should quit after selecting an existing space")
		}
		res, ok := w.machine.Result()
		if !ok || res.Branch != "main" {
			t.Errorf("Result() = (%+v, %v), want branch main", res, ok)
		}
	})

	t.Run("new branch with base", func(t *testing.T) {
		w, cmd := send(newTestWizard(),
			runes("/gad"),
			tea.KeyMsg{Type: tea.KeyDown},
			tea.KeyMsg{Type: tea.KeyEnter},
			runes("feature/x"),
			tea.KeyMsg{Type: tea.KeyEnter},
			runes("dev"),
			tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
			tea.KeyMsg{Type: tea.KeyBackspace},
			tea.KeyMsg{Type: tea.KeyEnter},
		)
		if !isQuit(cmd) {
			t.Fatal("should quit after base branch stage")
		}
		res, _ := w.machine.Result()
		if res.Branch != "feature/x" || res.BaseBranch != "dev" {
			t.Errorf("Result() = %+v", res)
		}
	})
}

func TestWizardEscClearsHighlight(t *testing.T) {
	w, _ := send(newTestWizard(), tea.KeyMsg{Type: tea.KeyUp})
	if w.machine.RepoQuery().List.Highlighted() != 1 {
		t.Fatalf("Highlighted() = %d, want 1", w.machine.RepoQuery().List.Highlighted())
	}

	w, _ = send(w, tea.KeyMsg{Type: tea.KeyEsc})
	if w.machine.RepoQuery().List.Highlighted() != -1 {
		t.Errorf("Highlighted() = %d, want -1", w.machine.RepoQuery().List.Highlighted())
	}
}

func TestWizardCancel(t *testing.T) {
	w, cmd := send(newTestWizard(), runes("wid"), tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatal("ctrl+c should quit")
	}
	if !w.machine.Aborted() {
		t.Error("machine should be aborted")
	}
	if _, ok := w.machine.Result(); ok {
		t.Error("cancelled wizard should have no result")
	}
	if w.View() != "" {
		t.Error("View() should be empty once done")
	}
}

func TestWizardView(t *testing.T) {
	w := newTestWizard()

	view := w.View()
	for _, want := range []string{"New Space", "Repository:", "github.com/acme/widgets", "github.com/acme/gadgets", "enter"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	w, _ = send(w, runes("zzz"))
	if !strings.Contains(w.View(), "No matching repositories") {
		t.Error("View() should report no matches")
	}
}

func TestWizardViewBranchStage(t *testing.T) {
	w, _ := send(newTestWizard(),
		runes("widg"),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	view := w.View()
	if !strings.Contains(view, "Branch:") {
		t.Error("View() should prompt for a branch")
	}
	if !strings.Contains(view, "widgets-main") {
		t.Error("View() should list the existing space")
	}
}

func TestHighlightMatches(t *testing.T) {
	m := fuzzy.Match[string]{
		Candidate: fuzzy.Candidate[string]{Label: "widgets"},
	}
	if got := highlightMatches(m); got != "widgets" {
		t.Errorf("highlightMatches() = %q, want plain label", got)
	}

	m.Positions = []int{0, 1}
	got := highlightMatches(m)
	if !strings.Contains(got, "dgets") {
		t.Errorf("highlightMatches() = %q, should keep unmatched runes", got)
	}
}

func TestRenderListWindow(t *testing.T) {
	items := make([]fuzzy.Candidate[int], 15)
	for i := range items {
		items[i] = fuzzy.Candidate[int]{Label: strings.Repeat("x", i+1), Payload: i}
	}
	repos := make([]config.Repo, 15)
	for i := range repos {
		repos[i] = config.Repo{Name: "github.com/acme/" + items[i].Label}
	}

	m := selection.New(repos, nil)
	out := renderList(&m.RepoQuery().List, "none")
	if !strings.Contains(out, "5 more") {
		t.Errorf("renderList() = %q, want overflow line", out)
	}
}

func TestRenderSpaceIndex(t *testing.T) {
	out := RenderSpaceIndex("/home/u/spaces", space.Index{
		"acme":  {"gadgets-dev", "widgets-main"},
		"other": {"tools-main"},
	})

	for _, want := range []string{"/home/u/spaces", "acme (2)", "widgets-main", "other (1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSpaceIndex() missing %q", want)
		}
	}
	if strings.Index(out, "acme") > strings.Index(out, "other") {
		t.Error("owners should be sorted")
	}

	empty := RenderSpaceIndex("/home/u/spaces", space.Index{})
	if !strings.Contains(empty, "No spaces found.") {
		t.Errorf("RenderSpaceIndex() = %q, want empty notice", empty)
	}
}

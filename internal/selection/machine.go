package selection

import (
	"github.com/firefly-engineering/spaces/internal/config"
	"github.com/firefly-engineering/spaces/internal/fuzzy"
	"github.com/firefly-engineering/spaces/internal/space"
)

// Stage identifies the active step of the wizard.
type Stage int

const (
	StageRepo Stage = iota
	StageBranch
	StageBaseBranch
)

func (s Stage) String() string {
	switch s {
	case StageRepo:
		return "repository"
	case StageBranch:
		return "branch"
	case StageBaseBranch:
		return "base branch"
	default:
		return "unknown"
	}
}

// Outcome is the effect of a Confirm.
type Outcome int

const (
	// Rejected leaves the machine unchanged.
	Rejected Outcome = iota
	// Advanced moved to the next stage.
	Advanced
	// Completed finished the wizard; Result is available.
	Completed
)

// Result is the selection handed to the clone orchestrator. An empty
// Branch means the repository's default branch; an empty BaseBranch
// means no fork point.
type Result struct {
	Repo       config.Repo
	Branch     string
	BaseBranch string
}

// Machine is the wizard state. The zero value is not usable; call New.
type Machine struct {
	stage     Stage
	completed bool
	aborted   bool

	repos  []fuzzy.Candidate[config.Repo]
	spaces space.Index

	repoQuery   Query[config.Repo]
	branchQuery Query[string]
	baseBranch  string

	repo   config.Repo
	branch string
}

// New starts a wizard over the cataloged repositories, offering the
// spaces in index for reuse.
func New(repos []config.Repo, index space.Index) *Machine {
	candidates := make([]fuzzy.Candidate[config.Repo], len(repos))
	for i, r := range repos {
		candidates[i] = fuzzy.Candidate[config.Repo]{Label: r.Name, Payload: r}
	}

	m := &Machine{
		stage:  StageRepo,
		repos:  candidates,
		spaces: index,
	}
	m.filterRepos()
	return m
}

// Stage returns the active stage.
func (m *Machine) Stage() Stage { return m.stage }

// Done reports whether the wizard completed or was cancelled.
func (m *Machine) Done() bool { return m.completed || m.aborted }

// Aborted reports whether the wizard was cancelled.
func (m *Machine) Aborted() bool { return m.aborted }

// RepoQuery returns the repository stage query.
func (m *Machine) RepoQuery() *Query[config.Repo] { return &m.repoQuery }

// BranchQuery returns the branch stage query.
func (m *Machine) BranchQuery() *Query[string] { return &m.branchQuery }

// BaseBranch returns the text typed in the base branch stage.
func (m *Machine) BaseBranch() string { return m.baseBranch }

// SelectedRepo returns the repository chosen in the first stage.
func (m *Machine) SelectedRepo() (config.Repo, bool) {
	return m.repo, m.stage > StageRepo
}

// Result returns the selection once the wizard has completed.
func (m *Machine) Result() (Result, bool) {
	if !m.completed {
		return Result{}, false
	}
	return Result{Repo: m.repo, Branch: m.branch, BaseBranch: m.baseBranch}, true
}

// Input appends r to the active stage's text.
func (m *Machine) Input(r rune) {
	if m.Done() {
		return
	}
	switch m.stage {
	case StageRepo:
		m.repoQuery.Text += string(r)
		m.filterRepos()
	case StageBranch:
		m.branchQuery.Text += string(r)
		m.filterBranches()
	case StageBaseBranch:
		m.baseBranch += string(r)
	}
}

// Backspace removes the last rune of the active stage's text.
func (m *Machine) Backspace() {
	if m.Done() {
		return
	}
	switch m.stage {
	case StageRepo:
		m.repoQuery.Text = dropLastRune(m.repoQuery.Text)
		m.filterRepos()
	case StageBranch:
		m.branchQuery.Text = dropLastRune(m.branchQuery.Text)
		m.filterBranches()
	case StageBaseBranch:
		m.baseBranch = dropLastRune(m.baseBranch)
	}
}

// Next highlights the next candidate of the active stage.
func (m *Machine) Next() {
	switch m.stage {
	case StageRepo:
		m.repoQuery.List.Next()
	case StageBranch:
		m.branchQuery.List.Next()
	}
}

// Prev highlights the previous candidate of the active stage.
func (m *Machine) Prev() {
	switch m.stage {
	case StageRepo:
		m.repoQuery.List.Prev()
	case StageBranch:
		m.branchQuery.List.Prev()
	}
}

// ClearHighlight returns the active stage to typed-text mode.
func (m *Machine) ClearHighlight() {
	switch m.stage {
	case StageRepo:
		m.repoQuery.List.Clear()
	case StageBranch:
		m.branchQuery.List.Clear()
	}
}

// Cancel aborts the wizard. No Result is produced.
func (m *Machine) Cancel() {
	if m.completed {
		return
	}
	m.aborted = true
}

// Confirm accepts the active stage.
func (m *Machine) Confirm() Outcome {
	if m.Done() {
		return Rejected
	}
	switch m.stage {
	case StageRepo:
		return m.confirmRepo()
	case StageBranch:
		return m.confirmBranch()
	default:
		m.completed = true
		return Completed
	}
}

func (m *Machine) confirmRepo() Outcome {
	if sel, ok := m.repoQuery.List.Selected(); ok {
		m.enterBranch(sel.Payload)
		return Advanced
	}
	return Rejected
}

func (m *Machine) confirmBranch() Outcome {
	repoName := m.repo.Location().Name

	if sel, ok := m.branchQuery.List.Selected(); ok {
		m.branch = sel.Payload
		m.completed = true
		return Completed
	}

	text := m.branchQuery.Text
	if text == "" {
		m.completed = true
		return Completed
	}

	m.branch = text
	for _, dir := range m.spaces.For(m.repo.Location().Owner) {
		if dir == space.DirName(repoName, text) {
			m.completed = true
			return Completed
		}
	}

	m.stage = StageBaseBranch
	return Advanced
}

func (m *Machine) enterBranch(repo config.Repo) {
	m.repo = repo
	m.stage = StageBranch
	m.branchQuery = Query[string]{}
	m.filterBranches()
}

func (m *Machine) filterRepos() {
	m.repoQuery.List = newList(fuzzy.FilterMatches(m.repos, m.repoQuery.Text))
}

// filterBranches narrows the repository's existing spaces by the
// composite key "<repoName>-<text>".
func (m *Machine) filterBranches() {
	loc := m.repo.Location()

	var candidates []fuzzy.Candidate[string]
	for _, dir := range m.spaces.For(loc.Owner) {
		if branch, ok := space.BranchFromDir(loc.Name, dir); ok && branch != "" {
			candidates = append(candidates, fuzzy.Candidate[string]{Label: dir, Payload: branch})
		}
	}

	m.branchQuery.List = newList(fuzzy.FilterMatches(candidates, space.DirName(loc.Name, m.branchQuery.Text)))
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

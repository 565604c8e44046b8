// Package testutil provides test utilities for command tests
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/spaces/internal/app"
	"github.com/firefly-engineering/spaces/internal/config"
	"github.com/firefly-engineering/spaces/internal/system"
)

// TestEnv holds the test environment
type TestEnv struct {
	T          *testing.T
	TmpDir     string
	SpacesDir  string
	ConfigPath string
	Executor   *system.MockExecutor
	Clipboard  *Clipboard
	App        *app.App

	repos    []config.Repo
	settings []string
}

// Clipboard records what was copied.
type Clipboard struct {
	Text string
}

func (c *Clipboard) WriteAll(text string) error {
	c.Text = text
	return nil
}

// NewTestEnv creates a test environment with a temporary spaces
// directory, a mock executor and a recording clipboard. The app default
// is replaced for the duration of the test.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()
	spacesDir := filepath.Join(tmpDir, "spaces")
	if err := os.MkdirAll(spacesDir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", spacesDir, err)
	}

	mockExec := system.NewMockExecutor()
	clipboard := &Clipboard{}

	testApp := app.New(
		app.WithExecutor(mockExec),
		app.WithClipboard(clipboard),
	)

	// Save original default and set test app
	originalDefault := app.Default
	app.SetDefault(testApp)
	t.Cleanup(func() {
		app.SetDefault(originalDefault)
	})

	env := &TestEnv{
		T:          t,
		TmpDir:     tmpDir,
		SpacesDir:  spacesDir,
		ConfigPath: filepath.Join(tmpDir, config.DefaultConfigFileName),
		Executor:   mockExec,
		Clipboard:  clipboard,
		App:        testApp,
	}
	env.writeConfig()

	return env
}

// AddRepo catalogs a repository and rewrites the config file.
func (e *TestEnv) AddRepo(repo config.Repo) {
	e.T.Helper()
	e.repos = append(e.repos, repo)
	e.writeConfig()
}

// SetSetting adds a "key: value" line to the config section and
// rewrites the config file.
func (e *TestEnv) SetSetting(key, value string) {
	e.T.Helper()
	e.settings = append(e.settings, key+": "+value)
	e.writeConfig()
}

func (e *TestEnv) writeConfig() {
	e.T.Helper()

	var sb strings.Builder
	sb.WriteString("config:\n")
	sb.WriteString("  spaces_dir: " + e.SpacesDir + "\n")
	for _, line := range e.settings {
		sb.WriteString("  " + line + "\n")
	}

	if len(e.repos) == 0 {
		sb.WriteString("repos: []\n")
	} else {
		sb.WriteString("repos:\n")
	}
	for _, r := range e.repos {
		sb.WriteString("  - name: " + r.Name + "\n")
		if r.DefaultBranch != "" {
			sb.WriteString("    default_branch: " + r.DefaultBranch + "\n")
		}
		if r.Username != "" {
			sb.WriteString("    username: " + r.Username + "\n")
		}
		if r.Token != "" {
			sb.WriteString("    token: " + r.Token + "\n")
		}
	}

	if err := os.WriteFile(e.ConfigPath, []byte(sb.String()), 0644); err != nil {
		e.T.Fatalf("Failed to write config: %v", err)
	}
}

// CreateSpace creates an empty space directory and returns its path.
func (e *TestEnv) CreateSpace(owner, dir string) string {
	e.T.Helper()

	path := filepath.Join(e.SpacesDir, owner, dir)
	if err := os.MkdirAll(path, 0755); err != nil {
		e.T.Fatalf("Failed to create space: %v", err)
	}
	return path
}

// SpaceExists checks whether a space directory exists.
func (e *TestEnv) SpaceExists(owner, dir string) bool {
	_, err := os.Stat(filepath.Join(e.SpacesDir, owner, dir))
	return err == nil
}

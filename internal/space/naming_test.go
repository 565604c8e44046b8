package space

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		location string
		want     Location
	}{
		{"github.com/acme/widgets", Location{Owner: "acme", Name: "widgets"}},
		{"github.com/acme/widgets.git", Location{Owner: "acme", Name: "widgets"}},
		{"https://github.com/acme/widgets.git", Location{Owner: "acme", Name: "widgets"}},
		{"https://gitlab.com/group/sub/tool/", Location{Owner: "sub", Name: "tool"}},
		{"acme/widgets.git.git", Location{Owner: "acme", Name: "widgets.git"}},
		{"widgets", Location{Name: "widgets"}},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			if got := ParseLocation(tt.location); got != tt.want {
				t.Errorf("ParseLocation(%q) = %+v, want %+v", tt.location, got, tt.want)
			}
		})
	}
}

func TestBranchFromDir(t *testing.T) {
	tests := []struct {
		repo, dir  string
		wantBranch string
		wantOK     bool
	}{
		{"widgets", "widgets-main", "main", true},
		{"widgets", "widgets-feature-widgets-x", "feature-widgets-x", true},
		{"widgets", "gadgets-main", "", false},
		{"my-repo", "my-repo-dev", "dev", true},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			branch, ok := BranchFromDir(tt.repo, tt.dir)
			if branch != tt.wantBranch || ok != tt.wantOK {
				t.Errorf("BranchFromDir(%q, %q) = (%q, %v), want (%q, %v)", tt.repo, tt.dir, branch, ok, tt.wantBranch, tt.wantOK)
			}
		})
	}
}

func TestPath(t *testing.T) {
	got, err := Path("/home/u/spaces", "github.com/acme/widgets", "main")
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if got != "/home/u/spaces/acme/widgets-main" {
		t.Errorf("Path = %q, want %q", got, "/home/u/spaces/acme/widgets-main")
	}
}

func TestPathIsPure(t *testing.T) {
	root := t.TempDir()
	first, err := Path(root, "github.com/acme/widgets.git", "feature/x")
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	second, err := Path(root, "github.com/acme/widgets.git", "feature/x")
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if first != second {
		t.Errorf("Path not stable: %q != %q", first, second)
	}
	if want := filepath.Join(root, "acme", "widgets-feature", "x"); first != want {
		t.Errorf("Path = %q, want %q", first, want)
	}
}

func TestPathNoCollisions(t *testing.T) {
	root := t.TempDir()
	owners := []string{"acme", "globex"}
	repos := []string{"widgets", "gadgets"}
	branches := []string{"main", "develop", "feature-x"}

	seen := make(map[string]string)
	for _, owner := range owners {
		for _, repo := range repos {
			for _, branch := range branches {
				key := owner + "/" + repo + "@" + branch
				p, err := Path(root, "github.com/"+owner+"/"+repo, branch)
				if err != nil {
					t.Fatalf("Path(%s) error: %v", key, err)
				}
				if prev, ok := seen[p]; ok {
					t.Errorf("Path collision between %s and %s: %s", prev, key, p)
				}
				seen[p] = key
			}
		}
	}
}

func TestPathStaysInsideRoot(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		location string
		branch   string
	}{
		{"dotdot branch", "github.com/acme/widgets", "../../../../etc"},
		{"dotdot owner", "github.com/../widgets", "main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Path(root, tt.location, tt.branch)
			if err != nil {
				t.Fatalf("Path error: %v", err)
			}
			if !strings.HasPrefix(p, root+string(filepath.Separator)) {
				t.Errorf("Path %q escapes root %q", p, root)
			}
		})
	}
}

func TestPathRejectsIncompleteInput(t *testing.T) {
	if _, err := Path("/spaces", "widgets", "main"); err == nil {
		t.Error("expected error for location without owner")
	}
	if _, err := Path("/spaces", "github.com/acme/widgets", ""); err == nil {
		t.Error("expected error for empty branch")
	}
}

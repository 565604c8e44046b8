package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	spaceserrors "github.com/firefly-engineering/spaces/internal/errors"
	"github.com/firefly-engineering/spaces/internal/space"
	"github.com/firefly-engineering/spaces/internal/system"
)

const (
	// EnvConfigFile overrides the config file location.
	EnvConfigFile         = "SPACES_CONFIG"
	DefaultConfigFileName = ".spaces.yml"
	DefaultSpacesDirName  = "spaces"
	DefaultBranch         = "master"
	VCSGit                = "git"
	VCSGoGit              = "go-git"
)

// Settings holds the catalog-wide defaults from the "config" section.
type Settings struct {
	SpacesDir       string `yaml:"spaces_dir" toml:"spaces_dir"`
	DefaultBranch   string `yaml:"default_branch" toml:"default_branch"`
	DefaultUsername string `yaml:"default_username" toml:"default_username"`
	DefaultToken    string `yaml:"default_token" toml:"default_token"`

	// VCS selects the clone backend: "git" (default) or "go-git".
	VCS string `yaml:"vcs" toml:"vcs"`

	// Clipboard copies the destination after a clone; nil means true.
	Clipboard *bool `yaml:"clipboard" toml:"clipboard"`
}

// Validate checks that the Settings are valid.
func (s *Settings) Validate() error {
	if s.SpacesDir == "" {
		return fmt.Errorf("spaces_dir is required")
	}

	validVCS := map[string]bool{VCSGit: true, VCSGoGit: true, "": true}
	if !validVCS[s.VCS] {
		return fmt.Errorf("invalid vcs: %s (must be %s or %s)", s.VCS, VCSGit, VCSGoGit)
	}

	return nil
}

// Repo is one cataloged repository.
type Repo struct {
	Name          string `yaml:"name" toml:"name"`
	DefaultBranch string `yaml:"default_branch,omitempty" toml:"default_branch,omitempty"`
	Username      string `yaml:"username,omitempty" toml:"username,omitempty"`
	Token         string `yaml:"token,omitempty" toml:"token,omitempty"`
}

// Location returns the owner/name addressing parts of the repository.
func (r Repo) Location() space.Location {
	return space.ParseLocation(r.Name)
}

// Validate checks that the Repo is valid.
func (r *Repo) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}

	loc := r.Location()
	if loc.Owner == "" || loc.Name == "" {
		return fmt.Errorf("name %q must end in owner/repository", r.Name)
	}

	return nil
}

// Config is the parsed configuration file plus the spaces found on disk.
type Config struct {
	Settings Settings `yaml:"config" toml:"config"`
	Repos    []Repo   `yaml:"repos" toml:"repos"`

	// Spaces is populated by Load from the spaces directory.
	Spaces space.Index `yaml:"-" toml:"-"`

	// Path is the file the configuration was read from.
	Path string `yaml:"-" toml:"-"`
}

// Validate checks the settings and every repository.
func (c *Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	seen := make(map[string]bool, len(c.Repos))
	for i := range c.Repos {
		if err := c.Repos[i].Validate(); err != nil {
			return fmt.Errorf("repos[%d]: %w", i, err)
		}
		if seen[c.Repos[i].Name] {
			return fmt.Errorf("repos[%d]: duplicate repository %s", i, c.Repos[i].Name)
		}
		seen[c.Repos[i].Name] = true
	}

	return nil
}

// FindRepo returns the cataloged repository with the given location.
func (c *Config) FindRepo(name string) (Repo, bool) {
	for _, r := range c.Repos {
		if r.Name == name {
			return r, true
		}
	}
	return Repo{}, false
}

// BranchFor returns the branch used for repo when none was requested.
func (c *Config) BranchFor(repo Repo) string {
	if repo.DefaultBranch != "" {
		return repo.DefaultBranch
	}
	return c.Settings.DefaultBranch
}

// CredentialsFor returns the username and token for repo; repository
// values take precedence over the catalog defaults.
func (c *Config) CredentialsFor(repo Repo) (username, token string) {
	username = c.Settings.DefaultUsername
	if repo.Username != "" {
		username = repo.Username
	}
	token = c.Settings.DefaultToken
	if repo.Token != "" {
		token = repo.Token
	}
	return username, token
}

// ClipboardEnabled reports whether the destination should be copied.
func (c *Config) ClipboardEnabled() bool {
	return c.Settings.Clipboard == nil || *c.Settings.Clipboard
}

// UseGoGit reports whether clones run in-process through go-git.
func (c *Config) UseGoGit() bool {
	return c.Settings.VCS == VCSGoGit
}

// ResolvePath picks the config file: the explicit flag value, then
// $SPACES_CONFIG, then ~/.spaces.yml.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return expandHome(flagValue)
	}
	if env := os.Getenv(EnvConfigFile); env != "" {
		return expandHome(env)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigFileName), nil
}

// Parse decodes a configuration document. The format follows the file
// extension: .toml is TOML, anything else YAML.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}

	cfg.Path = path
	return &cfg, nil
}

// applyDefaults fills unset settings and expands "~" in spaces_dir.
func (c *Config) applyDefaults() error {
	if c.Settings.DefaultBranch == "" {
		c.Settings.DefaultBranch = DefaultBranch
	}
	if c.Settings.VCS == "" {
		c.Settings.VCS = VCSGit
	}

	if c.Settings.SpacesDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to determine home directory: %w", err)
		}
		c.Settings.SpacesDir = filepath.Join(home, DefaultSpacesDirName)
		return nil
	}

	dir, err := expandHome(c.Settings.SpacesDir)
	if err != nil {
		return err
	}
	c.Settings.SpacesDir = filepath.Clean(dir)
	return nil
}

// Load reads, validates and completes the configuration at path, then
// scans the spaces directory into Spaces.
func Load(fsys system.FileSystem, path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, spaceserrors.ConfigError(fmt.Sprintf("failed to read config %s", path), err)
	}

	cfg, err := Parse(data, path)
	if err != nil {
		return nil, spaceserrors.ConfigError(fmt.Sprintf("failed to parse config %s", path), err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, spaceserrors.ConfigError("failed to apply config defaults", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, spaceserrors.ConfigError(fmt.Sprintf("invalid config %s", path), err)
	}

	cfg.Spaces, err = space.ScanIndex(fsys, cfg.Settings.SpacesDir)
	if err != nil {
		return nil, spaceserrors.IOFailure("failed to scan spaces", err)
	}

	return cfg, nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Package config loads the spaces configuration file.
//
// # Location
//
// The file is chosen by ResolvePath: the --config flag, then the
// SPACES_CONFIG environment variable, then ~/.spaces.yml.
//
// # Format
//
// YAML is the default. A file ending in .toml is decoded as TOML with the
// same keys:
//
//	config:
//	  spaces_dir: ~/spaces
//	  default_branch: master
//	  default_username: bot
//	  default_token: s3cret
//	  vcs: git          # or go-git
//	  clipboard: true
//	repos:
//	  - name: github.com/acme/widgets
//	    default_branch: main
//	    username: alice
//	    token: t0k3n
//
// Repository level username, token and default_branch override the
// defaults in the config section.
//
// # Spaces
//
// Load also scans spaces_dir and stores the existing spaces, grouped by
// owner, in Config.Spaces.
package config

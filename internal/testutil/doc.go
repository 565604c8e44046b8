// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// Config fixtures are embedded using go:embed:
//
//	fixtures/valid_config.yml
//	fixtures/valid_config.toml
//	fixtures/invalid_config.yml
//
// Helper functions parse them into config objects:
//
//	cfg, err := testutil.ValidConfig()
//	cfg, err := testutil.ValidTOMLConfig()
//	cfg, err := testutil.InvalidConfig()
//
// # Test Environment
//
// NewTestEnv sets up a temporary spaces directory and config file, and
// installs an app.App with a mock executor and recording clipboard as
// app.Default until the test ends:
//
//	env := testutil.NewTestEnv(t)
//	env.AddRepo(config.Repo{Name: "github.com/acme/widgets"})
//	env.CreateSpace("acme", "widgets-main")
package testutil

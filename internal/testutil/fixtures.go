package testutil

import (
	"embed"

	"github.com/firefly-engineering/spaces/internal/config"
)

//go:embed fixtures/*
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadConfigFixture parses a config fixture. The format follows the
// fixture's extension. The result is not validated.
func LoadConfigFixture(name string) (*config.Config, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return config.Parse(data, name)
}

// ValidConfig returns the valid YAML config fixture.
func ValidConfig() (*config.Config, error) {
	return LoadConfigFixture("valid_config.yml")
}

// ValidTOMLConfig returns the valid TOML config fixture.
func ValidTOMLConfig() (*config.Config, error) {
	return LoadConfigFixture("valid_config.toml")
}

// InvalidConfig returns a config fixture that fails validation.
func InvalidConfig() (*config.Config, error) {
	return LoadConfigFixture("invalid_config.yml")
}

package cmd

import (
	"github.com/firefly-engineering/spaces/internal/app"
	"github.com/firefly-engineering/spaces/internal/config"
	"github.com/firefly-engineering/spaces/internal/errors"
	"github.com/firefly-engineering/spaces/internal/logging"
)

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)

// loadConfig resolves and loads the config file through the app's
// filesystem.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	path, err := config.ResolvePath(flags.configPath)
	if err != nil {
		return nil, errors.ConfigError("failed to locate config", err)
	}

	logging.Debug("loading config", "path", path)
	return app.Default.LoadConfig(path)
}

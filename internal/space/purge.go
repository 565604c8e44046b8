package space

import (
	"fmt"
	"io/fs"

	"github.com/firefly-engineering/spaces/internal/errors"
	"github.com/firefly-engineering/spaces/internal/logging"
	"github.com/firefly-engineering/spaces/internal/system"
)

// Purge removes the spaces root and everything below it.
func Purge(fsys system.FileSystem, root string) (string, error) {
	if !fsys.Exists(root) {
		return "", errors.IOFailure(fmt.Sprintf("no spaces found in %s", root), fs.ErrNotExist)
	}
	if !fsys.IsDir(root) {
		return "", errors.IOFailure(fmt.Sprintf("spaces path %s is not a directory", root), nil)
	}

	logging.Debug("purging spaces", "root", root)

	if err := fsys.RemoveAll(root); err != nil {
		return "", errors.IOFailure(fmt.Sprintf("failed to purge spaces in %s", root), err)
	}

	return fmt.Sprintf("all spaces in %s purged successfully", root), nil
}

// Package must provides best-effort variants of common cleanup operations
// whose failures should be logged but not propagated.
package must

import (
	"io"
	"os"

	"routemask/pkg/logging"
)

// Close closes a closer, logging any error that occurs.
func Close(c io.Closer, logger *logging.Logger) {
	err := c.Close()
	if err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

// OSRemove removes the named file or empty directory, logging any error that
// occurs.
func OSRemove(name string, logger *logging.Logger) {
	err := os.Remove(name)
	if err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}

// OSRemoveAll removes the named path and any children it contains, logging
// any error that occurs.
func OSRemoveAll(name string, logger *logging.Logger) {
	err := os.RemoveAll(name)
	if err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}

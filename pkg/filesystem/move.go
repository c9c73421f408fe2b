package filesystem

import (
	"os"

	"github.com/pkg/errors"

	"routemask/pkg/logging"
)

// Move relocates a filesystem entry (file or directory) from oldPath to
// newPath. It attempts an atomic rename first and falls back to a copy and
// delete when the source and target reside on different devices. Any rename
// failure other than a cross-device error is returned unmodified. The fallback
// is not atomic: a failure partway through can leave content at both paths.
// Move returns the number of bytes copied by the fallback, which is zero when
// the rename path succeeds.
func Move(oldPath, newPath string, logger *logging.Logger) (int64, error) {
	// Attempt an atomic rename.
	err := os.Rename(oldPath, newPath)
	if err == nil {
		return 0, nil
	} else if !isCrossDeviceError(err) {
		return 0, err
	}

	// The source and target live on different devices, so fall back to a copy
	// followed by removal of the source.
	logger.Debugf("Falling back to copy for cross-device move of %s", oldPath)
	info, err := os.Lstat(oldPath)
	if err != nil {
		return 0, errors.Wrap(err, "unable to probe move source")
	}
	var copied int64
	if info.IsDir() {
		if copied, err = CopyTree(oldPath, newPath, logger); err != nil {
			return copied, errors.Wrap(err, "unable to copy directory across devices")
		}
		if err = os.RemoveAll(oldPath); err != nil {
			return copied, errors.Wrap(err, "unable to remove directory after copy")
		}
	} else {
		if copied, err = CopyFile(oldPath, newPath, logger); err != nil {
			return copied, errors.Wrap(err, "unable to copy file across devices")
		}
		if err = os.Remove(oldPath); err != nil {
			return copied, errors.Wrap(err, "unable to remove file after copy")
		}
	}

	// Success.
	return copied, nil
}

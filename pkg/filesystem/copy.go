package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"routemask/pkg/logging"
	"routemask/pkg/must"
)

// CopyFile copies a regular file from source to target, preserving the
// source's permission bits. It returns the number of bytes copied. If the copy
// fails partway through, a best-effort attempt is made to remove the target.
func CopyFile(source, target string, logger *logging.Logger) (int64, error) {
	// Grab source metadata so that permissions can be replicated.
	info, err := os.Lstat(source)
	if err != nil {
		return 0, errors.Wrap(err, "unable to probe copy source")
	} else if !info.Mode().IsRegular() {
		return 0, errors.Errorf("copy source is not a regular file: %s", source)
	}

	// Open the source for reading and defer its closure.
	sourceFile, err := os.Open(source)
	if err != nil {
		return 0, errors.Wrap(err, "unable to open copy source")
	}
	defer must.Close(sourceFile, logger)

	// Open the target for writing with the source's permissions.
	targetFile, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, errors.Wrap(err, "unable to create copy target")
	}

	// Copy contents.
	copied, err := io.Copy(targetFile, sourceFile)
	if err != nil {
		must.Close(targetFile, logger)
		must.OSRemove(target, logger)
		return copied, errors.Wrap(err, "unable to copy contents")
	}

	// Close out the target.
	if err := targetFile.Close(); err != nil {
		must.OSRemove(target, logger)
		return copied, errors.Wrap(err, "unable to close copy target")
	}

	// Success.
	return copied, nil
}

// CopyTree recursively copies the directory rooted at source to target,
// replicating directories, regular files, and symbolic links. Directory and
// file permission bits are preserved. It returns the total number of file
// content bytes copied.
func CopyTree(source, target string, logger *logging.Logger) (int64, error) {
	var copied int64
	err := filepath.Walk(source, func(path string, info os.FileInfo, err error) error {
		// Propagate any walk error for this entry.
		if err != nil {
			return err
		}

		// Compute the corresponding path beneath the target root.
		relative, err := filepath.Rel(source, path)
		if err != nil {
			return errors.Wrap(err, "unable to compute relative path")
		}
		destination := filepath.Join(target, relative)

		// Replicate the entry.
		if info.IsDir() {
			return os.MkdirAll(destination, info.Mode().Perm())
		} else if info.Mode()&os.ModeSymlink != 0 {
			linkTarget, err := os.Readlink(path)
			if err != nil {
				return errors.Wrap(err, "unable to read symbolic link target")
			}
			return os.Symlink(linkTarget, destination)
		} else if !info.Mode().IsRegular() {
			return errors.Errorf("unsupported filesystem entry: %s", path)
		}
		n, err := CopyFile(path, destination, logger)
		copied += n
		return err
	})
	return copied, err
}

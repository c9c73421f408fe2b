// Package masking implements the hiding and restoration of route files around
// build steps. A target is hidden by prefixing the final segment of its path
// with an underscore, which build tooling treats as an instruction to ignore
// the file; restoring strips the prefix again.
package masking

import (
	"path"
	"strings"
)

// hiddenPrefix is the prefix applied to the final segment of a hidden path.
const hiddenPrefix = "_"

// HiddenPath computes the hidden counterpart of a visible target path by
// prefixing its final segment with an underscore. The directory portion is
// preserved unchanged. Paths are slash-separated.
func HiddenPath(target string) string {
	directory, name := path.Split(target)
	return directory + hiddenPrefix + name
}

// VisiblePath inverts HiddenPath, stripping the underscore prefix from the
// final segment of a hidden path. Paths whose final segment carries no prefix
// are returned unchanged.
func VisiblePath(hidden string) string {
	directory, name := path.Split(hidden)
	return directory + strings.TrimPrefix(name, hiddenPrefix)
}

// IsHidden indicates whether or not the final segment of a path carries the
// hidden prefix.
func IsHidden(target string) bool {
	_, name := path.Split(target)
	return strings.HasPrefix(name, hiddenPrefix)
}

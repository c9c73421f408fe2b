package routemask

import (
	"fmt"
)

const (
	// VersionMajor represents the current major version of routemask.
	VersionMajor = 0
	// VersionMinor represents the current minor version of routemask.
	VersionMinor = 2
	// VersionPatch represents the current patch version of routemask.
	VersionPatch = 0
	// VersionTag represents a tag to be appended to the routemask version
	// string. It must not contain spaces. If empty, no tag is appended to the
	// version string.
	VersionTag = ""
)

// Version provides a stringified version of the current routemask version.
var Version string

// init performs global initialization.
func init() {
	// Compute the stringified version.
	if VersionTag != "" {
		Version = fmt.Sprintf("%d.%d.%d-%s", VersionMajor, VersionMinor, VersionPatch, VersionTag)
	} else {
		Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	}
}

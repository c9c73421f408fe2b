package routemask

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for routemask. It
// is set automatically based on the ROUTEMASK_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("ROUTEMASK_DEBUG") == "1"
}

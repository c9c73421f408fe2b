// Package buildmode determines which build is being prepared, selecting
// between a standard server build and a static export build.
package buildmode

import (
	"os"

	"github.com/joho/godotenv"
)

// Mode encodes the build mode for which route files are being toggled.
type Mode uint8

const (
	// ModeServer indicates a standard server build. It is the default when no
	// export flag is set.
	ModeServer Mode = iota
	// ModeExport indicates a static export build.
	ModeExport
)

// String provides a human-readable representation of a build mode.
func (m Mode) String() string {
	switch m {
	case ModeServer:
		return "server"
	case ModeExport:
		return "export"
	default:
		return "unknown"
	}
}

// EnvironmentVariable is the environment variable consulted by Resolve. The
// values "1" and "true" select the static export build mode; any other value
// (or its absence) selects the server build mode.
const EnvironmentVariable = "ROUTEMASK_EXPORT"

// environmentFileName is the name of the optional environment file loaded from
// the working directory before the process environment is consulted.
const environmentFileName = ".env"

// Resolve determines the build mode for the current process. The process
// environment takes precedence; a .env file in the working directory can
// supply the flag when it isn't set in the environment.
func Resolve() Mode {
	// Grab the flag value, falling back to the environment file if the process
	// environment doesn't define it. Errors reading the environment file
	// (including its absence) simply leave the flag unset.
	value, present := os.LookupEnv(EnvironmentVariable)
	if !present {
		if fileEnvironment, err := godotenv.Read(environmentFileName); err == nil {
			value = fileEnvironment[EnvironmentVariable]
		}
	}

	// Classify the value.
	if value == "1" || value == "true" {
		return ModeExport
	}
	return ModeServer
}

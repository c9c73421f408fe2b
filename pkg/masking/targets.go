package masking

import (
	"os"

	"github.com/pkg/errors"

	"routemask/pkg/buildmode"
	"routemask/pkg/encoding"
)

// ConfigurationFileName is the name of the optional per-project configuration
// file that overrides the built-in target lists. It is loaded from the working
// directory.
const ConfigurationFileName = "routemask.yml"

// exportTargets are the default targets hidden for static export builds.
var exportTargets = []string{
	"app/[slug]/opengraph-image.tsx",
	"app/[slug]/opengraph-image.png",
}

// serverTargets are the default targets hidden for server builds.
var serverTargets = []string{
	"app/[slug]/opengraph-image.png/route.ts",
}

// Configuration mirrors the routemask.yml schema. When the file is present,
// its lists replace the built-in defaults entirely.
type Configuration struct {
	// Export lists the targets hidden when building a static export.
	Export []string `yaml:"export"`
	// Server lists the targets hidden for a standard server build.
	Server []string `yaml:"server"`
}

// TargetsForMode returns the ordered list of target paths applicable to the
// specified build mode, honoring any routemask.yml in the working directory.
// A missing configuration file selects the built-in defaults; a malformed one
// is an error.
func TargetsForMode(mode buildmode.Mode) ([]string, error) {
	configuration := &Configuration{}
	if err := encoding.LoadAndUnmarshalYAML(ConfigurationFileName, configuration); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "unable to load target configuration")
		}
		configuration = &Configuration{
			Export: exportTargets,
			Server: serverTargets,
		}
	}
	if mode == buildmode.ModeExport {
		return configuration.Export, nil
	}
	return configuration.Server, nil
}

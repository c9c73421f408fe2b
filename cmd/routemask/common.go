package main

import (
	"os"

	"github.com/pkg/errors"

	"routemask/pkg/buildmode"
	"routemask/pkg/logging"
	"routemask/pkg/masking"
)

// createToggler assembles a toggler for the current build mode, rooted at the
// process working directory. The build mode is resolved exactly once here, at
// the start of the selected action.
func createToggler(logger *logging.Logger) (*masking.Toggler, error) {
	// Resolve the build mode and its target list.
	mode := buildmode.Resolve()
	targets, err := masking.TargetsForMode(mode)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Build mode %s with %d target(s)", mode, len(targets))

	// Targets are specified relative to the working directory.
	workingDirectory, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "unable to determine working directory")
	}

	// Create the toggler.
	return masking.NewToggler(workingDirectory, targets, logger), nil
}

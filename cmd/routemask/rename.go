package main

import (
	"github.com/spf13/cobra"

	"routemask/cmd"
	"routemask/pkg/logging"
)

// renameMain is the entry point for the rename command.
func renameMain(_ *cobra.Command, _ []string) error {
	// Assemble the toggler for the current build mode.
	logger := logging.RootLogger.Sublogger("rename")
	toggler, err := createToggler(logger)
	if err != nil {
		return err
	}

	// Hide every target. Per-target failures have already been logged as
	// warnings and don't affect the exit status.
	toggler.HideAll()

	// Success.
	return nil
}

var renameCommand = &cobra.Command{
	Use:   "rename",
	Short: "Hide the route files excluded from the current build mode",
	Args:  cobra.NoArgs,
	Run:   cmd.Mainify(renameMain),
}

var renameConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := renameCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&renameConfiguration.help, "help", "h", false, "Show help information")
}

package main

import (
	"github.com/spf13/cobra"

	"routemask/cmd"
	"routemask/pkg/logging"
)

// restoreMain is the entry point for the restore command.
func restoreMain(_ *cobra.Command, _ []string) error {
	// Assemble the toggler for the current build mode.
	logger := logging.RootLogger.Sublogger("restore")
	toggler, err := createToggler(logger)
	if err != nil {
		return err
	}

	// Restore every target. Per-target failures have already been logged as
	// warnings and don't affect the exit status.
	toggler.RestoreAll()

	// Success.
	return nil
}

var restoreCommand = &cobra.Command{
	Use:   "restore",
	Short: "Restore previously hidden route files to their original names",
	Args:  cobra.NoArgs,
	Run:   cmd.Mainify(restoreMain),
}

var restoreConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := restoreCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&restoreConfiguration.help, "help", "h", false, "Show help information")
}

package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"routemask/pkg/routemask"
)

// rootMain is the entry point for the root command. An action is mandatory, so
// reaching this handler means none was given.
func rootMain(command *cobra.Command, _ []string) error {
	// Print help information, then fail: invoking routemask without an action
	// is a usage error and must not exit with a success status.
	command.Help()
	return errors.New("an action (rename or restore) must be specified")
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:          "routemask",
	Version:      routemask.Version,
	Short:        "Hide and restore route files around build steps",
	RunE:         rootMain,
	SilenceUsage: true,
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap. This utility is designed to run inside
	// build scripts, where Windows Explorer is not a concern.
	cobra.MousetrapHelpText = ""

	// Set the template used by the version flag.
	rootCommand.SetVersionTemplate("routemask version {{ .Version }}\n")

	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Disable Cobra's completion command.
	rootCommand.CompletionOptions.DisableDefaultCmd = true

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		renameCommand,
		restoreCommand,
		listCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"routemask/cmd"
	"routemask/pkg/logging"
)

// listMain is the entry point for the list command.
func listMain(_ *cobra.Command, _ []string) error {
	// Validate the filter pattern, if any.
	pattern := listConfiguration.filter
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return errors.Errorf("invalid filter pattern: %s", pattern)
	}

	// Assemble the toggler for the current build mode.
	toggler, err := createToggler(logging.RootLogger.Sublogger("list"))
	if err != nil {
		return err
	}

	// Print the state of each (matching) target.
	for _, state := range toggler.Status() {
		if pattern != "" {
			if matched, err := doublestar.Match(pattern, state.Target); err != nil {
				return errors.Wrap(err, "unable to apply filter pattern")
			} else if !matched {
				continue
			}
		}
		fmt.Printf("%s: %s\n", state.Target, state.State)
	}

	// Success.
	return nil
}

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "Show the current state of each target for the build mode",
	Args:  cobra.NoArgs,
	Run:   cmd.Mainify(listMain),
}

var listConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
	// filter is an optional doublestar pattern restricting which targets are
	// shown.
	filter string
}

func init() {
	// Grab a handle for the command line flags.
	flags := listCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&listConfiguration.help, "help", "h", false, "Show help information")

	// Wire up list flags.
	flags.StringVarP(&listConfiguration.filter, "filter", "f", "", "Only show targets matching this pattern")
}

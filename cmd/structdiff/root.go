package main

import (
	"github.com/spf13/cobra"
)

// cliOptions holds every flag value buildRootCmd binds, passed to run
// as a single bundle rather than threaded individually.
type cliOptions struct {
	fromFormat string
	toFormat   string

	noKeyEdits         bool
	noListEdits        bool
	noListEditDistance bool

	color   bool
	noColor bool
	bright  bool

	joinLists     bool
	joinDictItems bool

	format string
}

// buildRootCmd assembles the structdiff command tree: a single command
// taking two positional file paths, mirroring the original tool's flat
// CLI surface rather than a git-style verb hierarchy.
func buildRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "structdiff FROM_FILE TO_FILE",
		Short: "Compare two structured documents and print a bounded, colorized edit script",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usageErrorf("expected FROM_FILE and TO_FILE, got %d argument(s)", len(args))
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.fromFormat, "from-format", "",
		"input format of FROM_FILE (json|yaml|xml|csv); auto-detected from its extension when omitted")
	flags.StringVar(&opts.toFormat, "to-format", "",
		"input format of TO_FILE (json|yaml|xml|csv); auto-detected from its extension when omitted")
	flags.BoolVar(&opts.noKeyEdits, "no-key-edits", false,
		"never match mapping entries across differing keys")
	flags.BoolVar(&opts.noListEdits, "no-list-edits", false,
		"alias for --no-list-edit-distance")
	flags.BoolVar(&opts.noListEditDistance, "no-list-edit-distance", false,
		"pair list elements positionally instead of searching for the cheapest alignment")
	flags.BoolVar(&opts.color, "color", true, "colorize the edit script")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colorized output, overriding --color")
	flags.BoolVar(&opts.bright, "bright", false, "use high-intensity ANSI colors")
	flags.BoolVar(&opts.joinLists, "join-lists", false, "render an unchanged list on one line")
	flags.BoolVar(&opts.joinDictItems, "join-dict-items", false, "render an unchanged mapping on one line")
	flags.StringVar(&opts.format, "format", "text", `output rendering; only "text" is implemented`)

	return cmd
}

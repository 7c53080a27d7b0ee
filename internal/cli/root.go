// Package cli provides the cobra commands for podium.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// DefaultDeck is opened when no deck argument is given
const DefaultDeck = "slides.md"

type presentOptions struct {
	configPath string
	start      int
	noWatch    bool
	theme      string
	logFile    string
	verbose    bool
}

// NewRootCommand builds the podium command tree
func NewRootCommand() *cobra.Command {
	opts := &presentOptions{}

	root := &cobra.Command{
		Use:   "podium [deck.md]",
		Short: "Present markdown slides in the terminal",
		Long: `Podium presents a markdown file as a slide deck in the terminal.

Slides are separated by a line containing only ---. An optional YAML front
matter block sets the title and per-slide animations. Speaker notes follow
a line containing only ???.

Examples:
  podium talk.md              # Present talk.md
  podium --start 4 talk.md    # Open on the fourth slide
  podium outline talk.md      # Print the slide titles`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := DefaultDeck
			if len(args) == 1 {
				path = args[0]
			}
			return runPresent(cmd.Context(), path, opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: .podium.toml next to the deck, then the user config)")
	flags.IntVarP(&opts.start, "start", "s", 1, "slide number to open on")
	flags.BoolVar(&opts.noWatch, "no-watch", false, "do not reload the deck when it changes")
	flags.StringVar(&opts.theme, "theme", "", "glamour style: auto, dark, light, notty, dracula, ... or a JSON style file")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default: podium.log in the user cache dir)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newOutlineCommand())
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

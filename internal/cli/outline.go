package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"podium/internal/deck"
	"podium/internal/domain"
	"podium/internal/ui/animation"
)

func newOutlineCommand() *cobra.Command {
	var withNotes bool

	cmd := &cobra.Command{
		Use:   "outline deck.md",
		Short: "Print the slide titles of a deck",
		Long: `Print one line per slide with its number, title and entry animation.

Examples:
  podium outline talk.md
  podium outline --notes talk.md   # Include speaker notes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			return writeOutline(cmd.OutOrStdout(), d, withNotes)
		},
	}

	cmd.Flags().BoolVarP(&withNotes, "notes", "n", false, "include speaker notes")
	return cmd
}

func writeOutline(w io.Writer, d *domain.Deck, withNotes bool) error {
	if d.Meta.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", d.Meta.Title); err != nil {
			return err
		}
	}

	table, _ := animation.BuildTable(d, nil)
	width := len(fmt.Sprint(d.Len()))

	for _, s := range d.Slides {
		line := fmt.Sprintf("%*d. %s", width, s.Index+1, s.Label())
		if e := table.Lookup(s.Index); e != animation.None {
			line += " [" + e.String() + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if withNotes && s.Notes != "" {
			for _, n := range strings.Split(s.Notes, "\n") {
				if _, err := fmt.Fprintf(w, "%*s   %s\n", width, "", n); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

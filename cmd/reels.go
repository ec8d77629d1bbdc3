package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"github.com/xvierd/reel-detox/internal/domain"
)

const defaultReelsWidth = 80

var reelsCmd = &cobra.Command{
	Use:   "reels [query]",
	Short: "List the mindful reels",
	Long: `List the reels the session view rotates through.
With a query, only reels whose title, prompt or anchor fuzzy-match it are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		reels := filterReels(app.deck, query)
		out := cmd.OutOrStdout()
		if len(reels) == 0 {
			fmt.Fprintf(out, "No reels match %q\n", query)
			return nil
		}
		printReels(out, reels, outputWidth())
		return nil
	},
}

// reelSource exposes the searchable text of each reel to fuzzy.
type reelSource domain.Deck

func (s reelSource) String(i int) string {
	r := s[i]
	return r.Title + " " + r.Prompt + " " + r.Anchor
}

func (s reelSource) Len() int { return len(s) }

// filterReels returns the deck reels matching query, best match first.
// An empty query returns the whole deck in order.
func filterReels(deck domain.Deck, query string) []domain.Reel {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]domain.Reel(nil), deck...)
	}

	matches := fuzzy.FindFrom(query, reelSource(deck))
	result := make([]domain.Reel, 0, len(matches))
	for _, match := range matches {
		result = append(result, deck[match.Index])
	}
	return result
}

// outputWidth returns the terminal width, or a fixed width when stdout is not a terminal.
func outputWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultReelsWidth
	}
	return w
}

func printReels(w io.Writer, reels []domain.Reel, width int) {
	cyan := color.New(color.FgCyan, color.Bold)
	bold := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)

	body := lipgloss.NewStyle().Width(max(width-4, 20)).PaddingLeft(4)
	for i, r := range reels {
		if i > 0 {
			fmt.Fprintln(w)
		}
		cyan.Fprintf(w, "%-8s ", r.ID)
		bold.Fprintln(w, r.Title)
		fmt.Fprintln(w, body.Render(r.Prompt))
		faint.Fprintln(w, body.Render(r.Anchor))
	}
}

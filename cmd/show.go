package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/pokerdeck/internal/card"
	"github.com/arcanaland/pokerdeck/internal/deck"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display information about a single card",
	Long: `Show displays the rank, suit, colour and canonical position of a card.
Cards are written as "<RANK> of <SUIT>"; matching ignores case.

Examples:
  pokerdeck show "ACE of Clubs"
  pokerdeck show queen of hearts`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.ParseCard(strings.Join(args, " "))
		if err != nil {
			return err
		}

		position, err := deck.CanonicalIndex(c)
		if err != nil {
			return err
		}

		displayCard(cmd.OutOrStdout(), c, position)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// displayCard prints the card details as labelled lines
func displayCard(w io.Writer, c card.Card, position int) {
	lines := []string{
		color.CyanString("Card:     ") + cardString(c),
		color.CyanString("Rank:     ") + color.HiWhiteString("%s (%d)", c.Rank(), int(c.Rank())),
		color.CyanString("Suit:     ") + color.HiWhiteString("%s %s (%d)", c.Suit(), suitSymbol(c.Suit()), int(c.Suit())),
		color.CyanString("Colour:   ") + color.HiWhiteString("%s", c.Suit().Color()),
		color.CyanString("Position: ") + color.HiWhiteString("%d of %d", position, deck.Size),
	}

	fmt.Fprintln(w)
	for _, line := range lines {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
}

func suitSymbol(s card.Suit) string {
	switch s {
	case card.Clubs:
		return "♣"
	case card.Diamonds:
		return "♦"
	case card.Spades:
		return "♠"
	case card.Hearts:
		return "♥"
	default:
		return "•"
	}
}

// cardString colours a card by its suit
func cardString(c card.Card) string {
	if c.Suit().Color() == card.Red {
		return color.HiRedString("%s", c)
	}
	return color.HiWhiteString("%s", c)
}

// terminalWidth returns the width of w when it is a terminal, otherwise 80
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// printColumns lays cards out row by row in as many columns as fit in width
func printColumns(w io.Writer, cards []card.Card, width int) {
	if len(cards) == 0 {
		return
	}

	cells := make([]string, len(cards))
	cellWidth := 0
	for i, c := range cards {
		cells[i] = fmt.Sprintf("%2d. %s", i+1, cardString(c))
		cellWidth = max(cellWidth, len(stripAnsi(cells[i])))
	}

	spacing := 2
	columns := max(1, (width-2)/(cellWidth+spacing))

	for i, cell := range cells {
		if i%columns == 0 {
			fmt.Fprint(w, "  ")
		}
		fmt.Fprint(w, cell)
		if i%columns == columns-1 || i == len(cells)-1 {
			fmt.Fprintln(w)
			continue
		}
		fmt.Fprint(w, strings.Repeat(" ", cellWidth-len(stripAnsi(cell))+spacing))
	}
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

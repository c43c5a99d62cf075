package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pokerdeck/internal/deck"
)

// demoShortSwaps is the deliberately weak shuffle shown first by the demo
const demoShortSwaps = 10

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through drawing, shuffling, resetting and draining a deck",
	Long: `Demo runs the deck through its whole lifecycle: random draws, a short shuffle,
a reset back to canonical order, a full shuffle and finally popping every card.
The full shuffle uses the configured swap count unless --swaps is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout(), newDeck(), cfg.Preview, swapsFlag(cmd))
	},
}

func init() {
	RootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Int("swaps", deck.DefaultSwaps, "Number of swaps for the full shuffle")
}

func runDemo(w io.Writer, d *deck.Deck, preview, swaps int) error {
	heading(w, "Five random cards in the deck:")
	for i := 0; i < 5; i++ {
		c, err := d.DrawRandom()
		if err != nil {
			return fmt.Errorf("error drawing random card: %w", err)
		}
		fmt.Fprintln(w, "  "+cardString(c))
	}

	if err := printFirst(w, d, preview); err != nil {
		return err
	}

	heading(w, fmt.Sprintf("Shuffling the deck, %d swaps allowed.", demoShortSwaps))
	d.Shuffle(demoShortSwaps)
	if err := printFirst(w, d, preview); err != nil {
		return err
	}

	heading(w, "Resetting the deck.")
	d.Reset()
	if err := printFirst(w, d, preview); err != nil {
		return err
	}

	heading(w, fmt.Sprintf("Shuffling the deck, %d swaps allowed.", swaps))
	d.Shuffle(swaps)
	if err := printFirst(w, d, preview); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCards in the deck: %d\n", d.Len())

	heading(w, "All cards in the deck:")
	for !d.IsEmpty() {
		c, err := d.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "  "+cardString(c))
	}

	fmt.Fprintf(w, "\nCards in the deck: %d\n", d.Len())
	return nil
}

func heading(w io.Writer, text string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, color.CyanString("%s", text))
}

// printFirst prints the first n cards without removing them
func printFirst(w io.Writer, d *deck.Deck, n int) error {
	heading(w, fmt.Sprintf("First %d:", n))
	for i := 0; i < n && i < d.Len(); i++ {
		c, err := d.PeekAt(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "  "+cardString(c))
	}
	return nil
}

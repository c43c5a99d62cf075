package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/pokerdeck/internal/card"
	"github.com/arcanaland/pokerdeck/internal/deck"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle a fresh deck and deal cards from the top",
	Long: `Deal shuffles a fresh deck and pops cards off the end of it.
With --random, cards are sampled at random and left in the deck, so the same
card can come up more than once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count < 0 {
			return fmt.Errorf("count must not be negative, got %d", count)
		}
		random, _ := cmd.Flags().GetBool("random")

		d := newDeck()
		d.Shuffle(swapsFlag(cmd))

		cards := make([]card.Card, 0, min(count, deck.Size))
		for i := 0; i < count; i++ {
			var c card.Card
			var err error
			if random {
				c, err = d.DrawRandom()
			} else {
				c, err = d.Pop()
			}
			if err != nil {
				return fmt.Errorf("error dealing card %d of %d: %w", i+1, count, err)
			}
			cards = append(cards, c)
		}

		out := cmd.OutOrStdout()
		printColumns(out, cards, terminalWidth(out))
		logger.Info("dealt cards", "count", len(cards), "remaining", d.Len())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().IntP("count", "n", 5, "Number of cards to deal")
	dealCmd.Flags().BoolP("random", "r", false, "Sample random cards without removing them")
	dealCmd.Flags().Int("swaps", deck.DefaultSwaps, "Number of swaps for the shuffle")
}

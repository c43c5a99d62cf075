package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/pokerdeck/internal/deck"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every card in the deck",
	Long: `List prints the deck in canonical order, or shuffled when --shuffle is given.
Cards are laid out in columns that fit the terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeck()

		if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
			d.Shuffle(swapsFlag(cmd))
		}

		out := cmd.OutOrStdout()
		printColumns(out, d.Cards(), terminalWidth(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("shuffle", "s", false, "Shuffle the deck before listing")
	listCmd.Flags().Int("swaps", deck.DefaultSwaps, "Number of swaps when shuffling")
}

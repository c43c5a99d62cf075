package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/pokerdeck/internal/card"
	"github.com/arcanaland/pokerdeck/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [card]...",
	Short: "Check a list of cards for duplicates and missing cards",
	Long: `Validate checks that a list of cards could be (part of) a single 52-card deck.
Duplicates and more than 52 cards are errors; missing cards are warnings.
Each argument is one card written as "<RANK> of <SUIT>".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards := make([]card.Card, 0, len(args))
		for i, arg := range args {
			c, err := card.ParseCard(arg)
			if err != nil {
				return fmt.Errorf("argument %d: %w", i+1, err)
			}
			cards = append(cards, c)
		}

		results := validator.Validate(cards)
		logger.Debug("validated cards", "cards", len(cards), "errors", len(results.Errors), "warnings", len(results.Warnings))

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ %d cards form a valid deck.\n", len(cards))
			if results.Canonical {
				fmt.Fprintln(out, "The cards are in canonical order.")
			}
		} else {
			fmt.Fprintf(out, "❌ %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

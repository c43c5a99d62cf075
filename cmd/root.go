package cmd

import (
	"log/slog"
	"math/rand/v2"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/pokerdeck/internal/config"
	"github.com/arcanaland/pokerdeck/internal/deck"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "pokerdeck",
	Short: "Shuffle, draw and inspect a standard 52-card deck",
	Long: `Pokerdeck is a command-line tool around a standard 52-card playing deck.
It creates decks in canonical order (ACE to KING, Clubs, Diamonds, Spades, Hearts),
shuffles them, deals from them and checks card lists for duplicates.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			cfg.Seed = seed
		}

		setupOutput(cmd, cfg.LogLevel)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Uint64("seed", 0, "Seed for the random source (0 picks one at random)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setupOutput configures color and the structured logger for a command run
func setupOutput(cmd *cobra.Command, level string) {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}

	handler := pterm.NewSlogHandler(pterm.DefaultLogger.
		WithLevel(ptermLevel(level)).
		WithWriter(cmd.ErrOrStderr()))
	logger = slog.New(handler)
}

func ptermLevel(level string) pterm.LogLevel {
	switch level {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// newDeck creates a deck wired to the configured seed and logger
func newDeck() *deck.Deck {
	opts := []deck.Option{deck.WithLogger(logger)}
	if cfg.Seed != 0 {
		opts = append(opts, deck.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	logger.Debug("created deck", "seed", cfg.Seed)
	return deck.New(opts...)
}

// swapsFlag returns the --swaps flag when set, otherwise the configured count
func swapsFlag(cmd *cobra.Command) int {
	if cmd.Flags().Changed("swaps") {
		swaps, _ := cmd.Flags().GetInt("swaps")
		return swaps
	}
	return cfg.Swaps
}

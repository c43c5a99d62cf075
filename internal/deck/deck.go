// Package deck implements a standard 52-card playing deck with shuffle, draw and reset.
//
// A Deck is not safe for concurrent use. Callers sharing one across goroutines
// must hold a lock for the duration of every call.
package deck

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/arcanaland/pokerdeck/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// DefaultSwaps is the number of transpositions used when no swap count is configured
const DefaultSwaps = 1000

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmptyDeck       = errors.New("deck is empty")
)

// Deck represents an ordered stack of unique playing cards
type Deck struct {
	cards  []card.Card
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Deck
type Option func(*Deck)

// WithRand sets the random source used by Shuffle and DrawRandom
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) {
		d.rng = rng
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deck) {
		d.logger = logger
	}
}

// New creates a full deck in canonical order: ranks ACE through KING,
// and within each rank the suits Clubs, Diamonds, Spades, Hearts.
func New(opts ...Option) *Deck {
	d := &Deck{}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	d.fill()
	return d
}

// Canonical returns the 52 cards in canonical order
func Canonical() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, r := range card.Ranks() {
		for _, s := range card.Suits() {
			cards = append(cards, card.MustCard(r, s))
		}
	}
	return cards
}

// CanonicalIndex returns the position of c in a freshly created deck
func CanonicalIndex(c card.Card) (int, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %s", card.ErrInvalidValue, c)
	}
	return (int(c.Rank())-1)*len(card.Suits()) + int(c.Suit()), nil
}

func (d *Deck) fill() {
	d.cards = Canonical()
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty reports whether every card has been popped
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// PeekAt returns the card at position i without removing it
func (d *Deck) PeekAt(i int) (card.Card, error) {
	if i < 0 || i >= len(d.cards) {
		return card.Card{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(d.cards))
	}
	return d.cards[i], nil
}

// DrawRandom returns a uniformly chosen card without removing it
func (d *Deck) DrawRandom() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrEmptyDeck
	}
	return d.cards[d.rng.IntN(len(d.cards))], nil
}

// Pop removes and returns the last card
func (d *Deck) Pop() (card.Card, error) {
	n := len(d.cards)
	if n == 0 {
		return card.Card{}, ErrEmptyDeck
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

// Shuffle performs swaps random transpositions. Each picks two independent
// positions, which may coincide. Many swaps approach a uniform permutation;
// a handful (say 10) leaves most of the deck in place.
func (d *Deck) Shuffle(swaps int) {
	n := len(d.cards)
	if swaps <= 0 || n < 2 {
		return
	}
	for range swaps {
		i, j := d.rng.IntN(n), d.rng.IntN(n)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.logger.Debug("shuffled deck", "swaps", swaps, "cards", n)
}

// Reset restores all 52 cards in canonical order
func (d *Deck) Reset() {
	popped := Size - len(d.cards)
	d.fill()
	d.logger.Debug("reset deck", "restored", popped)
}

// All iterates over the cards in their current order. Each call starts a new pass.
func (d *Deck) All() iter.Seq2[int, card.Card] {
	return func(yield func(int, card.Card) bool) {
		for i := 0; i < len(d.cards); i++ {
			if !yield(i, d.cards[i]) {
				return
			}
		}
	}
}

// Cards returns a copy of the cards in their current order
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// String lists the cards one per line
func (d *Deck) String() string {
	lines := make([]string, len(d.cards))
	for i, c := range d.cards {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

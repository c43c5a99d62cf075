package deck_test

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/pokerdeck/internal/card"
	"github.com/arcanaland/pokerdeck/internal/deck"
	"github.com/arcanaland/pokerdeck/internal/validator"
)

func seeded(seed uint64) deck.Option {
	return deck.WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func TestNewDeck(t *testing.T) {
	d := deck.New(seeded(1))

	assert.Equal(t, deck.Size, d.Len())
	assert.False(t, d.IsEmpty())

	seen := make(map[card.Card]int)
	for _, c := range d.All() {
		seen[c]++
	}
	for _, r := range card.Ranks() {
		for _, s := range card.Suits() {
			assert.Equal(t, 1, seen[card.MustCard(r, s)], "%s of %s", r, s)
		}
	}
	assert.Len(t, seen, deck.Size)
}

func TestCanonicalOrder(t *testing.T) {
	d := deck.New(seeded(1))

	first, err := d.PeekAt(0)
	require.NoError(t, err)
	assert.Equal(t, "ACE of Clubs", first.String())

	second, err := d.PeekAt(1)
	require.NoError(t, err)
	assert.Equal(t, "ACE of Diamonds", second.String())

	fifth, err := d.PeekAt(4)
	require.NoError(t, err)
	assert.Equal(t, "TWO of Clubs", fifth.String())

	last, err := d.PeekAt(51)
	require.NoError(t, err)
	assert.Equal(t, "KING of Hearts", last.String())

	for i, c := range d.All() {
		idx, err := deck.CanonicalIndex(c)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestCanonicalIndexInvalid(t *testing.T) {
	_, err := deck.CanonicalIndex(card.Card{})
	assert.ErrorIs(t, err, card.ErrInvalidValue)
}

func TestPeekAtOutOfRange(t *testing.T) {
	d := deck.New(seeded(1))

	for _, i := range []int{-1, 52, 100} {
		_, err := d.PeekAt(i)
		assert.ErrorIs(t, err, deck.ErrIndexOutOfRange, "index %d", i)
	}

	_, err := d.Pop()
	require.NoError(t, err)
	_, err = d.PeekAt(51)
	assert.ErrorIs(t, err, deck.ErrIndexOutOfRange)
}

func TestPopDrainsDeck(t *testing.T) {
	d := deck.New(seeded(2))
	require.Equal(t, 52, d.Len())

	popped := make(map[card.Card]bool)
	for i := 0; i < 52; i++ {
		before := d.Len()
		c, err := d.Pop()
		require.NoError(t, err)
		assert.Equal(t, before-1, d.Len())
		assert.False(t, popped[c], "card %s popped twice", c)
		popped[c] = true
	}

	assert.Equal(t, 0, d.Len())
	assert.True(t, d.IsEmpty())

	_, err := d.Pop()
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
}

func TestPopReturnsLastCard(t *testing.T) {
	d := deck.New(seeded(3))
	d.Shuffle(500)

	last, err := d.PeekAt(d.Len() - 1)
	require.NoError(t, err)
	c, err := d.Pop()
	require.NoError(t, err)
	assert.Equal(t, last, c)
}

func TestDrawRandom(t *testing.T) {
	d := deck.New(seeded(4))

	const perCard = 2000
	counts := make(map[card.Card]int)
	for i := 0; i < perCard*deck.Size; i++ {
		c, err := d.DrawRandom()
		require.NoError(t, err)
		counts[c]++
	}

	assert.Equal(t, deck.Size, d.Len(), "DrawRandom must not remove cards")
	assert.Len(t, counts, deck.Size)
	for c, n := range counts {
		assert.InDelta(t, perCard, n, perCard*0.25, "card %s drawn %d times", c, n)
	}
}

func TestDrawRandomSingleCard(t *testing.T) {
	d := deck.New(seeded(5))
	for d.Len() > 1 {
		_, err := d.Pop()
		require.NoError(t, err)
	}

	want, err := d.PeekAt(0)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		c, err := d.DrawRandom()
		require.NoError(t, err)
		assert.Equal(t, want, c)
	}
}

func TestDrawRandomEmpty(t *testing.T) {
	d := deck.New(seeded(6))
	for !d.IsEmpty() {
		_, err := d.Pop()
		require.NoError(t, err)
	}

	_, err := d.DrawRandom()
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
}

func TestShuffleZeroIsNoop(t *testing.T) {
	d := deck.New(seeded(7))
	before := d.Cards()

	d.Shuffle(0)
	assert.Equal(t, before, d.Cards())

	d.Shuffle(-3)
	assert.Equal(t, before, d.Cards())
}

func TestShufflePreservesCards(t *testing.T) {
	d := deck.New(seeded(8))
	d.Shuffle(deck.DefaultSwaps)

	assert.NotEqual(t, deck.Canonical(), d.Cards())
	assert.ElementsMatch(t, deck.Canonical(), d.Cards())

	results := validator.Validate(d.Cards())
	assert.True(t, results.Valid(), "errors: %v", results.Errors)
	assert.False(t, results.Canonical)
}

func TestShuffleSmallDecks(t *testing.T) {
	d := deck.New(seeded(9))
	for d.Len() > 1 {
		_, err := d.Pop()
		require.NoError(t, err)
	}
	only := d.Cards()

	d.Shuffle(100)
	assert.Equal(t, only, d.Cards())

	_, err := d.Pop()
	require.NoError(t, err)
	d.Shuffle(100)
	assert.True(t, d.IsEmpty())
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := deck.New(seeded(42))
	b := deck.New(seeded(42))

	a.Shuffle(deck.DefaultSwaps)
	b.Shuffle(deck.DefaultSwaps)
	assert.Equal(t, a.Cards(), b.Cards())
}

func TestResetRestoresCanonicalOrder(t *testing.T) {
	d := deck.New(seeded(10))
	d.Shuffle(deck.DefaultSwaps)
	for i := 0; i < 20; i++ {
		_, err := d.Pop()
		require.NoError(t, err)
	}
	d.Shuffle(10)

	d.Reset()
	assert.Equal(t, 52, d.Len())
	assert.Equal(t, deck.New(seeded(11)).Cards(), d.Cards())

	for !d.IsEmpty() {
		_, err := d.Pop()
		require.NoError(t, err)
	}
	d.Reset()
	assert.Equal(t, deck.Canonical(), d.Cards())
}

func TestResetOnFreshDeck(t *testing.T) {
	d := deck.New(seeded(12))
	d.Reset()
	assert.Equal(t, deck.New(seeded(13)).Cards(), d.Cards())
}

func TestAllIsRestartable(t *testing.T) {
	d := deck.New(seeded(14))
	d.Shuffle(300)

	var first, second []card.Card
	for _, c := range d.All() {
		first = append(first, c)
	}
	for _, c := range d.All() {
		second = append(second, c)
	}

	assert.Equal(t, first, second)
	assert.Equal(t, d.Cards(), first)
	assert.Equal(t, 52, d.Len())
}

func TestAllStopsEarly(t *testing.T) {
	d := deck.New(seeded(15))

	visited := 0
	for i := range d.All() {
		if i == 4 {
			break
		}
		visited++
	}
	assert.Equal(t, 4, visited)
}

func TestCardsIsCopy(t *testing.T) {
	d := deck.New(seeded(16))
	cards := d.Cards()
	cards[0] = card.MustCard(card.King, card.Hearts)

	first, err := d.PeekAt(0)
	require.NoError(t, err)
	assert.Equal(t, card.MustCard(card.Ace, card.Clubs), first)
}

func TestString(t *testing.T) {
	d := deck.New(seeded(17))
	lines := strings.Split(d.String(), "\n")

	require.Len(t, lines, 52)
	assert.Equal(t, "ACE of Clubs", lines[0])
	assert.Equal(t, "KING of Hearts", lines[51])
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	d := deck.New(seeded(18), deck.WithLogger(logger))
	d.Shuffle(25)
	d.Reset()

	assert.Contains(t, buf.String(), "shuffled deck")
	assert.Contains(t, buf.String(), "swaps=25")
	assert.Contains(t, buf.String(), "reset deck")
}

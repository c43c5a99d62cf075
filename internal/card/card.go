package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is returned when a rank or suit is outside its valid range
var ErrInvalidValue = errors.New("invalid card value")

// Rank represents a card face value, ACE (1) through KING (13)
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{
	"", "ACE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN",
	"EIGHT", "NINE", "TEN", "JACK", "QUEEN", "KING",
}

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Suit represents a card suit, Clubs (0) through Hearts (3)
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Spades
	Hearts
)

var suitNames = [...]string{"Clubs", "Diamonds", "Spades", "Hearts"}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Hearts
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Color is the printed colour of a suit
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Color returns Red for Diamonds and Hearts, Black otherwise
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Ranks returns all ranks in ascending order
func Ranks() []Rank {
	ranks := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Suits returns all suits in canonical order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Spades, Hearts}
}

// Card is an immutable playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from a rank value (1-13) and a suit value (0-3).
func NewCard(rank, suit int) (Card, error) {
	r, s := Rank(rank), Suit(suit)
	if !r.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d (want 1-13)", ErrInvalidValue, rank)
	}
	if !s.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d (want 0-3)", ErrInvalidValue, suit)
	}
	return Card{rank: r, suit: s}, nil
}

// MustCard is like NewCard but panics on an invalid rank or suit
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(int(rank), int(suit))
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() Rank {
	return c.rank
}

func (c Card) Suit() Suit {
	return c.suit
}

// Valid reports whether both rank and suit are in range
func (c Card) Valid() bool {
	return c.rank.Valid() && c.suit.Valid()
}

// String returns "<RANK> of <SUIT>", e.g. "ACE of Clubs"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// ParseCard parses the String form of a card. Matching is case-insensitive.
func ParseCard(s string) (Card, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 || !strings.EqualFold(fields[1], "of") {
		return Card{}, fmt.Errorf("%w: %q is not in \"<RANK> of <SUIT>\" form", ErrInvalidValue, s)
	}

	rank, ok := parseRank(fields[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q", ErrInvalidValue, fields[0])
	}
	suit, ok := parseSuit(fields[2])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidValue, fields[2])
	}

	return Card{rank: rank, suit: suit}, nil
}

func parseRank(name string) (Rank, bool) {
	for _, r := range Ranks() {
		if strings.EqualFold(name, r.String()) {
			return r, true
		}
	}
	return 0, false
}

func parseSuit(name string) (Suit, bool) {
	for _, s := range Suits() {
		if strings.EqualFold(name, s.String()) {
			return s, true
		}
	}
	return 0, false
}

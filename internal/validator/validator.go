package validator

import (
	"fmt"
	"strings"

	"github.com/arcanaland/pokerdeck/internal/card"
	"github.com/arcanaland/pokerdeck/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string

	// Canonical is set when the cards match a fresh deck exactly
	Canonical bool
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Cards   []card.Card
	Results ValidationResults
}

func NewValidator(cards []card.Card) *Validator {
	return &Validator{
		Cards:   cards,
		Results: ValidationResults{},
	}
}

// Validate checks cards against the invariants of a deck
func Validate(cards []card.Card) ValidationResults {
	return NewValidator(cards).Validate()
}

func (v *Validator) Validate() ValidationResults {
	v.validateSize()
	v.validateCards()
	v.validateUnique()
	v.validateComplete()
	v.Results.Canonical = v.isCanonical()

	return v.Results
}

func (v *Validator) validateSize() {
	if len(v.Cards) > deck.Size {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deck has %d cards (maximum %d)", len(v.Cards), deck.Size))
	}
}

// validateCards reports every card with a rank or suit out of range
func (v *Validator) validateCards() {
	for i, c := range v.Cards {
		if !c.Valid() {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("invalid card at position %d: %s", i, c))
		}
	}
}

// validateUnique reports duplicates along with the position of the first occurrence
func (v *Validator) validateUnique() {
	seen := make(map[card.Card]int, len(v.Cards))
	for i, c := range v.Cards {
		if !c.Valid() {
			continue
		}
		if first, ok := seen[c]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("duplicate card %s at positions %d and %d", c, first, i))
			continue
		}
		seen[c] = i
	}
}

func (v *Validator) validateComplete() {
	if len(v.Cards) >= deck.Size {
		return
	}

	present := make(map[card.Card]bool, len(v.Cards))
	for _, c := range v.Cards {
		present[c] = true
	}

	missing := []string{}
	for _, c := range deck.Canonical() {
		if !present[c] {
			missing = append(missing, c.String())
		}
	}

	if len(missing) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%d cards missing: %s", len(missing), strings.Join(missing, ", ")))
	}
}

func (v *Validator) isCanonical() bool {
	canonical := deck.Canonical()
	if len(v.Cards) != len(canonical) {
		return false
	}
	for i := range canonical {
		if v.Cards[i] != canonical[i] {
			return false
		}
	}
	return true
}

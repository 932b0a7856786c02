// Package odds computes the chance that the opening hand of a 60-card
// deck contains exactly one card from a target category, given that the
// hand contains at least one card from the target category or its sibling
// category. The canonical use is a Pokémon TCG deck split into Basics at
// or below an HP threshold, Basics above it, and everything else.
package odds

import (
	"math"

	"github.com/mtoyoda/pokehand/internal/deck"
)

// OtherCount derives the "everything else" category from the two explicit
// counts. It is clamped at zero; the clamp never reduces the explicit
// counts, so a pair that overflows the deck still fails the total check.
func OtherCount(low, high int) int {
	other := deck.Size - low - high
	if other < 0 {
		return 0
	}
	return other
}

// Probability returns P(exactly one target card and six other-category
// cards in the opening hand | the hand holds at least one card outside
// the other category).
//
// The conditioning event counts all C(60,7) hands minus the C(other,7)
// hands drawn entirely from the other category. The favourable hands pick
// one of the target cards and fill the remaining six slots from the other
// category, which leaves no room for the sibling category's cards.
//
// Inputs are not assumed valid; out-of-range counts fall out of the
// binomial terms as zeros. NaN is returned when the conditioning event
// itself is impossible, making the conditional probability undefined.
func Probability(target, other int) float64 {
	if target < 1 || other < deck.FillSize {
		return 0
	}
	numerator := Binomial(target, 1) * Binomial(other, deck.FillSize)
	denominator := Binomial(deck.Size, deck.HandSize) - Binomial(other, deck.HandSize)
	if denominator == 0 {
		return math.NaN()
	}
	return float64(numerator) / float64(denominator)
}

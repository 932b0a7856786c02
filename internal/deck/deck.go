// Package deck fixes the geometry of a standard constructed deck and the
// opening draw made from it.
package deck

const (
	// Size is the number of cards in a legal constructed deck.
	Size = 60

	// HandSize is the number of cards drawn for the opening hand.
	HandSize = 7

	// FillSize is the number of hand slots left once the single card we
	// care about has been placed.
	FillSize = HandSize - 1
)

package input

import "github.com/mtoyoda/pokehand/internal/deck"

// Error tags a single validation failure on an input field. Validation is
// advisory: a field with an error still feeds the probability engine, and
// the caller decides whether to show the numeric result.
type Error int

const (
	None Error = iota
	NotANumber
	Negative
	ExceedsDeckSize
	TotalExceedsDeckSize
)

// String returns the message shown next to the offending field.
func (e Error) String() string {
	switch e {
	case None:
		return ""
	case NotANumber:
		return "enter a number"
	case Negative:
		return "must not be negative"
	case ExceedsDeckSize:
		return "more cards than the deck holds"
	case TotalExceedsDeckSize:
		return "counts add up to more than the deck holds"
	default:
		return "invalid input"
	}
}

// ValidateThreshold checks the display-only HP threshold. The threshold
// never enters the probability, so only number-ness and sign matter.
func ValidateThreshold(n int, ok bool) Error {
	switch {
	case !ok:
		return NotANumber
	case n < 0:
		return Negative
	default:
		return None
	}
}

// ValidateCount checks one of the two explicit category counts.
func ValidateCount(n int, ok bool) Error {
	switch {
	case !ok:
		return NotANumber
	case n < 0:
		return Negative
	case n > deck.Size:
		return ExceedsDeckSize
	default:
		return None
	}
}

// ValidateTotal checks the sum of all three categories. The derived third
// category is clamped at zero before summing, so this fires exactly when
// the two explicit counts alone overflow the deck.
func ValidateTotal(total int) Error {
	if total > deck.Size {
		return TotalExceedsDeckSize
	}
	return None
}

package odds

import (
	"fmt"
	"math"

	"github.com/mtoyoda/pokehand/internal/input"
)

// Evaluation is the complete result of one pass over the three raw text
// fields. It is recomputed from scratch on every input event; callers own
// the raw strings and nothing is cached between calls.
type Evaluation struct {
	Threshold input.Field // display-only HP threshold
	Below     input.Field // Basics at or below the threshold (target)
	Above     input.Field // Basics above the threshold

	// TotalErr flags the aggregate deck-overflow check. Only meaningful
	// when both counts parsed.
	TotalErr input.Error

	// Other is the derived everything-else category, clamped at zero.
	Other int

	// Prob is always computed, even over invalid fields; it is NaN when
	// either count failed to parse or the conditional is undefined.
	Prob float64
}

// Evaluate normalizes, parses and validates the three raw fields, derives
// the other-category count and computes the probability. Validation never
// suppresses the computation; deciding whether to display the number is
// the caller's job.
func Evaluate(threshold, below, above string) Evaluation {
	ev := Evaluation{
		Threshold: input.Threshold(threshold),
		Below:     input.Count(below),
		Above:     input.Count(above),
		Prob:      math.NaN(),
	}
	if !ev.Below.OK || !ev.Above.OK {
		return ev
	}
	ev.Other = OtherCount(ev.Below.Value, ev.Above.Value)
	ev.TotalErr = input.ValidateTotal(ev.Below.Value + ev.Above.Value + ev.Other)
	ev.Prob = Probability(ev.Below.Value, ev.Other)
	return ev
}

// Valid reports whether every field and the total passed validation.
func (e Evaluation) Valid() bool {
	return e.Threshold.Err == input.None &&
		e.Below.Err == input.None &&
		e.Above.Err == input.None &&
		e.TotalErr == input.None
}

// Undefined reports whether the probability carries the not-a-number
// sentinel.
func (e Evaluation) Undefined() bool {
	return math.IsNaN(e.Prob)
}

// FormatPercent renders the probability as a percentage with two decimal
// places, or a placeholder when validation failed or the probability is
// undefined.
func (e Evaluation) FormatPercent() string {
	return e.FormatPercentPrec(2)
}

// FormatPercentPrec is FormatPercent with a caller-chosen number of
// decimal places.
func (e Evaluation) FormatPercentPrec(decimals int) string {
	if !e.Valid() || e.Undefined() {
		return "--"
	}
	return fmt.Sprintf("%.*f%%", decimals, e.Prob*100)
}

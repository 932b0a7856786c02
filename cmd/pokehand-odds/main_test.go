package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtoyoda/pokehand/internal/odds"
)

func TestErrorLines(t *testing.T) {
	tests := []struct {
		name      string
		threshold string
		below     string
		above     string
		want      []string
	}{
		{
			name:      "all valid",
			threshold: "70", below: "7", above: "5",
			want: nil,
		},
		{
			name:      "bad threshold only",
			threshold: "high", below: "7", above: "5",
			want: []string{"threshold: enter a number"},
		},
		{
			name:      "negative count",
			threshold: "70", below: "-2", above: "5",
			want: []string{"below-count: must not be negative"},
		},
		{
			name:      "counts overflow the deck",
			threshold: "70", below: "40", above: "30",
			want: []string{"total: counts add up to more than the deck holds"},
		},
		{
			name:      "several fields at once",
			threshold: "x", below: "y", above: "61",
			want: []string{
				"threshold: enter a number",
				"below-count: enter a number",
				"above-count: more cards than the deck holds",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := odds.Evaluate(tt.threshold, tt.below, tt.above)
			assert.Equal(t, tt.want, errorLines(ev))
		})
	}
}

func TestCurveRows(t *testing.T) {
	rows := curveRows(5)
	require.Len(t, rows, 56) // below 0..55 next to 5 fixed

	// No target cards means no chance.
	assert.Zero(t, rows[0].prob)

	// Spot-check against the engine.
	assert.Equal(t, 7, rows[7].below)
	assert.InDelta(t, odds.Probability(7, 48), rows[7].prob, 1e-12)

	// Every point is a defined probability.
	for _, row := range rows {
		assert.False(t, math.IsNaN(row.prob), "below=%d", row.below)
		assert.GreaterOrEqual(t, row.prob, 0.0)
		assert.LessOrEqual(t, row.prob, 1.0)
	}
}

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateThreshold(t *testing.T) {
	assert.Equal(t, NotANumber, ValidateThreshold(0, false))
	assert.Equal(t, Negative, ValidateThreshold(-1, true))
	assert.Equal(t, None, ValidateThreshold(0, true))
	assert.Equal(t, None, ValidateThreshold(70, true))
	// The threshold is display-only, so there is no upper bound.
	assert.Equal(t, None, ValidateThreshold(10000, true))
}

func TestValidateCount(t *testing.T) {
	assert.Equal(t, NotANumber, ValidateCount(0, false))
	assert.Equal(t, Negative, ValidateCount(-1, true))

	// No error anywhere inside the deck, ExceedsDeckSize everywhere above.
	for n := 0; n <= 60; n++ {
		assert.Equal(t, None, ValidateCount(n, true), "n=%d", n)
	}
	for n := 61; n <= 200; n++ {
		assert.Equal(t, ExceedsDeckSize, ValidateCount(n, true), "n=%d", n)
	}
}

func TestValidateTotal(t *testing.T) {
	assert.Equal(t, None, ValidateTotal(0))
	assert.Equal(t, None, ValidateTotal(60))
	assert.Equal(t, TotalExceedsDeckSize, ValidateTotal(61))
	assert.Equal(t, TotalExceedsDeckSize, ValidateTotal(70))
}

func TestFieldConstructors(t *testing.T) {
	t.Run("count with full-width digits", func(t *testing.T) {
		f := Count("６０")
		assert.True(t, f.OK)
		assert.Equal(t, 60, f.Value)
		assert.Equal(t, None, f.Err)
	})

	t.Run("count not a number", func(t *testing.T) {
		f := Count("lots")
		assert.False(t, f.OK)
		assert.Equal(t, NotANumber, f.Err)
	})

	t.Run("count over deck size", func(t *testing.T) {
		f := Count("61")
		assert.True(t, f.OK)
		assert.Equal(t, ExceedsDeckSize, f.Err)
	})

	t.Run("negative threshold", func(t *testing.T) {
		f := Threshold("-30")
		assert.True(t, f.OK)
		assert.Equal(t, Negative, f.Err)
	})
}

func TestErrorMessages(t *testing.T) {
	assert.Empty(t, None.String())
	for _, e := range []Error{NotANumber, Negative, ExceedsDeckSize, TotalExceedsDeckSize} {
		assert.NotEmpty(t, e.String())
	}
}

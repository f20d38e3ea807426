package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// JSON bodies can carry slots as a number or a numeric string depending on
// the form; both must land as the same integer.
func TestCoerceSlots(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		got, err := coerceSlots(float64(3))
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("numeric string", func(t *testing.T) {
		got, err := coerceSlots("3")
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("missing defaults to zero", func(t *testing.T) {
		got, err := coerceSlots(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := coerceSlots("-2")
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := coerceSlots("lots")
		assert.Error(t, err)
	})
}

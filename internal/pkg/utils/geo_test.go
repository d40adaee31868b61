package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/service-directory/internal/pkg/utils"
)

func TestHaversineKm(t *testing.T) {
	t.Run("identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.HaversineKm(21.0285, 105.8542, 21.0285, 105.8542))
	})

	t.Run("symmetry", func(t *testing.T) {
		a := utils.HaversineKm(21.0285, 105.8542, 21.0011, 105.8400)
		b := utils.HaversineKm(21.0011, 105.8400, 21.0285, 105.8542)
		assert.Equal(t, a, b)
	})

	t.Run("known distance across Hanoi", func(t *testing.T) {
		// Hoan Kiem Lake to Bach Mai hospital, roughly 3.4 km
		d := utils.HaversineKm(21.0285, 105.8542, 21.0011, 105.8400)
		assert.InDelta(t, 3.4, d, 0.2)
	})

	t.Run("long haul", func(t *testing.T) {
		// Hanoi to Bangkok, roughly 990 km
		d := utils.HaversineKm(21.0285, 105.8542, 13.7563, 100.5018)
		assert.InDelta(t, 990, d, 25)
	})
}

func TestDistanceMeters(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.DistanceMeters(21.0285, 105.8542, 21.0285, 105.8542))
	})

	t.Run("meters with four decimal places", func(t *testing.T) {
		m := utils.DistanceMeters(21.0285, 105.8542, 21.0011, 105.8400)
		assert.InDelta(t, 3400, m, 200)

		// Rounded to four decimals: scaling by 10^4 is integral up to
		// float error
		scaled := m * 10000
		assert.InDelta(t, math.Round(scaled), scaled, 1e-6)
	})
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, utils.ValidCoordinates(21.0285, 105.8542))
	assert.True(t, utils.ValidCoordinates(-90, 180))
	assert.False(t, utils.ValidCoordinates(90.0001, 0))
	assert.False(t, utils.ValidCoordinates(0, -180.0001))
}

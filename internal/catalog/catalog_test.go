package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/service-directory/internal/catalog"
)

func TestCountries(t *testing.T) {
	countries := catalog.Countries()
	assert.NotEmpty(t, countries)

	for _, c := range countries {
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.AddressFormat.DisplayFormat)
		assert.Contains(t, c.AddressFormat.DisplayFormat, "{street_address}")

		// Levels are contiguous from 1 and typed
		for i, level := range c.AddressFormat.Levels {
			assert.Equal(t, i+1, level.Level)
			assert.NotEmpty(t, level.Name)
			assert.NotEmpty(t, level.Type)
			assert.Contains(t, c.AddressFormat.DisplayFormat, "{"+level.Name+"}")
		}
	}
}

func TestCountryByCode(t *testing.T) {
	vn, ok := catalog.CountryByCode("VN")
	assert.True(t, ok)
	assert.Equal(t, "Vietnam", vn.Name)
	assert.Len(t, vn.AddressFormat.Levels, 3)

	lower, ok := catalog.CountryByCode("vn")
	assert.True(t, ok)
	assert.Equal(t, vn.Name, lower.Name)

	_, ok = catalog.CountryByCode("ZZ")
	assert.False(t, ok)
}

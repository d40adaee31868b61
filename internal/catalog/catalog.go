// Package catalog holds the static country reference data: ISO-ish codes,
// display names and per-country address-format schemas. The data is
// embedded at build time and immutable for the process lifetime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/service-directory/internal/domain"
)

//go:embed countries.json
var countriesJSON []byte

var (
	countries []domain.Country
	byCode    map[string]domain.Country
)

func init() {
	if err := json.Unmarshal(countriesJSON, &countries); err != nil {
		panic(fmt.Sprintf("catalog: malformed countries.json: %v", err))
	}

	byCode = make(map[string]domain.Country, len(countries))
	for _, c := range countries {
		byCode[c.Code] = c
	}
}

// Countries returns all countries in file order. Callers must not mutate
// the returned slice.
func Countries() []domain.Country {
	return countries
}

// CountryByCode looks a country up by its code, case-insensitively.
func CountryByCode(code string) (domain.Country, bool) {
	c, ok := byCode[strings.ToUpper(code)]
	return c, ok
}

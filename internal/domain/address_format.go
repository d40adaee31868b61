package domain

import (
	"fmt"
	"sort"
	"strings"
)

// streetAddressKey is the reserved placeholder for the raw street line.
const streetAddressKey = "street_address"

// FormatAddress renders a human-readable address from the raw street line,
// the sparse component map and the country's format schema. A nil country
// degrades to the street address alone. Divisions must already be resolved
// (id -> row); only DivisionRef components participate in level matching.
func FormatAddress(streetAddress string, components AddressComponents, country *Country, divisions map[int64]*AdministrativeDivision) FormattedAddress {
	if country == nil {
		return FormattedAddress{
			FormattedAddress: streetAddress,
			AddressDisplay:   AddressDisplay{},
		}
	}

	display := AddressDisplay{}
	values := map[string]string{streetAddressKey: streetAddress}
	keys := sortedKeys(components)

	for _, level := range country.AddressFormat.Levels {
		// First component (in key order) whose resolved division type
		// matches the level type wins.
		for _, key := range keys {
			v := components[key]
			if v.Kind != ComponentDivisionRef {
				continue
			}
			division, ok := divisions[v.DivisionID]
			if !ok || division.Type != level.Type {
				continue
			}
			display[level.Name] = division.Name
			values[level.Name] = division.Name
			break
		}
	}

	rendered := country.AddressFormat.DisplayFormat
	for _, level := range country.AddressFormat.Levels {
		rendered = strings.ReplaceAll(rendered, "{"+level.Name+"}", values[level.Name])
	}
	rendered = strings.ReplaceAll(rendered, "{"+streetAddressKey+"}", streetAddress)

	// Missing levels leave empty segments behind; any run of them must
	// collapse, so the cleanup joins non-empty segments instead of
	// patching commas in place.
	segments := strings.Split(rendered, ",")
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			parts = append(parts, seg)
		}
	}
	rendered = strings.Join(parts, ", ")

	return FormattedAddress{
		FormattedAddress: rendered,
		AddressDisplay:   display,
	}
}

// ValidateComponents checks the component map against the country schema:
// every required level needs a matching resolved division, and every
// resolved division referencing a parent must have that parent in the
// resolved set.
func ValidateComponents(components AddressComponents, country *Country, divisions map[int64]*AdministrativeDivision) AddressValidation {
	if country == nil {
		return AddressValidation{Valid: false, Errors: []string{"Invalid country"}}
	}

	errs := []string{}

	for _, level := range country.AddressFormat.Levels {
		if !level.Required {
			continue
		}

		found := false
		for _, v := range components {
			if v.Kind != ComponentDivisionRef {
				continue
			}
			if division, ok := divisions[v.DivisionID]; ok && division.Type == level.Type {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Sprintf("%s is required for %s", level.Name, country.Name))
		}
	}

	ids := make([]int64, 0, len(divisions))
	for id := range divisions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		division := divisions[id]
		if division.ParentID == nil {
			continue
		}
		if _, ok := divisions[*division.ParentID]; !ok {
			errs = append(errs, fmt.Sprintf("Invalid hierarchy: %s requires its parent division", division.Name))
		}
	}

	return AddressValidation{Valid: len(errs) == 0, Errors: errs}
}

func sortedKeys(components AddressComponents) []string {
	keys := make([]string, 0, len(components))
	for k := range components {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

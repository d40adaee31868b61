package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ComponentKind tags the two value shapes an address component can carry.
type ComponentKind int

const (
	// ComponentDivisionRef references an administrative_divisions row.
	ComponentDivisionRef ComponentKind = iota + 1
	// ComponentLiteral is free text stored as-is.
	ComponentLiteral
)

// ComponentValue is the tagged union behind the sparse address-component
// map. On the wire it is a plain JSON number (division reference) or
// string (literal), matching the stored column shape.
type ComponentValue struct {
	Kind       ComponentKind
	DivisionID int64
	Literal    string
}

func DivisionRef(id int64) ComponentValue {
	return ComponentValue{Kind: ComponentDivisionRef, DivisionID: id}
}

func LiteralComponent(text string) ComponentValue {
	return ComponentValue{Kind: ComponentLiteral, Literal: text}
}

func (v ComponentValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ComponentDivisionRef:
		return json.Marshal(v.DivisionID)
	case ComponentLiteral:
		return json.Marshal(v.Literal)
	default:
		return nil, fmt.Errorf("unknown component kind %d", v.Kind)
	}
}

func (v *ComponentValue) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		*v = ComponentValue{Kind: ComponentDivisionRef, DivisionID: id}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("address component must be a number or a string: %w", err)
	}
	*v = ComponentValue{Kind: ComponentLiteral, Literal: text}
	return nil
}

// AddressComponents maps arbitrary keys to division references or literal
// strings. The key set is schema-free; resolution against the division
// store decides what each reference means.
type AddressComponents map[string]ComponentValue

// DivisionIDs returns the referenced division ids in no particular order.
func (c AddressComponents) DivisionIDs() []int64 {
	ids := make([]int64, 0, len(c))
	for _, v := range c {
		if v.Kind == ComponentDivisionRef {
			ids = append(ids, v.DivisionID)
		}
	}
	return ids
}

// Value implements driver.Valuer for the JSON column.
func (c AddressComponents) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for the JSON column.
func (c *AddressComponents) Scan(src interface{}) error {
	if src == nil {
		*c = AddressComponents{}
		return nil
	}

	var data []byte
	switch s := src.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("cannot scan %T into AddressComponents", src)
	}

	if len(data) == 0 {
		*c = AddressComponents{}
		return nil
	}
	return json.Unmarshal(data, c)
}

// AddressLevel is one administrative tier of a country's address schema.
type AddressLevel struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Level    int    `json:"level"`
	Required bool   `json:"required"`
}

// AddressFormat is a country's address schema: levels ordered by ascending
// level plus a display template with {name}-style placeholders. The
// template reserves {street_address} for the raw street line.
type AddressFormat struct {
	Levels        []AddressLevel `json:"levels"`
	DisplayFormat string         `json:"display_format"`
	SearchFields  []string       `json:"search_fields"`
}

// Country is static reference data loaded once at startup.
type Country struct {
	Code          string        `json:"code"`
	Name          string        `json:"name"`
	AddressFormat AddressFormat `json:"address_format"`
}

// AddressDisplay maps address level names to resolved division names.
type AddressDisplay map[string]string

// FormattedAddress is the output of the address formatter.
type FormattedAddress struct {
	FormattedAddress string         `json:"formatted_address"`
	AddressDisplay   AddressDisplay `json:"address_display"`
}

// AddressValidation is the output of address-component validation.
type AddressValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

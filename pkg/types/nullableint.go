package types

import "encoding/json"

// NullableInt represents an optional integer value.
type NullableInt struct {
	Value int
	Valid bool // Valid is true if Value was explicitly set
}

// Int returns the integer value if valid, or zero if null.
func (ni NullableInt) Int() int {
	if ni.Valid {
		return ni.Value
	}
	return 0
}

// IsNil returns true if the NullableInt is null/nil, false otherwise.
func (ni NullableInt) IsNil() bool {
	return !ni.Valid
}

// Set assigns an integer value to the NullableInt and marks it as valid.
func (ni *NullableInt) Set(value int) {
	ni.Value = value
	ni.Valid = true
}

// MarshalJSON implements the json.Marshaler interface.
func (ni NullableInt) MarshalJSON() ([]byte, error) {
	if ni.Valid {
		return json.Marshal(ni.Value)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (ni *NullableInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		ni.Value = 0
		ni.Valid = false
		return nil
	}
	ni.Valid = true
	return json.Unmarshal(data, &ni.Value)
}

// IntFrom creates a valid NullableInt from an integer value.
func IntFrom(i int) NullableInt {
	return NullableInt{Value: i, Valid: true}
}

// NullInt creates a NullableInt that represents an absent value.
func NullInt() NullableInt {
	return NullableInt{}
}

var _ json.Marshaler = &NullableInt{}
var _ json.Unmarshaler = &NullableInt{}
var _ Nullable = &NullableInt{}

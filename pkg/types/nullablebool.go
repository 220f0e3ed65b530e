package types

import "encoding/json"

// NullableBool represents an optional boolean value.
// It can distinguish between false and an absent value, which matters for
// layered configuration where an explicit false must override a lower layer.
type NullableBool struct {
	Value bool
	Valid bool // Valid is true if Value was explicitly set
}

// Bool returns the boolean value if valid, or false if null.
func (nb NullableBool) Bool() bool {
	if nb.Valid {
		return nb.Value
	}
	return false
}

// IsNil returns true if the NullableBool is null/nil, false otherwise.
func (nb NullableBool) IsNil() bool {
	return !nb.Valid
}

// Set assigns a boolean value to the NullableBool and marks it as valid.
func (nb *NullableBool) Set(value bool) {
	nb.Value = value
	nb.Valid = true
}

// MarshalJSON implements the json.Marshaler interface.
func (nb NullableBool) MarshalJSON() ([]byte, error) {
	if nb.Valid {
		return json.Marshal(nb.Value)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (nb *NullableBool) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		nb.Value = false
		nb.Valid = false
		return nil
	}
	nb.Valid = true
	return json.Unmarshal(data, &nb.Value)
}

// BoolFrom creates a valid NullableBool from a boolean value.
func BoolFrom(b bool) NullableBool {
	return NullableBool{Value: b, Valid: true}
}

// NullBool creates a NullableBool that represents an absent value.
func NullBool() NullableBool {
	return NullableBool{}
}

var _ json.Marshaler = &NullableBool{}
var _ json.Unmarshaler = &NullableBool{}
var _ Nullable = &NullableBool{}

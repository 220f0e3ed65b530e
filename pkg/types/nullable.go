// Package types provides nullable scalar types for handling optional values.
// The client uses them wherever "not supplied" must be distinguishable from a
// zero value: explicit configuration overrides, partial log updates, and
// optional search fields.
package types

// Nullable defines the interface for types that can represent null/nil values.
// Types implementing this interface can distinguish between a zero value and a
// null value, which is useful for JSON serialization and layered configuration
// where null has semantic meaning.
type Nullable interface {
	// IsNil returns true if the value is null/nil, false otherwise.
	IsNil() bool
}

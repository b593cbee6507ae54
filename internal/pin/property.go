// Package pin implements the Water contract (PIN) model: contract
// properties, output and input contract specs, the built-in standard
// catalog, and the declaration containers modules use to accumulate
// their contracts.
package pin

// Property is a single named configuration value inside a contract.
// Properties are mutable during declaration and treated as immutable once
// the owning descriptor has been rendered.
type Property struct {
	// Key is the property name, unique within its owning contract.
	Key string

	// Required marks the property as mandatory for consumers.
	Required bool

	// Sensitive marks values that must never be logged or printed in
	// plaintext.
	Sensitive bool

	// Default is the fallback value when none is configured.
	Default string

	// Description is free-form documentation.
	Description string

	// Type is the value type tag.
	Type string

	// EnvVar is an optional environment variable hint.
	EnvVar string
}

// NewProperty returns a Property with declaration defaults: required, not
// sensitive, type "string".
func NewProperty(key string) *Property {
	return &Property{
		Key:      key,
		Required: true,
		Type:     "string",
	}
}

// Clone returns an independent copy of the property.
func (p *Property) Clone() *Property {
	c := *p
	return &c
}

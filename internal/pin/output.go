package pin

import "slices"

// Output is a provided capability: a contract the declaring module supplies
// to the rest of the workspace.
type Output struct {
	id string

	// Required reports whether the providing module must supply the
	// contract at runtime.
	Required bool

	properties []*Property
}

// NewOutput returns an output contract with the given id. Custom outputs
// default to not required; catalog entries carry their own flag.
func NewOutput(id string) *Output {
	return &Output{id: id}
}

// ID returns the globally-namespaced contract identifier.
func (o *Output) ID() string {
	return o.id
}

// Property declares a property on the contract. The configure callback
// receives the new property after declaration defaults are applied; nil
// keeps the defaults.
func (o *Output) Property(key string, configure func(*Property)) {
	p := NewProperty(key)
	if configure != nil {
		configure(p)
	}
	o.properties = append(o.properties, p)
}

// Properties returns the declared properties as a read-only view: a copied
// slice in declaration order. Adding to or reordering the view never
// affects the contract; declaration goes through Property.
func (o *Output) Properties() []*Property {
	return slices.Clone(o.properties)
}

// Clone returns a deep copy. Every property is cloned; no mutable state is
// shared with the original.
func (o *Output) Clone() *Output {
	c := &Output{id: o.id, Required: o.Required}
	if len(o.properties) > 0 {
		c.properties = make([]*Property, len(o.properties))
		for i, p := range o.properties {
			c.properties[i] = p.Clone()
		}
	}
	return c
}

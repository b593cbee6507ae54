package pin

import "slices"

// Input is a required capability: a contract the declaring module consumes
// from some other module in the workspace.
type Input struct {
	id string

	// Required reports whether the consuming module treats absence of the
	// contract as fatal.
	Required bool

	properties []*Property
}

// NewInput returns an input contract with the given id. Bare input
// declarations default to required.
func NewInput(id string) *Input {
	return &Input{id: id, Required: true}
}

// ID returns the globally-namespaced contract identifier.
func (i *Input) ID() string {
	return i.id
}

// Properties returns properties copied over from a matching output
// contract. They are populated during inheritance resolution when one
// module both provides and consumes the same id, and stay empty otherwise.
func (i *Input) Properties() []*Property {
	return slices.Clone(i.properties)
}

// CopyPropertiesFrom replaces the input's property view with clones of the
// output contract's properties.
func (i *Input) CopyPropertiesFrom(o *Output) {
	i.properties = make([]*Property, 0, len(o.properties))
	for _, p := range o.properties {
		i.properties = append(i.properties, p.Clone())
	}
}

// Clone returns a deep copy of the input contract.
func (i *Input) Clone() *Input {
	c := &Input{id: i.id, Required: i.Required}
	if len(i.properties) > 0 {
		c.properties = slices.Clone(i.properties)
		for idx, p := range c.properties {
			c.properties[idx] = p.Clone()
		}
	}
	return c
}

package pin

import "slices"

// OutputContainer accumulates the output contracts one module declares, in
// declaration order. The order is preserved through to serialization.
type OutputContainer struct {
	pins []*Output
}

// Pin declares a custom output contract. The configure callback typically
// adds properties; nil appends a bare contract.
func (c *OutputContainer) Pin(id string, configure func(*Output)) {
	o := NewOutput(id)
	if configure != nil {
		configure(o)
	}
	c.pins = append(c.pins, o)
}

// StandardPin declares a standard contract by catalog mnemonic. The catalog
// copy is appended unchanged.
func (c *OutputContainer) StandardPin(mnemonic string) error {
	return c.StandardPinWith(mnemonic, nil)
}

// StandardPinWith declares a standard contract by catalog mnemonic and runs
// an extension callback against the copy. Extension properties end up after
// the catalog-provided ones, in declaration order.
func (c *OutputContainer) StandardPinWith(mnemonic string, configure func(*Output)) error {
	o, ok := Standard(mnemonic)
	if !ok {
		return &UnknownStandardPinError{Mnemonic: mnemonic}
	}
	if configure != nil {
		configure(o)
	}
	c.pins = append(c.pins, o)
	return nil
}

// Pins returns the declared contracts as a read-only view: a copied slice
// in declaration order. All mutation goes through the declaration methods.
func (c *OutputContainer) Pins() []*Output {
	return slices.Clone(c.pins)
}

// InputContainer accumulates the input contracts one module consumes, in
// declaration order.
type InputContainer struct {
	pins []*Input
}

// Pin declares an input contract by bare id, defaulting to required.
func (c *InputContainer) Pin(id string) {
	c.pins = append(c.pins, NewInput(id))
}

// PinWith declares an input contract by id with a configuration callback
// that may override the required default.
func (c *InputContainer) PinWith(id string, configure func(*Input)) {
	in := NewInput(id)
	if configure != nil {
		configure(in)
	}
	c.pins = append(c.pins, in)
}

// StandardPin consumes a standard contract by catalog mnemonic. The
// required flag comes from the catalog entry, not hardcoded.
func (c *InputContainer) StandardPin(mnemonic string) error {
	return c.StandardPinWith(mnemonic, nil)
}

// StandardPinWith consumes a standard contract by catalog mnemonic with a
// configuration callback that may override the catalog's required flag.
func (c *InputContainer) StandardPinWith(mnemonic string, configure func(*Input)) error {
	o, ok := Standard(mnemonic)
	if !ok {
		return &UnknownStandardPinError{Mnemonic: mnemonic}
	}
	in := &Input{id: o.ID(), Required: o.Required}
	if configure != nil {
		configure(in)
	}
	c.pins = append(c.pins, in)
	return nil
}

// Pins returns the consumed contracts as a read-only view.
func (c *InputContainer) Pins() []*Input {
	return slices.Clone(c.pins)
}

// PropertiesContainer accumulates module-level properties, in declaration
// order.
type PropertiesContainer struct {
	properties []*Property
}

// Property declares a module-level property. The configure callback
// receives the new property after declaration defaults are applied.
func (c *PropertiesContainer) Property(key string, configure func(*Property)) {
	p := NewProperty(key)
	if configure != nil {
		configure(p)
	}
	c.properties = append(c.properties, p)
}

// Properties returns the declared properties as a read-only view.
func (c *PropertiesContainer) Properties() []*Property {
	return slices.Clone(c.properties)
}

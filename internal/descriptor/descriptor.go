// Package descriptor models one module's declared contract surface and the
// inheritance relationships between modules in a workspace.
package descriptor

import (
	"slices"

	"github.com/water-framework/waterws/internal/pin"
)

// Descriptor is one module's declared configuration contract surface plus
// identity metadata. It is populated by declaration calls during workspace
// configuration and read by the resolver and serializer afterwards.
type Descriptor struct {
	// Address is the module's workspace address, like "core:api". The
	// workspace root has an empty address.
	Address string

	// ModuleID identifies the published module. An empty ModuleID opts the
	// module out: no descriptor document is rendered or emitted for it.
	ModuleID string

	DisplayName string
	Description string

	output     pin.OutputContainer
	input      pin.InputContainer
	properties pin.PropertiesContainer

	inherits []*Descriptor
}

// New returns an empty descriptor for the module at the given workspace
// address.
func New(address string) *Descriptor {
	return &Descriptor{Address: address}
}

// Output returns the container accumulating output contract declarations.
func (d *Descriptor) Output() *pin.OutputContainer {
	return &d.output
}

// Input returns the container accumulating input contract declarations.
func (d *Descriptor) Input() *pin.InputContainer {
	return &d.input
}

// Properties returns the container accumulating module-level properties.
func (d *Descriptor) Properties() *pin.PropertiesContainer {
	return &d.properties
}

// InheritsFrom records another module's descriptor as an inheritance source.
// Declaration order matters: when two sources declare the same contract id,
// the later-declared source wins the merge.
func (d *Descriptor) InheritsFrom(ref *Descriptor) {
	d.inherits = append(d.inherits, ref)
}

// Inherits returns the inheritance sources in declaration order as a
// read-only view.
func (d *Descriptor) Inherits() []*Descriptor {
	return slices.Clone(d.inherits)
}

// Name returns the identifier used for the module in logs and error
// messages: the workspace address when known, otherwise the module id.
func (d *Descriptor) Name() string {
	switch {
	case d.Address != "":
		return d.Address
	case d.ModuleID != "":
		return d.ModuleID
	default:
		return "<root>"
	}
}

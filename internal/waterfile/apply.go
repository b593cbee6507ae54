package waterfile

import (
	"github.com/water-framework/waterws/internal/descriptor"
	"github.com/water-framework/waterws/internal/pin"
	"github.com/water-framework/waterws/internal/render"
)

// DefaultVersion is used when a waterfile pins no artifact version.
const DefaultVersion = "unspecified"

// Coordinate derives the module's artifact coordinate: explicit artifact
// fields win, the directory name fills in a missing name, the workspace
// group fills in a missing group, and the version falls back to
// DefaultVersion.
func (f *File) Coordinate(dirName, defaultGroup string) render.Coordinate {
	c := render.Coordinate{
		Group:   f.Artifact.Group,
		Name:    f.Artifact.Name,
		Version: f.Artifact.Version,
	}
	if c.Group == "" {
		c.Group = defaultGroup
	}
	if c.Name == "" {
		c.Name = dirName
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	return c
}

// Apply replays the waterfile through the declaration containers, producing
// the module's descriptor. Catalog errors (unknown standard mnemonics)
// surface exactly as they would for programmatic declaration.
func (f *File) Apply(address string) (*descriptor.Descriptor, error) {
	d := descriptor.New(address)
	d.ModuleID = f.ModuleID
	d.DisplayName = f.DisplayName
	d.Description = f.Description

	for _, p := range f.Properties {
		d.Properties().Property(p.Key, p.configure())
	}

	for _, entry := range f.Output {
		if err := applyOutput(d.Output(), entry); err != nil {
			return nil, err
		}
	}
	for _, entry := range f.Input {
		if err := applyInput(d.Input(), entry); err != nil {
			return nil, err
		}
	}

	return d, nil
}

func applyOutput(c *pin.OutputContainer, entry OutputEntry) error {
	configure := func(o *pin.Output) {
		if entry.Required != nil {
			o.Required = *entry.Required
		}
		for _, p := range entry.Properties {
			o.Property(p.Key, p.configure())
		}
	}
	if entry.Standard != "" {
		return c.StandardPinWith(entry.Standard, configure)
	}
	c.Pin(entry.ID, configure)
	return nil
}

func applyInput(c *pin.InputContainer, entry InputEntry) error {
	configure := func(in *pin.Input) {
		if entry.Required != nil {
			in.Required = *entry.Required
		}
	}
	if entry.Standard != "" {
		return c.StandardPinWith(entry.Standard, configure)
	}
	c.PinWith(entry.ID, configure)
	return nil
}

// configure maps one schema property entry onto a declared property. An
// absent required field keeps the declaration default.
func (p Property) configure() func(*pin.Property) {
	return func(target *pin.Property) {
		if p.Type != "" {
			target.Type = p.Type
		}
		target.EnvVar = p.EnvVar
		if p.Required != nil {
			target.Required = *p.Required
		}
		target.Sensitive = p.Sensitive
		target.Default = p.Default
		target.Description = p.Description
	}
}

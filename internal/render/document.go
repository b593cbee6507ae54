// Package render serializes effective module descriptors into the published
// water.json document and emits them into the module build directory.
package render

// SchemaVersion marks the descriptor document schema.
const SchemaVersion = "1.0"

// Extension is the publication extension of emitted descriptor files, with
// no classifier.
const Extension = "water.json"

// Document is the serialized module descriptor. Field order mirrors the
// published schema and is stable across renders; the arrays are present even
// when empty, never null.
type Document struct {
	SchemaVersion string        `json:"schemaVersion"`
	ArtifactID    string        `json:"artifactId"`
	ModuleID      string        `json:"moduleId"`
	DisplayName   string        `json:"displayName"`
	Description   string        `json:"description"`
	Properties    []PropertyDoc `json:"properties"`
	Pins          PinsDoc       `json:"pins"`
}

// PropertyDoc is one module-level property entry.
type PropertyDoc struct {
	Key          string `json:"key"`
	Type         string `json:"type"`
	EnvVar       string `json:"envVar"`
	Required     bool   `json:"required"`
	Sensitive    bool   `json:"sensitive"`
	DefaultValue string `json:"defaultValue"`
	Description  string `json:"description"`
}

// PinsDoc groups the contract arrays.
type PinsDoc struct {
	Output []OutputDoc `json:"output"`
	Input  []InputDoc  `json:"input"`
}

// OutputDoc is one provided contract entry.
type OutputDoc struct {
	ID         string           `json:"id"`
	Required   bool             `json:"required"`
	Properties []PinPropertyDoc `json:"properties"`
}

// PinPropertyDoc is one property entry inside an output contract.
type PinPropertyDoc struct {
	Key          string `json:"key"`
	Required     bool   `json:"required"`
	Sensitive    bool   `json:"sensitive"`
	DefaultValue string `json:"defaultValue"`
}

// InputDoc is one consumed contract entry. Input properties are an in-memory
// convenience and never reach the document.
type InputDoc struct {
	ID       string `json:"id"`
	Required bool   `json:"required"`
}

// buildDocument maps the serializer input onto the document shape.
func buildDocument(in Input) Document {
	doc := Document{
		SchemaVersion: SchemaVersion,
		ArtifactID:    in.Coordinate.String(),
		ModuleID:      in.ModuleID,
		DisplayName:   in.DisplayName,
		Description:   in.Description,
		Properties:    make([]PropertyDoc, 0, len(in.Properties)),
		Pins: PinsDoc{
			Output: make([]OutputDoc, 0, len(in.Outputs)),
			Input:  make([]InputDoc, 0, len(in.Inputs)),
		},
	}

	for _, p := range in.Properties {
		doc.Properties = append(doc.Properties, PropertyDoc{
			Key:          p.Key,
			Type:         p.Type,
			EnvVar:       p.EnvVar,
			Required:     p.Required,
			Sensitive:    p.Sensitive,
			DefaultValue: p.Default,
			Description:  p.Description,
		})
	}

	for _, o := range in.Outputs {
		entry := OutputDoc{
			ID:         o.ID(),
			Required:   o.Required,
			Properties: make([]PinPropertyDoc, 0, len(o.Properties())),
		}
		for _, p := range o.Properties() {
			entry.Properties = append(entry.Properties, PinPropertyDoc{
				Key:          p.Key,
				Required:     p.Required,
				Sensitive:    p.Sensitive,
				DefaultValue: p.Default,
			})
		}
		doc.Pins.Output = append(doc.Pins.Output, entry)
	}

	for _, i := range in.Inputs {
		doc.Pins.Input = append(doc.Pins.Input, InputDoc{
			ID:       i.ID(),
			Required: i.Required,
		})
	}

	return doc
}

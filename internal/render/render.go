package render

import (
	"encoding/json"
	"fmt"

	"github.com/water-framework/waterws/internal/pin"
)

// Coordinate is a Maven-style artifact coordinate.
type Coordinate struct {
	Group   string
	Name    string
	Version string
}

// String returns the canonical group:name:version form used as the
// document's artifactId.
func (c Coordinate) String() string {
	return fmt.Sprintf("%s:%s:%s", c.Group, c.Name, c.Version)
}

// FileName returns the descriptor file name for the coordinate.
func (c Coordinate) FileName() string {
	return fmt.Sprintf("%s-%s.%s", c.Name, c.Version, Extension)
}

// Input carries one module's identity and effective contracts to the
// serializer.
type Input struct {
	Coordinate  Coordinate
	ModuleID    string
	DisplayName string
	Description string

	Properties []*pin.Property // module-level properties
	Outputs    []*pin.Output   // effective output contracts
	Inputs     []*pin.Input    // effective input contracts
}

// Render serializes one module descriptor into the published document
// string: 2-space indented JSON with a trailing newline. Rendering identical
// logical content yields byte-identical strings; the incremental emission
// check relies on that, so nothing here may reorder, sort, or rehash.
func Render(in Input) (string, error) {
	data, err := json.MarshalIndent(buildDocument(in), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling descriptor for %q: %w", in.ModuleID, err)
	}
	return string(data) + "\n", nil
}

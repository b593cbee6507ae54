package descriptor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/water-framework/waterws/internal/errors"
	"github.com/water-framework/waterws/internal/pin"
)

// Effective is the merged contract surface of one module: inherited
// contracts unioned with own declarations, ready for serialization.
type Effective struct {
	Output []*pin.Output
	Input  []*pin.Input
}

// CycleError indicates that inherits-from references form a cycle.
type CycleError struct {
	// Path holds the module names along the cycle, with the entry module
	// repeated at the end.
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("inheritance cycle detected: %s", strings.Join(e.Path, " -> "))
}

func (e *CycleError) Unwrap() error {
	return errors.ErrValidation
}

// Resolve produces the effective contract sets for the given descriptor.
//
// Inherited sources are merged in declaration order, with the module's own
// declarations applied last. Contracts are identified by id: an own
// declaration replaces an inherited one wholesale, and among inherited
// sources the later-declared source wins. A replaced id keeps the merge
// position of its first appearance. Referenced descriptors that declare
// their own inherits-from list are resolved first, depth-first; cycles fail
// with a CycleError naming the path. Referenced descriptors are never
// mutated; every contract in the result is a clone.
//
// Callers must ensure all referenced descriptors have finished their
// declarative configuration before resolving.
func Resolve(d *Descriptor) (*Effective, error) {
	r := &resolver{visiting: make(map[*Descriptor]bool)}
	return r.resolve(d)
}

type resolver struct {
	visiting map[*Descriptor]bool
	path     []string
}

func (r *resolver) resolve(d *Descriptor) (*Effective, error) {
	if r.visiting[d] {
		return nil, &CycleError{Path: append(slices.Clone(r.path), d.Name())}
	}
	r.visiting[d] = true
	r.path = append(r.path, d.Name())
	defer func() {
		delete(r.visiting, d)
		r.path = r.path[:len(r.path)-1]
	}()

	var outputs outputMerge
	var inputs inputMerge

	for _, ref := range d.Inherits() {
		eff, err := r.resolve(ref)
		if err != nil {
			return nil, err
		}
		// Contracts from a recursive resolve are already fresh clones.
		for _, o := range eff.Output {
			outputs.put(o)
		}
		for _, in := range eff.Input {
			inputs.put(in)
		}
	}
	for _, o := range d.Output().Pins() {
		outputs.put(o.Clone())
	}
	for _, in := range d.Input().Pins() {
		inputs.put(in.Clone())
	}

	eff := &Effective{Output: outputs.values(), Input: inputs.values()}
	copyInputProperties(eff)
	return eff, nil
}

// copyInputProperties gives every effective input whose id matches an
// effective output of the same module a copy of that output's properties.
// The copy is an in-memory convenience; the serializer never writes input
// properties.
func copyInputProperties(eff *Effective) {
	byID := make(map[string]*pin.Output, len(eff.Output))
	for _, o := range eff.Output {
		byID[o.ID()] = o
	}
	for _, in := range eff.Input {
		if o, ok := byID[in.ID()]; ok {
			in.CopyPropertiesFrom(o)
		}
	}
}

// outputMerge is an insertion-ordered id to contract table: the first put of
// an id fixes its position, later puts replace the value in place.
type outputMerge struct {
	order []string
	byID  map[string]*pin.Output
}

func (m *outputMerge) put(o *pin.Output) {
	if m.byID == nil {
		m.byID = make(map[string]*pin.Output)
	}
	if _, seen := m.byID[o.ID()]; !seen {
		m.order = append(m.order, o.ID())
	}
	m.byID[o.ID()] = o
}

func (m *outputMerge) values() []*pin.Output {
	out := make([]*pin.Output, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

type inputMerge struct {
	order []string
	byID  map[string]*pin.Input
}

func (m *inputMerge) put(in *pin.Input) {
	if m.byID == nil {
		m.byID = make(map[string]*pin.Input)
	}
	if _, seen := m.byID[in.ID()]; !seen {
		m.order = append(m.order, in.ID())
	}
	m.byID[in.ID()] = in
}

func (m *inputMerge) values() []*pin.Input {
	out := make([]*pin.Input, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

package fieldset

import (
	"fmt"
	"slices"
)

// Schema is the ordered, immutable set of slots that defines a record type.
// A schema is built once, typically in a package-level variable, and is then
// shared read-only by every record created from it. That makes a Schema safe
// for concurrent use by goroutines constructing different records.
type Schema struct {
	slots []Slot
	index map[string]int
}

// New builds a schema from the given slots. It fails with ErrInvalidSchema on
// an empty slot list, an empty or duplicate field name, or a nil rule.
func New(slots ...Slot) (*Schema, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: no fields defined", ErrInvalidSchema)
	}

	index := make(map[string]int, len(slots))
	for i, slot := range slots {
		if slot.name == "" {
			return nil, fmt.Errorf("%w: field %d has an empty name", ErrInvalidSchema, i)
		}
		if slot.rule == nil {
			return nil, fmt.Errorf("%w: field %q has no rule", ErrInvalidSchema, slot.name)
		}
		if _, exists := index[slot.name]; exists {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, slot.name)
		}
		index[slot.name] = i
	}

	return &Schema{slots: slices.Clone(slots), index: index}, nil
}

// MustNew is like New but panics on a malformed definition. It is meant for
// package-level schema variables, where a malformed schema is a programming
// error caught on the first run.
func MustNew(slots ...Slot) *Schema {
	s, err := New(slots...)
	if err != nil {
		panic(err)
	}
	return s
}

// Slot looks up the descriptor for a field by its public name. This is the
// type-level view of a field: it exposes the binding and its rule, not any
// record's value.
func (s *Schema) Slot(name string) (Slot, bool) {
	i, ok := s.index[name]
	if !ok {
		return Slot{}, false
	}
	return s.slots[i], true
}

// Slots returns a copy of all slots in definition order.
func (s *Schema) Slots() []Slot {
	return slices.Clone(s.slots)
}

// Len returns the number of fields the schema defines.
func (s *Schema) Len() int {
	return len(s.slots)
}

// NewRecord creates an empty record bound to this schema. No field is set;
// reading any field before the first write fails with ErrAttributeNotSet.
func (s *Schema) NewRecord() *Record {
	return &Record{
		schema:  s,
		backing: make(map[string]Value, len(s.slots)),
	}
}

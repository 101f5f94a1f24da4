package fieldset

import "maps"

// Record is one instance of a schema: a private backing store holding the
// current validated value of each field that has been written. Every write
// goes through the field's rule; a rejected write leaves the store untouched.
//
// A Record is not safe for concurrent mutation. Distinct records sharing a
// schema may be used from different goroutines freely.
type Record struct {
	schema  *Schema
	backing map[string]Value
}

// Schema returns the shared schema this record was created from.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Get returns the current value of the named field. It fails with
// ErrUnknownField if the schema does not define the field, and with
// ErrAttributeNotSet if the field was never successfully written.
func (r *Record) Get(name string) (Value, error) {
	slot, ok := r.schema.Slot(name)
	if !ok {
		return Value{}, &FieldError{Field: name, Err: ErrUnknownField}
	}
	v, ok := r.backing[slot.backing]
	if !ok {
		return Value{}, &FieldError{Field: name, Err: ErrAttributeNotSet}
	}
	return v, nil
}

// Set validates v against the field's rule and, only if the rule accepts it,
// stores it in the backing entry, overwriting any previous value. On
// rejection nothing is stored and the field keeps its prior value; the error
// reports the field name and wraps the rule's failure.
func (r *Record) Set(name string, v Value) error {
	slot, ok := r.schema.Slot(name)
	if !ok {
		return &FieldError{Field: name, Err: ErrUnknownField}
	}
	if err := slot.rule.Check(v); err != nil {
		return &FieldError{Field: name, Err: err}
	}
	r.backing[slot.backing] = v
	return nil
}

// Has reports whether the named field has been successfully written. It
// returns false for fields the schema does not define.
func (r *Record) Has(name string) bool {
	slot, ok := r.schema.Slot(name)
	if !ok {
		return false
	}
	_, set := r.backing[slot.backing]
	return set
}

// Values returns a snapshot of all set fields keyed by their public names.
// Fields never written are absent from the map.
func (r *Record) Values() map[string]Value {
	out := make(map[string]Value, len(r.backing))
	for _, slot := range r.schema.slots {
		if v, ok := r.backing[slot.backing]; ok {
			out[slot.name] = v
		}
	}
	return out
}

// Clone returns an independent copy of the record. The copy shares the schema
// but has its own backing store.
func (r *Record) Clone() *Record {
	return &Record{
		schema:  r.schema,
		backing: maps.Clone(r.backing),
	}
}

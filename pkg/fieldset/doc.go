// Package fieldset provides declarative per-field validation for plain data
// records: a record type is described once as a schema of named, rule-guarded
// field slots, and every write to a record built from that schema is routed
// through the field's rule before it is stored.
//
// # Overview
//
// Three building blocks cooperate:
//
//   - Rule   – a stateless constraint with a single Check(Value) error
//     operation. Two concrete rules ship with the package: Range (inclusive
//     integer bounds) and OneOf (fixed string option set).
//   - Slot   – the immutable binding between a field name and its Rule,
//     created with Field at schema-definition time.
//   - Schema – the ordered collection of slots defining a record type; each
//     Record created from it carries a private backing store and delegates
//     every write to the matching slot's rule.
//
// Values cross the rule boundary as a closed tagged union ({integer, string})
// rather than an untyped interface, so each rule resolves its input to a
// concrete type at the check site.
//
// # Usage
//
//	var burger = fieldset.MustNew(
//	    fieldset.Field("buns", fieldset.Range(2, 3)),
//	    fieldset.Field("sauce", fieldset.OneOf("ketchup", "mayo")),
//	)
//
//	rec := burger.NewRecord()
//	if err := rec.Set("buns", fieldset.Int(2)); err != nil {
//	    // rejected, nothing stored
//	}
//	v, err := rec.Get("buns") // fieldset.Int(2), nil
//
// Schemas are meant to live in package-level variables, defined once and
// shared read-only by all records; that mirrors declaring constrained fields
// on the record type itself. Schema and Rule values are safe for concurrent
// use; a single Record is not safe for concurrent mutation.
//
// # Error Handling
//
// Failures are never recovered internally; they surface to the caller of Set
// or Get, wrapped in a FieldError that names the field and unwraps to one of
// the sentinel errors:
//
//   - ErrTypeMismatch    – a numeric field received a non-integer value.
//   - ErrOutOfRange      – an integer fell outside its inclusive bounds.
//   - ErrNotInSet        – a value was not one of the permitted options.
//   - ErrAttributeNotSet – a field was read before it was ever written.
//   - ErrUnknownField    – the schema does not define the named field.
//
// Match kinds with errors.Is and recover the field name with errors.As.
//
// Writes are all-or-nothing: a rejected Set leaves the field's prior value,
// if any, in place.
package fieldset

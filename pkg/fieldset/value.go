package fieldset

import "strconv"

// Kind identifies which member of the Value union is populated.
type Kind int

const (
	// KindNone is the zero Value; it carries no data.
	KindNone Kind = iota
	// KindInt marks an integer value.
	KindInt
	// KindString marks a string value.
	KindString
)

// String returns a short name for the kind, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindString:
		return "string"
	default:
		return "none"
	}
}

// Value is a closed tagged union over the types a field can hold: integers
// and strings. Rules resolve a Value to its concrete type at the point of the
// check, so no rule ever sees an untyped interface value. There is
// deliberately no boolean constructor; a boolean cannot reach a rule at all.
type Value struct {
	kind Kind
	i    int64
	s    string
}

// Int wraps an int as a Value.
func Int(v int) Value {
	return Value{kind: KindInt, i: int64(v)}
}

// Int64 wraps an int64 as a Value.
func Int64(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// String wraps a string as a Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind reports which member of the union is populated.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer member. The second result is false when the Value
// does not hold an integer.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Str returns the string member. The second result is false when the Value
// does not hold a string.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// IsZero reports whether the Value carries no data.
func (v Value) IsZero() bool {
	return v.kind == KindNone
}

// Equal reports whether two Values hold the same kind and the same data.
func (v Value) Equal(other Value) bool {
	return v == other
}

// String renders the value for diagnostics: integers as-is, strings quoted,
// the zero Value as "<none>".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return strconv.Quote(v.s)
	default:
		return "<none>"
	}
}

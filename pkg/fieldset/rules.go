package fieldset

import (
	"fmt"
	"slices"
	"strings"
)

// Rule is a stateless constraint policy over a single field value. Check is a
// pure predicate: it either accepts the value (nil) or rejects it with an
// error that wraps one of the package sentinels. Implementations must not
// mutate any state after construction; a single Rule instance is shared
// read-only by every record of the owning schema.
type Rule interface {
	Check(v Value) error
}

// RangeRule accepts integers within an inclusive [min, max] interval.
type RangeRule struct {
	min, max int64
}

// Range creates a rule accepting integers between min and max, inclusive.
// min <= max is assumed, not validated.
func Range(min, max int64) RangeRule {
	return RangeRule{min: min, max: max}
}

// Min returns the inclusive lower bound.
func (r RangeRule) Min() int64 { return r.min }

// Max returns the inclusive upper bound.
func (r RangeRule) Max() int64 { return r.max }

// Check rejects non-integer values with ErrTypeMismatch and integers outside
// the bounds with ErrOutOfRange.
func (r RangeRule) Check(v Value) error {
	n, ok := v.Int()
	if !ok {
		return fmt.Errorf("%w: expected integer, got %s %s", ErrTypeMismatch, v.Kind(), v)
	}
	if n < r.min || n > r.max {
		return fmt.Errorf("%w: %d is not between %d and %d", ErrOutOfRange, n, r.min, r.max)
	}
	return nil
}

func (r RangeRule) String() string {
	return fmt.Sprintf("range[%d,%d]", r.min, r.max)
}

// SetRule accepts strings that are members of a fixed option set.
type SetRule struct {
	options []string
}

// OneOf creates a rule accepting any of the given options. The option list is
// copied, so the rule stays immutable even if the caller reuses the slice.
func OneOf(options ...string) SetRule {
	return SetRule{options: slices.Clone(options)}
}

// Options returns a copy of the permitted options in declaration order.
func (r SetRule) Options() []string {
	return slices.Clone(r.options)
}

// Check rejects any value that is not a member of the option set with
// ErrNotInSet. Membership is by string equality; a non-string value is simply
// not a member.
func (r SetRule) Check(v Value) error {
	if s, ok := v.Str(); ok && slices.Contains(r.options, s) {
		return nil
	}
	return fmt.Errorf("%w: expected %s to be one of [%s]", ErrNotInSet, v, strings.Join(r.options, ", "))
}

func (r SetRule) String() string {
	return fmt.Sprintf("oneof[%s]", strings.Join(r.options, " "))
}

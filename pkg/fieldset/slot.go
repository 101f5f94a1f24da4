package fieldset

import "fmt"

// backingPrefix is prepended to a field name to derive the name of the
// private backing entry that stores the field's validated value.
const backingPrefix = "_"

// Slot is the binding between a named field of a record type and the Rule
// that guards it. Slots are created once, when the schema is defined, and are
// immutable afterwards; every record of the schema shares the same slots.
type Slot struct {
	name    string
	backing string
	rule    Rule
}

// Field binds a field name to a rule. The backing name is derived from the
// field name deterministically at this point and never changes.
func Field(name string, rule Rule) Slot {
	return Slot{
		name:    name,
		backing: backingPrefix + name,
		rule:    rule,
	}
}

// Name returns the public field name.
func (s Slot) Name() string { return s.name }

// Backing returns the name of the private backing entry for this field.
func (s Slot) Backing() string { return s.backing }

// Rule returns the rule guarding this field.
func (s Slot) Rule() Rule { return s.rule }

func (s Slot) String() string {
	return fmt.Sprintf("%s %s", s.name, s.rule)
}

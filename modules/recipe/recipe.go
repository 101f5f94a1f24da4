// Package recipe defines a burger recipe record whose fields are guarded by
// declarative validation rules from pkg/fieldset. Each ingredient has a fixed
// allowed quantity range and the sauce must be one of a closed set; every
// write, at construction or later, re-runs the field's rule and is rejected
// atomically if the value is invalid.
package recipe

import (
	"github.com/dmitrymomot/fieldkit/pkg/fieldset"
)

// Field names of the burger record, as reported by FieldError on a rejected
// write.
const (
	FieldBuns     = "buns"
	FieldCheese   = "cheese"
	FieldTomatoes = "tomatoes"
	FieldCutlets  = "cutlets"
	FieldEggs     = "eggs"
	FieldSauce    = "sauce"
)

// burgerFields is defined once per process and shared read-only by every
// Burger instance.
var burgerFields = fieldset.MustNew(
	fieldset.Field(FieldBuns, fieldset.Range(2, 3)),
	fieldset.Field(FieldCheese, fieldset.Range(0, 2)),
	fieldset.Field(FieldTomatoes, fieldset.Range(0, 3)),
	fieldset.Field(FieldCutlets, fieldset.Range(1, 3)),
	fieldset.Field(FieldEggs, fieldset.Range(0, 2)),
	fieldset.Field(FieldSauce, fieldset.OneOf("ketchup", "mayo", "burger")),
)

// Fields returns the shared schema of the burger record, the type-level view
// of its field slots and rules.
func Fields() *fieldset.Schema {
	return burgerFields
}

// Burger is a recipe with six validated fields. A Burger only ever exists
// fully populated: New validates and stores all six values or fails without
// producing an instance.
type Burger struct {
	rec *fieldset.Record
}

// New builds a burger recipe, validating each argument in field order. The
// first value rejected by its rule aborts construction and is returned;
// later fields are not checked.
func New(buns, cheese, tomatoes, cutlets, eggs int, sauce string) (*Burger, error) {
	rec := burgerFields.NewRecord()

	assignments := []struct {
		field string
		value fieldset.Value
	}{
		{FieldBuns, fieldset.Int(buns)},
		{FieldCheese, fieldset.Int(cheese)},
		{FieldTomatoes, fieldset.Int(tomatoes)},
		{FieldCutlets, fieldset.Int(cutlets)},
		{FieldEggs, fieldset.Int(eggs)},
		{FieldSauce, fieldset.String(sauce)},
	}

	for _, a := range assignments {
		if err := rec.Set(a.field, a.value); err != nil {
			return nil, err
		}
	}

	return &Burger{rec: rec}, nil
}

// Record exposes the underlying validated record, for callers that want
// name-based access to the fields.
func (b *Burger) Record() *fieldset.Record {
	return b.rec
}

func (b *Burger) Buns() int { return b.intField(FieldBuns) }

func (b *Burger) Cheese() int { return b.intField(FieldCheese) }

func (b *Burger) Tomatoes() int { return b.intField(FieldTomatoes) }

func (b *Burger) Cutlets() int { return b.intField(FieldCutlets) }

func (b *Burger) Eggs() int { return b.intField(FieldEggs) }

func (b *Burger) Sauce() string {
	v, _ := b.rec.Get(FieldSauce)
	s, _ := v.Str()
	return s
}

// SetBuns replaces the buns count, rejecting values outside 2..3.
func (b *Burger) SetBuns(v int) error {
	return b.rec.Set(FieldBuns, fieldset.Int(v))
}

// SetCheese replaces the cheese count, rejecting values outside 0..2.
func (b *Burger) SetCheese(v int) error {
	return b.rec.Set(FieldCheese, fieldset.Int(v))
}

// SetTomatoes replaces the tomato count, rejecting values outside 0..3.
func (b *Burger) SetTomatoes(v int) error {
	return b.rec.Set(FieldTomatoes, fieldset.Int(v))
}

// SetCutlets replaces the cutlet count, rejecting values outside 1..3.
func (b *Burger) SetCutlets(v int) error {
	return b.rec.Set(FieldCutlets, fieldset.Int(v))
}

// SetEggs replaces the egg count, rejecting values outside 0..2.
func (b *Burger) SetEggs(v int) error {
	return b.rec.Set(FieldEggs, fieldset.Int(v))
}

// SetSauce replaces the sauce, rejecting anything but ketchup, mayo or burger.
func (b *Burger) SetSauce(v string) error {
	return b.rec.Set(FieldSauce, fieldset.String(v))
}

// intField reads an integer field. All fields are set at construction, so
// the lookups cannot fail on a constructed Burger.
func (b *Burger) intField(name string) int {
	v, _ := b.rec.Get(name)
	n, _ := v.Int()
	return int(n)
}

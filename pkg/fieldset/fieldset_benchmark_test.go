package fieldset_test

import (
	"testing"

	"github.com/dmitrymomot/fieldkit/pkg/fieldset"
)

var benchSchema = fieldset.MustNew(
	fieldset.Field("buns", fieldset.Range(2, 3)),
	fieldset.Field("sauce", fieldset.OneOf("ketchup", "mayo", "burger")),
)

func BenchmarkRangeCheck(b *testing.B) {
	rule := fieldset.Range(0, 100)
	v := fieldset.Int(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rule.Check(v)
	}
}

func BenchmarkSetCheck(b *testing.B) {
	rule := fieldset.OneOf("ketchup", "mayo", "burger")
	v := fieldset.String("burger")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rule.Check(v)
	}
}

func BenchmarkRecordSet(b *testing.B) {
	rec := benchSchema.NewRecord()
	v := fieldset.Int(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rec.Set("buns", v)
	}
}

func BenchmarkRecordGet(b *testing.B) {
	rec := benchSchema.NewRecord()
	if err := rec.Set("sauce", fieldset.String("mayo")); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rec.Get("sauce")
	}
}

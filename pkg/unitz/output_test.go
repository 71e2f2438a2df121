package unitz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutput_Value(t *testing.T) {
	reg := testRegistry()
	lb := reg.Lookup("lb")
	oneAndHalf := FromFraction(3, 2, "lbs", lb)

	tests := []struct {
		name  string
		setup func(*Output)
		v     Value
		want  string
	}{
		{"given", func(*Output) {}, oneAndHalf, "1 1/2lbs"},
		{"improper", func(o *Output) { o.Format = FormatImproper }, oneAndHalf, "3/2lbs"},
		{"number", func(o *Output) { o.Format = FormatNumber }, oneAndHalf, "1.5lbs"},
		{"short", func(o *Output) { o.Unit = UnitShort }, oneAndHalf, "1 1/2lb"},
		{"long", func(o *Output) { o.Unit = UnitLong }, oneAndHalf, "1 1/2pounds"},
		{"long singular", func(o *Output) { o.Unit = UnitLong }, NewDecimal(1, "lb", lb), "1pound"},
		{"none", func(o *Output) { o.Unit = UnitNone }, oneAndHalf, "1 1/2"},
		{"spacers", func(o *Output) { o.UnitSpacer, o.MixedSpacer, o.FractionSpacer = " ", "-", "⁄" }, oneAndHalf, "1-1⁄2 lbs"},
		{"significant", func(o *Output) { o.Significant = 2 }, NewDecimal(1.23456, "lb", lb), "1.23lb"},
		{"significant keeps short", func(o *Output) { o.Significant = 3 }, NewDecimal(1.5, "lb", lb), "1.5lb"},
		{"no unit text", func(o *Output) { o.UnitSpacer = " " }, NewDecimal(2, "", nil), "2"},
		{"negative mixed", func(*Output) {}, FromFraction(-7, 4, "lb", lb), "-1 3/4lb"},
		{"locale", func(o *Output) { o.Locale = "de" }, NewDecimal(1234.5, "lb", lb), "1.234,5lb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOutput()
			tt.setup(&o)
			assert.Equal(t, tt.want, o.Value(tt.v))
		})
	}
}

func TestOutput_Range(t *testing.T) {
	reg := testRegistry()
	g, kg := reg.Lookup("g"), reg.Lookup("kg")
	o := DefaultOutput()

	r := NewRange(NewDecimal(1, "g", g), NewDecimal(2, "g", g))
	assert.Equal(t, "1 - 2g", o.Range(r))

	o.RepeatUnit = true
	assert.Equal(t, "1g - 2g", o.Range(r))
	o.RepeatUnit = false

	mixed := NewRange(NewDecimal(500, "g", g), NewDecimal(1, "kg", kg))
	assert.Equal(t, "1kg - 500g", o.Range(mixed), "larger number is max")

	o.RangeSpacer, o.Delimiter = " to ", "; "
	assert.Equal(t, "1 to 2g; 3g", o.Ranges([]Range{r, Fixed(NewDecimal(3, "g", g)), InvalidRange}))
}

func TestOutput_InvalidIsEmpty(t *testing.T) {
	o := DefaultOutput()
	assert.Equal(t, "", o.Value(Invalid))
	assert.Equal(t, "", o.Range(InvalidRange))
	assert.Equal(t, "", o.Range(NewRange(NewDecimal(1, "c", nil), Invalid)))
}

func TestOutput_DynamicUsesShortName(t *testing.T) {
	reg := testRegistry()
	g := reg.Group("cloves")
	reg.Group("clove")
	o := DefaultOutput()
	o.UnitSpacer = " "
	assert.Equal(t, "1 clove", o.Value(NewDecimal(1, "cloves", g)))
	assert.Equal(t, "2 cloves", o.Value(NewDecimal(2, "clove", g)))
}

package unitz_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambeau/unitz/pkg/unitz"
	"github.com/sambeau/unitz/pkg/unitz/classes"
)

var testRegistries sync.Map

// uz parses text with a registry shared by every call in the same test, so
// bases built by one test can be added together.
func uz(t *testing.T, text string) *unitz.Base {
	t.Helper()
	reg, ok := testRegistries.Load(t)
	if !ok {
		reg = classes.NewRegistry()
		testRegistries.Store(t, reg)
		t.Cleanup(func() { testRegistries.Delete(t) })
	}
	return reg.(*unitz.Registry).Parse(unitz.Text(text))
}

func TestBase_ParsesRanges(t *testing.T) {
	u := uz(t, "1 - 2 in^2, 23 1/4 lb")
	ranges := u.Ranges()
	require.Len(t, ranges, 2)

	r0, r1 := ranges[0], ranges[1]
	assert.Equal(t, 1.0, r0.Min().Float())
	assert.Equal(t, "in^2", r0.Min().Unit())
	assert.Equal(t, 2.0, r0.Max().Float())
	assert.Equal(t, "in^2", r0.Max().Unit())

	assert.Equal(t, 23.25, r1.Min().Float())
	assert.Equal(t, "lb", r1.Min().Unit())
	assert.Equal(t, 93.0, r1.Min().Num())
	assert.Equal(t, 4.0, r1.Min().Den())
	assert.Equal(t, 23.0, r1.Min().MixedWhole())
	assert.Equal(t, 1.0, r1.Min().MixedNum())
}

func TestBase_Scale(t *testing.T) {
	u := uz(t, "1c, 1-2m")
	s := u.Scale(1.5).Ranges()
	require.Len(t, s, 2)
	assert.Equal(t, 1.5, s[0].Min().Float())
	assert.Equal(t, "c", s[0].Min().Unit())
	assert.Equal(t, 1.5, s[1].Min().Float())
	assert.Equal(t, 3.0, s[1].Max().Float())
	assert.Equal(t, "m", s[1].Max().Unit())

	// the receiver is untouched
	assert.Equal(t, 1.0, u.Ranges()[0].Min().Float())
}

func TestBase_Positive(t *testing.T) {
	s := uz(t, "-1c, 1-2m").Positive().Ranges()
	require.Len(t, s, 1)
	assert.Equal(t, 1.0, s[0].Min().Float())
	assert.Equal(t, 2.0, s[0].Max().Float())
	assert.Equal(t, "m", s[0].Min().Unit())

	s = uz(t, "-1c, -1-2m").Positive().Ranges()
	require.Len(t, s, 1)
	assert.Equal(t, 0.0, s[0].Min().Float())
	assert.Equal(t, 2.0, s[0].Max().Float())
	assert.Equal(t, "m", s[0].Min().Unit())
}

func TestBase_PositiveKeepsZero(t *testing.T) {
	assert.Equal(t, "0c, 2tbsp", uz(t, "0c, 2tbsp, -4tbsp").Positive().String())

	s := uz(t, "-1 - 0m").Positive().Ranges()
	require.Len(t, s, 1)
	assert.Equal(t, 0.0, s[0].Min().Float())
	assert.Equal(t, 0.0, s[0].Max().Float())
	assert.Equal(t, "m", s[0].Max().Unit())
}

func TestBase_NonZeroIsExact(t *testing.T) {
	s := uz(t, "0.000001g, 0g, 0 - 0g, 2g").NonZero().Ranges()
	require.Len(t, s, 2)
	assert.Equal(t, 0.000001, s[0].Min().Float())
	assert.Equal(t, 2.0, s[1].Min().Float())
}

func TestBase_AddAcrossRegistries(t *testing.T) {
	a := classes.NewRegistry().Parse(unitz.Text("1oz"))
	b := classes.NewRegistry().Parse(unitz.Text("1lb, 3oz"))
	assert.Equal(t, "4oz, 1lb", a.Add(b).String())
	assert.Equal(t, "-2oz, -1lb", a.Sub(b).String())

	dyn := classes.NewRegistry()
	loaves := classes.NewRegistry().Parse(unitz.Text("2 loaves"))
	assert.Equal(t, "3loaves", dyn.Parse(unitz.Text("1 loaves")).Add(loaves).String())
}

func TestRegistry_ParseForeignBase(t *testing.T) {
	reg := classes.NewRegistry()
	foreign := classes.NewRegistry().Parse(unitz.Text("1lb"))
	moved := reg.Parse(foreign)
	g := moved.Ranges()[0].Group()
	require.NotNil(t, g)
	assert.Same(t, reg.Lookup("lb"), g)
}

func TestBase_Output(t *testing.T) {
	tests := []struct {
		name string
		run  func(*testing.T) string
		want string
	}{
		{"negative drops positives", func(t *testing.T) string { return uz(t, "-1c, 1-2m").Negative().String() }, "-1c"},
		{"negative clips tail", func(t *testing.T) string { return uz(t, "-1c, -1-2m").Negative().String() }, "-1c, -1 - 0m"},
		{"expand", func(t *testing.T) string { return uz(t, "24oz").Expand(nil).String() }, "1lb, 8oz"},
		{"normalize to oz", func(t *testing.T) string { return uz(t, "1.5 lb").Normalize(nil, nil).String() }, "24oz"},
		{"normalize to lb", func(t *testing.T) string { return uz(t, "32oz").Normalize(nil, nil).String() }, "2lb"},
		{"compact then normalize", func(t *testing.T) string { return uz(t, "6oz, 1lb").Compact(nil).Normalize(nil, nil).String() }, "22oz"},
		{"compact", func(t *testing.T) string { return uz(t, "6oz, 1lb").Compact(nil).String() }, "1 3/8lb"},
		{"sort", func(t *testing.T) string { return uz(t, "1oz, 1g, 1lb").Sort(nil).String() }, "1lb, 1oz, 1g"},
		{"min", func(t *testing.T) string { return uz(t, "1-2g, 4oz, 4-5lb").Min().String() }, "1g, 4oz, 4lb"},
		{"max", func(t *testing.T) string { return uz(t, "1-2g, 4oz, 4-5lb").Max().String() }, "2g, 4oz, 5lb"},
		{"add match", func(t *testing.T) string { return uz(t, "1oz").Add(uz(t, "1lb, 3oz")).String() }, "4oz, 1lb"},
		{"add mismatch", func(t *testing.T) string { return uz(t, "1oz").Add(unitz.Text("1lb")).String() }, "1oz, 1lb"},
		{"add perfect match", func(t *testing.T) string { return uz(t, "1oz").Add(unitz.Text("4oz")).String() }, "5oz"},
		{"sub", func(t *testing.T) string { return uz(t, "5oz").Sub(unitz.Text("2oz")).String() }, "3oz"},
		{"sub remainder", func(t *testing.T) string { return uz(t, "5oz").Sub(unitz.Text("1lb")).String() }, "5oz, -1lb"},
		{"fractions", func(t *testing.T) string { return uz(t, "0.5 in").Fractions().String() }, "1/2in"},
		{"numbers", func(t *testing.T) string { return uz(t, "1 1/2 in").Numbers().String() }, "1.5in"},
		{"non zero", func(t *testing.T) string { return uz(t, "0g, 2g").NonZero().String() }, "2g"},
		{"groupless compact", func(t *testing.T) string { return uz(t, "1/2, 1/4").Compact(nil).String() }, "3/4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.run(t))
		})
	}
}

func TestBase_ExpandSignificant(t *testing.T) {
	out := unitz.DefaultOutput()
	out.Significant = 2
	assert.Equal(t, "1ton, 345lb, 6.4oz", uz(t, "2345.4 lbs").Expand(nil).Output(&out))
}

func TestBase_Convert(t *testing.T) {
	r, ok := uz(t, "1.5 lb").Convert("oz")
	require.True(t, ok)
	assert.Equal(t, 24.0, r.Max().Float())

	r, ok = uz(t, "1 - 2lb").Convert("oz")
	require.True(t, ok)
	assert.Equal(t, 16.0, r.Min().Float())
	assert.Equal(t, 32.0, r.Max().Float())

	to := uz(t, "60 mph").To("mi/min").Ranges()
	require.Len(t, to, 1)
	assert.InDelta(t, 1.0, to[0].Max().Float(), 1e-9)

	_, ok = uz(t, "1 lb").Convert("parsecs")
	assert.False(t, ok)
	assert.Equal(t, 0, uz(t, "1 lb").To("parsecs").Len())
}

func TestBase_NormalizeTransform(t *testing.T) {
	out := unitz.DefaultOutput()
	out.Significant = 1

	metric := unitz.DefaultTransform()
	metric.System = unitz.Metric
	metric.Min = 0.01

	assert.Equal(t, "652g", uz(t, "23oz").Normalize(&metric, &out).Output(&out))
}

func TestBase_Dynamic(t *testing.T) {
	reg := classes.NewRegistry()
	a := reg.Parse(unitz.Text("1 loaf")).Add(unitz.Text("2 loaves"))

	out := reg.Defaults().Output
	out.UnitSpacer = " "
	assert.Equal(t, "3 loaves", a.Output(&out))
	require.Len(t, reg.DynamicGroups(), 1)
}

func TestBase_Conversions(t *testing.T) {
	tr := unitz.DefaultTransform()
	tr.Min, tr.Max = 0.01, 1000

	out := unitz.DefaultOutput()
	out.Format = unitz.FormatNumber
	out.Significant = 2

	assert.Equal(t, "17oz, 1.06lb", uz(t, "1oz, 1lb").Conversions(&tr).Output(&out))
}

func TestBase_Filter(t *testing.T) {
	tr := unitz.DefaultTransform()
	tr.Groupless = false
	tr.OnlyUnits = []string{"oz"}
	assert.Equal(t, "1oz", uz(t, "1oz, 1lb, 2").Filter(&tr).String())

	tr = unitz.DefaultTransform()
	tr.NotClasses = []string{"Weight"}
	assert.Equal(t, "2m, 2", uz(t, "1oz, 2m, 2").Filter(&tr).String())
}

func TestBase_SortOptions(t *testing.T) {
	asc := unitz.DefaultSort()
	asc.Ascending = true
	assert.Equal(t, "1g, 1oz, 1lb", uz(t, "1oz, 1g, 1lb").Sort(&asc).String())

	byClass := unitz.DefaultSort()
	byClass.Classes = map[string]int{"Length": 1}
	assert.Equal(t, "1m, 1lb, 1g", uz(t, "1g, 1m, 1lb").Sort(&byClass).String())

	// group-less ranges go last when descending
	assert.Equal(t, "1g, 5", uz(t, "5, 1g").Sort(nil).String())
}

func TestBase_ScaleTo(t *testing.T) {
	u := uz(t, "1-3 c")
	assert.InDelta(t, 2.0, u.ScaleFactor("4 c", 0.5), 1e-9)
	assert.Equal(t, "2 - 6c", u.ScaleTo("4 c", 0.5).String())
	assert.Equal(t, 0.0, u.ScaleFactor("nonsense units", 0.5))
}

func TestBase_Expand_TimeAndLength(t *testing.T) {
	assert.Equal(t, "1ft, 6in", uz(t, "18in").Expand(nil).String())
	assert.Equal(t, "1hr, 30min", uz(t, "90min").Expand(nil).String())
}

func TestBase_CompactIsIdempotent(t *testing.T) {
	for _, text := range []string{"6oz, 1lb", "1c, 2tbsp, 3tsp", "1m, 20cm", "1/2, 3"} {
		t.Run(text, func(t *testing.T) {
			once := uz(t, text).Compact(nil)
			assert.Equal(t, once.String(), once.Compact(nil).String())
		})
	}
}

func TestBase_RoundTrip(t *testing.T) {
	reg := classes.NewRegistry()
	for _, text := range []string{"1 - 2c", "23 1/4lb", "-3/4tsp", "2.5kg", "1 - 1 1/2in"} {
		t.Run(text, func(t *testing.T) {
			first := reg.Parse(unitz.Text(text))
			second := reg.Parse(unitz.Text(first.String()))
			require.Equal(t, first.Len(), second.Len())
			for i, r := range first.Ranges() {
				s := second.Ranges()[i]
				assert.True(t, r.Min().Equals(s.Min()), "min %v vs %v", r.Min(), s.Min())
				assert.True(t, r.Max().Equals(s.Max()), "max %v vs %v", r.Max(), s.Max())
			}
		})
	}
}

func TestBase_Invalid(t *testing.T) {
	u := uz(t, "1 cup, 1/0 cup")
	assert.False(t, u.IsValid())
	assert.Equal(t, "1cup", u.String())
	assert.Len(t, u.Classes(), 1)
}

func TestBase_Input(t *testing.T) {
	reg := classes.NewRegistry()
	u := reg.Parse(unitz.List{
		unitz.Text("1-2 cups"),
		unitz.ExplicitValue{Num: 3, Den: 4, Unit: "tsp"},
		unitz.ExplicitRange{Min: unitz.ExplicitValue{Value: 2, Unit: "g"}, Max: unitz.ExplicitValue{Value: 1, Unit: "g"}},
	})
	require.Equal(t, 3, u.Len())
	assert.Equal(t, "1 - 2cups, 3/4tsp, 1 - 2g", u.String())
	assert.Equal(t, 1.0, u.Ranges()[2].Min().Float())
	assert.True(t, u.HasRanges())

	again := reg.Parse(u)
	assert.Equal(t, u.Len(), again.Len())
	assert.Same(t, u, again.Input())
}

package unitz

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	reg := testRegistry()
	assert.Equal(t, "lb", reg.Lookup("pounds").Unit())
	assert.Equal(t, "kg", reg.Lookup("Kilograms").Unit())
	assert.Nil(t, reg.Lookup("stone"))
	assert.Nil(t, reg.Lookup(""))
	assert.Empty(t, reg.DynamicGroups(), "lookup never synthesizes")
}

func TestRegistry_ExactBeatsFolded(t *testing.T) {
	reg := NewRegistry()
	reg.AddClasses(
		NewClass("Lower").Group(GroupDef{Unit: "t", BaseUnit: "t", Units: []Alias{alias("t", Either)}}).MustBuild(),
		NewClass("Upper").Group(GroupDef{Unit: "T", BaseUnit: "T", Units: []Alias{alias("T", Either)}}).MustBuild(),
	)
	assert.Equal(t, "Lower", reg.Lookup("t").Class().Name())
	assert.Equal(t, "Upper", reg.Lookup("T").Class().Name())
}

func TestRegistry_DynamicGroups(t *testing.T) {
	reg := testRegistry()
	var events []DynamicEvent
	reg.OnDynamic(func(ev DynamicEvent) { events = append(events, ev) })

	loaf := reg.Group("loaf")
	require.NotNil(t, loaf)
	assert.True(t, loaf.Dynamic())
	assert.Same(t, loaf, reg.Group("loaves"))
	assert.Same(t, loaf, reg.Group("LOAF"))
	assert.NotSame(t, loaf, reg.Group("cloves"))

	require.Len(t, events, 3)
	assert.True(t, events[0].Created)
	assert.False(t, events[1].Created)
	assert.Equal(t, "loaves", events[1].Unit)
	assert.True(t, events[2].Created)
	assert.Len(t, reg.DynamicGroups(), 2)

	reg.SetDynamic(false)
	assert.Nil(t, reg.Group("widgets"))
}

func TestRegistry_DynamicConcurrent(t *testing.T) {
	reg := testRegistry()
	var wg sync.WaitGroup
	groups := make([]*Group, 64)
	for i := range groups {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			groups[i] = reg.Group(fmt.Sprintf("bag%d", i%4))
		}(i)
	}
	wg.Wait()
	for _, g := range groups {
		assert.Same(t, groups[0], g)
	}
	assert.Len(t, reg.DynamicGroups(), 1)
}

func TestRegistry_Settings(t *testing.T) {
	reg := testRegistry()
	require.NoError(t, reg.SetPreferred("pounds"))
	assert.Equal(t, "pounds", reg.Lookup("lb").Preferred())

	require.NoError(t, reg.SetCommon("kg", false))
	assert.False(t, reg.Lookup("kg").Common())

	require.NoError(t, reg.SetDenominators("g", []int{4}))
	assert.Equal(t, []int{4}, reg.Lookup("g").Denominators())

	err := reg.SetDenominators("g", []int{0})
	assert.ErrorIs(t, err, ErrBadDenominator)

	assert.ErrorIs(t, reg.SetPreferred("stone"), ErrUnknownUnit)

	require.NoError(t, reg.AddAliases("lb", Alias{Name: "quid", Plurality: Either}))
	assert.Equal(t, "lb", reg.Lookup("quid").Unit())
	assert.True(t, reg.Lookup("lb").HasAlias("quid"))
}

func TestRegistry_ReplaceAndRemove(t *testing.T) {
	reg := testRegistry()
	replacement := NewClass("Weight").
		Group(GroupDef{Unit: "st", BaseUnit: "st", Units: []Alias{alias("stone", Either)}}).
		MustBuild()
	reg.AddClasses(replacement)

	assert.Len(t, reg.Classes(), 2)
	assert.Same(t, replacement, reg.Class("Weight"))
	assert.Nil(t, reg.Lookup("lb"))
	assert.Equal(t, "st", reg.Lookup("stone").Unit())

	assert.True(t, reg.RemoveClass("Weight"))
	assert.False(t, reg.RemoveClass("Weight"))
	assert.Nil(t, reg.Lookup("stone"))
}

func TestRegistry_Clone(t *testing.T) {
	reg := testRegistry()
	reg.Group("loaf")
	clone := reg.Clone()

	require.NoError(t, clone.SetPreferred("pounds"))
	assert.Equal(t, "lb", reg.Lookup("lb").Preferred())
	assert.NotSame(t, reg.Lookup("lb"), clone.Lookup("lb"))

	require.Len(t, clone.DynamicGroups(), 1)
	assert.Same(t, clone.DynamicGroups()[0], clone.Group("loaves"))
	assert.Len(t, reg.DynamicGroups(), 1)
}

func TestRegistry_Suggest(t *testing.T) {
	reg := testRegistry()
	assert.Equal(t, "pound", reg.Suggest("pund"))
	assert.Equal(t, "", reg.Suggest("zzzzzzzzzz"))
}

func TestRegistry_Units(t *testing.T) {
	units := testRegistry().Units()
	assert.Contains(t, units, "kilograms")
	assert.IsNonDecreasing(t, units)
}

func TestRegistry_Defaults(t *testing.T) {
	reg := testRegistry()
	d := reg.Defaults()
	d.Output.UnitSpacer = " "
	reg.SetDefaults(d)
	assert.Equal(t, "2 lb", reg.Parse(Text("2 lb")).String())
}

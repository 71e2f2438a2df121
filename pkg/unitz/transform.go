package unitz

import (
	"math"
	"slices"
)

// Transform decides which groups are visible to conversions, compaction,
// expansion and filtering.
type Transform struct {
	// Common limits visible groups to those marked common.
	Common bool
	// System limits visible groups to one measurement system. Given keeps
	// groups that share a base unit with the value being transformed.
	System System
	// Min and Max bound the values accepted by Conversions.
	Min float64
	Max float64
	// ConvertWithMax picks the range maximum (rather than minimum) as the
	// representative value of a range.
	ConvertWithMax bool
	// Groupless keeps ranges without a unit when filtering and compacting.
	Groupless bool

	// A nil list is ignored. An Only list takes precedence over the
	// matching Not list, and a non-nil empty Only list hides everything.
	OnlyUnits   []string
	NotUnits    []string
	OnlyClasses []string
	NotClasses  []string
}

// DefaultTransform returns the transform used when none is configured.
func DefaultTransform() Transform {
	return Transform{
		Common:         true,
		System:         Given,
		Min:            -math.MaxFloat64,
		Max:            math.MaxFloat64,
		ConvertWithMax: true,
		Groupless:      true,
	}
}

// IsVisibleGroup reports whether g passes every filter of t. given is the
// group of the value being transformed and may be nil.
func (t *Transform) IsVisibleGroup(g *Group, given *Group) bool {
	return t.isCommonMatch(g) &&
		t.isSystemMatch(g, given) &&
		t.isUnitMatch(g.unit) &&
		t.IsClassMatch(g.parent.name)
}

func (t *Transform) isCommonMatch(g *Group) bool {
	return !t.Common || g.Common()
}

func (t *Transform) isSystemMatch(g *Group, given *Group) bool {
	switch t.System {
	case None:
		return false
	case Any:
		return true
	case Given:
		return given == nil || g.baseUnit == given.baseUnit
	}
	return g.system == t.System || g.system == Any
}

func (t *Transform) isUnitMatch(unit string) bool {
	if t.OnlyUnits != nil {
		return slices.Contains(t.OnlyUnits, unit)
	}
	return !slices.Contains(t.NotUnits, unit)
}

// IsClassMatch reports whether a class name passes the class filters.
func (t *Transform) IsClassMatch(name string) bool {
	if t.OnlyClasses != nil {
		return slices.Contains(t.OnlyClasses, name)
	}
	return !slices.Contains(t.NotClasses, name)
}

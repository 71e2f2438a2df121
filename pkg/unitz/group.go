package unitz

import (
	"slices"
	"sync"
)

// Alias is one textual name for a group's unit, e.g. "cups" for "c".
type Alias struct {
	Name      string
	Plurality Plurality
}

// GroupDef describes a group before it is added to a class.
//
// Exactly one of BaseUnit and RelativeUnit is normally set. A relative
// group takes its base unit from the group named by RelativeUnit and
// multiplies that group's base scale by RelativeScale.
type GroupDef struct {
	System        System
	Common        bool
	Unit          string
	BaseUnit      string
	PreferredUnit string
	RelativeUnit  string
	RelativeScale float64
	Denominators  []int
	Units         []Alias
}

// Group is a family of aliases for one unit: "c", "cup", "cups".
//
// The unit, base unit and scales never change after the owning Class is
// built. Aliases, the preferred unit, the common flag and denominators may
// be changed through the Registry, so they are guarded by mu.
type Group struct {
	system        System
	unit          string
	baseUnit      string
	relativeUnit  string
	relativeScale float64
	baseScale     float64
	classScale    float64
	parent        *Class

	mu            sync.RWMutex
	common        bool
	preferred     string
	denominators  []int
	units         []Alias
	dynamic       bool
	singularShort string
	singularLong  string
	pluralShort   string
	pluralLong    string
}

func newGroup(def GroupDef) *Group {
	g := &Group{
		system:        def.System,
		unit:          def.Unit,
		baseUnit:      def.BaseUnit,
		relativeUnit:  def.RelativeUnit,
		relativeScale: def.RelativeScale,
		baseScale:     1,
		common:        def.Common,
		preferred:     def.PreferredUnit,
		denominators:  slices.Clone(def.Denominators),
		units:         slices.Clone(def.Units),
	}
	if g.relativeScale == 0 {
		g.relativeScale = 1
	}
	if g.preferred == "" {
		g.preferred = g.unit
	}
	g.updateUnits()
	return g
}

func (g *Group) Unit() string           { return g.unit }
func (g *Group) BaseUnit() string       { return g.baseUnit }
func (g *Group) System() System         { return g.system }
func (g *Group) Class() *Class          { return g.parent }
func (g *Group) BaseScale() float64     { return g.baseScale }
func (g *Group) ClassScale() float64    { return g.classScale }
func (g *Group) RelativeUnit() string   { return g.relativeUnit }
func (g *Group) RelativeScale() float64 { return g.relativeScale }
func (g *Group) String() string         { return g.unit }

// IsBase reports whether the group is the base of its conversion chain.
func (g *Group) IsBase() bool { return g.unit == g.baseUnit }

func (g *Group) Dynamic() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.dynamic
}

func (g *Group) Common() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.common
}

// Preferred is the unit text given to values produced by conversion into
// this group.
func (g *Group) Preferred() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.preferred
}

func (g *Group) Denominators() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.denominators)
}

func (g *Group) Units() []Alias {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.units)
}

// ShortName returns the shortest alias usable for the given amount.
func (g *Group) ShortName(singular bool) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if singular {
		return g.orUnit(g.singularShort)
	}
	return g.orUnit(g.pluralShort)
}

// LongName returns the longest alias usable for the given amount.
func (g *Group) LongName(singular bool) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if singular {
		return g.orUnit(g.singularLong)
	}
	return g.orUnit(g.pluralLong)
}

func (g *Group) orUnit(name string) string {
	if name == "" {
		return g.unit
	}
	return name
}

// HasAlias reports whether name is one of the group's aliases.
func (g *Group) HasAlias(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.aliasIndex(name) >= 0
}

func (g *Group) aliasIndex(name string) int {
	return slices.IndexFunc(g.units, func(a Alias) bool { return a.Name == name })
}

// Matches calls fn for every group in the same class that is visible
// under t relative to g, stopping early when fn returns false.
func (g *Group) Matches(t *Transform, reverse bool, fn func(*Group, int) bool) {
	g.parent.VisibleGroups(t, reverse, g, fn)
}

// Def returns a definition that rebuilds this group.
func (g *Group) Def() GroupDef {
	g.mu.RLock()
	defer g.mu.RUnlock()
	def := GroupDef{
		System:        g.system,
		Common:        g.common,
		Unit:          g.unit,
		PreferredUnit: g.preferred,
		Denominators:  slices.Clone(g.denominators),
		Units:         slices.Clone(g.units),
	}
	if g.relativeUnit != "" {
		def.RelativeUnit = g.relativeUnit
		def.RelativeScale = g.relativeScale
	} else {
		def.BaseUnit = g.baseUnit
	}
	return def
}

// updateUnits recomputes the shortest and longest singular and plural
// names. Ties keep the earliest alias. Callers hold mu or own g exclusively.
func (g *Group) updateUnits() {
	g.singularShort, g.singularLong = "", ""
	g.pluralShort, g.pluralLong = "", ""
	for _, a := range g.units {
		n := len(a.Name)
		if a.Plurality != Plural {
			if g.singularShort == "" || n < len(g.singularShort) {
				g.singularShort = a.Name
			}
			if g.singularLong == "" || n > len(g.singularLong) {
				g.singularLong = a.Name
			}
		}
		if a.Plurality != Singular {
			if g.pluralShort == "" || n < len(g.pluralShort) {
				g.pluralShort = a.Name
			}
			if g.pluralLong == "" || n > len(g.pluralLong) {
				g.pluralLong = a.Name
			}
		}
	}
}

func (g *Group) addAliases(aliases []Alias) {
	g.mu.Lock()
	for _, a := range aliases {
		if i := g.aliasIndex(a.Name); i >= 0 {
			g.units[i].Plurality = a.Plurality
			continue
		}
		g.units = append(g.units, a)
	}
	g.updateUnits()
	g.mu.Unlock()
	g.parent.indexAliases(g, aliases)
}

// addDynamicAlias folds a newly seen spelling into a dynamic group. Once a
// group has more than one alias, the longest becomes the plural form and
// the rest are singular.
func (g *Group) addDynamicAlias(name string) {
	g.mu.Lock()
	if g.aliasIndex(name) < 0 {
		g.units = append(g.units, Alias{Name: name, Plurality: Either})
	}
	if len(g.units) > 1 {
		longest := 0
		for i := range g.units {
			g.units[i].Plurality = Singular
			if len(g.units[i].Name) > len(g.units[longest].Name) {
				longest = i
			}
		}
		g.units[longest].Plurality = Plural
	}
	g.updateUnits()
	g.mu.Unlock()
	g.parent.indexAliases(g, []Alias{{Name: name}})
}

func (g *Group) setPreferred(unit string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.preferred = unit
}

func (g *Group) setCommon(common bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.common = common
}

func (g *Group) setDenominators(dens []int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.denominators = slices.Clone(dens)
}

// clone copies g into a new group owned by parent.
func (g *Group) clone(parent *Class) *Group {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return &Group{
		system:        g.system,
		unit:          g.unit,
		baseUnit:      g.baseUnit,
		relativeUnit:  g.relativeUnit,
		relativeScale: g.relativeScale,
		baseScale:     g.baseScale,
		classScale:    g.classScale,
		parent:        parent,
		common:        g.common,
		preferred:     g.preferred,
		denominators:  slices.Clone(g.denominators),
		units:         slices.Clone(g.units),
		dynamic:       g.dynamic,
		singularShort: g.singularShort,
		singularLong:  g.singularLong,
		pluralShort:   g.pluralShort,
		pluralLong:    g.pluralLong,
	}
}

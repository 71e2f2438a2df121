package unitz

import (
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Converter maps a value expressed in one base unit into another base unit.
type Converter func(float64) float64

// Scale returns a Converter that multiplies by factor.
func Scale(factor float64) Converter {
	return func(x float64) float64 { return x * factor }
}

// Affine returns a Converter computing (x + offsetIn) * scale + offsetOut,
// which covers temperature style conversions.
func Affine(scale, offsetIn, offsetOut float64) Converter {
	return func(x float64) float64 { return (x+offsetIn)*scale + offsetOut }
}

// Class is a named set of groups that can be converted between each other,
// such as Length or Volume.
type Class struct {
	name       string
	groups     []*Group
	converters map[string]map[string]Converter

	mu       sync.RWMutex
	groupMap map[string]*Group
}

func (c *Class) Name() string { return c.name }

// Groups returns the class's groups in definition order.
func (c *Class) Groups() []*Group { return slices.Clone(c.groups) }

// Group finds a group by alias, trying the exact spelling before the
// lower-cased one.
func (c *Class) Group(alias string) *Group {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if g, ok := c.groupMap[alias]; ok {
		return g
	}
	return c.groupMap[foldCase(alias)]
}

// Aliases returns every alias known to the class mapped to its group.
func (c *Class) Aliases() map[string]*Group {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]*Group, len(c.groupMap))
	for k, v := range c.groupMap {
		out[k] = v
	}
	return out
}

// HasConverter reports whether values can move from one base unit to another.
func (c *Class) HasConverter(fromBase, toBase string) bool {
	if fromBase == toBase {
		return true
	}
	_, ok := c.converters[fromBase][toBase]
	return ok
}

// VisibleGroups calls fn for each group visible under t relative to the
// related group, in definition order or reversed. It stops when fn
// returns false.
func (c *Class) VisibleGroups(t *Transform, reverse bool, related *Group, fn func(*Group, int) bool) {
	n := len(c.groups)
	for k := range n {
		i := k
		if reverse {
			i = n - 1 - k
		}
		g := c.groups[i]
		if !t.IsVisibleGroup(g, related) {
			continue
		}
		if !fn(g, i) {
			return
		}
	}
}

// Convert moves value from one group to another. Moving between base
// units that have no converter yields 0; use ConvertStrict to detect that.
func (c *Class) Convert(value float64, from, to *Group) float64 {
	v, err := c.ConvertStrict(value, from, to)
	if err != nil {
		return 0
	}
	return v
}

// ConvertStrict is Convert with an error instead of a silent zero.
func (c *Class) ConvertStrict(value float64, from, to *Group) (float64, error) {
	if from == nil || to == nil || from == to {
		return value, nil
	}
	v := value * from.baseScale
	if from.baseUnit != to.baseUnit {
		conv, ok := c.converters[from.baseUnit][to.baseUnit]
		if !ok {
			return 0, fmt.Errorf("%w: %s to %s", ErrNoConverter, from.baseUnit, to.baseUnit)
		}
		v = conv(v)
	}
	return v / to.baseScale, nil
}

func (c *Class) indexAliases(g *Group, aliases []Alias) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range aliases {
		c.groupMap[a.Name] = g
		lower := foldCase(a.Name)
		if _, ok := c.groupMap[lower]; !ok {
			c.groupMap[lower] = g
		}
	}
}

// setClassScales expresses every group relative to the first base group so
// that groups with different base units can be ordered by size.
func (c *Class) setClassScales() {
	i := slices.IndexFunc(c.groups, (*Group).IsBase)
	if i < 0 {
		return
	}
	first := c.groups[i]
	for _, g := range c.groups {
		switch {
		case g.baseUnit == first.baseUnit:
			g.classScale = g.baseScale
		case c.converters[g.baseUnit][first.baseUnit] != nil:
			g.classScale = c.converters[g.baseUnit][first.baseUnit](g.baseScale)
		}
	}
}

func (c *Class) clone() *Class {
	out := &Class{
		name:       c.name,
		converters: c.converters,
		groupMap:   make(map[string]*Group),
	}
	byOld := make(map[*Group]*Group, len(c.groups))
	for _, g := range c.groups {
		ng := g.clone(out)
		byOld[g] = ng
		out.groups = append(out.groups, ng)
	}
	c.mu.RLock()
	for k, g := range c.groupMap {
		out.groupMap[k] = byOld[g]
	}
	c.mu.RUnlock()
	return out
}

func foldCase(s string) string {
	return cases.Lower(language.Und).String(s)
}

type converterDef struct {
	from, to string
	fn       Converter
}

// ClassBuilder accumulates group and converter definitions and validates
// them all at once in Build.
type ClassBuilder struct {
	name       string
	groups     []GroupDef
	converters []converterDef
}

// NewClass starts the definition of a class.
func NewClass(name string) *ClassBuilder {
	return &ClassBuilder{name: name}
}

// Converter registers a conversion between two base units of the class.
func (b *ClassBuilder) Converter(fromBase, toBase string, fn Converter) *ClassBuilder {
	b.converters = append(b.converters, converterDef{from: fromBase, to: toBase, fn: fn})
	return b
}

// Group adds group definitions in order. Relative groups must come after
// the group they are relative to.
func (b *ClassBuilder) Group(defs ...GroupDef) *ClassBuilder {
	b.groups = append(b.groups, defs...)
	return b
}

// Build validates the definitions and returns the finished class.
func (b *ClassBuilder) Build() (*Class, error) {
	if b.name == "" {
		return nil, &DefinitionError{Err: ErrMissingName}
	}
	c := &Class{
		name:       b.name,
		converters: make(map[string]map[string]Converter),
		groupMap:   make(map[string]*Group),
	}
	byUnit := make(map[string]*Group, len(b.groups))
	for _, def := range b.groups {
		fail := func(err error) (*Class, error) {
			return nil, &DefinitionError{Class: b.name, Unit: def.Unit, Err: err}
		}
		if def.Unit == "" {
			return fail(ErrMissingUnit)
		}
		if _, dup := byUnit[def.Unit]; dup {
			return fail(ErrDuplicateUnit)
		}
		for _, d := range def.Denominators {
			if d <= 0 {
				return fail(ErrBadDenominator)
			}
		}
		g := newGroup(def)
		switch {
		case def.RelativeUnit != "":
			rel, ok := byUnit[def.RelativeUnit]
			if !ok {
				return fail(ErrUnknownRelative)
			}
			g.baseScale = g.relativeScale * rel.baseScale
			g.baseUnit = rel.baseUnit
		case def.BaseUnit == "":
			return fail(ErrMissingBase)
		}
		g.parent = c
		byUnit[def.Unit] = g
		c.groups = append(c.groups, g)
		c.indexAliases(g, append([]Alias{{Name: g.unit}}, g.units...))
	}

	bases := make(map[string]bool)
	for _, g := range c.groups {
		bases[g.baseUnit] = true
	}
	for _, cv := range b.converters {
		for _, u := range []string{cv.from, cv.to} {
			if !bases[u] {
				return nil, &DefinitionError{Class: b.name, Unit: u, Err: ErrUnknownBase}
			}
		}
		if c.converters[cv.from] == nil {
			c.converters[cv.from] = make(map[string]Converter)
		}
		c.converters[cv.from][cv.to] = cv.fn
	}
	c.setClassScales()
	return c, nil
}

// MustBuild is Build for definitions known to be valid, such as the
// built-in catalog. It panics on error.
func (b *ClassBuilder) MustBuild() *Class {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

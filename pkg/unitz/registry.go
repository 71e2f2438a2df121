package unitz

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"sync"
)

// dynamicPrefix is how many leading characters two spellings of an
// unknown unit must share to be treated as the same unit ("loaf" and
// "loaves").
const dynamicPrefix = 3

var dynamicDenominators = []int{2, 3, 4, 5, 6, 8, 10}

// Defaults are the output, transform and sort settings used by Base
// operations that are given nil options.
type Defaults struct {
	Output    Output
	Transform Transform
	Sort      Sort
}

// DynamicEvent describes a unit the registry synthesized because no class
// defined it.
type DynamicEvent struct {
	Unit  string
	Group *Group
	// Created is true when a new dynamic class was made and false when the
	// unit was folded into an existing dynamic group.
	Created bool
}

// Registry owns the set of classes and resolves unit text to groups.
// It is safe for concurrent use.
type Registry struct {
	mu             sync.RWMutex
	classes        []*Class
	byName         map[string]*Class
	units          map[string]*Group
	dynamicGroups  []*Group
	dynamicMatches map[string]*Group
	createDynamic  bool
	observers      []func(DynamicEvent)
	defaults       Defaults
}

// NewRegistry returns an empty registry that synthesizes dynamic groups
// for unknown units.
func NewRegistry() *Registry {
	return &Registry{
		byName:         make(map[string]*Class),
		units:          make(map[string]*Group),
		dynamicMatches: make(map[string]*Group),
		createDynamic:  true,
		defaults: Defaults{
			Output:    DefaultOutput(),
			Transform: DefaultTransform(),
			Sort:      DefaultSort(),
		},
	}
}

// AddClasses registers classes in order. A class with the same name as a
// registered one replaces it. Aliases of later classes take precedence.
func (r *Registry) AddClasses(classes ...*Class) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range classes {
		if old, ok := r.byName[c.name]; ok {
			i := slices.Index(r.classes, old)
			r.classes[i] = c
		} else {
			r.classes = append(r.classes, c)
		}
		r.byName[c.name] = c
	}
	r.reindex()
}

// RemoveClass unregisters a class by name.
func (r *Registry) RemoveClass(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byName[name]
	if !ok {
		return false
	}
	delete(r.byName, name)
	r.classes = slices.DeleteFunc(r.classes, func(x *Class) bool { return x == c })
	r.reindex()
	return true
}

// reindex rebuilds the alias table. Dynamic aliases go first so that a
// class defining the same alias later wins, and case-folded spellings go
// before exact ones so "T" in one class never hides "t" in another.
// Callers hold mu.
func (r *Registry) reindex() {
	r.units = make(map[string]*Group)
	for _, g := range r.dynamicGroups {
		for _, a := range g.Units() {
			r.units[foldCase(a.Name)] = g
			r.units[a.Name] = g
		}
	}
	aliases := make([]map[string]*Group, len(r.classes))
	for i, c := range r.classes {
		aliases[i] = c.Aliases()
		for alias, g := range aliases[i] {
			if !isExactAlias(g, alias) {
				r.units[alias] = g
			}
		}
	}
	for i := range r.classes {
		for alias, g := range aliases[i] {
			if isExactAlias(g, alias) {
				r.units[alias] = g
			}
		}
	}
}

func isExactAlias(g *Group, alias string) bool {
	return alias == g.unit || g.HasAlias(alias)
}

// Classes returns the registered classes in registration order.
func (r *Registry) Classes() []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.classes)
}

// Class returns a registered class by name.
func (r *Registry) Class(name string) *Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// DynamicGroups returns the groups synthesized for unknown units.
func (r *Registry) DynamicGroups() []*Group {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.dynamicGroups)
}

// Units returns every known alias, sorted.
func (r *Registry) Units() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.units))
	for u := range r.units {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// SetDynamic turns synthesis of dynamic groups on or off.
func (r *Registry) SetDynamic(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createDynamic = enabled
}

// OnDynamic registers fn to be called after each dynamic unit is added.
// fn runs on the goroutine that resolved the unit, outside the registry lock.
func (r *Registry) OnDynamic(fn func(DynamicEvent)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// Lookup resolves unit to a group without synthesizing one. The exact
// spelling is tried before the lower-cased one.
func (r *Registry) Lookup(unit string) *Group {
	if unit == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookupLocked(unit)
}

func (r *Registry) lookupLocked(unit string) *Group {
	if g, ok := r.units[unit]; ok {
		return g
	}
	return r.units[foldCase(unit)]
}

// Group resolves unit to a group, synthesizing a dynamic group for
// unknown units when dynamic groups are enabled. Spellings sharing their
// first three letters with an existing dynamic unit join its group.
func (r *Registry) Group(unit string) *Group {
	if unit == "" {
		return nil
	}
	if g := r.Lookup(unit); g != nil {
		return g
	}

	r.mu.Lock()
	if g := r.lookupLocked(unit); g != nil || !r.createDynamic {
		r.mu.Unlock()
		return g
	}
	ev := DynamicEvent{Unit: unit}
	key := DynamicKey(unit)
	g, ok := r.dynamicMatches[key]
	if !ok {
		g = newDynamicGroup(unit)
		r.dynamicGroups = append(r.dynamicGroups, g)
		ev.Created = true
	}
	g.addDynamicAlias(unit)
	r.units[unit] = g
	r.units[foldCase(unit)] = g
	r.dynamicMatches[key] = g
	ev.Group = g
	observers := slices.Clone(r.observers)
	r.mu.Unlock()

	for _, fn := range observers {
		fn(ev)
	}
	return g
}

// Resolver returns r.Group as a Resolver for the parse functions.
func (r *Registry) Resolver() Resolver { return r.Group }

// DynamicKey is the case-folded prefix under which spellings of an unknown
// unit are grouped together.
func DynamicKey(unit string) string {
	runes := []rune(unit)
	if len(runes) > dynamicPrefix {
		runes = runes[:dynamicPrefix]
	}
	return foldCase(string(runes))
}

func newDynamicGroup(unit string) *Group {
	c := NewClass(unit).Group(GroupDef{
		System:       Any,
		Common:       true,
		Unit:         unit,
		BaseUnit:     unit,
		Denominators: dynamicDenominators,
	}).MustBuild()
	g := c.groups[0]
	g.dynamic = true
	return g
}

func (r *Registry) lookupErr(unit string) (*Group, error) {
	g := r.Lookup(unit)
	if g == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return g, nil
}

// SetPreferred makes unit the text used for values converted into its group.
func (r *Registry) SetPreferred(unit string) error {
	g, err := r.lookupErr(unit)
	if err != nil {
		return err
	}
	g.setPreferred(unit)
	return nil
}

// SetCommon marks the group of unit as common or uncommon.
func (r *Registry) SetCommon(unit string, common bool) error {
	g, err := r.lookupErr(unit)
	if err != nil {
		return err
	}
	g.setCommon(common)
	return nil
}

// SetDenominators replaces the denominators used to snap values in the
// group of unit.
func (r *Registry) SetDenominators(unit string, dens []int) error {
	g, err := r.lookupErr(unit)
	if err != nil {
		return err
	}
	for _, d := range dens {
		if d <= 0 {
			return &DefinitionError{Class: g.parent.name, Unit: g.unit, Err: ErrBadDenominator}
		}
	}
	g.setDenominators(dens)
	return nil
}

// AddAliases adds spellings to the group of unit.
func (r *Registry) AddAliases(unit string, aliases ...Alias) error {
	g, err := r.lookupErr(unit)
	if err != nil {
		return err
	}
	g.addAliases(aliases)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range aliases {
		r.units[a.Name] = g
		if lower := foldCase(a.Name); r.units[lower] == nil {
			r.units[lower] = g
		}
	}
	return nil
}

// Suggest returns the known alias closest to unit, or "" when nothing is
// within three edits.
func (r *Registry) Suggest(unit string) string {
	best, bestDist := "", math.MaxInt32
	for _, u := range r.Units() {
		d := levenshtein(unit, u)
		if d < bestDist && d <= 3 {
			best, bestDist = u, d
		}
	}
	return best
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// Defaults returns the settings used for nil options.
func (r *Registry) Defaults() Defaults {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaults
}

// SetDefaults replaces the settings used for nil options.
func (r *Registry) SetDefaults(d Defaults) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults = d
}

// Clone returns an independent copy of the registry, including dynamic
// groups but not observers.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := NewRegistry()
	out.createDynamic = r.createDynamic
	out.defaults = r.defaults
	for _, c := range r.classes {
		nc := c.clone()
		out.classes = append(out.classes, nc)
		out.byName[nc.name] = nc
	}
	byKey := make(map[*Group]*Group)
	for _, g := range r.dynamicGroups {
		ng := g.parent.clone().groups[0]
		byKey[g] = ng
		out.dynamicGroups = append(out.dynamicGroups, ng)
	}
	for k, g := range r.dynamicMatches {
		out.dynamicMatches[k] = byKey[g]
	}
	out.reindex()
	return out
}

// Parse parses in into a Base bound to this registry.
func (r *Registry) Parse(in Input) *Base {
	if b, ok := in.(*Base); ok && b != nil {
		return newBase(r, in, b.rangesIn(r))
	}
	return newBase(r, in, ParseRanges(in, r.Group))
}

// ParseValue parses a single quantity such as "1 1/2 cups".
func (r *Registry) ParseValue(text string) Value {
	return ParseValue(text, r.Group)
}

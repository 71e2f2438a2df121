package unitz

import (
	"math"
	"slices"
)

// Base is a parsed list of quantities together with the input it came
// from. Every operation returns a new Base; the receiver is never changed.
type Base struct {
	reg    *Registry
	input  Input
	ranges []Range
}

func newBase(reg *Registry, input Input, ranges []Range) *Base {
	return &Base{reg: reg, input: input, ranges: ranges}
}

func (b *Base) derive(ranges []Range) *Base {
	return newBase(b.reg, b.input, ranges)
}

// Input is what the Base was originally parsed from.
func (b *Base) Input() Input { return b.input }

// Ranges returns a copy of the ranges.
func (b *Base) Ranges() []Range { return slices.Clone(b.ranges) }

func (b *Base) Len() int { return len(b.ranges) }

// HasRanges reports whether any entry is a true range rather than a fixed value.
func (b *Base) HasRanges() bool {
	return slices.ContainsFunc(b.ranges, Range.IsRange)
}

// IsValid reports whether every range parsed.
func (b *Base) IsValid() bool {
	for _, r := range b.ranges {
		if !r.IsValid() {
			return false
		}
	}
	return true
}

// Classes lists the distinct classes of the ranges in order of appearance.
func (b *Base) Classes() []*Class {
	var out []*Class
	for _, r := range b.ranges {
		if r.min.group == nil {
			continue
		}
		if c := r.min.group.parent; !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// Each calls fn on every range, in reverse when asked, until fn returns false.
func (b *Base) Each(reverse bool, fn func(Range) bool) *Base {
	n := len(b.ranges)
	for k := range n {
		i := k
		if reverse {
			i = n - 1 - k
		}
		if !fn(b.ranges[i]) {
			break
		}
	}
	return b
}

func (b *Base) mutate(fn func(Range) (Range, bool)) *Base {
	out := make([]Range, 0, len(b.ranges))
	for _, r := range b.ranges {
		if m, ok := fn(r); ok {
			out = append(out, m)
		}
	}
	return b.derive(out)
}

func (b *Base) each(fn func(Range) Range) *Base {
	return b.mutate(func(r Range) (Range, bool) { return fn(r), true })
}

func (b *Base) defaults() Defaults {
	if b.reg == nil {
		return Defaults{Output: DefaultOutput(), Transform: DefaultTransform(), Sort: DefaultSort()}
	}
	return b.reg.Defaults()
}

func (b *Base) transform(t *Transform) *Transform {
	if t != nil {
		return t
	}
	d := b.defaults().Transform
	return &d
}

func (b *Base) output(o *Output) *Output {
	if o != nil {
		return o
	}
	d := b.defaults().Output
	return &d
}

// Scale multiplies every range by amount.
func (b *Base) Scale(amount float64) *Base {
	return b.each(func(r Range) Range { return r.Mul(amount) })
}

// ScaleTo scales so that the point at rangeDelta within the converted
// total equals the quantity in unitValue. A rangeDelta of 0.5 uses the
// middle of the range.
func (b *Base) ScaleTo(unitValue string, rangeDelta float64) *Base {
	return b.Scale(b.ScaleFactor(unitValue, rangeDelta))
}

// ScaleFactor returns the factor ScaleTo would apply, or 0 when unitValue
// cannot be parsed or converted.
func (b *Base) ScaleFactor(unitValue string, rangeDelta float64) float64 {
	if b.reg == nil {
		return 0
	}
	to := b.reg.ParseValue(unitValue)
	if !to.IsValid() {
		return 0
	}
	converted, ok := b.Convert(to.unit)
	if !ok || !converted.IsValid() {
		return 0
	}
	lo, hi := converted.min.value, converted.max.value
	at := (hi-lo)*rangeDelta + lo
	if at == 0 {
		return 0
	}
	return to.value / at
}

// Preferred relabels every value with its group's preferred unit.
func (b *Base) Preferred() *Base { return b.each(Range.Preferred) }

// Positive keeps the positive part of each range: "-1c, -1-2m" becomes "0 - 2m".
func (b *Base) Positive() *Base { return b.mutate(Range.Positive) }

// Negative keeps the negative part of each range.
func (b *Base) Negative() *Base { return b.mutate(Range.Negative) }

// NonZero drops zero ranges.
func (b *Base) NonZero() *Base { return b.mutate(Range.NonZero) }

// Fractions snaps decimals to their group's denominators: "0.3 in" to "3/10 in".
func (b *Base) Fractions() *Base { return b.each(Range.Fractions) }

// Numbers drops fractions: "1/2" to "0.5".
func (b *Base) Numbers() *Base { return b.each(Range.Numbers) }

// Max collapses each range onto its maximum. It does nothing when no
// entry is a true range.
func (b *Base) Max() *Base {
	if !b.HasRanges() {
		return b
	}
	return b.each(Range.MaxRange)
}

// Min collapses each range onto its minimum.
func (b *Base) Min() *Base {
	if !b.HasRanges() {
		return b
	}
	return b.each(Range.MinRange)
}

// Normalize rewrites every value in the unit that renders shortest:
// "1.5 lb" becomes "24oz".
func (b *Base) Normalize(t *Transform, o *Output) *Base {
	t, o = b.transform(t), b.output(o)
	return b.each(func(r Range) Range { return r.Normalize(t, o) })
}

// ClassRanges is one class and its ranges, as returned by GroupByClass.
type ClassRanges struct {
	Class  *Class
	Ranges []Range
}

// GroupByClass buckets ranges by the class of their minimum, keeping the
// order in which classes first appear. Ranges without a group are
// returned separately.
func (b *Base) GroupByClass() (classes []ClassRanges, groupless []Range) {
	index := make(map[*Class]int)
	for _, r := range b.ranges {
		g := r.min.group
		if g == nil {
			groupless = append(groupless, r)
			continue
		}
		i, ok := index[g.parent]
		if !ok {
			i = len(classes)
			index[g.parent] = i
			classes = append(classes, ClassRanges{Class: g.parent})
		}
		classes[i].Ranges = append(classes[i].Ranges, r)
	}
	return classes, groupless
}

// Compact sums all ranges of each class into one range expressed in the
// largest visible group that appeared: "6oz, 1lb" becomes "1 3/8lb".
// Group-less ranges are summed together when t.Groupless is set.
func (b *Base) Compact(t *Transform) *Base {
	t = b.transform(t)
	classes, groupless := b.GroupByClass()
	var out []Range

	for _, entry := range classes {
		parent := entry.Class
		if !t.IsClassMatch(parent.name) {
			continue
		}
		var minChosen, maxChosen *Group
		parent.VisibleGroups(t, false, nil, func(g *Group, _ int) bool {
			minChosen, maxChosen = g, g
			return false
		})
		if minChosen == nil {
			continue
		}
		minSum, maxSum := 0.0, 0.0
		for i, r := range entry.Ranges {
			if g := r.min.group; promotes(t, g, minChosen) {
				if i != 0 {
					minSum = parent.Convert(minSum, minChosen, g)
				}
				minChosen = g
			}
			if g := r.max.group; promotes(t, g, maxChosen) {
				if i != 0 {
					maxSum = parent.Convert(maxSum, maxChosen, g)
				}
				maxChosen = g
			}
			minSum += r.min.ConvertTo(minChosen)
			maxSum += r.max.ConvertTo(maxChosen)
		}
		out = append(out, NewRange(
			FromNumberForGroup(minSum, minChosen),
			FromNumberForGroup(maxSum, maxChosen)))
	}

	if t.Groupless && len(groupless) > 0 {
		minSum := NewValue(0, 0, 1, "", nil)
		maxSum := minSum
		for _, r := range groupless {
			minSum = minSum.Add(r.min, 1)
			maxSum = maxSum.Add(r.max, 1)
		}
		out = append(out, NewRange(minSum, maxSum))
	}
	return b.derive(out)
}

// promotes reports whether a range in group g should move the running sum
// of a class into g.
func promotes(t *Transform, g, chosen *Group) bool {
	return g != nil && g.parent == chosen.parent &&
		g.classScale > chosen.classScale && t.IsVisibleGroup(g, nil)
}

// Expand compacts and then breaks each total into whole amounts of
// progressively smaller units: "24oz" becomes "1lb, 8oz". Whatever is left
// goes into the base unit.
func (b *Base) Expand(t *Transform) *Base {
	t = b.transform(t)
	var out []Range
	for _, r := range b.Compact(t).ranges {
		value := r.min
		if t.ConvertWithMax {
			value = r.max
		}
		valueGroup := value.group
		if valueGroup == nil {
			out = append(out, r)
			continue
		}
		valueSign := sign(value.value)
		valueGroup.Matches(t, true, func(g *Group, _ int) bool {
			if isZero(value.value) {
				return true
			}
			transformed := value.ConvertToValue(g)
			switch {
			case g.IsBase():
				value = value.Zero()
				out = append(out, Fixed(transformed))
			case math.Abs(transformed.value) >= 1 && sign(transformed.value) == valueSign:
				truncated := transformed.Truncated()
				value = value.Sub(truncated.ConvertToValue(valueGroup), 1)
				out = append(out, Fixed(truncated))
			}
			return true
		})
	}
	return b.derive(out)
}

// Add adds other to b. Each range of b absorbs every unused range of other
// in the same groups; ranges of other that match nothing are appended.
func (b *Base) Add(other Input) *Base { return b.AddScaled(other, 1) }

// AddScaled adds other multiplied by scale.
func (b *Base) AddScaled(other Input, scale float64) *Base {
	return b.operate(other,
		func(a, o Range) Range { return a.Add(o, scale) },
		func(o Range) Range { return o.Mul(scale) })
}

// Sub subtracts other from b.
func (b *Base) Sub(other Input) *Base { return b.SubScaled(other, 1) }

// SubScaled subtracts other multiplied by scale.
func (b *Base) SubScaled(other Input, scale float64) *Base {
	return b.operate(other,
		func(a, o Range) Range { return a.Sub(o, scale) },
		func(o Range) Range { return o.Mul(-scale) })
}

func (b *Base) operate(input Input, op func(a, o Range) Range, remainder func(Range) Range) *Base {
	var others []Range
	if ob, ok := input.(*Base); ok {
		others = ob.rangesIn(b.reg)
	} else {
		others = ParseRanges(input, b.resolver())
	}
	used := make([]bool, len(others))
	out := make([]Range, 0, len(b.ranges)+len(others))
	for _, r := range b.ranges {
		for k, o := range others {
			if !used[k] && r.IsMatch(o) {
				r = op(r, o)
				used[k] = true
			}
		}
		out = append(out, r)
	}
	for k, o := range others {
		if !used[k] {
			out = append(out, remainder(o))
		}
	}
	return b.derive(out)
}

// rangesIn returns b's ranges with their groups looked up again in reg
// when b was parsed by a different registry. Groups are matched by
// identity, so ranges from two registries never combine otherwise.
func (b *Base) rangesIn(reg *Registry) []Range {
	out := slices.Clone(b.ranges)
	if reg == nil || b.reg == reg {
		return out
	}
	for i, r := range out {
		out[i] = Range{min: r.min.rebind(reg), max: r.max.rebind(reg)}
	}
	return out
}

func (b *Base) resolver() Resolver {
	if b.reg == nil {
		return nil
	}
	return b.reg.Group
}

// Conversions compacts and lists each total in every visible group whose
// converted amount overlaps [t.Min, t.Max].
func (b *Base) Conversions(t *Transform) *Base {
	t = b.transform(t)
	var out []Range
	for _, r := range b.Compact(t).ranges {
		convert := r.min
		if t.ConvertWithMax {
			convert = r.max
		}
		convert.Conversions(t, false, func(c Value) {
			lo, hi := c, c
			if t.ConvertWithMax {
				lo = r.min.ConvertToValue(c.group)
			} else {
				hi = r.max.ConvertToValue(c.group)
			}
			if lo.value <= t.Max && hi.value >= t.Min {
				out = append(out, NewRange(lo, hi))
			}
		})
	}
	return b.derive(out)
}

// Filter keeps ranges whose group is visible under t, and group-less
// ranges when t.Groupless is set.
func (b *Base) Filter(t *Transform) *Base {
	t = b.transform(t)
	return b.mutate(func(r Range) (Range, bool) {
		g := r.min.group
		if t.ConvertWithMax {
			g = r.max.group
		}
		if g != nil {
			return r, t.IsVisibleGroup(g, nil)
		}
		return r, t.Groupless
	})
}

// Sort returns the ranges in s order. Equal ranges keep their order.
func (b *Base) Sort(s *Sort) *Base {
	if s == nil {
		d := b.defaults().Sort
		s = &d
	}
	out := slices.Clone(b.ranges)
	slices.SortStableFunc(out, s.Compare)
	return b.derive(out)
}

// Convert totals every range of the unit's class in that unit. It
// reports false when the unit is not known.
func (b *Base) Convert(unit string) (Range, bool) {
	if b.reg == nil {
		return Range{}, false
	}
	g := b.reg.Lookup(unit)
	if g == nil {
		return Range{}, false
	}
	lo := NewValue(0, 0, 1, unit, g)
	hi := lo
	for _, r := range b.ranges {
		if rg := r.min.group; rg != nil && rg.parent == g.parent {
			lo = lo.Add(r.min.ConvertToValue(g), 1)
			hi = hi.Add(r.max.ConvertToValue(g), 1)
		}
	}
	return NewRange(lo, hi), true
}

// To is Convert returning the total as a Base.
func (b *Base) To(unit string) *Base {
	r, ok := b.Convert(unit)
	if !ok {
		return b.derive(nil)
	}
	return b.derive([]Range{r})
}

// Output renders the ranges.
func (b *Base) Output(o *Output) string {
	return b.output(o).Ranges(b.ranges)
}

func (b *Base) String() string { return b.Output(nil) }

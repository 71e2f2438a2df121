package unitz

import "math"

// Range is an inclusive pair of values. A fixed range has min equal to max.
type Range struct {
	min Value
	max Value
}

// InvalidRange is the range produced by unparsable input.
var InvalidRange = Range{min: Invalid, max: Invalid}

// NewRange orders a and b so that min holds the smaller amount. A NaN on
// either end gives InvalidRange.
func NewRange(a, b Value) Range {
	if math.IsNaN(a.value) || math.IsNaN(b.value) {
		return InvalidRange
	}
	lo, hi := a, b
	if b.value < a.value {
		lo = b
	}
	if !(b.value > a.value) {
		hi = a
	}
	return Range{min: lo, max: hi}
}

// Fixed is a range whose min and max are both v.
func Fixed(v Value) Range {
	return Range{min: v, max: v}
}

func (r Range) Min() Value { return r.min }
func (r Range) Max() Value { return r.max }

func (r Range) IsValid() bool    { return r.min.IsValid() && r.max.IsValid() }
func (r Range) IsFraction() bool { return r.min.IsFraction() || r.max.IsFraction() }
func (r Range) IsDecimal() bool  { return r.min.IsDecimal() || r.max.IsDecimal() }
func (r Range) IsRange() bool    { return r.min.value != r.max.value }
func (r Range) IsFixed() bool    { return r.min.value == r.max.value }
func (r Range) IsZero() bool     { return r.min.IsZero() && r.max.IsZero() }

func (r Range) IsPositive() bool { return r.min.IsPositive() || r.max.IsPositive() }
func (r Range) IsNegative() bool { return r.min.IsNegative() || r.max.IsNegative() }
func (r Range) IsNonZero() bool  { return r.min.IsNonZero() || r.max.IsNonZero() }

// Average is the midpoint, in min's unit.
func (r Range) Average() Value {
	return r.min.Add(r.max, 1).Mul(0.5)
}

// Unit is the unit text of max, falling back to min.
func (r Range) Unit() string {
	if r.max.unit != "" {
		return r.max.unit
	}
	return r.min.unit
}

// Group is the group of min, falling back to max.
func (r Range) Group() *Group {
	if r.min.group != nil {
		return r.min.group
	}
	return r.max.group
}

// Class is the class of the range's group, or nil for group-less ranges.
func (r Range) Class() *Class {
	if g := r.Group(); g != nil {
		return g.parent
	}
	return nil
}

// IsMatch reports whether both ends of r and o share groups, which is the
// condition for adding them together directly.
func (r Range) IsMatch(o Range) bool {
	return r.min.group == o.min.group && r.max.group == o.max.group
}

// Positive clamps a negative min to zero. A range whose max is negative
// is dropped; zero counts as positive, so "0c" survives.
func (r Range) Positive() (Range, bool) {
	if r.max.value < 0 {
		return Range{}, false
	}
	if r.min.value < 0 {
		return Range{min: r.min.Zero(), max: r.max}, true
	}
	return r, true
}

// Negative clamps positive ends to zero. A range with no negative part
// is dropped.
func (r Range) Negative() (Range, bool) {
	minNeg, maxNeg := r.min.IsNegative(), r.max.IsNegative()
	switch {
	case minNeg && maxNeg:
		return r, true
	case !minNeg && !maxNeg:
		return Range{}, false
	case !minNeg:
		return Range{min: r.min.Zero(), max: r.max}, true
	}
	return Range{min: r.min, max: r.max.Zero()}, true
}

// NonZero drops ranges whose ends are both exactly zero.
func (r Range) NonZero() (Range, bool) {
	if r.min.value == 0 && r.max.value == 0 {
		return Range{}, false
	}
	return r, true
}

// MaxRange collapses the range onto its maximum.
func (r Range) MaxRange() Range { return Fixed(r.max) }

// MinRange collapses the range onto its minimum.
func (r Range) MinRange() Range { return Fixed(r.min) }

// Fractions snaps both ends to their group's denominators.
func (r Range) Fractions() Range {
	if r.min.IsFraction() && r.max.IsFraction() {
		return r
	}
	return NewRange(r.min.Fractioned(), r.max.Fractioned())
}

// Numbers drops the fractions of both ends.
func (r Range) Numbers() Range {
	if !r.min.IsFraction() && !r.max.IsFraction() {
		return r
	}
	return NewRange(r.min.Numbered(), r.max.Numbered())
}

// Preferred relabels both ends with their group's preferred unit.
func (r Range) Preferred() Range {
	return Range{min: r.min.Preferred(), max: r.max.Preferred()}
}

func (r Range) Normalize(t *Transform, o *Output) Range {
	return Range{min: r.min.Normalize(t, o), max: r.max.Normalize(t, o)}
}

func (r Range) Add(o Range, scale float64) Range {
	return NewRange(r.min.Add(o.min, scale), r.max.Add(o.max, scale))
}

func (r Range) Sub(o Range, scale float64) Range {
	return NewRange(r.min.Sub(o.min, scale), r.max.Sub(o.max, scale))
}

// Mul scales both ends, swapping them when scale is negative.
func (r Range) Mul(scale float64) Range {
	return NewRange(r.min.Mul(scale), r.max.Mul(scale))
}

func (r Range) String() string {
	if r.IsFixed() {
		return r.min.String() + r.min.unit
	}
	return r.min.String() + r.min.unit + " - " + r.max.String() + r.max.unit
}

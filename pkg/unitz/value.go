package unitz

import "math"

// Value is a single quantity. It keeps a float alongside an exact
// num/den fraction reduced to lowest terms; den is 1 for plain decimals.
//
// Values are immutable; every operation returns a new Value.
type Value struct {
	value float64
	num   float64
	den   float64
	unit  string
	group *Group
}

// Invalid is the value produced by unparsable input.
var Invalid = Value{value: math.NaN(), num: math.NaN(), den: 1}

// NewValue builds a value and reduces num/den. When num or den is not a
// whole number the value is held as a plain decimal.
func NewValue(value, num, den float64, unit string, group *Group) Value {
	if !isWhole(num) || !isWhole(den) || den == 0 {
		num, den = value, 1
	}
	d := gcd(num, den)
	num, den = num/d, den/d
	if den < 0 {
		num, den = -num, -den
	}
	return Value{value: value, num: num, den: den, unit: unit, group: group}
}

// NewDecimal builds a value with no fraction.
func NewDecimal(value float64, unit string, group *Group) Value {
	return NewValue(value, value, 1, unit, group)
}

// FromNumber snaps x onto the closest fraction built from one of dens.
// When no denominator gets within Epsilon, x stays a decimal.
func FromNumber(x float64, dens []int, unit string, group *Group) Value {
	closestDen := 0
	closestDist := -1.0
	for _, d := range dens {
		fd := float64(d)
		n := math.Floor(fd * x)
		dist := math.Abs(x - n/fd)
		if closestDist == -1 || dist < closestDist {
			closestDist = dist
			closestDen = d
		}
	}
	if closestDist > Epsilon || closestDen == 0 {
		return NewDecimal(x, unit, group)
	}
	fd := float64(closestDen)
	return NewValue(x, math.Floor(x*fd), fd, unit, group)
}

// FromFraction builds num/den.
func FromFraction(num, den float64, unit string, group *Group) Value {
	return NewValue(num/den, num, den, unit, group)
}

// FromNumberWithRange snaps x trying every denominator in [minDen, maxDen].
func FromNumberWithRange(x float64, minDen, maxDen int, unit string, group *Group) Value {
	dens := make([]int, 0, max(0, maxDen-minDen+1))
	for d := max(minDen, 1); d <= maxDen; d++ {
		dens = append(dens, d)
	}
	return FromNumber(x, dens, unit, group)
}

// FromNumberForGroup snaps x using the group's denominators and labels it
// with the group's preferred unit.
func FromNumberForGroup(x float64, group *Group) Value {
	if group == nil {
		return NewDecimal(x, "", nil)
	}
	return FromNumber(x, group.Denominators(), group.Preferred(), group)
}

func (v Value) Float() float64 { return v.value }
func (v Value) Num() float64   { return v.num }
func (v Value) Den() float64   { return v.den }
func (v Value) Unit() string   { return v.unit }
func (v Value) Group() *Group  { return v.group }

func (v Value) IsValid() bool    { return isFinite(v.value) }
func (v Value) IsFraction() bool { return v.IsValid() && v.den != 1 }
func (v Value) IsDecimal() bool  { return v.IsValid() && v.den == 1 }
func (v Value) IsZero() bool     { return isZero(v.value) }
func (v Value) IsSingular() bool { return isSingular(v.value) }
func (v Value) IsPositive() bool { return v.value > 0 }
func (v Value) IsNegative() bool { return v.value < 0 }
func (v Value) IsNonZero() bool  { return !isZero(v.value) }

// IsGrouped reports whether the unit resolved to a group.
func (v Value) IsGrouped() bool { return v.group != nil }

func (v Value) IsBase() bool { return v.group != nil && v.group.IsBase() }

// Scaled is the value expressed in its group's base unit.
func (v Value) Scaled() float64 {
	if v.group == nil {
		return v.value
	}
	return v.value * v.group.baseScale
}

// ClassScaled is the value expressed in its class's reference unit, which
// makes values of different groups comparable.
func (v Value) ClassScaled() float64 {
	if v.group == nil {
		return v.value
	}
	return v.value * v.group.classScale
}

// MixedWhole is the whole part of a mixed number: 2 for 7/3 and -2 for -7/3.
func (v Value) MixedWhole() float64 {
	if v.den == 1 {
		return 0
	}
	return math.Trunc(v.num / v.den)
}

// MixedNum is the numerator left over after MixedWhole, always positive
// once a whole part has been taken.
func (v Value) MixedNum() float64 {
	if v.den == 1 {
		return v.num
	}
	if v.MixedWhole() != 0 {
		return math.Abs(math.Mod(v.num, v.den))
	}
	return math.Mod(v.num, v.den)
}

// Remainder is the fractional part of the value.
func (v Value) Remainder() float64 { return v.value - math.Floor(v.value) }

// Actual is the exact fraction as a float.
func (v Value) Actual() float64 { return v.num / v.den }

// Offset is how far the fraction is from the stored float.
func (v Value) Offset() float64 { return v.Actual() - v.value }

func (v Value) Distance() float64 { return math.Abs(v.Offset()) }

// Truncate drops the fractional part.
func (v Value) Truncate() float64 { return math.Trunc(v.value) }

func (v Value) Floor() float64 { return math.Floor(v.value) }
func (v Value) Ceil() float64  { return math.Ceil(v.value) }

// SameUnit reports whether both values share a group, or neither has one
// and their unit text matches.
func (v Value) SameUnit(o Value) bool {
	if v.group != nil || o.group != nil {
		return v.group == o.group
	}
	return v.unit == o.unit
}

// Equals compares amounts within Epsilon and requires the same unit.
func (v Value) Equals(o Value) bool {
	return v.SameUnit(o) && isEqual(v.value, o.value)
}

// Add returns v + o*scale in v's unit. The unit of o is ignored.
func (v Value) Add(o Value, scale float64) Value {
	return NewValue(
		v.value+o.value*scale,
		v.num*o.den+o.num*v.den*scale,
		v.den*o.den,
		v.unit, v.group)
}

// Sub returns v - o*scale in v's unit.
func (v Value) Sub(o Value, scale float64) Value {
	return v.Add(o, -scale)
}

// Mul scales the amount, keeping the fraction exact.
func (v Value) Mul(scale float64) Value {
	return NewValue(v.value*scale, v.num*scale, v.den, v.unit, v.group)
}

// Zero keeps the unit and drops the amount.
func (v Value) Zero() Value {
	return NewValue(0, 0, 1, v.unit, v.group)
}

// rebind swaps v's group for the one reg resolves v's unit to.
func (v Value) rebind(reg *Registry) Value {
	if v.group == nil {
		return v
	}
	v.group = reg.Group(v.unit)
	return v
}

// Truncated drops the fractional part.
func (v Value) Truncated() Value {
	t := math.Trunc(v.value)
	return NewValue(t, t, 1, v.unit, v.group)
}

// Numbered forgets the fraction.
func (v Value) Numbered() Value {
	return NewDecimal(v.value, v.unit, v.group)
}

// Fractioned snaps the amount to the group's denominators.
func (v Value) Fractioned() Value {
	if v.IsFraction() || v.group == nil {
		return v
	}
	return FromNumber(v.value, v.group.Denominators(), v.unit, v.group)
}

// Preferred relabels the value with its group's preferred unit.
func (v Value) Preferred() Value {
	if v.group == nil {
		return v
	}
	pref := v.group.Preferred()
	if pref == v.unit {
		return v
	}
	return Value{value: v.value, num: v.num, den: v.den, unit: pref, group: v.group}
}

// ConvertTo returns the amount expressed in group to. Values without a
// group are returned unchanged.
func (v Value) ConvertTo(to *Group) float64 {
	if v.group == nil {
		return v.value
	}
	return v.group.parent.Convert(v.value, v.group, to)
}

// ConvertToValue converts into to and snaps the result to its denominators.
func (v Value) ConvertToValue(to *Group) Value {
	if to == nil {
		return v
	}
	return FromNumberForGroup(v.ConvertTo(to), to)
}

// Conversions calls fn with v converted into every group visible under t,
// in definition order or reversed.
func (v Value) Conversions(t *Transform, reverse bool, fn func(Value)) {
	if v.group == nil {
		return
	}
	v.group.Matches(t, reverse, func(g *Group, _ int) bool {
		fn(v.ConvertToValue(g))
		return true
	})
}

// Normalize returns the conversion whose rendering is shortest. Ties go to
// the later group, so larger units win. Conversions that render as "0"
// are skipped. A value with nothing better returns itself.
func (v Value) Normalize(t *Transform, o *Output) Value {
	var closest *Value
	v.Conversions(t, false, func(c Value) {
		acceptable := !o.isNumber(c) || o.Number(c.value) != "0"
		if acceptable && isMoreNormal(closest, c, o) {
			closest = &c
		}
	})
	if closest == nil {
		return v
	}
	return *closest
}

func isMoreNormal(from *Value, to Value, o *Output) bool {
	if !to.IsValid() {
		return false
	}
	if from == nil {
		return true
	}
	return len(o.Value(to)) <= len(o.Value(*from))
}

// String renders the amount without a unit: "1 1/2", "3/4" or "2.5".
func (v Value) String() string {
	switch {
	case v.den == 1 || !v.IsValid():
		return formatNumber(v.value)
	case v.MixedWhole() != 0:
		return formatNumber(v.MixedWhole()) + " " + formatNumber(v.MixedNum()) + "/" + formatNumber(v.den)
	}
	return formatNumber(v.num) + "/" + formatNumber(v.den)
}

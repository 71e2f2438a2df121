package unitz

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Input is anything that can be parsed into ranges: Text, ExplicitValue,
// ExplicitRange, List or an existing *Base.
type Input interface {
	isInput()
}

// Text is a comma separated list of quantities such as "1-2 cups, 3 tbsp".
type Text string

// ExplicitValue describes a value without parsing. When Den is non-zero
// the value is Num/Den; otherwise it is Value.
type ExplicitValue struct {
	Value float64
	Num   float64
	Den   float64
	Unit  string
}

// ExplicitRange describes a range without parsing.
type ExplicitRange struct {
	Min ExplicitValue
	Max ExplicitValue
}

// List is a sequence of inputs. Text inside a list is a single quantity
// or range and is not split on commas.
type List []Input

func (Text) isInput()          {}
func (ExplicitValue) isInput() {}
func (ExplicitRange) isInput() {}
func (List) isInput()          {}
func (*Base) isInput()         {}

// Resolver finds the group for a unit, returning nil for none.
type Resolver func(unit string) *Group

var (
	listPattern  = regexp.MustCompile(`\s*,\s*`)
	rangePattern = regexp.MustCompile(`^\s*(-?[^-]+)-(.+)`)
	valuePattern = regexp.MustCompile(`(?i)^\s*(-?\d*)(\s+(\d+))?(\s*/\s*(\d+)|\.(\d+)|)\s*(.*?)\s*$`)
)

// ParseRanges turns any Input into ranges, resolving units with groups.
// Unparsable entries become InvalidRange.
func ParseRanges(in Input, groups Resolver) []Range {
	switch in := in.(type) {
	case nil:
		return nil
	case *Base:
		if in == nil {
			return nil
		}
		return append([]Range(nil), in.ranges...)
	case Text:
		parts := listPattern.Split(string(in), -1)
		out := make([]Range, 0, len(parts))
		for _, p := range parts {
			out = append(out, ParseRange(p, groups))
		}
		return out
	case List:
		var out []Range
		for _, item := range in {
			if t, ok := item.(Text); ok {
				out = append(out, ParseRange(string(t), groups))
				continue
			}
			out = append(out, ParseRanges(item, groups)...)
		}
		return out
	case ExplicitRange:
		return []Range{NewRange(explicitValue(in.Min, groups), explicitValue(in.Max, groups))}
	case ExplicitValue:
		return []Range{Fixed(explicitValue(in, groups))}
	}
	return nil
}

// ParseRange parses one quantity ("2 cups") or range ("1-2 cups"). A
// unit written only on one end applies to both.
func ParseRange(text string, groups Resolver) Range {
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		v := ParseValue(text, groups)
		return Fixed(v)
	}
	lo, okLo := parseAmount(m[1])
	hi, okHi := parseAmount(m[2])
	if !okLo || !okHi {
		return InvalidRange
	}
	if lo.unit == "" {
		lo.unit = hi.unit
	}
	if hi.unit == "" {
		hi.unit = lo.unit
	}
	return NewRange(lo.toValue(groups), hi.toValue(groups))
}

// ParseValue parses a single quantity. Text with neither a number nor a
// unit is Invalid.
func ParseValue(text string, groups Resolver) Value {
	a, ok := parseAmount(text)
	if !ok {
		return Invalid
	}
	return a.toValue(groups)
}

type amount struct {
	value, num, den float64
	unit            string
}

func (a amount) toValue(groups Resolver) Value {
	var g *Group
	if groups != nil && a.unit != "" {
		g = groups(a.unit)
	}
	return NewValue(a.value, a.num, a.den, a.unit, g)
}

// parseAmount reads "[-]whole", "[-]whole num/den", "[-]num/den" or
// "[-]whole.decimal", each followed by an optional unit. A bare unit
// means one of it.
func parseAmount(text string) (amount, bool) {
	m := valuePattern.FindStringSubmatch(text)
	if m == nil {
		return amount{}, false
	}
	whole, errWhole := strconv.ParseFloat(m[1], 64)
	hasWhole := errWhole == nil
	negative := strings.HasPrefix(m[1], "-")
	sgn := 1.0
	if negative {
		sgn = -1
	}
	num, errNum := strconv.ParseFloat(m[3], 64)
	den, errDen := strconv.ParseFloat(m[5], 64)
	dec, errDec := strconv.ParseFloat("0."+m[6], 64)
	hasDecimal := m[6] != "" && errDec == nil
	unit := strings.TrimSuffix(strings.TrimSpace(m[7]), ".")

	if !hasWhole && hasDecimal {
		whole, hasWhole = 0, true
	}
	if !hasWhole && unit == "" {
		return amount{}, false
	}

	a := amount{value: 1, num: 1, den: 1, unit: unit}
	if !hasWhole {
		return a, true
	}
	abs := math.Abs(whole)
	a.value, a.num = whole, abs
	switch {
	case errDen == nil:
		if den == 0 {
			return amount{}, false
		}
		a.den = den
		if errNum == nil {
			a.value += num / den * sgn
			a.num = abs*den + num
		} else {
			a.value /= den
		}
	case hasDecimal:
		a.value += dec * sgn
		a.num += dec
	}
	a.num *= sgn
	return a, true
}

func explicitValue(e ExplicitValue, groups Resolver) Value {
	a := amount{value: e.Value, num: e.Value, den: 1, unit: e.Unit}
	if e.Den != 0 {
		a.value, a.num, a.den = e.Num/e.Den, e.Num, e.Den
	}
	return a.toValue(groups)
}

package unitz

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Output controls how values, ranges and lists are rendered as text.
type Output struct {
	Unit   OutputUnit
	Format OutputFormat
	// RepeatUnit shows the unit on both ends of a range even when they match.
	RepeatUnit     bool
	UnitSpacer     string
	RangeSpacer    string
	FractionSpacer string
	MixedSpacer    string
	Delimiter      string
	// Significant is the maximum number of decimal places; negative means
	// no rounding.
	Significant int
	// Locale, when set, renders decimals with that locale's separators
	// ("de" renders 1234.5 as "1.234,5").
	Locale string
}

// DefaultOutput returns the output used when none is configured.
func DefaultOutput() Output {
	return Output{
		Unit:           UnitGiven,
		Format:         FormatGiven,
		RangeSpacer:    " - ",
		FractionSpacer: "/",
		MixedSpacer:    " ",
		Delimiter:      ", ",
		Significant:    -1,
	}
}

// Ranges renders every valid range joined by the delimiter.
func (o *Output) Ranges(ranges []Range) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsValid() {
			continue
		}
		parts = append(parts, o.Range(r))
	}
	return strings.Join(parts, o.Delimiter)
}

// Range renders a fixed range as a single value and anything else as
// "min - max". The unit on min is left off when both ends share it.
func (o *Output) Range(r Range) string {
	if !r.IsValid() {
		return ""
	}
	if r.IsFixed() {
		return o.Value(r.min)
	}
	showMinUnit := o.RepeatUnit || r.min.unit != r.max.unit
	return o.value(r.min, showMinUnit) + o.RangeSpacer + o.Value(r.max)
}

// Value renders v with its unit. Invalid values render as "".
func (o *Output) Value(v Value) string {
	return o.value(v, true)
}

func (o *Output) value(v Value, showUnit bool) string {
	if !v.IsValid() {
		return ""
	}
	var out string
	switch {
	case o.isFraction(v) && o.isMixed(v):
		out = formatNumber(v.MixedWhole()) + o.MixedSpacer +
			formatNumber(v.MixedNum()) + o.FractionSpacer + formatNumber(v.den)
	case o.isFraction(v):
		out = formatNumber(v.num) + o.FractionSpacer + formatNumber(v.den)
	default:
		out = o.Number(v.value)
	}
	if showUnit && o.Unit != UnitNone {
		if u := o.unitText(v); u != "" {
			out += o.UnitSpacer + u
		}
	}
	return out
}

func (o *Output) unitText(v Value) string {
	g := v.group
	switch {
	case g == nil:
		return v.unit
	case o.Unit == UnitLong:
		return g.LongName(v.IsSingular())
	case o.Unit == UnitShort || g.Dynamic():
		return g.ShortName(v.IsSingular())
	}
	return v.unit
}

// Number renders a decimal, rounded to Significant places when that is
// shorter than the full representation.
func (o *Output) Number(x float64) string {
	if o.Locale != "" {
		if s, ok := o.localNumber(x); ok {
			return s
		}
	}
	s := formatNumber(x)
	if o.Significant >= 0 && s != "0" {
		if fixed := formatFixed(x, o.Significant); len(fixed) < len(s) {
			return fixed
		}
	}
	return s
}

func (o *Output) localNumber(x float64) (string, bool) {
	tag, err := language.Parse(o.Locale)
	if err != nil || !isFinite(x) {
		return "", false
	}
	digits := o.Significant
	if digits < 0 {
		s := formatNumber(x)
		if strings.Contains(s, "e") {
			return "", false
		}
		_, frac, _ := strings.Cut(s, ".")
		digits = len(frac)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(number.Decimal(x, number.MaxFractionDigits(digits))), true
}

func (o *Output) isFraction(v Value) bool {
	return v.IsFraction() && o.Format != FormatNumber
}

func (o *Output) isMixed(v Value) bool {
	return v.MixedWhole() != 0 && o.Format != FormatImproper
}

// isNumber reports whether v renders as a decimal.
func (o *Output) isNumber(v Value) bool {
	return v.IsValid() && !o.isFraction(v)
}

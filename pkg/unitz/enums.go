package unitz

import (
	"fmt"
	"strings"
)

// Plurality says whether an alias may be shown for a singular quantity,
// a plural quantity, or both.
type Plurality int

const (
	Singular Plurality = iota
	Plural
	Either
)

var pluralityNames = []string{"singular", "plural", "either"}

func (p Plurality) String() string {
	if p < 0 || int(p) >= len(pluralityNames) {
		return fmt.Sprintf("Plurality(%d)", int(p))
	}
	return pluralityNames[p]
}

// ParsePlurality converts a name such as "plural" into a Plurality.
func ParsePlurality(s string) (Plurality, error) {
	i, err := parseEnum("plurality", s, pluralityNames)
	return Plurality(i), err
}

func (p Plurality) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Plurality) UnmarshalText(b []byte) error {
	v, err := ParsePlurality(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// System is the measurement system a Group belongs to.
//
// Any and Given are only meaningful for filtering: Any matches every group,
// Given matches groups sharing a base unit with the value being transformed.
type System int

const (
	Metric System = iota
	Imperial
	None
	Any
	Given
)

var systemNames = []string{"metric", "imperial", "none", "any", "given"}

func (s System) String() string {
	if s < 0 || int(s) >= len(systemNames) {
		return fmt.Sprintf("System(%d)", int(s))
	}
	return systemNames[s]
}

// ParseSystem converts a name such as "metric" into a System. "us" is
// accepted as an alias for imperial.
func ParseSystem(s string) (System, error) {
	if strings.EqualFold(strings.TrimSpace(s), "us") {
		return Imperial, nil
	}
	i, err := parseEnum("system", s, systemNames)
	return System(i), err
}

func (s System) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *System) UnmarshalText(b []byte) error {
	v, err := ParseSystem(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// OutputUnit controls how units are rendered.
type OutputUnit int

const (
	// UnitGiven renders the unit text stored on the value.
	UnitGiven OutputUnit = iota
	// UnitNone omits units entirely.
	UnitNone
	// UnitShort renders the group's shortest alias.
	UnitShort
	// UnitLong renders the group's longest alias.
	UnitLong
)

var outputUnitNames = []string{"given", "none", "short", "long"}

func (u OutputUnit) String() string {
	if u < 0 || int(u) >= len(outputUnitNames) {
		return fmt.Sprintf("OutputUnit(%d)", int(u))
	}
	return outputUnitNames[u]
}

func ParseOutputUnit(s string) (OutputUnit, error) {
	i, err := parseEnum("unit format", s, outputUnitNames)
	return OutputUnit(i), err
}

func (u OutputUnit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *OutputUnit) UnmarshalText(b []byte) error {
	v, err := ParseOutputUnit(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// OutputFormat controls how numbers and fractions are rendered.
type OutputFormat int

const (
	// FormatGiven renders fractions as mixed numbers and everything else
	// as decimals.
	FormatGiven OutputFormat = iota
	// FormatNumber always renders decimals.
	FormatNumber
	FormatMixed
	FormatFraction
	// FormatImproper renders fractions as num/den without a whole part.
	FormatImproper
)

var outputFormatNames = []string{"given", "number", "mixed", "fraction", "improper"}

func (f OutputFormat) String() string {
	if f < 0 || int(f) >= len(outputFormatNames) {
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
	return outputFormatNames[f]
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	i, err := parseEnum("format", s, outputFormatNames)
	return OutputFormat(i), err
}

func (f OutputFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *OutputFormat) UnmarshalText(b []byte) error {
	v, err := ParseOutputFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// SortType selects which end of a range is compared when sorting.
type SortType int

const (
	SortMax SortType = iota
	SortMin
	SortAverage
)

var sortTypeNames = []string{"max", "min", "average"}

func (t SortType) String() string {
	if t < 0 || int(t) >= len(sortTypeNames) {
		return fmt.Sprintf("SortType(%d)", int(t))
	}
	return sortTypeNames[t]
}

func ParseSortType(s string) (SortType, error) {
	i, err := parseEnum("sort type", s, sortTypeNames)
	return SortType(i), err
}

func (t SortType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *SortType) UnmarshalText(b []byte) error {
	v, err := ParseSortType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func parseEnum(kind, s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (expected one of: %s)", kind, s, strings.Join(names, ", "))
}

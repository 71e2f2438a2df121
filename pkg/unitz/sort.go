package unitz

// Sort orders ranges by class priority and then by size.
type Sort struct {
	Ascending bool
	Type      SortType
	// Classes raises or lowers whole classes; missing classes weigh 0.
	Classes map[string]int
}

// DefaultSort returns the sort used when none is configured: largest first,
// compared on range maximums.
func DefaultSort() Sort {
	return Sort{Type: SortMax}
}

// Compare returns a negative number when a sorts before b.
func (s *Sort) Compare(a, b Range) int {
	d := s.compareClass(a, b)
	if d == 0 {
		d = sign(s.value(a) - s.value(b))
	}
	if s.Ascending {
		return d
	}
	return -d
}

func (s *Sort) compareClass(a, b Range) int {
	ag, bg := a.min.group, b.min.group
	switch {
	case ag == nil && bg == nil:
		return 0
	case ag == nil:
		return -2
	case bg == nil:
		return 2
	}
	return s.Classes[ag.parent.name] - s.Classes[bg.parent.name]
}

func (s *Sort) value(r Range) float64 {
	switch s.Type {
	case SortMin:
		return r.min.ClassScaled()
	case SortAverage:
		return (r.min.ClassScaled() + r.max.ClassScaled()) / 2
	}
	return r.max.ClassScaled()
}

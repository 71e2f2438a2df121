package unitz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange_Basics(t *testing.T) {
	r := NewRange(NewDecimal(3, "c", nil), NewDecimal(1, "c", nil))
	assert.Equal(t, 1.0, r.Min().Float())
	assert.Equal(t, 3.0, r.Max().Float())
	assert.True(t, r.IsRange())
	assert.False(t, r.IsFixed())
	assert.Equal(t, 2.0, r.Average().Float())
	assert.Equal(t, "c", r.Unit())
	assert.Nil(t, r.Class())
	assert.Equal(t, "1c - 3c", r.String())

	f := Fixed(FromFraction(1, 2, "", nil))
	assert.True(t, f.IsFixed())
	assert.True(t, f.IsFraction())
	assert.Equal(t, "1/2", f.String())
}

func TestRange_SignFilters(t *testing.T) {
	tests := []struct {
		name         string
		lo, hi       float64
		posOK, negOK bool
		pos, neg     [2]float64
	}{
		{"positive", 1, 2, true, false, [2]float64{1, 2}, [2]float64{}},
		{"negative", -2, -1, false, true, [2]float64{}, [2]float64{-2, -1}},
		{"straddles", -1, 2, true, true, [2]float64{0, 2}, [2]float64{-1, 0}},
		{"zero", 0, 0, true, false, [2]float64{0, 0}, [2]float64{}},
		{"up to zero", -1, 0, true, true, [2]float64{0, 0}, [2]float64{-1, 0}},
		{"from zero", 0, 2, true, false, [2]float64{0, 2}, [2]float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRange(NewDecimal(tt.lo, "", nil), NewDecimal(tt.hi, "", nil))
			p, ok := r.Positive()
			assert.Equal(t, tt.posOK, ok)
			if ok {
				assert.Equal(t, tt.pos, [2]float64{p.Min().Float(), p.Max().Float()})
			}
			n, ok := r.Negative()
			assert.Equal(t, tt.negOK, ok)
			if ok {
				assert.Equal(t, tt.neg, [2]float64{n.Min().Float(), n.Max().Float()})
			}
		})
	}
}

func TestRange_NonZero(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		want   bool
	}{
		{"zero", 0, 0, false},
		{"tiny", 0.000001, 0.000001, true},
		{"from zero", 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NewRange(NewDecimal(tt.lo, "g", nil), NewDecimal(tt.hi, "g", nil)).NonZero()
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestRange_NaNEndIsInvalid(t *testing.T) {
	one := NewDecimal(1, "c", nil)
	assert.False(t, NewRange(one, Invalid).IsValid())
	assert.False(t, NewRange(Invalid, one).IsValid())
	assert.True(t, NewRange(one, one).IsValid())
}

func TestRange_Arithmetic(t *testing.T) {
	a := NewRange(NewDecimal(1, "", nil), NewDecimal(2, "", nil))
	b := NewRange(NewDecimal(3, "", nil), NewDecimal(4, "", nil))

	sum := a.Add(b, 1)
	assert.Equal(t, 4.0, sum.Min().Float())
	assert.Equal(t, 6.0, sum.Max().Float())

	diff := a.Sub(b, 1)
	assert.Equal(t, -2.0, diff.Min().Float())
	assert.Equal(t, -2.0, diff.Max().Float())

	neg := a.Mul(-1)
	assert.Equal(t, -2.0, neg.Min().Float())
	assert.Equal(t, -1.0, neg.Max().Float())

	assert.True(t, a.IsMatch(b))
}

func TestRange_FractionsAndNumbers(t *testing.T) {
	reg := testRegistry()
	lb := reg.Lookup("lb")
	r := NewRange(NewDecimal(0.5, "lb", lb), NewDecimal(0.75, "lb", lb))

	f := r.Fractions()
	assert.Equal(t, "1/2lb - 3/4lb", f.String())
	assert.Equal(t, f, f.Fractions())

	n := f.Numbers()
	assert.Equal(t, "0.5lb - 0.75lb", n.String())
	assert.Equal(t, n, n.Numbers())

	assert.Equal(t, 0.75, r.MaxRange().Min().Float())
	assert.Equal(t, 0.5, r.MinRange().Max().Float())
}

package classes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambeau/unitz/pkg/unitz"
)

func TestAll_Order(t *testing.T) {
	assert.Equal(t, []string{"Weight", "Area", "Time", "Digital", "Temperature", "Angle", "Volume", "Length", "Speed"}, Names())
}

func TestNewRegistry_Resolves(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		alias, unit, class string
	}{
		{"ounces", "oz", "Weight"},
		{"fl oz", "floz", "Volume"},
		{"tbsp", "tbsp", "Volume"},
		{"°C", "°C", "Temperature"},
		{"kB", "kB", "Digital"},
		{"KB", "KB", "Digital"},
		{"kb", "kb", "Digital"},
		{"kbit", "kb", "Digital"},
		{"mebibytes", "MB", "Digital"},
		{"hours", "hr", "Time"},
		{"km/h", "kph", "Speed"},
		{"feet", "ft", "Length"},
		{"radians", "rad", "Angle"},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			g := reg.Lookup(tt.alias)
			require.NotNil(t, g)
			assert.Equal(t, tt.unit, g.Unit())
			assert.Equal(t, tt.class, g.Class().Name())
		})
	}
	assert.Empty(t, reg.DynamicGroups())
}

func TestConversions(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		from string
		to   string
		want float64
	}{
		{"212 F", "°C", 100},
		{"0 °C", "K", 273.15},
		{"1 kg", "lb", 2.20462},
		{"1 c", "tbsp", 16},
		{"1 gal", "l", 3.78541},
		{"1 mi", "km", 1.609344},
		{"1 sqft", "sqin", 144},
		{"180 deg", "rad", 3.14159},
		{"1 KB", "B", 1024},
		{"1 kB", "B", 1000},
		{"1 B", "b", 8},
		{"1 day", "min", 1440},
		{"100 kph", "mph", 62.1371},
		{"10 m/s", "kph", 36},
	}
	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			r, ok := reg.Parse(unitz.Text(tt.from)).Convert(tt.to)
			require.True(t, ok)
			assert.InEpsilon(t, tt.want, r.Max().Float(), 1e-3)
		})
	}
}

func TestExpand_Digital(t *testing.T) {
	reg := NewRegistry()
	tr := unitz.DefaultTransform()
	tr.OnlyUnits = []string{"B", "KB", "MB"}
	assert.Equal(t, "1KB, 512B", reg.Parse(unitz.Text("1536 B")).Expand(&tr).String())
}

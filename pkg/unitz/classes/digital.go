package classes

import "github.com/sambeau/unitz/pkg/unitz"

type prefix struct {
	unit, name, extra string
}

// Digital covers bits, nibbles and bytes with both decimal (kB, kb) and
// binary (KB, kibit) multiples.
func Digital() *unitz.Class {
	b := unitz.NewClass("Digital").
		Group([]unitz.GroupDef{
			{
				System: unitz.Any, Common: true, Unit: "b", BaseUnit: "b",
				Units: []unitz.Alias{either("b"), singular("bit"), plural("bits")},
			},
			{
				System: unitz.Any, Unit: "nibble", RelativeUnit: "b", RelativeScale: 4,
				Units: []unitz.Alias{
					either("nibble"), plural("nibbles"), either("nybble"), either("nyble"),
					either("half-byte"), either("half byte"), either("tetrade"),
					either("semi-octet"), either("quadbit"), either("quartet"),
				},
			},
			{
				System: unitz.Any, Common: true, Unit: "B", RelativeUnit: "b", RelativeScale: 8,
				Denominators: []int{2, 8},
				Units: []unitz.Alias{either("B"), singular("byte"), plural("bytes")},
			},
		}...)
	b.Group(digitalChain("B", 1000, []int{2, 4, 5, 10}, "byte", "bytes", []prefix{
		{"kB", "kilo", ""}, {"mB", "mega", ""}, {"gB", "giga", ""}, {"tB", "tera", ""},
		{"pB", "peta", ""}, {"eB", "exa", ""}, {"zB", "zetta", ""}, {"yB", "yotta", ""},
	})...)
	b.Group(digitalChain("B", 1024, []int{2, 4, 8, 16}, "byte", "bytes", []prefix{
		{"KB", "kibi", ""}, {"MB", "mebi", ""}, {"GB", "gibi", ""}, {"TB", "tebi", ""},
		{"PB", "pebi", ""}, {"EB", "exbi", ""}, {"ZB", "zebi", ""}, {"YB", "yobi", ""},
	})...)
	b.Group(digitalChain("b", 1000, []int{2, 4, 5, 10}, "bit", "bits", []prefix{
		{"kb", "kilo", "kbit"}, {"mb", "mega", "mbit"}, {"gb", "giga", "gbit"}, {"tb", "tera", "tbit"},
		{"pb", "peta", "pbit"}, {"eb", "exa", "ebit"}, {"zb", "zetta", "zbit"}, {"yb", "yotta", "ybit"},
	})...)
	b.Group(digitalChain("b", 1024, []int{2, 4, 8, 16}, "bit", "bits", []prefix{
		{"kibit", "kibi", ""}, {"mibit", "mebi", ""}, {"gibit", "gibi", ""}, {"tibit", "tebi", ""},
		{"pibit", "pebi", ""}, {"eibit", "exbi", ""}, {"zibit", "zebi", ""}, {"yibit", "yobi", ""},
	})...)
	return b.MustBuild()
}

// digitalChain builds groups that are each scale times the one before,
// starting from relativeTo.
func digitalChain(relativeTo string, scale float64, dens []int, one, many string, prefixes []prefix) []unitz.GroupDef {
	defs := make([]unitz.GroupDef, 0, len(prefixes))
	for _, p := range prefixes {
		units := []unitz.Alias{either(p.unit), singular(p.name + one), plural(p.name + many)}
		if p.extra != "" {
			units = append(units, either(p.extra))
		}
		defs = append(defs, unitz.GroupDef{
			System:        unitz.Any,
			Common:        true,
			Unit:          p.unit,
			RelativeUnit:  relativeTo,
			RelativeScale: scale,
			Denominators:  dens,
			Units:         units,
		})
		relativeTo = p.unit
	}
	return defs
}

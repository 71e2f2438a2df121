package classes

import (
	"math"

	"github.com/sambeau/unitz/pkg/unitz"
)

// Angle converts between degrees and radians.
func Angle() *unitz.Class {
	return unitz.NewClass("Angle").
		Converter("deg", "rad", unitz.Scale(math.Pi / 180)).
		Converter("rad", "deg", unitz.Scale(180 / math.Pi)).
		Group([]unitz.GroupDef{
			{
				System: unitz.Any, Common: true, Unit: "deg", BaseUnit: "deg",
				Units: []unitz.Alias{either("deg"), either("°"), plural("degrees"), singular("degree")},
			},
			{
				System: unitz.Any, Common: true, Unit: "rad", BaseUnit: "rad",
				Units: []unitz.Alias{either("rad"), plural("radians"), singular("radian")},
			},
		}...).
		MustBuild()
}

package classes

import "github.com/sambeau/unitz/pkg/unitz"

// Length covers inches through leagues and millimeters through kilometers.
func Length() *unitz.Class {
	return unitz.NewClass("Length").
		Converter("in", "mm", unitz.Scale(25.4)).
		Converter("mm", "in", unitz.Scale(0.039370)).
		Group([]unitz.GroupDef{
			{
				System: unitz.Imperial, Common: true, Unit: "in", BaseUnit: "in",
				Denominators: []int{2, 4, 8, 16, 32},
				Units: []unitz.Alias{either("in"), singular("inch"), plural("inches"), either("\"")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "ft", RelativeUnit: "in", RelativeScale: 12,
				Denominators: []int{2},
				Units: []unitz.Alias{either("ft"), singular("foot"), plural("feet"), either("'")},
			},
			{
				System: unitz.Imperial, Unit: "yd", RelativeUnit: "ft", RelativeScale: 3,
				Units: []unitz.Alias{either("yd"), singular("yard"), plural("yards"), plural("yds")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "mi", RelativeUnit: "ft", RelativeScale: 5280,
				Denominators: []int{2, 3, 4, 10},
				Units: []unitz.Alias{either("mi"), singular("mile"), plural("miles")},
			},
			{
				System: unitz.Imperial, Unit: "league", RelativeUnit: "mi", RelativeScale: 3,
				Denominators: []int{2, 3, 4, 5, 6, 7, 8, 9, 10},
				Units: []unitz.Alias{either("league"), plural("leagues")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "mm", BaseUnit: "mm",
				Denominators: []int{10},
				Units: []unitz.Alias{either("mm"), singular("millimeter"), plural("millimeters")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "cm", RelativeUnit: "mm", RelativeScale: 10,
				Denominators: []int{2, 4, 10},
				Units: []unitz.Alias{either("cm"), singular("centimeter"), plural("centimeters")},
			},
			{
				System: unitz.Metric, Unit: "dc", RelativeUnit: "cm", RelativeScale: 10,
				Denominators: []int{10},
				Units: []unitz.Alias{either("dc"), singular("decimeter"), plural("decimeters")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "m", RelativeUnit: "cm", RelativeScale: 100,
				Denominators: []int{2, 3, 4, 5, 10},
				Units: []unitz.Alias{either("m"), singular("meter"), plural("meters")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "km", RelativeUnit: "m", RelativeScale: 1000,
				Denominators: []int{2, 3, 4, 5, 6, 7, 8, 9, 10},
				Units: []unitz.Alias{either("km"), singular("kilometer"), plural("kilometers")},
			},
		}...).
		MustBuild()
}

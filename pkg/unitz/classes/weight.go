package classes

import "github.com/sambeau/unitz/pkg/unitz"

// Weight covers milligrams through kilograms and ounces through tons.
func Weight() *unitz.Class {
	return unitz.NewClass("Weight").
		Converter("mg", "oz", unitz.Scale(0.000035274)).
		Converter("oz", "mg", unitz.Scale(28349.5)).
		Group([]unitz.GroupDef{
			{
				System: unitz.Metric, Common: true, Unit: "mg", BaseUnit: "mg",
				Denominators: []int{2, 10},
				Units: []unitz.Alias{either("mg"), singular("milligram"), plural("milligrams")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "g", RelativeUnit: "mg", RelativeScale: 1000,
				Denominators: []int{2, 10, 1000},
				Units: []unitz.Alias{either("g"), singular("gram"), plural("grams")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "kg", RelativeUnit: "g", RelativeScale: 1000,
				Denominators: []int{2, 10, 1000},
				Units: []unitz.Alias{either("kg"), singular("kilogram"), plural("kilograms")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "oz", BaseUnit: "oz",
				Denominators: []int{2, 3, 4, 16},
				Units: []unitz.Alias{either("oz"), singular("ounce"), plural("ounces")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "lb", RelativeUnit: "oz", RelativeScale: 16,
				Denominators: []int{2, 3, 4, 16},
				Units: []unitz.Alias{either("lb"), plural("lbs"), singular("pound"), plural("pounds")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "ton", RelativeUnit: "lb", RelativeScale: 2000,
				Denominators: []int{2, 3, 4, 10},
				Units: []unitz.Alias{either("ton"), plural("tons"), plural("tonnes")},
			},
		}...).
		MustBuild()
}

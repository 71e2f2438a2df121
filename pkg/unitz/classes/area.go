package classes

import "github.com/sambeau/unitz/pkg/unitz"

// Area covers square inches through square miles (and acres) and square
// millimeters through square kilometers.
func Area() *unitz.Class {
	return unitz.NewClass("Area").
		Converter("sqin", "sqmm", unitz.Scale(645.16)).
		Converter("sqmm", "sqin", unitz.Scale(0.00155)).
		Group([]unitz.GroupDef{
			{
				System: unitz.Imperial, Common: true, Unit: "sqin", BaseUnit: "sqin",
				Denominators: []int{2, 4, 8, 16},
				Units: []unitz.Alias{either("sqin"), either("sq. in"), either("sq in"), either("in2"), either("in^2"), either("in²"), singular("inch2"), singular("inch^2"), singular("inch²"), plural("inches2"), plural("inches^2"), plural("inches²"), either("square in"), singular("square inch"), plural("square inches")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "sqft", RelativeUnit: "sqin", RelativeScale: 12 * 12,
				Denominators: []int{2, 4, 8, 16},
				Units: []unitz.Alias{either("sqft"), either("sq. ft"), either("sq ft"), either("ft2"), either("ft^2"), either("ft²"), singular("foot2"), singular("foot^2"), singular("foot²"), plural("feet2"), plural("feet^2"), plural("feet²"), either("square ft"), singular("square foot"), plural("square feet")},
			},
			{
				System: unitz.Imperial, Unit: "sqyd", RelativeUnit: "sqft", RelativeScale: 3 * 3,
				Denominators: []int{2, 3, 4, 8, 9, 16},
				Units: []unitz.Alias{either("sqyd"), either("sq. yd"), either("sq yd"), either("yd2"), either("yd^2"), either("yd²"), singular("yard2"), singular("yard^2"), singular("yard²"), plural("yards2"), plural("yards^2"), plural("yards²"), singular("square yard"), plural("square yards")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "acre", RelativeUnit: "sqyd", RelativeScale: 4840,
				Denominators: []int{2, 3, 4, 8, 10},
				Units: []unitz.Alias{either("acre"), plural("acres")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "sqmi", RelativeUnit: "acre", RelativeScale: 640,
				Denominators: []int{2, 3, 4, 8, 10},
				Units: []unitz.Alias{either("sqmi"), either("sq. mi"), either("sq mi"), either("mi2"), either("mi^2"), either("mi²"), singular("mile2"), singular("mile^2"), singular("mile²"), plural("miles2"), plural("miles^2"), plural("miles²"), either("square mi"), singular("square mile"), plural("square miles")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "sqmm", BaseUnit: "sqmm",
				Denominators: []int{2, 4, 8, 16},
				Units: []unitz.Alias{either("sqmm"), either("sq. mm"), either("sq mm"), either("mm2"), either("mm^2"), either("mm²"), singular("millimeter2"), singular("millimeter^2"), singular("millimeter²"), plural("millimeters2"), plural("millimeters^2"), plural("millimeters²"), either("square mm"), singular("square millimeter"), plural("square millimeters")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "sqcm", RelativeUnit: "sqmm", RelativeScale: 100,
				Denominators: []int{2, 4, 8, 16},
				Units: []unitz.Alias{either("sqcm"), either("sq. cm"), either("sq cm"), either("cm2"), either("cm^2"), either("cm²"), singular("centimeter2"), singular("centimeter^2"), singular("centimeter²"), plural("centimeters2"), plural("centimeters^2"), plural("centimeters²"), either("square cm"), singular("square centimeter"), plural("square centimeters")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "sqm", RelativeUnit: "sqcm", RelativeScale: 10000,
				Denominators: []int{2, 4, 8, 16},
				Units: []unitz.Alias{either("sqm"), either("sq. m"), either("sq m"), either("m2"), either("m^2"), either("m²"), singular("meter2"), singular("meter^2"), singular("meter²"), plural("meters2"), plural("meters^2"), plural("meters²"), either("square m"), singular("square meter"), plural("square meters")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "sqkm", RelativeUnit: "sqm", RelativeScale: 1000000,
				Denominators: []int{2, 4, 8, 16},
				Units: []unitz.Alias{either("sqkm"), either("sq. km"), either("sq km"), either("km2"), either("km^2"), either("km²"), singular("kilometer2"), singular("kilometer^2"), singular("kilometer²"), plural("kilometers2"), plural("kilometers^2"), plural("kilometers²"), either("square km"), singular("square kilometer"), plural("square kilometers")},
			},
		}...).
		MustBuild()
}

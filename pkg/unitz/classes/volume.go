package classes

import "github.com/sambeau/unitz/pkg/unitz"

// Volume covers kitchen measures (teaspoons through gallons), metric
// liquid measures, and metric and imperial cubic measures.
func Volume() *unitz.Class {
	return unitz.NewClass("Volume").
		Converter("tsp", "ml", unitz.Scale(4.92892)).
		Converter("tsp", "mm3", unitz.Scale(4928.92)).
		Converter("tsp", "in3", unitz.Scale(0.300781)).
		Converter("ml", "tsp", unitz.Scale(0.202884)).
		Converter("ml", "mm3", unitz.Scale(1000)).
		Converter("ml", "in3", unitz.Scale(0.0610237)).
		Converter("mm3", "tsp", unitz.Scale(0.000202884)).
		Converter("mm3", "ml", unitz.Scale(0.001)).
		Converter("mm3", "in3", unitz.Scale(0.0000610237)).
		Converter("in3", "tsp", unitz.Scale(3.32468)).
		Converter("in3", "ml", unitz.Scale(16.3871)).
		Converter("in3", "mm3", unitz.Scale(16387.1)).
		Group([]unitz.GroupDef{
			{
				System: unitz.Imperial, Common: true, Unit: "tsp", BaseUnit: "tsp",
				Denominators: []int{2, 3, 4},
				Units: []unitz.Alias{either("tsp"), either("ts"), plural("tsps"), singular("teaspoon"), plural("teaspoons")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "tbsp", RelativeUnit: "tsp", RelativeScale: 3,
				Denominators: []int{2, 3, 4},
				Units: []unitz.Alias{either("tbsp"), plural("tbsps"), singular("tablespoon"), plural("tablespoons")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "floz", RelativeUnit: "tsp", RelativeScale: 6,
				Denominators: []int{2, 3, 6},
				Units: []unitz.Alias{either("floz"), either("fl-oz"), either("fl oz"), singular("fluid ounce"), plural("fluid ounces"), either("fl. oz"), either("oz. fl"), either("oz fl")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "c", RelativeUnit: "floz", RelativeScale: 8,
				Denominators: []int{2, 3, 4},
				Units: []unitz.Alias{either("c"), singular("cup"), plural("cups")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "pt", RelativeUnit: "c", RelativeScale: 2,
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("pt"), singular("pint"), plural("pints")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "qt", RelativeUnit: "c", RelativeScale: 4,
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("qt"), singular("quart"), plural("quarts")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "gal", RelativeUnit: "qt", RelativeScale: 4,
				Denominators: []int{2, 4, 8, 16},
				Units: []unitz.Alias{either("gal"), singular("gallon"), plural("gallons"), plural("gals")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "ml", BaseUnit: "ml",
				Denominators: []int{2, 10},
				Units: []unitz.Alias{either("ml"), singular("millilitre"), plural("millilitres"), singular("milliliter"), plural("milliliters")},
			},
			{
				System: unitz.Metric, Unit: "cl", RelativeUnit: "ml", RelativeScale: 10,
				Denominators: []int{10},
				Units: []unitz.Alias{either("cl"), singular("centilitre"), plural("centilitres"), singular("centiliter"), plural("centiliters")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "l", RelativeUnit: "ml", RelativeScale: 1000,
				Denominators: []int{2, 3, 4, 10},
				Units: []unitz.Alias{either("l"), singular("litre"), plural("litres"), singular("liter"), plural("liters")},
			},
			{
				System: unitz.Metric, Unit: "dl", RelativeUnit: "l", RelativeScale: 10,
				Denominators: []int{10, 100},
				Units: []unitz.Alias{either("dl"), singular("decalitre"), plural("decalitres"), singular("decaliter"), plural("decaliters")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "kl", RelativeUnit: "l", RelativeScale: 1000,
				Denominators: []int{10, 100},
				Units: []unitz.Alias{either("kl"), singular("kilolitre"), plural("kilolitres"), singular("kiloliter"), plural("kiloliters")},
			},
			{
				System: unitz.Metric, Unit: "mm3", BaseUnit: "mm3",
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("mm3"), either("mm^3"), either("mm³"), singular("millimeter3"), singular("millimeter^3"), singular("millimeter³"), plural("millimeters3"), plural("millimeters^3"), plural("millimeters³"), either("cubic mm"), singular("cubic millimeter"), plural("cubic millimeters")},
			},
			{
				System: unitz.Metric, Unit: "cm3", RelativeUnit: "mm3", RelativeScale: 1000,
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("cm3"), either("cm^3"), either("cm³"), singular("centimeter3"), singular("centimeter^3"), singular("centimeter³"), plural("centimeters3"), plural("centimeters^3"), plural("centimeters³"), either("cubic cm"), singular("cubic centimeter"), plural("cubic centimeters")},
			},
			{
				System: unitz.Metric, Unit: "m3", RelativeUnit: "cm3", RelativeScale: 1000000,
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("m3"), either("m^3"), either("m³"), singular("meter3"), singular("meter^3"), singular("meter³"), plural("meters3"), plural("meters^3"), plural("meters³"), either("cubic m"), singular("cubic meter"), plural("cubic meters")},
			},
			{
				System: unitz.Metric, Unit: "km3", RelativeUnit: "m3", RelativeScale: 1000000000,
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("km3"), either("km^3"), either("km³"), singular("kilometer3"), singular("kilometer^3"), singular("kilometer³"), plural("kilometers3"), plural("kilometers^3"), plural("kilometers³"), either("cubic km"), singular("cubic kilometer"), plural("cubic kilometers")},
			},
			{
				System: unitz.Imperial, Unit: "in3", BaseUnit: "in3",
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("in3"), either("in^3"), either("in³"), singular("inch3"), singular("inch^3"), singular("inch³"), plural("inches3"), plural("inches^3"), plural("inches³"), either("cubic in"), singular("cubic inch"), plural("cubic inches")},
			},
			{
				System: unitz.Imperial, Unit: "ft3", RelativeUnit: "in3", RelativeScale: 1728,
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("ft3"), either("ft^3"), either("ft³"), singular("foot3"), singular("foot^3"), singular("foot³"), plural("feet3"), plural("feet^3"), plural("feet³"), either("cubic ft"), singular("cubic foot"), plural("cubic feet")},
			},
			{
				System: unitz.Imperial, Unit: "yd3", RelativeUnit: "ft3", RelativeScale: 27,
				Denominators: []int{2, 4, 8},
				Units: []unitz.Alias{either("yd3"), either("yd^3"), either("yd³"), singular("yard3"), singular("yard^3"), singular("yard³"), plural("yards3"), plural("yards^3"), plural("yards³"), either("cubic yd"), singular("cubic yard"), plural("cubic yards")},
			},
		}...).
		MustBuild()
}

package classes

import "github.com/sambeau/unitz/pkg/unitz"

// Temperature converts between Fahrenheit, Celsius and Kelvin. Each is its
// own base unit, so every conversion goes through an affine converter.
func Temperature() *unitz.Class {
	return unitz.NewClass("Temperature").
		Converter("F", "°C", unitz.Affine(5.0/9, -32, 0)).
		Converter("F", "K", unitz.Affine(5.0/9, 459.67, 0)).
		Converter("°C", "F", unitz.Affine(9.0/5, 0, 32)).
		Converter("°C", "K", unitz.Affine(1, 273.15, 0)).
		Converter("K", "°C", unitz.Affine(1, -273.15, 0)).
		Converter("K", "F", unitz.Affine(9.0/5, 0, -459.67)).
		Group([]unitz.GroupDef{
			{
				System: unitz.Imperial, Common: true, Unit: "F", BaseUnit: "F",
				Units: []unitz.Alias{either("F"), either("°F"), either("Fahrenheit")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "°C", BaseUnit: "°C",
				Units: []unitz.Alias{either("°C"), either("Celsius")},
			},
			{
				System: unitz.Metric, Unit: "K", BaseUnit: "K",
				Units: []unitz.Alias{either("K"), singular("kelvin"), plural("kelvins")},
			},
		}...).
		MustBuild()
}

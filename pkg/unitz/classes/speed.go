package classes

import "github.com/sambeau/unitz/pkg/unitz"

// Speed covers feet per second through miles per minute and kilometers per
// hour through kilometers per minute.
func Speed() *unitz.Class {
	return unitz.NewClass("Speed").
		Converter("ft/s", "kph", unitz.Scale(1.09728)).
		Converter("kph", "ft/s", unitz.Scale(1/1.09728)).
		Group([]unitz.GroupDef{
			{
				System: unitz.Imperial, Common: true, Unit: "ft/s", BaseUnit: "ft/s",
				Denominators: []int{2, 4, 10},
				Units: []unitz.Alias{either("ft/s"), either("fps"), singular("foot per second"), plural("feet per second")},
			},
			{
				System: unitz.Imperial, Common: true, Unit: "mph", RelativeUnit: "ft/s", RelativeScale: 22.0 / 15,
				Denominators: []int{2, 4, 10},
				Units: []unitz.Alias{either("mph"), either("mi/h"), singular("mile per hour"), plural("miles per hour")},
			},
			{
				System: unitz.Imperial, Unit: "mi/min", RelativeUnit: "mph", RelativeScale: 60,
				Denominators: []int{2, 4},
				Units: []unitz.Alias{either("mi/min"), singular("mile per minute"), plural("miles per minute")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "kph", BaseUnit: "kph",
				Denominators: []int{2, 4, 10},
				Units: []unitz.Alias{either("kph"), either("km/h"), either("kmh"), either("kmph"), singular("kilometer per hour"), plural("kilometers per hour")},
			},
			{
				System: unitz.Metric, Common: true, Unit: "m/s", RelativeUnit: "kph", RelativeScale: 3.6,
				Denominators: []int{2, 4, 10},
				Units: []unitz.Alias{either("m/s"), singular("meter per second"), plural("meters per second")},
			},
			{
				System: unitz.Metric, Unit: "km/min", RelativeUnit: "kph", RelativeScale: 60,
				Denominators: []int{2, 4},
				Units: []unitz.Alias{either("km/min"), singular("kilometer per minute"), plural("kilometers per minute")},
			},
		}...).
		MustBuild()
}

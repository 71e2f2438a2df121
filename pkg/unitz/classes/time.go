package classes

import "github.com/sambeau/unitz/pkg/unitz"

// Time covers nanoseconds through millennia. Every group belongs to any
// system.
func Time() *unitz.Class {
	return unitz.NewClass("Time").
		Group([]unitz.GroupDef{
			{
				System: unitz.Any, Unit: "ns", BaseUnit: "ns",
				Denominators: []int{10, 100},
				Units: []unitz.Alias{either("ns"), singular("nanosecond"), plural("nanoseconds"), singular("nano"), plural("nanos")},
			},
			{
				System: unitz.Any, Unit: "us", RelativeUnit: "ns", RelativeScale: 1000,
				Denominators: []int{10, 100, 1000},
				Units: []unitz.Alias{either("us"), singular("microsecond"), plural("microseconds"), singular("micro"), plural("micros")},
			},
			{
				System: unitz.Any, Common: true, Unit: "ms", RelativeUnit: "us", RelativeScale: 1000,
				Denominators: []int{10, 100, 1000},
				Units: []unitz.Alias{either("ms"), singular("millisecond"), plural("milliseconds"), singular("milli"), plural("millis")},
			},
			{
				System: unitz.Any, Common: true, Unit: "s", RelativeUnit: "ms", RelativeScale: 1000,
				Denominators: []int{10, 100, 1000},
				Units: []unitz.Alias{either("s"), singular("second"), plural("seconds"), singular("sec"), plural("secs")},
			},
			{
				System: unitz.Any, Common: true, Unit: "min", RelativeUnit: "s", RelativeScale: 60,
				Denominators: []int{2, 3, 4, 60},
				Units: []unitz.Alias{either("min"), singular("minute"), plural("minutes"), plural("mins")},
			},
			{
				System: unitz.Any, Common: true, Unit: "hr", RelativeUnit: "min", RelativeScale: 60,
				Denominators: []int{2, 3, 4, 60},
				Units: []unitz.Alias{either("hr"), singular("hour"), plural("hours"), plural("hrs")},
			},
			{
				System: unitz.Any, Common: true, Unit: "day", RelativeUnit: "hr", RelativeScale: 24,
				Denominators: []int{2, 3, 4, 6, 24},
				Units: []unitz.Alias{either("day"), plural("days")},
			},
			{
				System: unitz.Any, Common: true, Unit: "wk", RelativeUnit: "day", RelativeScale: 7,
				Denominators: []int{7},
				Units: []unitz.Alias{either("wk"), singular("week"), plural("weeks"), plural("wks")},
			},
			{
				System: unitz.Any, Common: true, Unit: "yr", RelativeUnit: "day", RelativeScale: 365.2425,
				Denominators: []int{2, 3, 4, 6, 12, 52},
				Units: []unitz.Alias{either("yr"), singular("year"), plural("years"), plural("yrs")},
			},
			{
				System: unitz.Any, Common: true, Unit: "score", RelativeUnit: "yr", RelativeScale: 20,
				Denominators: []int{20},
				Units: []unitz.Alias{either("score")},
			},
			{
				System: unitz.Any, Unit: "biennium", RelativeUnit: "yr", RelativeScale: 2,
				Units: []unitz.Alias{either("biennium"), plural("bienniums")},
			},
			{
				System: unitz.Any, Unit: "triennium", RelativeUnit: "yr", RelativeScale: 3,
				Units: []unitz.Alias{either("triennium"), plural("trienniums")},
			},
			{
				System: unitz.Any, Unit: "quadrennium", RelativeUnit: "yr", RelativeScale: 4,
				Units: []unitz.Alias{either("quadrennium"), plural("quadrenniums")},
			},
			{
				System: unitz.Any, Unit: "lustrum", RelativeUnit: "yr", RelativeScale: 5,
				Units: []unitz.Alias{either("lustrum"), plural("lustrums")},
			},
			{
				System: unitz.Any, Common: true, Unit: "decade", RelativeUnit: "yr", RelativeScale: 10,
				Denominators: []int{2, 10},
				Units: []unitz.Alias{either("decade"), plural("decades")},
			},
			{
				System: unitz.Any, Common: true, Unit: "century", RelativeUnit: "yr", RelativeScale: 100,
				Denominators: []int{2, 10},
				Units: []unitz.Alias{either("century"), plural("centurys"), plural("centuries")},
			},
			{
				System: unitz.Any, Common: true, Unit: "millennium", RelativeUnit: "yr", RelativeScale: 1000,
				Denominators: []int{2, 3, 4},
				Units: []unitz.Alias{either("millennium"), plural("millenniums"), plural("millennia"), plural("millennias")},
			},
		}...).
		MustBuild()
}

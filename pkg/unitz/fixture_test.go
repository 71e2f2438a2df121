package unitz

func alias(name string, p Plurality) Alias { return Alias{Name: name, Plurality: p} }

// testWeight is a small weight class: mg, g, kg and oz, lb with a bridge.
func testWeight() *Class {
	return NewClass("Weight").
		Converter("mg", "oz", Scale(0.000035274)).
		Converter("oz", "mg", Scale(28349.5)).
		Group(
			GroupDef{System: Metric, Common: true, Unit: "mg", BaseUnit: "mg", Denominators: []int{2, 10},
				Units: []Alias{alias("mg", Either), alias("milligram", Singular), alias("milligrams", Plural)}},
			GroupDef{System: Metric, Common: true, Unit: "g", RelativeUnit: "mg", RelativeScale: 1000, Denominators: []int{2, 10, 1000},
				Units: []Alias{alias("g", Either), alias("gram", Singular), alias("grams", Plural)}},
			GroupDef{System: Metric, Common: true, Unit: "kg", RelativeUnit: "g", RelativeScale: 1000, Denominators: []int{2, 10, 1000},
				Units: []Alias{alias("kg", Either), alias("kilogram", Singular), alias("kilograms", Plural)}},
			GroupDef{System: Imperial, Common: true, Unit: "oz", BaseUnit: "oz", Denominators: []int{2, 3, 4, 16},
				Units: []Alias{alias("oz", Either), alias("ounce", Singular), alias("ounces", Plural)}},
			GroupDef{System: Imperial, Common: true, Unit: "lb", RelativeUnit: "oz", RelativeScale: 16, Denominators: []int{2, 3, 4, 16},
				Units: []Alias{alias("lb", Either), alias("lbs", Plural), alias("pound", Singular), alias("pounds", Plural)}},
		).
		MustBuild()
}

// testTemperature has no converters, so crossing base units fails.
func testTemperature() *Class {
	return NewClass("Temperature").
		Group(
			GroupDef{System: Imperial, Common: true, Unit: "F", BaseUnit: "F", Units: []Alias{alias("F", Either)}},
			GroupDef{System: Metric, Common: true, Unit: "C", BaseUnit: "C", Units: []Alias{alias("C", Either)}},
		).
		MustBuild()
}

func testRegistry() *Registry {
	r := NewRegistry()
	r.AddClasses(testWeight(), testTemperature())
	return r
}

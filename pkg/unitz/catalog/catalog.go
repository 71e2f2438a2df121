// Package catalog loads unit classes from YAML files.
//
// A catalog lists classes, each with optional converters between base
// units and a list of groups:
//
//	classes:
//	  - name: Currency
//	    conversions:
//	      - {from: usd, to: eur, scale: 0.92}
//	    groups:
//	      - system: any
//	        common: true
//	        unit: usd
//	        base_unit: usd
//	        denominators: [100]
//	        units: {usd: either, dollar: singular, dollars: plural}
//
// Converters compute (x + offset_in) * scale + offset_out. The order of
// the units mapping is kept, so the first alias is the group's default
// spelling.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sambeau/unitz/pkg/unitz"
)

// File is the top level of a catalog document.
type File struct {
	Classes []ClassDef `yaml:"classes"`
}

// ClassDef describes one class.
type ClassDef struct {
	Name        string          `yaml:"name"`
	Conversions []ConversionDef `yaml:"conversions"`
	Groups      []GroupDef      `yaml:"groups"`
}

// ConversionDef is an affine converter between two base units.
type ConversionDef struct {
	From      string  `yaml:"from"`
	To        string  `yaml:"to"`
	Scale     float64 `yaml:"scale"`
	OffsetIn  float64 `yaml:"offset_in"`
	OffsetOut float64 `yaml:"offset_out"`
}

// GroupDef describes one group. System defaults to any.
type GroupDef struct {
	System        *unitz.System `yaml:"system"`
	Common        bool          `yaml:"common"`
	Unit          string        `yaml:"unit"`
	BaseUnit      string        `yaml:"base_unit"`
	Preferred     string        `yaml:"preferred"`
	RelativeUnit  string        `yaml:"relative_unit"`
	RelativeScale float64       `yaml:"relative_scale"`
	Denominators  []int         `yaml:"denominators"`
	Units         Aliases       `yaml:"units"`
}

// Aliases decodes either an ordered mapping of alias to plurality or a
// plain list of aliases usable for any quantity.
type Aliases []unitz.Alias

func (a *Aliases) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(Aliases, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			name, val := node.Content[i], node.Content[i+1]
			p := unitz.Either
			if val.Value != "" {
				var err error
				if p, err = unitz.ParsePlurality(val.Value); err != nil {
					return fmt.Errorf("line %d: %w", val.Line, err)
				}
			}
			out = append(out, unitz.Alias{Name: name.Value, Plurality: p})
		}
		*a = out
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		out := make(Aliases, len(names))
		for i, n := range names {
			out[i] = unitz.Alias{Name: n, Plurality: unitz.Either}
		}
		*a = out
	default:
		return fmt.Errorf("line %d: units must be a mapping or a list", node.Line)
	}
	return nil
}

var (
	ErrNoScale = errors.New("conversion scale must be non-zero")
	ErrNoName  = errors.New("class name is required")
)

// Parse decodes a catalog document and builds its classes.
func Parse(data []byte) ([]*unitz.Class, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return f.Build()
}

// Load reads and builds the classes in the catalog at path.
func Load(path string) ([]*unitz.Class, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	classes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return classes, nil
}

// LoadInto loads each catalog in order and registers its classes. Nothing
// is registered unless every catalog loads.
func LoadInto(reg *unitz.Registry, paths ...string) error {
	var all []*unitz.Class
	for _, p := range paths {
		classes, err := Load(p)
		if err != nil {
			return err
		}
		all = append(all, classes...)
	}
	reg.AddClasses(all...)
	return nil
}

// Build converts the definitions into classes.
func (f *File) Build() ([]*unitz.Class, error) {
	out := make([]*unitz.Class, 0, len(f.Classes))
	for i, cd := range f.Classes {
		c, err := cd.Build()
		if err != nil {
			return nil, fmt.Errorf("classes[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (cd *ClassDef) Build() (*unitz.Class, error) {
	if cd.Name == "" {
		return nil, ErrNoName
	}
	b := unitz.NewClass(cd.Name)
	for i, conv := range cd.Conversions {
		if conv.Scale == 0 {
			return nil, fmt.Errorf("%s: conversions[%d]: %w", cd.Name, i, ErrNoScale)
		}
		b.Converter(conv.From, conv.To, unitz.Affine(conv.Scale, conv.OffsetIn, conv.OffsetOut))
	}
	for i, gd := range cd.Groups {
		if gd.Unit == "" {
			return nil, fmt.Errorf("%s: groups[%d]: %w", cd.Name, i, unitz.ErrMissingUnit)
		}
		b.Group(gd.def())
	}
	return b.Build()
}

func (gd *GroupDef) def() unitz.GroupDef {
	system := unitz.Any
	if gd.System != nil {
		system = *gd.System
	}
	units := []unitz.Alias(gd.Units)
	if len(units) == 0 {
		units = []unitz.Alias{{Name: gd.Unit, Plurality: unitz.Either}}
	}
	return unitz.GroupDef{
		System:        system,
		Common:        gd.Common,
		Unit:          gd.Unit,
		BaseUnit:      gd.BaseUnit,
		PreferredUnit: gd.Preferred,
		RelativeUnit:  gd.RelativeUnit,
		RelativeScale: gd.RelativeScale,
		Denominators:  gd.Denominators,
		Units:         units,
	}
}

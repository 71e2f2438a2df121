// Package classes holds the built-in unit classes: weight, area, time,
// digital storage, temperature, angle, volume, length and speed.
package classes

import "github.com/sambeau/unitz/pkg/unitz"

func either(name string) unitz.Alias   { return unitz.Alias{Name: name, Plurality: unitz.Either} }
func singular(name string) unitz.Alias { return unitz.Alias{Name: name, Plurality: unitz.Singular} }
func plural(name string) unitz.Alias   { return unitz.Alias{Name: name, Plurality: unitz.Plural} }

// All builds a fresh copy of every built-in class in registration order.
// Later classes win alias collisions.
func All() []*unitz.Class {
	return []*unitz.Class{
		Weight(),
		Area(),
		Time(),
		Digital(),
		Temperature(),
		Angle(),
		Volume(),
		Length(),
		Speed(),
	}
}

// Names lists the built-in class names in registration order.
func Names() []string {
	out := make([]string, 0, 9)
	for _, c := range All() {
		out = append(out, c.Name())
	}
	return out
}

// AddDefaults registers every built-in class with reg.
func AddDefaults(reg *unitz.Registry) *unitz.Registry {
	reg.AddClasses(All()...)
	return reg
}

// NewRegistry returns a registry holding the built-in classes.
func NewRegistry() *unitz.Registry {
	return AddDefaults(unitz.NewRegistry())
}

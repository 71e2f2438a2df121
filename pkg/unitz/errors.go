package unitz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned when a unit cannot be resolved to a group.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrNoConverter is returned by strict conversions between base units
	// that have no registered converter.
	ErrNoConverter = errors.New("no converter between base units")
	// ErrInvalidInput is returned when text does not parse into any valid range.
	ErrInvalidInput = errors.New("invalid input")

	ErrMissingName     = errors.New("class name is empty")
	ErrMissingUnit     = errors.New("group unit is empty")
	ErrMissingBase     = errors.New("group has neither a base unit nor a relative unit")
	ErrUnknownRelative = errors.New("relative unit is not defined earlier in the class")
	ErrDuplicateUnit   = errors.New("unit is defined more than once")
	ErrUnknownBase     = errors.New("converter references an unknown base unit")
	ErrBadDenominator  = errors.New("denominators must be positive")
)

// DefinitionError reports a problem found while building a Class.
type DefinitionError struct {
	Class string
	Unit  string
	Err   error
}

func (e *DefinitionError) Error() string {
	if e.Unit == "" {
		return fmt.Sprintf("class %q: %v", e.Class, e.Err)
	}
	return fmt.Sprintf("class %q, unit %q: %v", e.Class, e.Unit, e.Err)
}

func (e *DefinitionError) Unwrap() error { return e.Err }

package fxdi

import (
	"reflect"

	"github.com/cerocss/fxdi/internal/reflection"
)

// descriptor collects everything provided for one type.
type descriptor struct {
	// Type is the type the constructors produce.
	Type reflect.Type

	// Constructors in registration order.
	Constructors []*reflection.Constructor

	// Injectable marks the type as singleton-eligible.
	Injectable bool
}

// selectConstructor picks the single constructor to use for d.
// One constructor is used as is; among several, exactly one must be
// designated. The decision is recomputed on every call.
func (d *descriptor) selectConstructor() (*reflection.Constructor, error) {
	if len(d.Constructors) == 0 {
		return nil, NotConstructibleError{Type: d.Type}
	}

	if len(d.Constructors) == 1 {
		return d.Constructors[0], nil
	}

	var designated []*reflection.Constructor
	for _, c := range d.Constructors {
		if c.Designated {
			designated = append(designated, c)
		}
	}

	if len(designated) != 1 {
		return nil, AmbiguousConstructorError{
			Type:         d.Type,
			Constructors: len(d.Constructors),
			Designated:   len(designated),
		}
	}

	return designated[0], nil
}

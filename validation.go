package fxdi

import (
	"errors"
	"io"
	"reflect"
	"sort"

	"github.com/cerocss/fxdi/internal/graph"
)

// Plan returns the order in which resolving t would construct types,
// leaves first and t last, without constructing anything. Each reachable
// type appears once, even when several constructors share it. Types already
// cached appear in the order but would be reused. Plan fails with the same
// error Resolve would raise before its first constructor call.
func (c *Container) Plan(t reflect.Type) ([]reflect.Type, error) {
	plan, err := c.plan(t)
	if err != nil {
		return nil, err
	}
	return plan.Steps(), nil
}

// WritePlan writes the construction plan for t as text, or as Graphviz DOT
// when dot is true.
func (c *Container) WritePlan(w io.Writer, t reflect.Type, dot bool) error {
	plan, err := c.plan(t)
	if err != nil {
		return err
	}

	v := graph.NewVisualizer(plan)
	if dot {
		return v.WriteDOT(w)
	}
	return v.WriteText(w)
}

// Validate plans every provided type and reports all failures joined.
// Use it at setup time to reject ambiguous constructors, missing
// registrations and cycles before the first Resolve.
func (c *Container) Validate() error {
	types := make([]reflect.Type, 0, len(c.descriptors))
	for t := range c.descriptors {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return formatType(types[i]) < formatType(types[j])
	})

	var errs []error
	for _, t := range types {
		if _, err := c.plan(t); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		c.logger.Warn("validation failed", "errors", len(errs))
	}

	return errors.Join(errs...)
}

func (c *Container) plan(t reflect.Type) (*graph.Plan, error) {
	if t == nil {
		return nil, ErrNilType
	}
	return graph.Build(graphSource{c: c}, t)
}

// Package graph computes the construction order for a requested type.
package graph

import (
	"fmt"
	"reflect"
	"slices"
)

// Source is the container state the planner consults.
type Source interface {
	// Cached reports whether an instance already exists for t.
	Cached(t reflect.Type) bool

	// Injectable reports whether t may appear as a constructor parameter.
	Injectable(t reflect.Type) bool

	// Parameters returns the parameter types of t's selected constructor.
	Parameters(t reflect.Type) ([]reflect.Type, error)
}

// Edge links a type to one of its constructor parameters.
type Edge struct {
	From reflect.Type
	To   reflect.Type
}

// Plan is the result of a graph build for one requested type.
type Plan struct {
	// Root is the requested type.
	Root reflect.Type

	// Edges lists every parameter relation visited, in discovery order.
	Edges []Edge

	// order is the construction order in post-order: a type is appended
	// once all its parameters are.
	order []reflect.Type

	// done holds the types already in order. Their subtrees finished
	// without error and are not walked again.
	done map[reflect.Type]bool
}

// Steps returns the construction order, leaves first and root last.
// Each type appears exactly once, shared ones included.
func (p *Plan) Steps() []reflect.Type {
	return slices.Clone(p.order)
}

// Path is an ordered set of the ancestors on one branch of the walk.
// It is a value: With returns a new Path and leaves the receiver intact.
type Path struct {
	nodes []reflect.Type
}

// With returns a copy of p extended by t.
func (p Path) With(t reflect.Type) Path {
	nodes := make([]reflect.Type, len(p.nodes), len(p.nodes)+1)
	copy(nodes, p.nodes)
	return Path{nodes: append(nodes, t)}
}

// Contains reports whether t is already on the path.
func (p Path) Contains(t reflect.Type) bool {
	return slices.Contains(p.nodes, t)
}

// Len returns the number of ancestors.
func (p Path) Len() int {
	return len(p.nodes)
}

// Last returns the innermost ancestor, or nil for an empty path.
func (p Path) Last() reflect.Type {
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[len(p.nodes)-1]
}

// Types returns a copy of the ancestors, outermost first.
func (p Path) Types() []reflect.Type {
	return slices.Clone(p.nodes)
}

// Build walks the constructor-parameter graph of root depth-first and
// returns the plan. Nothing is constructed. The first failure aborts the walk.
func Build(src Source, root reflect.Type) (*Plan, error) {
	if src == nil {
		return nil, fmt.Errorf("source cannot be nil")
	}
	if root == nil {
		return nil, fmt.Errorf("root type cannot be nil")
	}

	plan := &Plan{
		Root: root,
		done: make(map[reflect.Type]bool),
	}

	if err := plan.visit(src, root, Path{}); err != nil {
		return nil, err
	}

	return plan, nil
}

func (p *Plan) visit(src Source, t reflect.Type, ancestors Path) error {
	if p.done[t] {
		return nil
	}

	// Cached types are listed so the executor reuses them, but never expanded
	if src.Cached(t) {
		p.finish(t)
		return nil
	}

	if ancestors.Contains(t) {
		return CircularDependencyError{
			Type: t,
			Path: ancestors.Types(),
		}
	}

	// The requested type itself is exempt
	if ancestors.Len() > 0 && !src.Injectable(t) {
		return NotInjectableError{
			Type:      t,
			Dependent: ancestors.Last(),
		}
	}

	params, err := src.Parameters(t)
	if err != nil {
		return err
	}

	for _, param := range params {
		p.Edges = append(p.Edges, Edge{From: t, To: param})
	}

	next := ancestors.With(t)
	for _, param := range params {
		if err := p.visit(src, param, next); err != nil {
			return err
		}
	}

	p.finish(t)
	return nil
}

func (p *Plan) finish(t reflect.Type) {
	p.done[t] = true
	p.order = append(p.order, t)
}

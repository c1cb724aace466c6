package fxdi

import (
	"context"
	"reflect"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cerocss/fxdi/internal/graph"
	"github.com/cerocss/fxdi/internal/reflection"
)

// Resolve returns a fully wired instance of t.
//
// Every dependency constructed on the way is cached and shared by later
// resolutions. The instance of t itself is not cached, so resolving a type
// that nothing depends on yields a new instance per call unless it was
// registered manually or cached as a dependency before.
//
// The dependency graph is checked completely before anything is constructed.
// A failing constructor aborts the resolution; dependencies built before it
// stay cached.
func (c *Container) Resolve(t reflect.Type) (any, error) {
	return c.ResolveContext(context.Background(), t)
}

// ResolveContext is Resolve with a parent context for the resolution span.
// The context is not used for cancellation.
func (c *Container) ResolveContext(ctx context.Context, t reflect.Type) (any, error) {
	if t == nil {
		return nil, ErrNilType
	}

	_, span := c.tracer.Start(ctx, "fxdi.Resolve", trace.WithAttributes(
		attribute.String("fxdi.type", formatType(t)),
		attribute.String("fxdi.container.id", c.id),
	))
	defer span.End()

	start := time.Now()
	instance, constructed, err := c.resolve(t)
	span.SetAttributes(attribute.Int("fxdi.constructed", constructed))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("resolution failed",
			"type", formatType(t),
			"error", err)
		return nil, err
	}

	c.logger.Debug("resolved",
		"type", formatType(t),
		"constructed", constructed,
		"duration", time.Since(start))

	return instance, nil
}

// resolve plans t, then executes the plan leaves first.
// It returns the instance and the number of constructor calls made.
func (c *Container) resolve(root reflect.Type) (any, int, error) {
	plan, err := graph.Build(graphSource{c: c}, root)
	if err != nil {
		return nil, 0, err
	}

	var (
		instance    any
		constructed int
	)

	for _, t := range plan.Steps() {
		current, ok := c.registry.Get(t)
		if !ok {
			current, err = c.construct(t)
			if err != nil {
				return nil, constructed, err
			}
			constructed++
		}

		if t != root {
			c.registry.Put(t, current)
		}
		instance = current
	}

	return instance, constructed, nil
}

// construct invokes the selected constructor of t with parameters taken
// from the registry.
func (c *Container) construct(t reflect.Type) (any, error) {
	ctor, err := c.selectConstructor(t)
	if err != nil {
		return nil, err
	}

	args := make([]reflect.Value, len(ctor.Params))
	for i, param := range ctor.Params {
		stored, _ := c.registry.Get(param)

		arg, ok := reflection.Argument(param, stored)
		if !ok {
			return nil, ConstructionError{
				Type:        t,
				Constructor: ctor.Type,
				Cause: TypeMismatchError{
					Expected: param,
					Actual:   reflect.TypeOf(stored),
					Context:  "parameter",
				},
			}
		}
		args[i] = arg
	}

	instance, err := ctor.Call(args)
	if err != nil {
		return nil, ConstructionError{
			Type:        t,
			Constructor: ctor.Type,
			Cause:       err,
		}
	}

	c.logger.Debug("constructed", "type", formatType(t))
	return instance, nil
}

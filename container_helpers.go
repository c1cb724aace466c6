package fxdi

import (
	"context"
	"fmt"
	"reflect"
)

// Resolve is a generic helper function that resolves T from c.
// It fails with TypeMismatchError when the instance stored for T is not a T,
// which can only happen after RegisterType with an unrelated instance.
func Resolve[T any](c *Container) (T, error) {
	return ResolveContext[T](context.Background(), c)
}

// ResolveContext is Resolve with a parent context for the resolution span.
func ResolveContext[T any](ctx context.Context, c *Container) (T, error) {
	var zero T

	instance, err := c.ResolveContext(ctx, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	if instance == nil {
		return zero, nil
	}

	result, ok := instance.(T)
	if !ok {
		return zero, TypeMismatchError{
			Expected: reflect.TypeFor[T](),
			Actual:   reflect.TypeOf(instance),
			Context:  "type assertion",
		}
	}

	return result, nil
}

// MustResolve resolves T and panics on error.
func MustResolve[T any](c *Container) T {
	result, err := Resolve[T](c)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", formatType(reflect.TypeFor[T]()), err))
	}
	return result
}

// RegisterAs stores instance under the static type T. Use it to register a
// concrete value as an interface it implements.
func RegisterAs[T any](c *Container, instance T) {
	c.RegisterType(reflect.TypeFor[T](), instance)
}

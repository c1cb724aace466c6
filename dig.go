package fxdi

import (
	"fmt"
	"reflect"

	"go.uber.org/dig"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ImportFromDig seeds c from an existing dig container. Each type is
// invoked from dc and the result is registered manually under that type, so
// it satisfies constructor parameters without being injectable.
func ImportFromDig(c *Container, dc *dig.Container, types ...reflect.Type) error {
	if dc == nil {
		return RegistrationError{Operation: "import", Cause: fmt.Errorf("dig container cannot be nil")}
	}

	for _, t := range types {
		if t == nil {
			return RegistrationError{Operation: "import", Cause: ErrNilType}
		}

		var got reflect.Value
		fn := reflect.MakeFunc(
			reflect.FuncOf([]reflect.Type{t}, nil, false),
			func(args []reflect.Value) []reflect.Value {
				got = args[0]
				return nil
			},
		)

		if err := dc.Invoke(fn.Interface()); err != nil {
			return RegistrationError{
				Type:      t,
				Operation: "import",
				Cause:     err,
			}
		}

		c.RegisterType(t, got.Interface())
	}

	return nil
}

// ExportToDig provides each type to dc through a constructor that resolves
// it from c. dig caches the result, so c is asked at most once per type.
func ExportToDig(c *Container, dc *dig.Container, types ...reflect.Type) error {
	if dc == nil {
		return RegistrationError{Operation: "export", Cause: fmt.Errorf("dig container cannot be nil")}
	}

	for _, t := range types {
		if t == nil {
			return RegistrationError{Operation: "export", Cause: ErrNilType}
		}

		fn := reflect.MakeFunc(
			reflect.FuncOf(nil, []reflect.Type{t, errorType}, false),
			exportFunc(c, t),
		)

		if err := dc.Provide(fn.Interface()); err != nil {
			return RegistrationError{
				Type:      t,
				Operation: "export",
				Cause:     err,
			}
		}
	}

	return nil
}

// exportFunc builds the body of a dig constructor for t.
// MakeFunc requires results of exactly the declared types.
func exportFunc(c *Container, t reflect.Type) func([]reflect.Value) []reflect.Value {
	return func([]reflect.Value) []reflect.Value {
		out := reflect.New(t).Elem()
		errOut := reflect.New(errorType).Elem()

		instance, err := c.Resolve(t)
		if err == nil && instance != nil {
			v := reflect.ValueOf(instance)
			if v.Type().AssignableTo(t) {
				out.Set(v)
			} else {
				err = TypeMismatchError{
					Expected: t,
					Actual:   v.Type(),
					Context:  "dig export",
				}
			}
		}

		if err != nil {
			errOut.Set(reflect.ValueOf(err))
		}

		return []reflect.Value{out, errOut}
	}
}

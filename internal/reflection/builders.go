package reflection

import (
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"
)

// PanicError indicates a constructor panicked during invocation.
// It captures the panic value and stack trace for debugging.
type PanicError struct {
	Constructor reflect.Type
	Panic       any
	Stack       []byte
}

func (e PanicError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("constructor %s panicked: %v", e.Constructor, e.Panic))

	if len(e.Stack) > 0 {
		b.WriteString("\n\nStack trace:\n")
		b.Write(e.Stack)
	}

	return b.String()
}

// Call invokes the constructor with args and returns the produced value.
// A panic is recovered into PanicError; an error result is returned as is.
func (c *Constructor) Call(args []reflect.Value) (instance any, err error) {
	defer func() {
		if r := recover(); r != nil {
			instance = nil
			err = PanicError{
				Constructor: c.Type,
				Panic:       r,
				Stack:       debug.Stack(),
			}
		}
	}()

	results := c.Func.Call(args)

	if c.HasError {
		if errVal := results[len(results)-1]; !errVal.IsNil() {
			return nil, errVal.Interface().(error)
		}
	}

	return results[0].Interface(), nil
}

// Argument converts a stored instance into a value usable as parameter t.
// A nil instance becomes the zero value of t.
func Argument(t reflect.Type, instance any) (reflect.Value, bool) {
	if instance == nil {
		return reflect.Zero(t), true
	}

	v := reflect.ValueOf(instance)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}

	return v, true
}

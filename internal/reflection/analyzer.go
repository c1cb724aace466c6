// Package reflection analyzes and invokes constructor functions.
package reflection

import (
	"errors"
	"reflect"
	"strings"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Constructor shape errors.
var (
	ErrConstructorNil = errors.New("constructor cannot be nil")
	ErrNotFunction    = errors.New("constructor must be a function")
	ErrVariadic       = errors.New("constructor cannot be variadic")
	ErrBadReturns     = errors.New("constructor must return T or (T, error)")
)

// Constructor is an analyzed constructor function.
type Constructor struct {
	// Func is the reflected function value.
	Func reflect.Value

	// Type is the function's own type.
	Type reflect.Type

	// Out is the type the constructor produces.
	Out reflect.Type

	// Params are the parameter types in declaration order.
	Params []reflect.Type

	// HasError reports whether the last result is an error.
	HasError bool

	// Designated marks the constructor to use when a type has several.
	Designated bool
}

// Analyze validates fn and extracts its parameter and result types.
func Analyze(fn any) (*Constructor, error) {
	if fn == nil {
		return nil, ErrConstructorNil
	}

	val := reflect.ValueOf(fn)
	typ := val.Type()

	if typ.Kind() != reflect.Func {
		return nil, ErrNotFunction
	}

	// Typed nil function
	if val.IsNil() {
		return nil, ErrConstructorNil
	}

	if typ.IsVariadic() {
		return nil, ErrVariadic
	}

	c := &Constructor{
		Func:   val,
		Type:   typ,
		Params: make([]reflect.Type, typ.NumIn()),
	}

	for i := range typ.NumIn() {
		c.Params[i] = typ.In(i)
	}

	switch typ.NumOut() {
	case 1:
		if typ.Out(0) == errType {
			return nil, ErrBadReturns
		}
	case 2:
		if typ.Out(0) == errType || typ.Out(1) != errType {
			return nil, ErrBadReturns
		}
		c.HasError = true
	default:
		return nil, ErrBadReturns
	}

	c.Out = typ.Out(0)
	return c, nil
}

// TypeName returns the full identifier of t, including its package path.
// Unnamed composite types are spelled out recursively.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}
		return t.PkgPath() + "." + t.Name()
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	default:
		return t.String()
	}
}

// TypeNames formats a list of types as "[A, B]".
func TypeNames(types []reflect.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = TypeName(t)
	}
	return "[" + strings.Join(names, ", ") + "]"
}

package fxdi

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cerocss/fxdi/internal/graph"
	"github.com/cerocss/fxdi/internal/reflection"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================
// Match these with errors.Is; the typed errors below carry the details.

var (
	// Resolution errors.
	ErrNotConstructible     = errors.New("type is not constructible")
	ErrAmbiguousConstructor = errors.New("ambiguous constructor")
	ErrNotInjectable        = graph.ErrNotInjectable
	ErrCircularDependency   = graph.ErrCircularDependency
	ErrConstructionFailed   = errors.New("construction failed")

	// Registration errors.
	ErrNilInstance    = errors.New("instance cannot be nil")
	ErrNilType        = errors.New("type cannot be nil")
	ErrConstructorNil = reflection.ErrConstructorNil
	ErrNotFunction    = reflection.ErrNotFunction
	ErrVariadic       = reflection.ErrVariadic
	ErrBadReturns     = reflection.ErrBadReturns

	// Session errors.
	ErrSessionNotInContext = errors.New("no session in context")
)

var (
	_ error = NotConstructibleError{}
	_ error = AmbiguousConstructorError{}
	_ error = NotInjectableError{}
	_ error = CircularDependencyError{}
	_ error = ConstructionError{}
	_ error = PanicError{}
	_ error = RegistrationError{}
	_ error = ModuleError{}
	_ error = TypeMismatchError{}
)

// Type aliases for graph package types, so callers need a single import.
type (
	CircularDependencyError = graph.CircularDependencyError
	NotInjectableError      = graph.NotInjectableError
	PanicError              = reflection.PanicError
)

// NotConstructibleError indicates a type without any registered constructor.
type NotConstructibleError struct {
	Type reflect.Type
}

func (e NotConstructibleError) Error() string {
	return fmt.Sprintf("%s has no registered constructors. It cannot be instantiated.", formatType(e.Type))
}

func (e NotConstructibleError) Is(target error) bool {
	return target == ErrNotConstructible
}

// AmbiguousConstructorError indicates a type with several constructors
// where not exactly one is designated with InjectionConstructor.
type AmbiguousConstructorError struct {
	Type         reflect.Type
	Constructors int
	Designated   int
}

func (e AmbiguousConstructorError) Error() string {
	if e.Designated == 0 {
		return fmt.Sprintf("%s has %d constructors. Designate a single one with InjectionConstructor().",
			formatType(e.Type), e.Constructors)
	}
	return fmt.Sprintf("%s has %d constructors designated with InjectionConstructor(). There should be only a single one.",
		formatType(e.Type), e.Designated)
}

func (e AmbiguousConstructorError) Is(target error) bool {
	return target == ErrAmbiguousConstructor
}

// ConstructionError wraps a failure raised by the selected constructor itself.
type ConstructionError struct {
	Type        reflect.Type
	Constructor reflect.Type
	Cause       error
}

func (e ConstructionError) Error() string {
	return fmt.Sprintf("%s cannot be instantiated: %v", formatType(e.Type), e.Cause)
}

func (e ConstructionError) Unwrap() error {
	return e.Cause
}

func (e ConstructionError) Is(target error) bool {
	return target == ErrConstructionFailed
}

// RegistrationError wraps errors during registration.
type RegistrationError struct {
	Type      reflect.Type
	Operation string // "provide", "register", "import", "export"
	Cause     error
}

func (e RegistrationError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("failed to %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, formatType(e.Type), e.Cause)
}

func (e RegistrationError) Unwrap() error {
	return e.Cause
}

// ModuleError wraps errors from module installation.
type ModuleError struct {
	Module string
	Cause  error
}

func (e ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v", e.Module, e.Cause)
}

func (e ModuleError) Unwrap() error {
	return e.Cause
}

// TypeMismatchError indicates a stored instance that cannot be used as the
// type it was requested as.
type TypeMismatchError struct {
	Expected reflect.Type
	Actual   reflect.Type
	Context  string // "parameter", "type assertion"
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Context, formatType(e.Expected), formatType(e.Actual))
}

// IsNotConstructible reports whether err is or wraps a NotConstructibleError.
func IsNotConstructible(err error) bool {
	return errors.Is(err, ErrNotConstructible)
}

// IsAmbiguousConstructor reports whether err is or wraps an AmbiguousConstructorError.
func IsAmbiguousConstructor(err error) bool {
	return errors.Is(err, ErrAmbiguousConstructor)
}

// IsNotInjectable reports whether err is or wraps a NotInjectableError.
func IsNotInjectable(err error) bool {
	return errors.Is(err, ErrNotInjectable)
}

// IsCircularDependency reports whether err is or wraps a CircularDependencyError.
func IsCircularDependency(err error) bool {
	return errors.Is(err, ErrCircularDependency)
}

// IsConstructionFailure reports whether err is or wraps a ConstructionError.
func IsConstructionFailure(err error) bool {
	return errors.Is(err, ErrConstructionFailed)
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	return reflection.TypeName(t)
}

package graph

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/cerocss/fxdi/internal/reflection"
)

var (
	ErrCircularDependency = errors.New("circular dependency detected")
	ErrNotInjectable      = errors.New("type is not injectable")
)

// CircularDependencyError represents a type reachable from itself along
// the current resolution path.
type CircularDependencyError struct {
	// Type is the repeated type.
	Type reflect.Type

	// Path holds the ancestors visited on this branch, outermost first.
	Path []reflect.Type
}

func (e CircularDependencyError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s has circular dependencies. Visited types: %s already contains: %s.\n\n",
		reflection.TypeName(e.Type), reflection.TypeNames(e.Path), reflection.TypeName(e.Type)))

	// Start the chain at the first occurrence of the repeated type
	start := 0
	for i, t := range e.Path {
		if t == e.Type {
			start = i
			break
		}
	}

	for _, t := range e.Path[start:] {
		b.WriteString(fmt.Sprintf("    %s\n", reflection.TypeName(t)))
		b.WriteString("      ↓\n")
	}
	b.WriteString(fmt.Sprintf("    %s (cycle)\n", reflection.TypeName(e.Type)))

	b.WriteString("\nTo resolve this:\n")
	b.WriteString("  • Use an interface to break the dependency\n")
	b.WriteString("  • Register one of the types manually before resolving\n")
	b.WriteString("  • Restructure to remove the circular relationship\n")

	return b.String()
}

func (e CircularDependencyError) Is(target error) bool {
	return target == ErrCircularDependency
}

// NotInjectableError indicates a constructor parameter whose type was
// neither marked injectable nor registered manually.
type NotInjectableError struct {
	// Type is the offending parameter type.
	Type reflect.Type

	// Dependent is the type whose constructor declares the parameter.
	Dependent reflect.Type
}

func (e NotInjectableError) Error() string {
	return fmt.Sprintf("%s is not marked as injectable. Constructors of injected types that are not manually registered "+
		"are only allowed to contain injectable types (required by %s).",
		reflection.TypeName(e.Type), reflection.TypeName(e.Dependent))
}

func (e NotInjectableError) Is(target error) bool {
	return target == ErrNotInjectable
}

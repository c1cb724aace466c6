// Package registry holds the singleton instances of a container.
package registry

import (
	"reflect"
	"sort"
)

// Registry maps a type identifier to the one instance stored for it.
//
// Registry is NOT thread-safe. It belongs to a single container and is
// driven from one goroutine at a time.
type Registry struct {
	instances map[reflect.Type]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		instances: make(map[reflect.Type]any),
	}
}

// Get returns the instance stored under t.
// The boolean reports whether an entry exists; a stored nil is a valid entry.
func (r *Registry) Get(t reflect.Type) (any, bool) {
	instance, ok := r.instances[t]
	return instance, ok
}

// Has reports whether an entry exists for t.
func (r *Registry) Has(t reflect.Type) bool {
	_, ok := r.instances[t]
	return ok
}

// Put stores instance under t, replacing any previous entry.
func (r *Registry) Put(t reflect.Type, instance any) {
	r.instances[t] = instance
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.instances)
}

// Types returns every registered identifier sorted by its string form.
func (r *Registry) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(r.instances))
	for t := range r.instances {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i].String() < types[j].String()
	})

	return types
}

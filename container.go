package fxdi

import (
	"log/slog"
	"reflect"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/cerocss/fxdi/internal/graph"
	"github.com/cerocss/fxdi/internal/reflection"
	"github.com/cerocss/fxdi/internal/registry"
)

const tracerName = "github.com/cerocss/fxdi"

// Container constructs types from their provided constructors and keeps one
// shared instance per dependency type.
//
// Container is NOT thread-safe. Drive each container from a single goroutine,
// or synchronize calls externally. Separate containers share no state.
type Container struct {
	id          string
	registry    *registry.Registry
	descriptors map[reflect.Type]*descriptor
	logger      *slog.Logger
	tracer      trace.Tracer
}

// New creates an empty container.
func New(opts ...Option) *Container {
	options := defaultContainerOptions()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(options)
		}
	}

	id := uuid.NewString()

	return &Container{
		id:          id,
		registry:    registry.New(),
		descriptors: make(map[reflect.Type]*descriptor),
		logger:      options.logger.With("container", id),
		tracer:      options.tracerProvider.Tracer(tracerName),
	}
}

// ID returns the container's unique identifier.
func (c *Container) ID() string {
	return c.id
}

// Has reports whether an instance is cached for t, either registered
// manually or constructed as a dependency.
func (c *Container) Has(t reflect.Type) bool {
	return c.registry.Has(t)
}

// Provided reports whether at least one constructor is provided for t.
func (c *Container) Provided(t reflect.Type) bool {
	d, ok := c.descriptors[t]
	return ok && len(d.Constructors) > 0
}

// Cached returns the identifiers of every cached instance, sorted by name.
func (c *Container) Cached() []reflect.Type {
	return c.registry.Types()
}

// selectConstructor runs the selection policy for t.
func (c *Container) selectConstructor(t reflect.Type) (*reflection.Constructor, error) {
	d, ok := c.descriptors[t]
	if !ok {
		return nil, NotConstructibleError{Type: t}
	}
	return d.selectConstructor()
}

// graphSource exposes the container to the planner.
type graphSource struct {
	c *Container
}

var _ graph.Source = graphSource{}

func (s graphSource) Cached(t reflect.Type) bool {
	return s.c.registry.Has(t)
}

func (s graphSource) Injectable(t reflect.Type) bool {
	d, ok := s.c.descriptors[t]
	return ok && d.Injectable
}

func (s graphSource) Parameters(t reflect.Type) ([]reflect.Type, error) {
	ctor, err := s.c.selectConstructor(t)
	if err != nil {
		return nil, err
	}
	return ctor.Params, nil
}

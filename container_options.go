package fxdi

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Option configures a Container.
type Option interface {
	apply(*containerOptions)
}

// containerOptions holds container configuration.
type containerOptions struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
}

// optionFunc adapts a function to Option.
type optionFunc func(*containerOptions)

func (f optionFunc) apply(opts *containerOptions) {
	f(opts)
}

func defaultContainerOptions() *containerOptions {
	return &containerOptions{
		logger:         slog.New(slog.DiscardHandler),
		tracerProvider: noop.NewTracerProvider(),
	}
}

// WithLogger sets the logger used for resolution and registration records.
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(opts *containerOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithTracerProvider sets the provider of the tracer that records one span
// per resolution. The default is a no-op provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return optionFunc(func(opts *containerOptions) {
		if tp != nil {
			opts.tracerProvider = tp
		}
	})
}

// ProvideOption configures a constructor registration.
type ProvideOption interface {
	applyProvideOption(*provideOptions)
}

// provideOptions holds provide configuration.
type provideOptions struct {
	injectable bool
	designated bool
}

// provideOptionFunc adapts a function to ProvideOption.
type provideOptionFunc func(*provideOptions)

func (f provideOptionFunc) applyProvideOption(opts *provideOptions) {
	f(opts)
}

// Injectable marks the constructed type as singleton-eligible: it may then
// appear as a constructor parameter of other resolved types.
func Injectable() ProvideOption {
	return provideOptionFunc(func(opts *provideOptions) {
		opts.injectable = true
	})
}

// InjectionConstructor designates this constructor as the one to use when
// several constructors are provided for the same type.
func InjectionConstructor() ProvideOption {
	return provideOptionFunc(func(opts *provideOptions) {
		opts.designated = true
	})
}

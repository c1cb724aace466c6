// Package http provides fxdi integration for net/http.
//
// The middleware creates one fxdi.Session per request, registers the request
// in it and attaches it to the request context. Handle then resolves a
// controller from that session, so every request gets its own controller and
// its own set of dependencies. Any router built on http.Handler works.
//
// Example usage:
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /users/{id}", fxhttp.Handle(UserController.GetByID))
//
//	setup := func(s *fxdi.Session) error {
//	    return s.Container().Install(AppModule)
//	}
//	http.ListenAndServe(":8080", fxhttp.SessionMiddleware(setup)(mux))
package http

import (
	"log/slog"
	"net/http"

	"github.com/cerocss/fxdi"
)

// Config holds the configuration for the session middleware.
type Config struct {
	// ErrorHandler is called when setting up the session fails.
	// If nil, a default handler returning 500 Internal Server Error is used.
	ErrorHandler func(http.ResponseWriter, *http.Request, error)

	// Middlewares are functions that run after the session is set up.
	// They can be used to register request data, such as the current user.
	Middlewares []func(*fxdi.Session, *http.Request) error

	// ContainerOptions are passed to every session's container.
	ContainerOptions []fxdi.Option
}

// Option configures the session middleware.
type Option func(*Config)

// WithErrorHandler sets the error handler for session setup failures.
func WithErrorHandler(h func(http.ResponseWriter, *http.Request, error)) Option {
	return func(c *Config) {
		c.ErrorHandler = h
	}
}

// WithMiddleware adds a middleware function that runs after session setup.
// Multiple middlewares are executed in the order they are added.
func WithMiddleware(mw func(*fxdi.Session, *http.Request) error) Option {
	return func(c *Config) {
		c.Middlewares = append(c.Middlewares, mw)
	}
}

// WithContainerOptions sets the options of every session's container,
// e.g. a shared logger or tracer provider.
func WithContainerOptions(opts ...fxdi.Option) Option {
	return func(c *Config) {
		c.ContainerOptions = append(c.ContainerOptions, opts...)
	}
}

func defaultConfig() *Config {
	return &Config{
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
}

// SessionMiddleware creates a middleware that sets up a fresh session for
// each request. The session is attached to the request context and can be
// retrieved using fxdi.SessionFromContext. That request is registered as
// *http.Request, so injected requests carry the session too. Setup then
// provides the session's constructors.
//
// Example:
//
//	handler := fxhttp.SessionMiddleware(func(s *fxdi.Session) error {
//	    return s.Container().Provide(NewUserController)
//	})(mux)
func SessionMiddleware(setup func(*fxdi.Session) error, opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := fxdi.NewSession(cfg.ContainerOptions...)

			// The registered request must be the one carrying the session
			r = r.WithContext(fxdi.ContextWithSession(r.Context(), session))
			fxdi.RegisterAs(session.Container(), r)

			if setup != nil {
				if err := setup(session); err != nil {
					cfg.ErrorHandler(w, r, err)
					return
				}
			}

			for _, mw := range cfg.Middlewares {
				if err := mw(session, r); err != nil {
					cfg.ErrorHandler(w, r, err)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HandlerConfig holds configuration for the Handle wrapper.
type HandlerConfig struct {
	// PanicRecovery enables panic recovery in the handler.
	PanicRecovery bool

	// PanicHandler is called when a panic occurs (if PanicRecovery is true).
	PanicHandler func(http.ResponseWriter, *http.Request, any)

	// SessionErrorHandler is called when the request carries no session.
	SessionErrorHandler func(http.ResponseWriter, *http.Request, error)

	// ResolutionErrorHandler is called when controller resolution fails.
	ResolutionErrorHandler func(http.ResponseWriter, *http.Request, error)
}

// HandlerOption configures the Handle wrapper.
type HandlerOption func(*HandlerConfig)

// WithPanicRecovery enables or disables panic recovery in the handler.
func WithPanicRecovery(enabled bool) HandlerOption {
	return func(c *HandlerConfig) {
		c.PanicRecovery = enabled
	}
}

// WithPanicHandler sets the handler for panics.
func WithPanicHandler(h func(http.ResponseWriter, *http.Request, any)) HandlerOption {
	return func(c *HandlerConfig) {
		c.PanicHandler = h
	}
}

// WithSessionErrorHandler sets the error handler for requests without a session.
func WithSessionErrorHandler(h func(http.ResponseWriter, *http.Request, error)) HandlerOption {
	return func(c *HandlerConfig) {
		c.SessionErrorHandler = h
	}
}

// WithResolutionErrorHandler sets the error handler for controller resolution failures.
func WithResolutionErrorHandler(h func(http.ResponseWriter, *http.Request, error)) HandlerOption {
	return func(c *HandlerConfig) {
		c.ResolutionErrorHandler = h
	}
}

func defaultHandlerConfig() *HandlerConfig {
	return &HandlerConfig{
		PanicRecovery: false,
		PanicHandler: func(w http.ResponseWriter, r *http.Request, v any) {
			slog.Error("panic in handler", "panic", v)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		SessionErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("failed to get session from context", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
		ResolutionErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("failed to resolve controller", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		},
	}
}

// Handle wraps a controller method for type-safe resolution from the request
// session. The controller type T is resolved from the session attached to the
// request context.
//
// The method signature should be: func(T, http.ResponseWriter, *http.Request)
//
// Example:
//
//	mux.Handle("GET /users/{id}", fxhttp.Handle((*UserController).GetByID))
func Handle[T any](method func(T, http.ResponseWriter, *http.Request), opts ...HandlerOption) http.HandlerFunc {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.PanicRecovery {
			defer func() {
				if v := recover(); v != nil {
					cfg.PanicHandler(w, r, v)
				}
			}()
		}

		session, err := fxdi.SessionFromContext(r.Context())
		if err != nil {
			cfg.SessionErrorHandler(w, r, err)
			return
		}

		controller, err := fxdi.ResolveContext[T](r.Context(), session.Container())
		if err != nil {
			cfg.ResolutionErrorHandler(w, r, err)
			return
		}

		method(controller, w, r)
	}
}

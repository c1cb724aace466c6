// Package fxdi is a minimal dependency injection container.
//
// # Overview
//
// Given a requested type, the container finds every type needed to satisfy
// the parameters of its constructor, constructs them in dependency order once
// per type, caches them as singletons and returns the fully wired instance.
//
//   - Constructor injection by parameter type, in declaration order
//   - One process-wide singleton scope per container
//   - Explicit opt-in for types that may be injected as dependencies
//   - Graph checks before anything is constructed
//   - Manual registration of existing values, under any type
//
// # Basic Usage
//
// Provide constructors, mark shared dependencies as injectable and resolve:
//
//	c := fxdi.New()
//	c.Provide(NewConfig, fxdi.Injectable())
//	c.Provide(NewUserStore, fxdi.Injectable())
//	c.Provide(NewUserController)
//
//	ctrl, err := fxdi.Resolve[*UserController](c)
//
// A constructor is a function returning T or (T, error):
//
//	func NewUserStore(cfg *Config) (*UserStore, error) {
//	    return &UserStore{dsn: cfg.DSN}, nil
//	}
//
// # Injectable Types
//
// Only types provided with Injectable() may appear as constructor parameters.
// The requested type itself is exempt, so controllers and other top-level
// objects need no marker. Every injectable dependency is constructed at most
// once and shared by reference among all its consumers.
//
// The requested type's own instance is not cached: resolving the same
// top-level type twice constructs it twice, while its dependencies are reused.
//
// # Several Constructors
//
// A type may have several constructors. Exactly one of them must then be
// designated:
//
//	c.Provide(NewDefaultClient)
//	c.Provide(NewClientWithConfig, fxdi.InjectionConstructor())
//
// # Manual Registration
//
// Existing values are registered with Register (under their dynamic type),
// RegisterAs (under a static type, e.g. an interface) or RegisterType (under
// any identifier). Registered values need no constructor and no marker:
//
//	fxdi.RegisterAs[Clock](c, systemClock{})
//
// # Modules
//
// Related registrations can be grouped and installed together:
//
//	var StorageModule = fxdi.NewModule("storage",
//	    fxdi.ProvideIn(NewConfig, fxdi.Injectable()),
//	    fxdi.ProvideIn(NewUserStore, fxdi.Injectable()),
//	)
//
//	err := c.Install(StorageModule)
//
// # Sessions
//
// A Session owns one container and registers both in it, so constructors
// can depend on *Session or *Container. Frameworks that create objects from
// a type use Session.Factory as their callback. The http submodule creates
// one session per request.
//
// # Planning and Validation
//
// Plan and WritePlan show the construction order for a type without
// constructing anything. Validate plans every provided type and joins all
// failures, so misconfiguration surfaces at setup time instead of on the
// first Resolve.
//
// # Error Handling
//
// Every failure aborts the resolution and is returned as a typed error:
//   - NotConstructibleError: no constructor provided for a type
//   - AmbiguousConstructorError: several constructors, not exactly one designated
//   - NotInjectableError: a dependency type is not injectable
//   - CircularDependencyError: a type depends on itself, with the full path
//   - ConstructionError: a constructor returned an error or panicked
//
// Use errors.Is with the Err* sentinels or the Is* helpers to classify them.
// There is no rollback: dependencies constructed before a failing constructor
// stay cached.
//
// # Thread Safety
//
// A Container is not safe for concurrent use. Drive it from one goroutine or
// synchronize externally. Separate containers are fully isolated.
package fxdi

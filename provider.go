package fxdi

import (
	"reflect"

	"github.com/cerocss/fxdi/internal/reflection"
)

// Provide registers a constructor for the type it returns.
//
// A constructor is a non-variadic function returning T or (T, error). Its
// parameters are resolved by type in declaration order. Several constructors
// may be provided for the same T; one of them must then be designated with
// InjectionConstructor.
//
// Example:
//
//	c := fxdi.New()
//	c.Provide(NewConfig, fxdi.Injectable())
//	c.Provide(NewUserStore, fxdi.Injectable())
//	c.Provide(NewUserController)
//
//	ctrl, err := fxdi.Resolve[*UserController](c)
func (c *Container) Provide(constructor any, opts ...ProvideOption) error {
	options := &provideOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt.applyProvideOption(options)
		}
	}

	ctor, err := reflection.Analyze(constructor)
	if err != nil {
		var t reflect.Type
		if constructor != nil {
			t = reflect.TypeOf(constructor)
		}
		return RegistrationError{
			Type:      t,
			Operation: "provide",
			Cause:     err,
		}
	}
	ctor.Designated = options.designated

	d, ok := c.descriptors[ctor.Out]
	if !ok {
		d = &descriptor{Type: ctor.Out}
		c.descriptors[ctor.Out] = d
	}
	d.Constructors = append(d.Constructors, ctor)
	d.Injectable = d.Injectable || options.injectable

	c.logger.Debug("provided",
		"type", formatType(ctor.Out),
		"constructors", len(d.Constructors),
		"injectable", d.Injectable,
		"designated", ctor.Designated)

	return nil
}

// MustProvide is Provide that panics on error.
func (c *Container) MustProvide(constructor any, opts ...ProvideOption) {
	if err := c.Provide(constructor, opts...); err != nil {
		panic(err)
	}
}

// Register stores instance under its own dynamic type. The type need not be
// injectable: registered instances bypass constructor selection entirely.
// Registering again under the same type replaces the previous instance.
func (c *Container) Register(instance any) error {
	if instance == nil {
		return RegistrationError{
			Operation: "register",
			Cause:     ErrNilInstance,
		}
	}

	c.RegisterType(reflect.TypeOf(instance), instance)
	return nil
}

// RegisterType stores instance under t, which may be unrelated to the
// instance's own type. No shape or eligibility check is done; the last
// registration for t wins.
func (c *Container) RegisterType(t reflect.Type, instance any) {
	c.registry.Put(t, instance)

	c.logger.Debug("registered manually",
		"type", formatType(t),
		"instance", formatType(reflect.TypeOf(instance)))
}

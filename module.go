package fxdi

// ModuleOption represents a registration action within a module.
type ModuleOption func(*Container) error

// NewModule creates a new module with the given name and builders.
// Modules group related registrations so they can be installed together.
//
// Example:
//
//	var StorageModule = fxdi.NewModule("storage",
//	    fxdi.ProvideIn(NewConfig, fxdi.Injectable()),
//	    fxdi.ProvideIn(NewUserStore, fxdi.Injectable()),
//	)
//
//	var AppModule = fxdi.NewModule("app",
//	    StorageModule,
//	    fxdi.RegisterIn(systemClock{}),
//	    fxdi.ProvideIn(NewUserController),
//	)
//
//	c := fxdi.New()
//	if err := c.Install(AppModule); err != nil {
//	    log.Fatal(err)
//	}
func NewModule(name string, builders ...ModuleOption) ModuleOption {
	return func(c *Container) error {
		for _, builder := range builders {
			if builder == nil {
				continue
			}

			if err := builder(c); err != nil {
				return ModuleError{Module: name, Cause: err}
			}
		}

		return nil
	}
}

// ProvideIn creates a ModuleOption that provides a constructor.
func ProvideIn(constructor any, opts ...ProvideOption) ModuleOption {
	return func(c *Container) error {
		return c.Provide(constructor, opts...)
	}
}

// RegisterIn creates a ModuleOption that registers an instance under its
// dynamic type.
func RegisterIn(instance any) ModuleOption {
	return func(c *Container) error {
		return c.Register(instance)
	}
}

// RegisterAsIn creates a ModuleOption that registers an instance under T.
func RegisterAsIn[T any](instance T) ModuleOption {
	return func(c *Container) error {
		RegisterAs(c, instance)
		return nil
	}
}

// Install applies modules in order and stops at the first failure.
// Registrations made before the failure are kept.
func (c *Container) Install(modules ...ModuleOption) error {
	for _, module := range modules {
		if module == nil {
			continue
		}

		if err := module(c); err != nil {
			c.logger.Warn("module installation failed", "error", err)
			return err
		}
	}

	return nil
}

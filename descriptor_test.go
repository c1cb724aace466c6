package fxdi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerocss/fxdi/internal/reflection"
)

func mustAnalyze(t *testing.T, fn any, designated bool) *reflection.Constructor {
	t.Helper()

	c, err := reflection.Analyze(fn)
	require.NoError(t, err)
	c.Designated = designated
	return c
}

func TestSelectConstructor(t *testing.T) {
	controllerType := typeOf[*MultiConstructorController]()

	t.Run("none", func(t *testing.T) {
		d := &descriptor{Type: controllerType}

		_, err := d.selectConstructor()
		assert.Equal(t, NotConstructibleError{Type: controllerType}, err)
	})

	t.Run("single undesignated", func(t *testing.T) {
		only := mustAnalyze(t, NewMultiConstructorControllerEmpty, false)
		d := &descriptor{Type: controllerType, Constructors: []*reflection.Constructor{only}}

		got, err := d.selectConstructor()
		require.NoError(t, err)
		assert.Same(t, only, got)
	})

	t.Run("single designated", func(t *testing.T) {
		only := mustAnalyze(t, NewMultiConstructorControllerEmpty, true)
		d := &descriptor{Type: controllerType, Constructors: []*reflection.Constructor{only}}

		got, err := d.selectConstructor()
		require.NoError(t, err)
		assert.Same(t, only, got)
	})

	t.Run("several none designated", func(t *testing.T) {
		d := &descriptor{Type: controllerType, Constructors: []*reflection.Constructor{
			mustAnalyze(t, NewMultiConstructorControllerEmpty, false),
			mustAnalyze(t, NewMultiConstructorControllerWithModel, false),
		}}

		_, err := d.selectConstructor()

		var ambiguous AmbiguousConstructorError
		require.True(t, errors.As(err, &ambiguous))
		assert.Equal(t, 2, ambiguous.Constructors)
		assert.Equal(t, 0, ambiguous.Designated)
		assert.Equal(t,
			"*github.com/cerocss/fxdi.MultiConstructorController has 2 constructors. Designate a single one with InjectionConstructor().",
			err.Error())
	})

	t.Run("several one designated", func(t *testing.T) {
		designated := mustAnalyze(t, NewMultiConstructorControllerWithModel, true)
		d := &descriptor{Type: controllerType, Constructors: []*reflection.Constructor{
			mustAnalyze(t, NewMultiConstructorControllerEmpty, false),
			designated,
			mustAnalyze(t, NewMultiConstructorControllerEmpty, false),
		}}

		got, err := d.selectConstructor()
		require.NoError(t, err)
		assert.Same(t, designated, got)
	})

	t.Run("several all designated", func(t *testing.T) {
		d := &descriptor{Type: controllerType, Constructors: []*reflection.Constructor{
			mustAnalyze(t, NewMultiConstructorControllerEmpty, true),
			mustAnalyze(t, NewMultiConstructorControllerWithModel, true),
		}}

		_, err := d.selectConstructor()

		var ambiguous AmbiguousConstructorError
		require.True(t, errors.As(err, &ambiguous))
		assert.Equal(t, 2, ambiguous.Designated)
		assert.Equal(t,
			"*github.com/cerocss/fxdi.MultiConstructorController has 2 constructors designated with InjectionConstructor(). There should be only a single one.",
			err.Error())
	})
}

func TestResolve_AmbiguousConstructors(t *testing.T) {
	t.Run("none designated", func(t *testing.T) {
		c, _ := newTestContainer(t)
		require.NoError(t, c.Provide(NewMultiConstructorControllerEmpty))
		require.NoError(t, c.Provide(NewMultiConstructorControllerWithModel))

		_, err := Resolve[*MultiConstructorController](c)
		assert.True(t, IsAmbiguousConstructor(err))
		assert.Contains(t, err.Error(), "Designate a single one")
	})

	t.Run("two designated", func(t *testing.T) {
		c, _ := newTestContainer(t)
		require.NoError(t, c.Provide(NewMultiConstructorControllerEmpty, InjectionConstructor()))
		require.NoError(t, c.Provide(NewMultiConstructorControllerWithModel, InjectionConstructor()))

		_, err := Resolve[*MultiConstructorController](c)
		assert.True(t, IsAmbiguousConstructor(err))
		assert.Contains(t, err.Error(), "There should be only a single one")
	})

	t.Run("ambiguous dependency", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Provide(func() *SingletonModel { return &SingletonModel{id: 1} }, Injectable()))
		require.NoError(t, c.Provide(func() *SingletonModel { return &SingletonModel{id: 2} }, Injectable()))
		require.NoError(t, c.Provide(NewSingletonController))

		_, err := Resolve[*SingletonController](c)

		var ambiguous AmbiguousConstructorError
		require.True(t, errors.As(err, &ambiguous))
		assert.Equal(t, typeOf[*SingletonModel](), ambiguous.Type)
	})
}

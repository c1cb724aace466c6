package fxdi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"
)

func TestImportFromDig(t *testing.T) {
	dc := dig.New()
	model := &SingletonModel{id: 7}
	require.NoError(t, dc.Provide(func() *SingletonModel { return model }))
	require.NoError(t, dc.Provide(func() Logger { return &recordingLogger{} }))

	c := New()
	require.NoError(t, c.Provide(NewSingletonController))
	require.NoError(t, c.Provide(NewLoggingService))

	require.NoError(t, ImportFromDig(c, dc, typeOf[*SingletonModel](), typeOf[Logger]()))
	assert.True(t, c.Has(typeOf[*SingletonModel]()))
	assert.True(t, c.Has(typeOf[Logger]()))

	// imported values need no Injectable marker
	ctrl, err := Resolve[*SingletonController](c)
	require.NoError(t, err)
	assert.Same(t, model, ctrl.Model)

	svc, err := Resolve[*LoggingService](c)
	require.NoError(t, err)
	assert.NotNil(t, svc.Logger)
}

func TestImportFromDig_Missing(t *testing.T) {
	c := New()

	err := ImportFromDig(c, dig.New(), typeOf[*SingletonModel]())
	require.Error(t, err)

	var regErr RegistrationError
	require.True(t, errors.As(err, &regErr))
	assert.Equal(t, "import", regErr.Operation)
	assert.Equal(t, typeOf[*SingletonModel](), regErr.Type)
	assert.False(t, c.Has(typeOf[*SingletonModel]()))
}

func TestImportFromDig_InvalidArguments(t *testing.T) {
	c := New()

	assert.Error(t, ImportFromDig(c, nil, typeOf[*SingletonModel]()))
	assert.ErrorIs(t, ImportFromDig(c, dig.New(), nil), ErrNilType)
}

func TestExportToDig(t *testing.T) {
	c, calls := newTestContainer(t)
	dc := dig.New()

	require.NoError(t, ExportToDig(c, dc, typeOf[*SingletonController](), typeOf[*SingletonModel]()))

	var (
		fromDig  *SingletonController
		modelDig *SingletonModel
		invoked  int
	)
	require.NoError(t, dc.Invoke(func(ctrl *SingletonController, m *SingletonModel) {
		fromDig = ctrl
		modelDig = m
		invoked++
	}))
	require.NoError(t, dc.Invoke(func(ctrl *SingletonController) {
		assert.Same(t, fromDig, ctrl)
		invoked++
	}))

	assert.Equal(t, 2, invoked)
	require.NotNil(t, fromDig)
	assert.Same(t, modelDig, fromDig.Model)
	assert.Equal(t, 1, calls["SingletonModel"])
}

func TestExportToDig_ResolutionFailure(t *testing.T) {
	c, _ := newTestContainer(t)
	dc := dig.New()

	require.NoError(t, ExportToDig(c, dc, typeOf[*CircularController]()))

	err := dc.Invoke(func(*CircularController) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has circular dependencies")
}

func TestExportToDig_DuplicateType(t *testing.T) {
	c, _ := newTestContainer(t)
	dc := dig.New()

	require.NoError(t, ExportToDig(c, dc, typeOf[*EmptyController]()))

	err := ExportToDig(c, dc, typeOf[*EmptyController]())
	require.Error(t, err)

	var regErr RegistrationError
	require.True(t, errors.As(err, &regErr))
	assert.Equal(t, "export", regErr.Operation)
}

func TestExportToDig_InvalidArguments(t *testing.T) {
	c := New()

	assert.Error(t, ExportToDig(c, nil, typeOf[*SingletonModel]()))
	assert.ErrorIs(t, ExportToDig(c, dig.New(), nil), ErrNilType)
}

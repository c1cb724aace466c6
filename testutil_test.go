package fxdi

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test fixtures covering the injection scenarios.

type EmptyController struct{ ready bool }

func NewEmptyController() *EmptyController { return &EmptyController{ready: true} }

type SingletonModel struct{ id int }

type SingletonController struct {
	Model *SingletonModel
}

func NewSingletonController(m *SingletonModel) *SingletonController {
	return &SingletonController{Model: m}
}

type NestedSingletonModel struct {
	Model *SingletonModel
}

func NewNestedSingletonModel(m *SingletonModel) *NestedSingletonModel {
	return &NestedSingletonModel{Model: m}
}

type NestedSingletonController struct {
	Nested *NestedSingletonModel
}

func NewNestedSingletonController(n *NestedSingletonModel) *NestedSingletonController {
	return &NestedSingletonController{Nested: n}
}

type MultipleSingletonController struct {
	Model  *SingletonModel
	Nested *NestedSingletonModel
}

func NewMultipleSingletonController(m *SingletonModel, n *NestedSingletonModel) *MultipleSingletonController {
	return &MultipleSingletonController{Model: m, Nested: n}
}

type MultiConstructorController struct {
	Model *SingletonModel
}

func NewMultiConstructorControllerEmpty() *MultiConstructorController {
	return &MultiConstructorController{}
}

func NewMultiConstructorControllerWithModel(m *SingletonModel) *MultiConstructorController {
	return &MultiConstructorController{Model: m}
}

type NotInjectableModel struct{}

func NewNotInjectableModel() *NotInjectableModel { return &NotInjectableModel{} }

type NotInjectableController struct {
	Model *NotInjectableModel
}

func NewNotInjectableController(m *NotInjectableModel) *NotInjectableController {
	return &NotInjectableController{Model: m}
}

type CircularModel struct {
	Self *CircularModel
}

func NewCircularModel(m *CircularModel) *CircularModel {
	return &CircularModel{Self: m}
}

type CircularController struct {
	Model *CircularModel
}

func NewCircularController(m *CircularModel) *CircularController {
	return &CircularController{Model: m}
}

type UnprovidedController struct {
	Model *UnprovidedModel
}

type UnprovidedModel struct{}

func NewUnprovidedController(m *UnprovidedModel) *UnprovidedController {
	return &UnprovidedController{Model: m}
}

// Logger is an interface dependency.
type Logger interface {
	Log(msg string)
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Log(msg string) { l.lines = append(l.lines, msg) }

type LoggingService struct {
	Logger Logger
}

func NewLoggingService(l Logger) *LoggingService {
	return &LoggingService{Logger: l}
}

var errConstructor = errors.New("constructor failed")

type FailingModel struct{}

func NewFailingModel() (*FailingModel, error) { return nil, errConstructor }

type FailingController struct{}

func NewFailingController(*FailingModel, *SingletonModel) *FailingController {
	return &FailingController{}
}

type PanickingModel struct{}

func NewPanickingModel() *PanickingModel { panic("panicking model") }

type PanickingController struct{}

func NewPanickingController(*PanickingModel) *PanickingController { return &PanickingController{} }

// counter counts constructor calls per fixture.
type counter map[string]int

// newSingletonModel returns a counting constructor for SingletonModel.
func (c counter) newSingletonModel() func() *SingletonModel {
	return func() *SingletonModel {
		c["SingletonModel"]++
		return &SingletonModel{id: c["SingletonModel"]}
	}
}

// newTestContainer returns a container with the common fixtures provided.
func newTestContainer(t *testing.T) (*Container, counter) {
	t.Helper()

	calls := counter{}
	c := New()

	require.NoError(t, c.Provide(NewEmptyController))
	require.NoError(t, c.Provide(calls.newSingletonModel(), Injectable()))
	require.NoError(t, c.Provide(NewSingletonController))
	require.NoError(t, c.Provide(NewNestedSingletonModel, Injectable()))
	require.NoError(t, c.Provide(NewNestedSingletonController))
	require.NoError(t, c.Provide(NewMultipleSingletonController))
	require.NoError(t, c.Provide(NewNotInjectableModel))
	require.NoError(t, c.Provide(NewNotInjectableController))
	require.NoError(t, c.Provide(NewCircularModel, Injectable()))
	require.NoError(t, c.Provide(NewCircularController))
	require.NoError(t, c.Provide(NewUnprovidedController))

	return c, calls
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

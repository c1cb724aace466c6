package fxdi

import (
	"context"
	"reflect"
)

// Session owns one container for a logical session of object creation,
// such as a window or a request. On creation the session and its container
// are registered under their own types, so constructors may depend on
// *Session or *Container like on any other singleton.
type Session struct {
	container *Container
}

// NewSession creates a session with a fresh container.
func NewSession(opts ...Option) *Session {
	s := &Session{container: New(opts...)}

	RegisterAs(s.container, s.container)
	RegisterAs(s.container, s)

	return s
}

// ID returns the identifier of the session's container.
func (s *Session) ID() string {
	return s.container.ID()
}

// Container returns the session's container, e.g. to register instances
// outside of an injection context.
func (s *Session) Container() *Container {
	return s.container
}

// Controller resolves t and returns the instance unchanged. It is the entry
// point for frameworks that create objects from a type declared elsewhere.
func (s *Session) Controller(t reflect.Type) (any, error) {
	return s.container.Resolve(t)
}

// Factory returns Controller as a callback.
func (s *Session) Factory() func(reflect.Type) (any, error) {
	return s.Controller
}

// sessionContextKey is the key for storing the current session in context.
type sessionContextKey struct{}

// ContextWithSession returns a copy of ctx carrying s.
func ContextWithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// SessionFromContext gets the current session from context.
func SessionFromContext(ctx context.Context) (*Session, error) {
	s, ok := ctx.Value(sessionContextKey{}).(*Session)
	if !ok || s == nil {
		return nil, ErrSessionNotInContext
	}
	return s, nil
}

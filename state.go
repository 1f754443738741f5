package fsmkit

import (
	"maps"
	"slices"
)

// SimpleState is a ready-made StateContainer for basic use cases: a state
// name, a handler sequence, and an immutable key/value payload. All methods
// use value semantics, so derived values never alias the original's name or
// payload map.
type SimpleState struct {
	name     StateName
	handlers []Handler
	data     map[string]any
}

// NewSimpleState creates a state container with the given current name and
// ordered handler sequence.
func NewSimpleState(name StateName, handlers ...Handler) SimpleState {
	return SimpleState{
		name:     name,
		handlers: slices.Clone(handlers),
	}
}

func (s SimpleState) StateName() StateName {
	return s.name
}

func (s SimpleState) Handlers() []Handler {
	return slices.Clone(s.handlers)
}

// WithStateName returns a copy of the container renamed to name.
func (s SimpleState) WithStateName(name StateName) StateContainer {
	s.name = name
	return s
}

// WithData returns a copy of the container with key set in its payload.
// The payload map is cloned, never shared with the receiver.
func (s SimpleState) WithData(key string, value any) SimpleState {
	data := maps.Clone(s.data)
	if data == nil {
		data = make(map[string]any)
	}
	data[key] = value
	s.data = data
	return s
}

// Data returns the payload value stored under key.
func (s SimpleState) Data(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

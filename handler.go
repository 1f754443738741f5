package fsmkit

import (
	"fmt"

	"github.com/google/uuid"
)

// StaticHandler is a ready-made Handler backed by tables assembled once at
// construction. It covers the common case of declaring rules and entry
// points up front; custom types can implement Handler directly when the
// tables come from elsewhere.
type StaticHandler struct {
	id          HandlerID
	transitions []TransitionSpec
	bypasses    []BypassSpec
	docs        []DocSpec
	stateFuncs  map[StateName]StateFunc
	actionFuncs map[ActionName]ActionFunc
}

// HandlerOption configures a StaticHandler during construction.
type HandlerOption func(*StaticHandler) error

// NewHandler creates a handler with the given identifier and options. An
// empty id gets a generated UUID, for anonymous closure-set handlers.
// Construction fails when an option registers a nil or duplicate entry
// point, or when a declared transition has no state entry point to serve it.
func NewHandler(id HandlerID, opts ...HandlerOption) (*StaticHandler, error) {
	if id == "" {
		id = HandlerID(uuid.NewString())
	}

	h := &StaticHandler{
		id:          id,
		stateFuncs:  make(map[StateName]StateFunc),
		actionFuncs: make(map[ActionName]ActionFunc),
	}

	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, fmt.Errorf("handler '%s': %w", id, err)
		}
	}

	for _, t := range h.transitions {
		if _, ok := h.stateFuncs[t.State]; !ok {
			return nil, fmt.Errorf("handler '%s': %w: state '%s'", id, ErrMissingStateFunc, t.State)
		}
	}

	return h, nil
}

// MustNewHandler is NewHandler that panics on construction errors,
// following the fail-fast pattern for startup-time registration.
func MustNewHandler(id HandlerID, opts ...HandlerOption) *StaticHandler {
	h, err := NewHandler(id, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create handler: %v", err))
	}
	return h
}

// WithTransition declares a state-scoped rule. Targets list the states the
// rule may produce and are informational only.
func WithTransition(state StateName, action ActionName, targets ...StateName) HandlerOption {
	return func(h *StaticHandler) error {
		h.transitions = append(h.transitions, TransitionSpec{
			State:   state,
			Action:  action,
			Targets: targets,
		})
		return nil
	}
}

// WithStateFunc registers the dispatch entry point named by state. It
// serves every action the handler declares a transition for in that state.
func WithStateFunc(state StateName, fn StateFunc) HandlerOption {
	return func(h *StaticHandler) error {
		if fn == nil {
			return fmt.Errorf("%w: state '%s'", ErrNilEntryPoint, state)
		}
		if _, ok := h.stateFuncs[state]; ok {
			return fmt.Errorf("%w: state '%s'", ErrDuplicateEntry, state)
		}
		h.stateFuncs[state] = fn
		return nil
	}
}

// WithBypass declares an any-state rule for action and registers the
// action-named entry point serving it.
func WithBypass(action ActionName, fn ActionFunc) HandlerOption {
	return func(h *StaticHandler) error {
		if fn == nil {
			return fmt.Errorf("%w: action '%s'", ErrNilEntryPoint, action)
		}
		if _, ok := h.actionFuncs[action]; ok {
			return fmt.Errorf("%w: action '%s'", ErrDuplicateEntry, action)
		}
		h.bypasses = append(h.bypasses, BypassSpec{Action: action})
		h.actionFuncs[action] = fn
		return nil
	}
}

// WithTransitionDoc documents the state-scoped rule for (state, action).
func WithTransitionDoc(state StateName, action ActionName, doc string) HandlerOption {
	return func(h *StaticHandler) error {
		h.docs = append(h.docs, DocSpec{Key: TransitionDocKey(state, action), Doc: doc})
		return nil
	}
}

// WithEventDoc documents the any-state rule for action.
func WithEventDoc(action ActionName, doc string) HandlerOption {
	return func(h *StaticHandler) error {
		h.docs = append(h.docs, DocSpec{Key: EventDocKey(action), Doc: doc})
		return nil
	}
}

func (h *StaticHandler) ID() HandlerID {
	return h.id
}

func (h *StaticHandler) Transitions() []TransitionSpec {
	return h.transitions
}

func (h *StaticHandler) Bypasses() []BypassSpec {
	return h.bypasses
}

func (h *StaticHandler) Docs() []DocSpec {
	return h.docs
}

func (h *StaticHandler) StateFunc(state StateName) StateFunc {
	return h.stateFuncs[state]
}

func (h *StaticHandler) ActionFunc(action ActionName) ActionFunc {
	return h.actionFuncs[action]
}

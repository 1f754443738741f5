package fsmkit

import (
	"io"
	"log/slog"
	"slices"
)

// Machine is a composed view over a fixed, ordered handler sequence with
// the three merged tables computed once. It exposes the same operations as
// the package-level functions, plus debug-level logging; prefer it when the
// handler sequence does not change between dispatches.
//
// A Machine holds no mutable state after construction and is safe for
// concurrent use.
type Machine struct {
	handlers    []Handler
	transitions TransitionTable
	bypasses    BypassTable
	docs        DocTable
	logger      *slog.Logger
}

// Option configures a Machine during composition.
type Option func(*Machine)

// WithLogger sets the logger the machine emits debug records to. The
// default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Compose merges the tables of an ordered handler sequence into a Machine.
// Later handlers override earlier ones on key collisions, as in the
// package-level merge functions.
func Compose(handlers []Handler, opts ...Option) (*Machine, error) {
	if len(handlers) == 0 {
		return nil, ErrNoHandlers
	}

	m := &Machine{
		handlers:    slices.Clone(handlers),
		transitions: MergeTransitions(handlers),
		bypasses:    MergeBypasses(handlers),
		docs:        MergeDocs(handlers),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// MustCompose is Compose that panics on error, for startup-time composition.
func MustCompose(handlers []Handler, opts ...Option) *Machine {
	m, err := Compose(handlers, opts...)
	if err != nil {
		panic("failed to compose machine: " + err.Error())
	}
	return m
}

// FindHandler looks up the owner of the (state, action) rule in the cached
// transition table.
func (m *Machine) FindHandler(state StateName, action ActionName) (Handler, bool) {
	return m.transitions.lookup(state, action)
}

// FindBypass looks up the owner of the any-state rule for action in the
// cached bypass table.
func (m *Machine) FindBypass(action ActionName) (Handler, bool) {
	return m.bypasses.lookup(action)
}

// FindInfo resolves documentation for action in the container's current
// state, transition docs before bypass docs.
func (m *Machine) FindInfo(sc StateContainer, action ActionName) (DocResult, bool) {
	return m.docs.info(sc.StateName(), action)
}

// Dispatch is the cached-table equivalent of the package-level Dispatch.
// The machine's own handler sequence decides ownership; the container
// contributes only its current state name and payload.
func (m *Machine) Dispatch(sc StateContainer, action ActionName, params any) (Result, error) {
	current := sc.StateName()
	m.logger.Debug("dispatching action",
		slog.String("state", current.String()),
		slog.String("action", action.String()))

	res, err := dispatch(m.transitions, m.bypasses, sc, action, params)
	if err != nil {
		m.logger.Debug("dispatch failed",
			slog.String("state", current.String()),
			slog.String("action", action.String()),
			slog.Any("error", err))
		return res, err
	}

	m.logger.Debug("dispatch complete",
		slog.String("state", current.String()),
		slog.String("action", action.String()),
		slog.String("next_state", res.State.StateName().String()),
		slog.Bool("timed", res.HasTimeout))
	return res, nil
}

// AvailableActions lists the actions legal in the container's current state
// against the machine's handler sequence.
func (m *Machine) AvailableActions(sc StateContainer) []ActionName {
	return availableActions(m.handlers, sc.StateName())
}

// ActionAvailable reports whether action is legal in the container's
// current state.
func (m *Machine) ActionAvailable(sc StateContainer, action ActionName) bool {
	return slices.Contains(m.AvailableActions(sc), action)
}

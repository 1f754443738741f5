// Package fsmkit implements a finite state machine interpreter whose
// transition rules are contributed by multiple independently authored
// handlers and merged into one executable machine.
//
// Client code supplies a current-state value and an incoming (action,
// params) pair; the engine determines which handler owns the applicable
// rule, invokes it, and normalizes its reply into a canonical Result:
// a new state, a new state with an informational timeout, or an error.
//
// # Architecture
//
// Each handler contributes three static tables - state-scoped transitions,
// any-state bypasses, and documentation - plus named entry points: one
// StateFunc per state it declares transitions for, one ActionFunc per
// bypass action. The merge functions fold an ordered handler sequence into
// global tables with last-handler-wins override semantics, so a handler
// appearing later in the sequence layers over earlier ones.
//
// Dispatch resolves the state-scoped table first and falls back to the
// bypass table. State representations are opaque to the engine: it depends
// only on the three-operation StateContainer capability interface and
// produces renamed copies via WithStateName, never mutating in place. Every
// operation is a pure, synchronous decision; nothing is scheduled, retried,
// or persisted.
//
// # Usage
//
// Declare handlers with the options API, then dispatch against a state
// container:
//
//	door := fsmkit.MustNewHandler("door",
//	    fsmkit.WithTransition("closed", "open_door", "opened"),
//	    fsmkit.WithStateFunc("closed", func(action fsmkit.ActionName, params any, state fsmkit.StateContainer) fsmkit.Reply {
//	        return fsmkit.Goto("opened", state)
//	    }),
//	)
//
//	state := fsmkit.NewSimpleState("closed", door)
//	res, err := fsmkit.Dispatch(state, "open_door", nil)
//	// res.State.StateName() == "opened"
//
// For a fixed handler sequence, Compose precomputes the merged tables and
// optionally logs dispatch decisions:
//
//	machine := fsmkit.MustCompose([]fsmkit.Handler{door, alarm},
//	    fsmkit.WithLogger(slog.Default()),
//	)
//	res, err = machine.Dispatch(state, "open_door", nil)
//
// # Error Handling
//
// Two failure channels are kept strictly apart. IllegalActionError is data:
// it is returned when no rule matches or the owning handler declines the
// combination, and callers test for it with IsIllegalAction. A handler
// returning a reply shape outside its contract is a programming defect, not
// a runtime condition; the dispatcher panics with a ContractViolationError
// carrying the handler identity, originating state, and action. Handler
// errors produced with Fail pass through uninterpreted.
//
// # Concurrency
//
// The engine holds no shared mutable state. StateContainer values are
// treated as immutable, so concurrent dispatch on independent state values
// needs no synchronization. A Machine is read-only after Compose and safe
// for concurrent use.
package fsmkit

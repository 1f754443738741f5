package fsmkit

import "time"

// Result is the canonical outcome of a successful dispatch: the new state
// container, optionally paired with an informational timeout. The engine
// never schedules the timeout itself; a supervising loop acts on it.
type Result struct {
	State      StateContainer
	Timeout    time.Duration
	HasTimeout bool
}

// Dispatch resolves the rule owning (current state, action), invokes the
// owning handler, and normalizes its reply.
//
// Resolution order: the state-scoped transition table first, the bypass
// table second. When neither table has a rule, or the matched handler
// returns Unhandled, Dispatch returns an IllegalActionError. A reply shape
// outside the recognized set panics with a ContractViolationError carrying
// the handler identity, the originating state name, and the action.
func Dispatch(sc StateContainer, action ActionName, params any) (Result, error) {
	handlers := sc.Handlers()
	return dispatch(MergeTransitions(handlers), MergeBypasses(handlers), sc, action, params)
}

func dispatch(transitions TransitionTable, bypasses BypassTable, sc StateContainer, action ActionName, params any) (Result, error) {
	current := sc.StateName()

	if h, ok := transitions.lookup(current, action); ok {
		fn := h.StateFunc(current)
		if fn == nil {
			panic(&ContractViolationError{Handler: h.ID(), State: current, Action: action})
		}
		return normalizeStateReply(h, current, action, fn(action, params, sc))
	}

	h, ok := bypasses.lookup(action)
	if !ok {
		return Result{}, NewIllegalActionError(current, action)
	}
	fn := h.ActionFunc(action)
	if fn == nil {
		panic(&ContractViolationError{Handler: h.ID(), State: current, Action: action})
	}
	return normalizeActionReply(h, current, action, fn(params, sc))
}

// normalizeStateReply maps a state-named entry point's reply onto a Result.
// Stay is not part of the state-scoped contract and counts as a violation.
func normalizeStateReply(h Handler, state StateName, action ActionName, r Reply) (Result, error) {
	switch r.kind {
	case replyGotoTimeout:
		if r.state == nil || r.timeout < 0 {
			break
		}
		return Result{State: r.state.WithStateName(r.name), Timeout: r.timeout, HasTimeout: true}, nil
	case replyGoto:
		if r.state == nil {
			break
		}
		return Result{State: r.state.WithStateName(r.name)}, nil
	case replyFail:
		if r.reason == nil {
			break
		}
		return Result{}, r.reason
	case replyUnhandled:
		return Result{}, NewIllegalActionError(state, action)
	}
	panic(&ContractViolationError{Handler: h.ID(), State: state, Action: action, Reply: r})
}

// normalizeActionReply maps an action-named entry point's reply onto a
// Result. Stay carries the container through with its state name untouched.
func normalizeActionReply(h Handler, state StateName, action ActionName, r Reply) (Result, error) {
	switch r.kind {
	case replyStay:
		if r.state == nil {
			break
		}
		return Result{State: r.state}, nil
	case replyGotoTimeout:
		if r.state == nil || r.timeout < 0 {
			break
		}
		return Result{State: r.state.WithStateName(r.name), Timeout: r.timeout, HasTimeout: true}, nil
	case replyGoto:
		if r.state == nil {
			break
		}
		return Result{State: r.state.WithStateName(r.name)}, nil
	case replyFail:
		if r.reason == nil {
			break
		}
		return Result{}, r.reason
	case replyUnhandled:
		return Result{}, NewIllegalActionError(state, action)
	}
	panic(&ContractViolationError{Handler: h.ID(), State: state, Action: action, Reply: r})
}

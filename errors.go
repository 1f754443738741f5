package fsmkit

import (
	"errors"
	"fmt"
)

var (
	ErrNoHandlers       = errors.New("handler sequence cannot be empty")
	ErrNilEntryPoint    = errors.New("entry point cannot be nil")
	ErrDuplicateEntry   = errors.New("entry point already registered")
	ErrMissingStateFunc = errors.New("transition declared without a state entry point")
)

// IllegalActionError indicates no transition or bypass rule matched the
// current (state, action), or the owning handler declined the combination.
// It is recoverable and returned as data; dispatch never aborts on it.
type IllegalActionError struct {
	State  StateName
	Action ActionName
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("no rule for action '%s' in state '%s'", e.Action, e.State)
}

func NewIllegalActionError(state StateName, action ActionName) *IllegalActionError {
	return &IllegalActionError{
		State:  state,
		Action: action,
	}
}

// IsIllegalAction reports whether err is an IllegalActionError.
func IsIllegalAction(err error) bool {
	var e *IllegalActionError
	return errors.As(err, &e)
}

// ContractViolationError reports a handler returning a reply shape outside
// the recognized set, or missing a declared entry point. It indicates a
// programming defect in the handler, not a runtime condition, so the
// dispatcher delivers it via panic rather than as a recoverable error.
type ContractViolationError struct {
	Handler HandlerID
	State   StateName
	Action  ActionName
	Reply   Reply
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("handler '%s' violated the dispatch contract for action '%s' in state '%s': reply %s",
		e.Handler, e.Action, e.State, e.Reply)
}

// AsContractViolation extracts a ContractViolationError from a recovered
// panic value. Use it at recover sites that supervise dispatch calls.
func AsContractViolation(r any) (*ContractViolationError, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	var e *ContractViolationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

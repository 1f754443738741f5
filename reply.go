package fsmkit

import (
	"fmt"
	"time"
)

type replyKind int

const (
	replyInvalid replyKind = iota
	replyGoto
	replyGotoTimeout
	replyStay
	replyFail
	replyUnhandled
)

// Reply is the value a handler entry point returns to the dispatcher. Build
// it only through the constructors below; the zero Reply is invalid and is
// reported as a contract violation.
type Reply struct {
	kind    replyKind
	name    StateName
	state   StateContainer
	timeout time.Duration
	reason  error
}

// Goto transitions the machine to the named state, carrying state as the new
// container value. The dispatcher renames the container via WithStateName.
func Goto(name StateName, state StateContainer) Reply {
	return Reply{kind: replyGoto, name: name, state: state}
}

// GotoTimeout is Goto with an informational timeout the caller may act on.
// The timeout must be non-negative; a negative value violates the contract.
func GotoTimeout(name StateName, state StateContainer, timeout time.Duration) Reply {
	return Reply{kind: replyGotoTimeout, name: name, state: state, timeout: timeout}
}

// Stay keeps the current state name, carrying state as the new container
// value. Stay is only legal from an action-named entry point; returning it
// from a state-named entry point violates the contract.
func Stay(state StateContainer) Reply {
	return Reply{kind: replyStay, state: state}
}

// Fail reports a handler-defined error. The reason passes through to the
// caller unchanged; the engine does not interpret it. The reason must be
// non-nil; a nil reason violates the contract.
func Fail(reason error) Reply {
	return Reply{kind: replyFail, reason: reason}
}

// Unhandled declines the specific (state, action, params) combination. The
// dispatcher converts it into an IllegalActionError.
func Unhandled() Reply {
	return Reply{kind: replyUnhandled}
}

func (r Reply) String() string {
	switch r.kind {
	case replyGoto:
		return fmt.Sprintf("goto(%s)", r.name)
	case replyGotoTimeout:
		return fmt.Sprintf("goto(%s, timeout=%s)", r.name, r.timeout)
	case replyStay:
		return "stay"
	case replyFail:
		return fmt.Sprintf("fail(%v)", r.reason)
	case replyUnhandled:
		return "unhandled"
	default:
		return "invalid"
	}
}

package fsmkit

// StateName identifies a state within a composed machine.
type StateName string

func (s StateName) String() string {
	return string(s)
}

// ActionName identifies an incoming action that may trigger a transition.
type ActionName string

func (a ActionName) String() string {
	return string(a)
}

// HandlerID is the opaque identifier of a contributing handler unit. It is
// carried in diagnostics and never interpreted by the engine.
type HandlerID string

// ActionKey addresses a state-scoped transition rule.
type ActionKey struct {
	State  StateName
	Action ActionName
}

// DocKind classifies documentation table keys.
type DocKind int

const (
	// TransitionDoc documents a state-scoped transition rule.
	TransitionDoc DocKind = iota + 1
	// EventDoc documents a bypass action valid from any state.
	EventDoc
)

// DocKey addresses an entry in the merged documentation table.
// EventDoc keys carry an empty State.
type DocKey struct {
	Kind   DocKind
	State  StateName
	Action ActionName
}

// TransitionDocKey builds the documentation key for a state-scoped rule.
func TransitionDocKey(state StateName, action ActionName) DocKey {
	return DocKey{Kind: TransitionDoc, State: state, Action: action}
}

// EventDocKey builds the documentation key for a bypass action.
func EventDocKey(action ActionName) DocKey {
	return DocKey{Kind: EventDoc, Action: action}
}

// TransitionSpec is a single state-scoped rule contributed by a handler.
// Targets lists the states the rule may produce; it is informational and
// used for documentation and introspection only, never enforced at runtime.
type TransitionSpec struct {
	State   StateName
	Action  ActionName
	Targets []StateName
}

// BypassSpec is a single rule valid from any state, contributed by a handler.
type BypassSpec struct {
	Action ActionName
}

// DocSpec is a single documentation entry contributed by a handler.
type DocSpec struct {
	Key DocKey
	Doc string
}

// StateFunc is a state-named dispatch entry point. The engine invokes it with
// the incoming action and params plus the current state container when the
// handler owns the transition rule for (current state, action).
type StateFunc func(action ActionName, params any, state StateContainer) Reply

// ActionFunc is an action-named dispatch entry point invoked for bypass
// rules. Note the params-then-state argument order; the asymmetry with
// StateFunc is part of the handler contract.
type ActionFunc func(params any, state StateContainer) Reply

// Handler is a unit contributing transition rules, bypass rules, and
// documentation to a composed machine. Its tables are static: the engine
// treats the returned slices as immutable and may read them on every call.
type Handler interface {
	// ID returns the handler's opaque identifier, used in diagnostics.
	ID() HandlerID
	// Transitions lists the handler's state-scoped rules in declaration order.
	Transitions() []TransitionSpec
	// Bypasses lists the handler's any-state rules in declaration order.
	Bypasses() []BypassSpec
	// Docs lists the handler's documentation entries.
	Docs() []DocSpec
	// StateFunc returns the dispatch entry point named by state, or nil if
	// the handler declares no such entry point.
	StateFunc(state StateName) StateFunc
	// ActionFunc returns the dispatch entry point named by a bypass action,
	// or nil if the handler declares no such entry point.
	ActionFunc(action ActionName) ActionFunc
}

// StateContainer is the minimal capability interface the engine requires of
// a state representation. Implementations must be pure: WithStateName
// returns a new value and never mutates the receiver.
type StateContainer interface {
	// Handlers returns the ordered handler sequence composing the machine.
	Handlers() []Handler
	// StateName returns the current state name.
	StateName() StateName
	// WithStateName returns a copy of the container renamed to name.
	WithStateName(name StateName) StateContainer
}

package fsmkit

// FindHandler looks up the handler owning the (state, action) transition
// rule in the merged table of the given handler sequence.
func FindHandler(state StateName, action ActionName, handlers []Handler) (Handler, bool) {
	return MergeTransitions(handlers).lookup(state, action)
}

// FindHandlerFor derives the state name and handler sequence from the
// container, then delegates to FindHandler.
func FindHandlerFor(sc StateContainer, action ActionName) (Handler, bool) {
	return FindHandler(sc.StateName(), action, sc.Handlers())
}

// FindBypass looks up the handler owning the any-state rule for action.
func FindBypass(action ActionName, handlers []Handler) (Handler, bool) {
	return MergeBypasses(handlers).lookup(action)
}

// FindBypassFor derives the handler sequence from the container.
func FindBypassFor(sc StateContainer, action ActionName) (Handler, bool) {
	return FindBypass(action, sc.Handlers())
}

func (t TransitionTable) lookup(state StateName, action ActionName) (Handler, bool) {
	entry, ok := t[ActionKey{State: state, Action: action}]
	if !ok {
		return nil, false
	}
	return entry.Handler, true
}

func (t BypassTable) lookup(action ActionName) (Handler, bool) {
	h, ok := t[action]
	return h, ok
}

// DocResultKind tells which documentation table an entry came from.
type DocResultKind int

const (
	// KnownTransition marks documentation of a state-scoped rule.
	KnownTransition DocResultKind = iota + 1
	// BypassDoc marks documentation of an any-state rule.
	BypassDoc
)

// DocResult is a resolved documentation entry for a (state, action) probe.
type DocResult struct {
	Kind DocResultKind
	Doc  string
}

// FindInfo resolves documentation for action in the container's current
// state. It probes the transition doc key (current state, action) first and
// falls back to the bypass doc key (action alone); the second return value
// is false when neither exists.
func FindInfo(sc StateContainer, action ActionName) (DocResult, bool) {
	return MergeDocsFor(sc).info(sc.StateName(), action)
}

func (t DocTable) info(state StateName, action ActionName) (DocResult, bool) {
	if doc, ok := t[TransitionDocKey(state, action)]; ok {
		return DocResult{Kind: KnownTransition, Doc: doc}, true
	}
	if doc, ok := t[EventDocKey(action)]; ok {
		return DocResult{Kind: BypassDoc, Doc: doc}, true
	}
	return DocResult{}, false
}

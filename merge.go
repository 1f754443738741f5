package fsmkit

// TransitionEntry is the value side of a merged transition table: the owning
// handler plus the informational list of possible resulting states.
type TransitionEntry struct {
	Handler Handler
	Targets []StateName
}

// TransitionTable maps state-scoped rule keys to their owning handlers.
type TransitionTable map[ActionKey]TransitionEntry

// BypassTable maps any-state actions to their owning handlers.
type BypassTable map[ActionName]Handler

// DocTable maps documentation keys to human-readable descriptions.
type DocTable map[DocKey]string

// MergeTransitions folds the transition contributions of an ordered handler
// sequence into one table. When two handlers contribute the same key, the
// entry from the handler appearing later in the sequence wins, silently
// replacing the earlier one. This layering semantics lets a later handler
// override rules of an earlier one and must be preserved as-is.
func MergeTransitions(handlers []Handler) TransitionTable {
	table := make(TransitionTable)
	for _, h := range handlers {
		for _, t := range h.Transitions() {
			table[ActionKey{State: t.State, Action: t.Action}] = TransitionEntry{
				Handler: h,
				Targets: t.Targets,
			}
		}
	}
	return table
}

// MergeBypasses folds bypass contributions with the same last-wins rule.
func MergeBypasses(handlers []Handler) BypassTable {
	table := make(BypassTable)
	for _, h := range handlers {
		for _, b := range h.Bypasses() {
			table[b.Action] = h
		}
	}
	return table
}

// MergeDocs folds documentation contributions with the same last-wins rule.
func MergeDocs(handlers []Handler) DocTable {
	table := make(DocTable)
	for _, h := range handlers {
		for _, d := range h.Docs() {
			table[d.Key] = d.Doc
		}
	}
	return table
}

// MergeTransitionsFor derives the handler sequence from the container.
func MergeTransitionsFor(sc StateContainer) TransitionTable {
	return MergeTransitions(sc.Handlers())
}

// MergeBypassesFor derives the handler sequence from the container.
func MergeBypassesFor(sc StateContainer) BypassTable {
	return MergeBypasses(sc.Handlers())
}

// MergeDocsFor derives the handler sequence from the container.
func MergeDocsFor(sc StateContainer) DocTable {
	return MergeDocs(sc.Handlers())
}

package fsmkit

import "slices"

// AvailableActions returns the de-duplicated sequence of actions legal in
// the container's current state: transition-derived actions first, in
// handler and declaration order, followed by bypass-derived actions. The
// first occurrence of a name wins, so the order is deterministic for a
// fixed handler sequence.
func AvailableActions(sc StateContainer) []ActionName {
	return availableActions(sc.Handlers(), sc.StateName())
}

// ActionAvailable reports whether action is legal in the container's
// current state, via transition or bypass.
func ActionAvailable(sc StateContainer, action ActionName) bool {
	return slices.Contains(AvailableActions(sc), action)
}

func availableActions(handlers []Handler, current StateName) []ActionName {
	seen := make(map[ActionName]struct{})
	var actions []ActionName
	add := func(a ActionName) {
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		actions = append(actions, a)
	}

	for _, h := range handlers {
		for _, t := range h.Transitions() {
			if t.State == current {
				add(t.Action)
			}
		}
	}
	for _, h := range handlers {
		for _, b := range h.Bypasses() {
			add(b.Action)
		}
	}
	return actions
}

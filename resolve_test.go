package fsmkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit"
)

func TestFindHandler(t *testing.T) {
	t.Parallel()

	door1, door2 := newDoorHandlers(t)
	handlers := []fsmkit.Handler{door1, door2}

	tests := []struct {
		name   string
		state  fsmkit.StateName
		action fsmkit.ActionName
		want   fsmkit.HandlerID
		found  bool
	}{
		{
			name:   "owned by first handler",
			state:  "closed",
			action: "open_door",
			want:   "door1",
			found:  true,
		},
		{
			name:   "owned by second handler",
			state:  "opened",
			action: "close_door",
			want:   "door2",
			found:  true,
		},
		{
			name:   "no rule for state",
			state:  "closed",
			action: "close_door",
			found:  false,
		},
		{
			name:   "unknown action",
			state:  "closed",
			action: "paint_door",
			found:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, ok := fsmkit.FindHandler(tt.state, tt.action, handlers)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, h.ID())
			} else {
				assert.Nil(t, h)
			}

			// The container form must agree with the explicit form.
			hFor, okFor := fsmkit.FindHandlerFor(fsmkit.NewSimpleState(tt.state, door1, door2), tt.action)
			assert.Equal(t, ok, okFor)
			assert.Equal(t, h, hFor)
		})
	}
}

func TestFindBypass(t *testing.T) {
	t.Parallel()

	door1, door2 := newDoorHandlers(t)
	handlers := []fsmkit.Handler{door1, door2}

	h, ok := fsmkit.FindBypass("close_door", handlers)
	require.True(t, ok)
	assert.Equal(t, fsmkit.HandlerID("door2"), h.ID())

	_, ok = fsmkit.FindBypass("open_door", handlers)
	assert.False(t, ok)

	state := fsmkit.NewSimpleState("whatever", door1, door2)
	h, ok = fsmkit.FindBypassFor(state, "close_door")
	require.True(t, ok)
	assert.Equal(t, fsmkit.HandlerID("door2"), h.ID())
}

func TestFindInfo(t *testing.T) {
	t.Parallel()

	door1, door2 := newDoorHandlers(t)

	tests := []struct {
		name     string
		state    fsmkit.StateName
		action   fsmkit.ActionName
		found    bool
		wantKind fsmkit.DocResultKind
		wantDoc  string
	}{
		{
			name:     "transition doc wins when present for current state",
			state:    "opened",
			action:   "close_door",
			found:    true,
			wantKind: fsmkit.KnownTransition,
			wantDoc:  "Closes the opened door.",
		},
		{
			name:     "bypass doc when no transition doc for current state",
			state:    "closed",
			action:   "close_door",
			found:    true,
			wantKind: fsmkit.BypassDoc,
			wantDoc:  "Bolts the door from any state.",
		},
		{
			name:     "transition doc for state-scoped only action",
			state:    "closed",
			action:   "open_door",
			found:    true,
			wantKind: fsmkit.KnownTransition,
			wantDoc:  "Opens the door.",
		},
		{
			name:   "no documentation at all",
			state:  "closed",
			action: "paint_door",
			found:  false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := fsmkit.NewSimpleState(tt.state, door1, door2)
			info, ok := fsmkit.FindInfo(state, tt.action)
			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantKind, info.Kind)
				assert.Equal(t, tt.wantDoc, info.Doc)
			}
		})
	}
}

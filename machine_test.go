package fsmkit_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("rejects an empty handler sequence", func(t *testing.T) {
		t.Parallel()

		_, err := fsmkit.Compose(nil)
		assert.ErrorIs(t, err, fsmkit.ErrNoHandlers)

		assert.Panics(t, func() {
			fsmkit.MustCompose(nil)
		})
	})

	t.Run("matches the package-level operations", func(t *testing.T) {
		t.Parallel()

		door1, door2 := newDoorHandlers(t)
		handlers := []fsmkit.Handler{door1, door2}
		machine := fsmkit.MustCompose(handlers)

		for _, state := range []fsmkit.StateName{"closed", "opened"} {
			sc := fsmkit.NewSimpleState(state, door1, door2)
			for _, action := range []fsmkit.ActionName{"open_door", "close_door", "paint_door"} {
				wantHandler, wantOK := fsmkit.FindHandler(state, action, handlers)
				gotHandler, gotOK := machine.FindHandler(state, action)
				assert.Equal(t, wantOK, gotOK)
				assert.Equal(t, wantHandler, gotHandler)

				wantInfo, wantOK := fsmkit.FindInfo(sc, action)
				gotInfo, gotOK := machine.FindInfo(sc, action)
				assert.Equal(t, wantOK, gotOK)
				assert.Equal(t, wantInfo, gotInfo)

				assert.Equal(t, fsmkit.ActionAvailable(sc, action), machine.ActionAvailable(sc, action))
			}
			assert.Equal(t, fsmkit.AvailableActions(sc), machine.AvailableActions(sc))
		}

		wantBypass, wantOK := fsmkit.FindBypass("close_door", handlers)
		gotBypass, gotOK := machine.FindBypass("close_door")
		assert.Equal(t, wantOK, gotOK)
		assert.Equal(t, wantBypass, gotBypass)
	})

	t.Run("dispatches against the cached tables", func(t *testing.T) {
		t.Parallel()

		door1, door2 := newDoorHandlers(t)
		machine := fsmkit.MustCompose([]fsmkit.Handler{door1, door2})

		// The container carries no handlers of its own; the machine's
		// composed sequence decides ownership.
		state := fsmkit.NewSimpleState("closed")

		res, err := machine.Dispatch(state, "open_door", nil)
		require.NoError(t, err)
		assert.Equal(t, fsmkit.StateName("opened"), res.State.StateName())

		_, err = machine.Dispatch(state, "paint_door", nil)
		assert.True(t, fsmkit.IsIllegalAction(err))
	})

	t.Run("logs dispatch decisions", func(t *testing.T) {
		t.Parallel()

		door1, door2 := newDoorHandlers(t)

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		machine := fsmkit.MustCompose([]fsmkit.Handler{door1, door2}, fsmkit.WithLogger(logger))

		state := fsmkit.NewSimpleState("closed")
		_, err := machine.Dispatch(state, "open_door", nil)
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "dispatching action")
		assert.Contains(t, out, "dispatch complete")
		assert.Contains(t, out, "next_state=opened")

		buf.Reset()
		_, err = machine.Dispatch(state, "paint_door", nil)
		require.Error(t, err)
		assert.Contains(t, buf.String(), "dispatch failed")
	})
}

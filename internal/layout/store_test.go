package layout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session loads empty", func(t *testing.T) {
		store := NewMemoryStore()

		state, err := store.Load(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, state)
	})

	t.Run("partial updates preserve the other field", func(t *testing.T) {
		store := NewMemoryStore()

		panel := map[string]any{"left": "collapsed"}
		canvas := map[string]any{"zoom": 1.25, "x": 40.0}

		require.NoError(t, store.Save(ctx, "s1", Update{PanelState: panel}))
		require.NoError(t, store.Save(ctx, "s1", Update{CanvasState: canvas}))

		state, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, panel, state["panel_state"])
		assert.Equal(t, canvas, state["canvas_state"])
	})

	t.Run("re-save overwrites a field in place", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Save(ctx, "s1", Update{PanelState: map[string]any{"left": "open"}}))
		require.NoError(t, store.Save(ctx, "s1", Update{PanelState: map[string]any{"left": "closed"}}))

		state, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"left": "closed"}, state["panel_state"])
	})

	t.Run("sessions are independent", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Save(ctx, "a", Update{PanelState: map[string]any{"who": "a"}}))
		require.NoError(t, store.Save(ctx, "b", Update{PanelState: map[string]any{"who": "b"}}))

		stateA, err := store.Load(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"who": "a"}, stateA["panel_state"])

		stateB, err := store.Load(ctx, "b")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"who": "b"}, stateB["panel_state"])
	})

	t.Run("loaded state is a copy", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Save(ctx, "s1", Update{PanelState: map[string]any{"left": "open"}}))

		state, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		state["panel_state"] = "clobbered"

		again, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"left": "open"}, again["panel_state"])
	})
}

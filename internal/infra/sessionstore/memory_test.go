//go:build unit

package sessionstore_test

import (
	"context"
	"testing"

	"booking-assistant/internal/domain/conversation"
	"booking-assistant/internal/infra/sessionstore"
	"booking-assistant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()

		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()

		session := conversation.NewSession("s1")
		session.State = conversation.StateCollectingEmail
		session.Slots.Name = "Sam"
		require.NoError(t, store.Save(ctx, session))

		loaded, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, *session, *loaded)
	})

	t.Run("load returns a copy", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()
		require.NoError(t, store.Save(ctx, conversation.NewSession("s1")))

		first, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		first.Slots.Name = "mutated"

		second, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, second.Slots.Name, "mutating a loaded session must not leak into the store")
	})

	t.Run("save overwrites", func(t *testing.T) {
		store := sessionstore.NewMemoryStore()

		session := conversation.NewSession("s1")
		require.NoError(t, store.Save(ctx, session))

		session.State = conversation.StateConfirmed
		require.NoError(t, store.Save(ctx, session))

		loaded, err := store.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, conversation.StateConfirmed, loaded.State)
	})
}

package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "nested", "session.json"))
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	saved := &Session{
		Token: "token-abc",
		Employee: model.Employee{
			ID:       "emp-1",
			FullName: "Alice Smith",
			Email:    "alice@example.com",
		},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "token-abc", loaded.Token)
	assert.Equal(t, "emp-1", loaded.Employee.ID)
	assert.Equal(t, "Alice Smith", loaded.Employee.FullName)
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestStore_LoadEmptyToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&Session{Token: ""}))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&Session{Token: "token-abc"}))

	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	// Clearing again is a no-op
	assert.NoError(t, store.Clear())
}

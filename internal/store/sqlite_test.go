package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"balju/internal/database"
)

func TestSlotStore(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "balju.db"))
	require.NoError(t, err)
	defer database.Close(db)

	s, err := NewSlotStore(db)
	require.NoError(t, err)

	data, err := s.Read("missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, s.Write("order_draft_v5", []byte(`{"branch":"1번 지점"}`)))
	data, err = s.Read("order_draft_v5")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"branch":"1번 지점"}`), data)

	// A second write overwrites the slot in place.
	require.NoError(t, s.Write("order_draft_v5", []byte(`{}`)))
	data, err = s.Read("order_draft_v5")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)

	require.NoError(t, s.Delete("order_draft_v5"))
	data, err = s.Read("order_draft_v5")
	require.NoError(t, err)
	assert.Nil(t, data)
}

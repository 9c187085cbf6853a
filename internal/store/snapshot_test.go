package store

import (
	"testing"

	"github.com/dsmirnov/cryptodiary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_ReplaceAllDiscardsPrevious(t *testing.T) {
	s := NewSnapshot()

	s.ReplaceAll([]models.Entry{
		{ID: "a", EncryptedTitle: "ct-a"},
		{ID: "b", EncryptedTitle: "ct-b"},
	})
	require.Equal(t, 2, s.Len())

	s.ReplaceAll([]models.Entry{{ID: "c", EncryptedTitle: "ct-c"}})

	assert.Equal(t, 1, s.Len())
	_, err := s.Get("a")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	got, err := s.Get("c")
	require.NoError(t, err)
	assert.Equal(t, "ct-c", got.EncryptedTitle)
}

func TestSnapshot_AllPreservesServerOrder(t *testing.T) {
	s := NewSnapshot()
	s.ReplaceAll([]models.Entry{{ID: "z"}, {ID: "a"}, {ID: "m"}})

	var ids []string
	for _, e := range s.All() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

func TestSnapshot_GetUnknownID(t *testing.T) {
	s := NewSnapshot()
	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestSnapshot_ReplaceAllEmpty(t *testing.T) {
	s := NewSnapshot()
	s.ReplaceAll([]models.Entry{{ID: "a"}})
	s.ReplaceAll(nil)

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
}

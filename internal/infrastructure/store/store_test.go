package store_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/infrastructure/store"
)

func TestNewID_CreceConCadaLlamada(t *testing.T) {
	prev := store.NewID()
	for i := 0; i < 1000; i++ {
		next := store.NewID()
		require.Greater(t, next, prev, "iteración %d", i)
		prev = next
	}

	parsed, err := uuid.Parse(prev)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

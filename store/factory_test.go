package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Port 1 is never a mongod, so the connection attempt fails within the
// bounded timeout.
const unreachableURI = "mongodb://127.0.0.1:1/online_shopping"

func TestConnect_DevelopmentFallsBackToMemory(t *testing.T) {
	st, err := Connect(context.Background(), Config{
		URI:        unreachableURI,
		Database:   "online_shopping",
		Production: false,
	})
	require.NoError(t, err)

	_, ok := st.(*MemoryStore)
	assert.True(t, ok, "expected the ephemeral in-memory fallback")
}

func TestConnect_ProductionFailsFast(t *testing.T) {
	st, err := Connect(context.Background(), Config{
		URI:        unreachableURI,
		Database:   "online_shopping",
		Production: true,
	})
	require.Error(t, err)
	assert.Nil(t, st)
	assert.ErrorContains(t, err, "order store unreachable")
}

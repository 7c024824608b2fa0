package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlobStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBlobStore()

	_, err := store.Get(ctx, "t1", "k")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	data := []byte(`{"a":1}`)
	require.NoError(t, store.Put(ctx, "t1", "k", data))
	require.NoError(t, store.Put(ctx, "t1", "k2", []byte(`{}`)))
	require.NoError(t, store.Put(ctx, "t2", "k", []byte(`{"b":2}`)))

	data[2] = 'X'
	got, err := store.Get(ctx, "t1", "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got), "stored bytes are copied")

	all, err := store.List(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, `{}`, string(all["k2"]))

	require.NoError(t, store.Delete(ctx, "t1", "k"))
	require.NoError(t, store.Delete(ctx, "t1", "missing"))

	_, err = store.Get(ctx, "t1", "k")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	other, err := store.Get(ctx, "t2", "k")
	require.NoError(t, err)
	assert.Equal(t, `{"b":2}`, string(other))
}

package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisBlobStore(t *testing.T) (BlobStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisBlobStore(rdb), mr
}

func TestRedisBlobStore(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisBlobStore(t)

	_, err := store.Get(ctx, "ideas", "a1")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	require.NoError(t, store.Put(ctx, "ideas", "a1", []byte(`{"symbol":"BBCA"}`)))
	require.NoError(t, store.Put(ctx, "ideas", "a2", []byte(`{}`)))
	require.NoError(t, store.Put(ctx, "history", "a1", []byte(`[]`)))

	assert.Equal(t, `{"symbol":"BBCA"}`, mr.HGet("stock_ideas:offline:ideas", "a1"))

	got, err := store.Get(ctx, "ideas", "a1")
	require.NoError(t, err)
	assert.Equal(t, `{"symbol":"BBCA"}`, string(got))

	require.NoError(t, store.Put(ctx, "ideas", "a1", []byte(`{"symbol":"TLKM"}`)))
	got, err = store.Get(ctx, "ideas", "a1")
	require.NoError(t, err)
	assert.Equal(t, `{"symbol":"TLKM"}`, string(got))

	all, err := store.List(ctx, "ideas")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, `{}`, string(all["a2"]))

	require.NoError(t, store.Delete(ctx, "ideas", "a1"))
	require.NoError(t, store.Delete(ctx, "ideas", "missing"))

	_, err = store.Get(ctx, "ideas", "a1")
	assert.ErrorIs(t, err, ErrBlobNotFound)

	other, err := store.Get(ctx, "history", "a1")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(other))
}

func TestRedisBlobStore_EmptyTable(t *testing.T) {
	store, _ := newTestRedisBlobStore(t)

	all, err := store.List(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRedisBlobStore_ServerDown(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisBlobStore(t)
	mr.Close()

	_, err := store.Get(ctx, "ideas", "a1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBlobNotFound)
	assert.Error(t, store.Put(ctx, "ideas", "a1", []byte(`{}`)))
}

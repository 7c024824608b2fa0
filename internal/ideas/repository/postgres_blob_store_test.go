package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlRecorder keeps every statement gorm renders so dry-run tests can inspect it.
type sqlRecorder struct {
	mu   sync.Mutex
	stmt []string
}

func (r *sqlRecorder) LogMode(gormlogger.LogLevel) gormlogger.Interface { return r }
func (r *sqlRecorder) Info(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Warn(context.Context, string, ...interface{}) {}
func (r *sqlRecorder) Error(context.Context, string, ...interface{}) {}

func (r *sqlRecorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stmt = append(r.stmt, sql)
}

func (r *sqlRecorder) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.stmt, "no statement recorded")
	return r.stmt[len(r.stmt)-1]
}

func newDryRunBlobStore(t *testing.T) (BlobStore, *sqlRecorder) {
	t.Helper()
	rec := &sqlRecorder{}
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=ideas dbname=ideas sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	require.NoError(t, err)
	return NewPostgresBlobStore(db), rec
}

func TestPostgresBlobStore_PutUpsertsOnTableAndKey(t *testing.T) {
	store, rec := newDryRunBlobStore(t)

	require.NoError(t, store.Put(context.Background(), "ideas", "a1", []byte(`{"symbol":"BBCA"}`)))

	sql := rec.last(t)
	assert.Contains(t, sql, `INSERT INTO "offline_blobs"`)
	assert.Contains(t, sql, `ON CONFLICT ("table_name","key") DO UPDATE SET "data"="excluded"."data","updated_at"="excluded"."updated_at"`)
	assert.Contains(t, sql, `'ideas'`)
	assert.Contains(t, sql, `'a1'`)
	assert.Contains(t, sql, `{"symbol":"BBCA"}`)
}

func TestPostgresBlobStore_QueriesAreScopedToTable(t *testing.T) {
	ctx := context.Background()
	store, rec := newDryRunBlobStore(t)

	_, err := store.Get(ctx, "ideas", "a1")
	require.NoError(t, err)
	sql := rec.last(t)
	assert.Contains(t, sql, `FROM "offline_blobs"`)
	assert.Contains(t, sql, `table_name = 'ideas' AND key = 'a1'`)
	assert.Contains(t, sql, `LIMIT 1`)

	require.NoError(t, store.Delete(ctx, "ideas", "a1"))
	sql = rec.last(t)
	assert.Contains(t, sql, `DELETE FROM "offline_blobs"`)
	assert.Contains(t, sql, `table_name = 'ideas' AND key = 'a1'`)

	all, err := store.List(ctx, "history")
	require.NoError(t, err)
	assert.Empty(t, all)
	sql = rec.last(t)
	assert.Contains(t, sql, `SELECT * FROM "offline_blobs"`)
	assert.Contains(t, sql, `table_name = 'history'`)
	assert.NotContains(t, sql, `key =`)
}

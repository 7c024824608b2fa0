package repository

import (
	"context"
	"errors"
	"fmt"

	"golang-stock-ideas/internal/entity"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewPostgresBlobStore creates a BlobStore over the offline_blobs table.
func NewPostgresBlobStore(db *gorm.DB) BlobStore {
	return &postgresBlobStore{db: db}
}

type postgresBlobStore struct {
	db *gorm.DB
}

func (s *postgresBlobStore) Get(ctx context.Context, table, key string) ([]byte, error) {
	var blob entity.OfflineBlob
	err := s.db.WithContext(ctx).
		Where("table_name = ? AND key = ?", table, key).
		First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", table, key, err)
	}
	return []byte(blob.Data), nil
}

func (s *postgresBlobStore) Put(ctx context.Context, table, key string, data []byte) error {
	blob := entity.OfflineBlob{
		Table: table,
		Key:   key,
		Data:  datatypes.JSON(data),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "table_name"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
	if err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", table, key, err)
	}
	return nil
}

func (s *postgresBlobStore) Delete(ctx context.Context, table, key string) error {
	err := s.db.WithContext(ctx).
		Where("table_name = ? AND key = ?", table, key).
		Delete(&entity.OfflineBlob{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", table, key, err)
	}
	return nil
}

func (s *postgresBlobStore) List(ctx context.Context, table string) (map[string][]byte, error) {
	var blobs []entity.OfflineBlob
	if err := s.db.WithContext(ctx).Where("table_name = ?", table).Find(&blobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	out := make(map[string][]byte, len(blobs))
	for _, b := range blobs {
		out[b.Key] = []byte(b.Data)
	}
	return out, nil
}

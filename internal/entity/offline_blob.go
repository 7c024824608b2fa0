package entity

import (
	"time"

	"gorm.io/datatypes"
)

// OfflineBlob is one JSON blob of the offline mirror, keyed by logical table and record key.
type OfflineBlob struct {
	Table     string         `gorm:"column:table_name;primaryKey"`
	Key       string         `gorm:"column:key;primaryKey"`
	Data      datatypes.JSON `gorm:"column:data;type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (OfflineBlob) TableName() string {
	return "offline_blobs"
}

package config

import (
	"golang-stock-ideas/pkg/config"
)

// Storage backends of the idea repository.
const (
	StoreFirestore = "firestore"
	StoreOffline   = "offline"
)

// Mirror backends of the offline store.
const (
	MirrorMemory   = "memory"
	MirrorRedis    = "redis"
	MirrorPostgres = "postgres"
	MirrorNone     = "none"
)

// Mirror holds the offline mirror configuration.
type Mirror struct {
	// Backend is one of memory, redis, postgres or none.
	Backend     string `mapstructure:"backend"`
	// IDGenerator is "timestamp" or "uuid".
	IDGenerator string `mapstructure:"id_generator"`
}

// Firebase holds Firebase Storage configuration for attachments.
type Firebase struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	StorageBucket   string `mapstructure:"storage_bucket"`
	DownloadBaseURL string `mapstructure:"download_base_url"`
}

// Telegram holds the publication notice channel.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Ideas holds service-level settings.
type Ideas struct {
	// Store is "firestore" (remote, mirrored when a mirror backend is set) or "offline".
	Store           string `mapstructure:"store"`
	DefaultPageSize int    `mapstructure:"default_page_size"`
	MaxUploadSize   int64  `mapstructure:"max_upload_size"`
}

// Config holds the full configuration for the ideas service.
type Config struct {
	App       config.App       `mapstructure:"app"`
	Logger    config.Logger    `mapstructure:"logger"`
	Database  config.Database  `mapstructure:"database"`
	Redis     config.Redis     `mapstructure:"redis"`
	API       config.API       `mapstructure:"api"`
	Firestore config.Firestore `mapstructure:"firestore"`
	Mirror    Mirror           `mapstructure:"mirror"`
	Firebase  Firebase         `mapstructure:"firebase"`
	Telegram  Telegram         `mapstructure:"telegram"`
	Ideas     Ideas            `mapstructure:"ideas"`
}

// Load loads the ideas configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Ideas.Store == "" {
		cfg.Ideas.Store = StoreFirestore
	}
	if cfg.Mirror.Backend == "" {
		cfg.Mirror.Backend = MirrorMemory
	}
	return &cfg, nil
}

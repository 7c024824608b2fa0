package common

const (
	// FirestoreCollectionStockIdeas is the remote collection holding stock ideas.
	FirestoreCollectionStockIdeas = "stockRecommendations"

	// Offline mirror tables.
	OfflineTableStockIdeas = "stock_ideas"
	OfflineTableBaselines  = "stock_idea_baselines"

	// RedisKeyPrefixOffline prefixes the redis hashes backing the offline mirror.
	RedisKeyPrefixOffline = "stock_ideas:offline:"

	// Storage path prefixes for attachments.
	StoragePrefixImages  = "stock-images/"
	StoragePrefixReports = "research-reports/"

	DefaultListPageSize = 1000
)

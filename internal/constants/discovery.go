package constants

const (
	// DefaultPageSize is the listing page size when the caller does not
	// supply one; mirrors the cards-per-page of the public listing view.
	DefaultPageSize = 12

	// MaxPageSize caps a caller-supplied page size.
	MaxPageSize = 100

	// FavoritesFetchBatchSize is the record store's cap on "id is one of
	// a list" queries. Favorite resolution chunks id lists at this size
	// and merges the results.
	FavoritesFetchBatchSize = 30

	// MaxUploadSizeBytes caps a single media upload (10 MiB).
	MaxUploadSizeBytes = 10 << 20
)

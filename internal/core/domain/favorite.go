package domain

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteItem is one entry of an authenticated user's favorites set.
// CreatedAt fixes the insertion order favorites are presented in.
type FavoriteItem struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time
}

// PaginatedProperties is the result of a discovery query: the records of
// the current page plus the page bookkeeping derived from the filtered set.
type PaginatedProperties struct {
	Properties []Property
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

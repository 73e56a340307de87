package port

import (
	"context"

	"github.com/google/uuid"
)

// FavoritesRepositoryPort is the contract for the per-user favorites set.
type FavoritesRepositoryPort interface {
	// Add inserts the membership entry; adding an id that is already a
	// favorite is not an error.
	Add(ctx context.Context, userID, propertyID uuid.UUID) error

	// Remove deletes the membership entry; removing an id that is not a
	// favorite is not an error.
	Remove(ctx context.Context, userID, propertyID uuid.UUID) error

	Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)

	// FindIDsByUser returns the user's favorite record ids in insertion
	// order (oldest first), or an empty slice when the set is empty.
	FindIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/core/domain"
)

// ListOptions narrows a List call with exact-field-equality predicates, the
// only query shape the record store supports besides "id is one of a list".
// Zero values impose no constraint.
type ListOptions struct {
	Status       domain.PropertyStatus
	Type         domain.PropertyType
	City         string
	FeaturedOnly bool
}

// PropertyRepositoryPort is the contract for the record store holding
// property listings.
type PropertyRepositoryPort interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// GetByIDs fetches records by id list. The store caps the list size
	// per query at domain batch limits; callers must chunk larger lists
	// and merge the results themselves.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error)

	// Create assigns a fresh id and creation timestamp when unset and
	// returns the stored record.
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)

	// Update rewrites every mutable field. The id and the original
	// creation timestamp are never overwritten.
	Update(ctx context.Context, p *domain.Property) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// FilterOptionsRepositoryPort derives the filter panel dictionaries and
// numeric ranges from the stored records.
type FilterOptionsRepositoryPort interface {
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
}

package usecases_port

import (
	"context"

	"github.com/nasser0p/realestate/internal/core/domain"
)

type FindPropertiesUseCasePort interface {
	Execute(ctx context.Context, criteria domain.FilterCriteria, lang domain.Language, pageSize, page int) (*domain.PaginatedProperties, error)
}

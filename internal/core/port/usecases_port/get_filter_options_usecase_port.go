package usecases_port

import (
	"context"

	"github.com/nasser0p/realestate/internal/core/domain"
)

type GetFilterOptionsUseCasePort interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}

package usecases_port

import (
	"context"

	"github.com/nasser0p/realestate/internal/core/domain"
)

type CreatePropertyUseCasePort interface {
	Execute(ctx context.Context, p *domain.Property) (*domain.Property, error)
}

package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/core/domain"
)

type GetPropertyByIDUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

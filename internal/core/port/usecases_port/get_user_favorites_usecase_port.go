package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/core/domain"
)

type GetUserFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.Property, error)
}

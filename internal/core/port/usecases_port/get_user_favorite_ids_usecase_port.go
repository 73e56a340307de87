package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type GetUserFavoriteIDsUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

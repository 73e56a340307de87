package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type IsFavoriteUseCasePort interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
}

package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type ToggleFavoriteUseCasePort interface {
	// Execute flips membership and returns the new state. With a nil
	// user id the call is a warn-logged no-op reporting false.
	Execute(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
}

package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

package usecases_port

import (
	"context"

	"github.com/nasser0p/realestate/internal/core/domain"
)

type GenerateDescriptionUseCasePort interface {
	Execute(ctx context.Context, req domain.DescriptionRequest) (string, error)
}

package port

import (
	"context"

	"github.com/nasser0p/realestate/internal/core/domain"
)

// DescriptionGeneratorPort is the contract for the generative-text
// collaborator. The call is opaque, possibly slow and possibly failing;
// errors surface to the caller without retries.
type DescriptionGeneratorPort interface {
	Generate(ctx context.Context, req domain.DescriptionRequest) (string, error)
}

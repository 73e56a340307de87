package usecases_port

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/core/port"
)

type UploadPropertyMediaUseCasePort interface {
	// Execute uploads the files one by one and returns the public URLs
	// that were recorded on the property, in upload order.
	Execute(ctx context.Context, propertyID uuid.UUID, kind port.MediaKind, files []port.MediaUpload) ([]string, error)
}

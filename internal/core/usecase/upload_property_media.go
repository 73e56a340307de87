package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
)

// UploadPropertyMediaUseCase uploads gallery images or a floor plan for a
// record. Files go up sequentially; when one fails, the URLs that already
// uploaded are still persisted on the record before the error is returned,
// so a partial failure never corrupts what was stored.
type UploadPropertyMediaUseCase struct {
	repo  port.PropertyRepositoryPort
	media port.MediaStoragePort
}

func NewUploadPropertyMediaUseCase(repo port.PropertyRepositoryPort, media port.MediaStoragePort) *UploadPropertyMediaUseCase {
	return &UploadPropertyMediaUseCase{repo: repo, media: media}
}

func (uc *UploadPropertyMediaUseCase) Execute(ctx context.Context, propertyID uuid.UUID, kind port.MediaKind, files []port.MediaUpload) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UploadPropertyMedia",
		"property_id": propertyID,
		"kind":        kind,
		"file_count":  len(files),
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.repo.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to load record for media upload", err, nil)
		return nil, err
	}

	uploaded := make([]string, 0, len(files))
	var uploadErr error
	for _, file := range files {
		path := fmt.Sprintf("properties/%s/%s/%d_%s", propertyID, kind, time.Now().UnixNano(), file.Filename)
		url, err := uc.media.Upload(ctx, path, file.Content, file.Size, file.ContentType)
		if err != nil {
			ucLogger.Error("Media upload failed", err, port.Fields{"path": path})
			uploadErr = fmt.Errorf("failed to upload %s: %w", file.Filename, err)
			break
		}
		uploaded = append(uploaded, url)
	}

	if len(uploaded) > 0 {
		switch kind {
		case port.MediaFloorPlan:
			property.FloorPlanURL = uploaded[len(uploaded)-1]
		default:
			property.Gallery = append(property.Gallery, uploaded...)
		}
		if err := uc.repo.Update(ctx, property); err != nil {
			ucLogger.Error("Failed to persist uploaded media URLs", err, nil)
			return uploaded, fmt.Errorf("failed to record uploaded media: %w", err)
		}
	}

	if uploadErr != nil {
		return uploaded, uploadErr
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"uploaded": len(uploaded)})
	return uploaded, nil
}

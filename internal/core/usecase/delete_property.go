package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
)

// DeletePropertyUseCase removes a record together with the media it owns.
// The row is deleted first so a surviving record never points at released
// objects; media cleanup then tolerates individual failures, which are
// logged and skipped.
type DeletePropertyUseCase struct {
	repo   port.PropertyRepositoryPort
	media  port.MediaStoragePort
	events port.ListingEventsPort
}

func NewDeletePropertyUseCase(repo port.PropertyRepositoryPort, media port.MediaStoragePort, events port.ListingEventsPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{repo: repo, media: media, events: events}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Failed to load record for deletion", err, nil)
		return err
	}

	urls := make([]string, 0, len(property.Gallery)+1)
	urls = append(urls, property.Gallery...)
	if property.FloorPlanURL != "" {
		urls = append(urls, property.FloorPlanURL)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}

	for _, mediaURL := range urls {
		path, err := uc.media.PathFromURL(mediaURL)
		if err != nil {
			ucLogger.Warn("Could not derive storage path from media URL", port.Fields{
				"url":   mediaURL,
				"error": err.Error(),
			})
			continue
		}
		if err := uc.media.Remove(ctx, path); err != nil {
			ucLogger.Warn("Failed to delete stored media", port.Fields{
				"path":  path,
				"error": err.Error(),
			})
		}
	}

	if err := uc.events.Publish(ctx, port.EventPropertyDeleted, id); err != nil {
		ucLogger.Warn("Failed to publish listing event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

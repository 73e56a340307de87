package usecase

import (
	"context"
	"fmt"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

type UpdatePropertyUseCase struct {
	repo   port.PropertyRepositoryPort
	events port.ListingEventsPort
}

func NewUpdatePropertyUseCase(repo port.PropertyRepositoryPort, events port.ListingEventsPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{repo: repo, events: events}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": p.ID,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.repo.GetByID(ctx, p.ID)
	if err != nil {
		ucLogger.Error("Failed to load existing record", err, nil)
		return nil, err
	}

	// The id and the original creation timestamp are immutable; whatever
	// the caller sent is discarded.
	p.ID = existing.ID
	p.DateAdded = existing.DateAdded

	if err := uc.repo.Update(ctx, p); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	if err := uc.events.Publish(ctx, port.EventPropertyUpdated, p.ID); err != nil {
		ucLogger.Warn("Failed to publish listing event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", nil)
	return p, nil
}

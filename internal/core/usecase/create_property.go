package usecase

import (
	"context"
	"fmt"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

type CreatePropertyUseCase struct {
	repo   port.PropertyRepositoryPort
	events port.ListingEventsPort
}

func NewCreatePropertyUseCase(repo port.PropertyRepositoryPort, events port.ListingEventsPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{repo: repo, events: events}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"city":     p.City,
		"type":     p.Type,
	})

	ucLogger.Info("Use case started", nil)

	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	// Event delivery is best effort; the record is already committed.
	if err := uc.events.Publish(ctx, port.EventPropertyCreated, created.ID); err != nil {
		ucLogger.Warn("Failed to publish listing event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": created.ID})
	return created, nil
}

package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

type GetPropertyByIDUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetPropertyByIDUseCase(repo port.PropertyRepositoryPort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{repo: repo}
}

func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyByID",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}

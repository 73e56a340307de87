package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
)

type GetUserFavoriteIDsUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewGetUserFavoriteIDsUseCase(repo port.FavoritesRepositoryPort) *GetUserFavoriteIDsUseCase {
	return &GetUserFavoriteIDsUseCase{repo: repo}
}

func (uc *GetUserFavoriteIDsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavoriteIDs",
		"user_id":  userID,
	})

	if userID == uuid.Nil {
		return []uuid.UUID{}, nil
	}

	ucLogger.Info("Use case started", nil)

	ids, err := uc.repo.FindIDsByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to get favorite IDs from repository", err, nil)
		return nil, fmt.Errorf("failed to get favorite IDs: %w", err)
	}

	return ids, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
)

// IsFavoriteUseCase answers a membership test. Without an authenticated
// identity every record reports not-favorite.
type IsFavoriteUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewIsFavoriteUseCase(repo port.FavoritesRepositoryPort) *IsFavoriteUseCase {
	return &IsFavoriteUseCase{repo: repo}
}

func (uc *IsFavoriteUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}

	exists, err := uc.repo.Exists(ctx, userID, propertyID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to check favorite membership", err, port.Fields{
			"use_case":    "IsFavorite",
			"user_id":     userID,
			"property_id": propertyID,
		})
		return false, fmt.Errorf("failed to check favorite membership: %w", err)
	}
	return exists, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
)

// ToggleFavoriteUseCase flips a record's membership in the caller's
// favorites set. The new membership is persisted before it is reported, so
// a persistence failure never leaves the caller believing a state that was
// not committed.
type ToggleFavoriteUseCase struct {
	repo port.FavoritesRepositoryPort
}

func NewToggleFavoriteUseCase(repo port.FavoritesRepositoryPort) *ToggleFavoriteUseCase {
	return &ToggleFavoriteUseCase{repo: repo}
}

func (uc *ToggleFavoriteUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ToggleFavorite",
		"user_id":     userID,
		"property_id": propertyID,
	})

	if userID == uuid.Nil {
		ucLogger.Warn("Toggle favorite without an authenticated identity, ignoring", nil)
		return false, nil
	}

	ucLogger.Info("Use case started", nil)

	isFavorite, err := uc.repo.Exists(ctx, userID, propertyID)
	if err != nil {
		ucLogger.Error("Failed to check current membership", err, nil)
		return false, fmt.Errorf("failed to check favorite membership: %w", err)
	}

	if isFavorite {
		if err := uc.repo.Remove(ctx, userID, propertyID); err != nil {
			ucLogger.Error("Failed to remove favorite", err, nil)
			return isFavorite, err
		}
	} else {
		if err := uc.repo.Add(ctx, userID, propertyID); err != nil {
			ucLogger.Error("Failed to add favorite", err, nil)
			return isFavorite, err
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"now_favorite": !isFavorite})
	return !isFavorite, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/constants"
	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

// GetUserFavoritesUseCase resolves the caller's favorite ids into full
// records. The record store caps "id is one of a list" queries, so the id
// list is fetched in chunks and the merged result is re-sorted back into
// favorite-insertion order before it is returned.
type GetUserFavoritesUseCase struct {
	favoritesRepo port.FavoritesRepositoryPort
	propertyRepo  port.PropertyRepositoryPort
}

func NewGetUserFavoritesUseCase(favoritesRepo port.FavoritesRepositoryPort, propertyRepo port.PropertyRepositoryPort) *GetUserFavoritesUseCase {
	return &GetUserFavoritesUseCase{
		favoritesRepo: favoritesRepo,
		propertyRepo:  propertyRepo,
	}
}

func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID,
	})

	if userID == uuid.Nil {
		return []domain.Property{}, nil
	}

	ucLogger.Info("Use case started", nil)

	ids, err := uc.favoritesRepo.FindIDsByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to get favorite IDs from repository", err, nil)
		return nil, fmt.Errorf("failed to get favorite IDs: %w", err)
	}
	if len(ids) == 0 {
		ucLogger.Info("User has no favorites", nil)
		return []domain.Property{}, nil
	}

	fetched := make([]domain.Property, 0, len(ids))
	for start := 0; start < len(ids); start += constants.FavoritesFetchBatchSize {
		end := start + constants.FavoritesFetchBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch, err := uc.propertyRepo.GetByIDs(ctx, ids[start:end])
		if err != nil {
			ucLogger.Error("Failed to fetch favorite records batch", err, port.Fields{
				"batch_start": start,
				"batch_size":  end - start,
			})
			return nil, fmt.Errorf("failed to fetch favorite records: %w", err)
		}
		fetched = append(fetched, batch...)
	}

	// The store does not guarantee any return order; put the records back
	// into the order the user favorited them in.
	byID := make(map[uuid.UUID]domain.Property, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}
	sorted := make([]domain.Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			sorted = append(sorted, p)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"favorite_ids": len(ids),
		"resolved":     len(sorted),
	})
	return sorted, nil
}

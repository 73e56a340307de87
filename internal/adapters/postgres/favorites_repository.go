package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/port"
)

const uniqueViolationCode = "23505"

// PostgresFavoritesRepository stores the per-user favorites set as one row
// per (user, property) pair.
type PostgresFavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFavoritesRepository(pool *pgxpool.Pool) (*PostgresFavoritesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresFavoritesRepository{pool: pool}, nil
}

// Add inserts the membership entry. A duplicate insert means the entry is
// already in the set, which counts as success.
func (r *PostgresFavoritesRepository) Add(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresFavoritesRepository",
		"method":      "Add",
		"user_id":     userID,
		"property_id": propertyID,
	})

	query := "INSERT INTO user_favorites (user_id, property_id, created_at) VALUES ($1, $2, NOW())"
	_, err := r.pool.Exec(ctx, query, userID, propertyID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			repoLogger.Warn("Property is already a favorite, nothing to do", nil)
			return nil
		}
		repoLogger.Error("Failed to add favorite", err, nil)
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	repoLogger.Debug("Favorite added", nil)
	return nil
}

// Remove deletes the membership entry. A missing entry leaves the set
// unchanged, which counts as success.
func (r *PostgresFavoritesRepository) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresFavoritesRepository",
		"method":      "Remove",
		"user_id":     userID,
		"property_id": propertyID,
	})

	query := "DELETE FROM user_favorites WHERE user_id = $1 AND property_id = $2"
	cmdTag, err := r.pool.Exec(ctx, query, userID, propertyID)
	if err != nil {
		repoLogger.Error("Failed to remove favorite", err, nil)
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Property was not a favorite, nothing to do", nil)
		return nil
	}

	repoLogger.Debug("Favorite removed", nil)
	return nil
}

func (r *PostgresFavoritesRepository) Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresFavoritesRepository",
		"method":      "Exists",
		"user_id":     userID,
		"property_id": propertyID,
	})

	query := "SELECT EXISTS (SELECT 1 FROM user_favorites WHERE user_id = $1 AND property_id = $2)"
	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, propertyID).Scan(&exists); err != nil {
		repoLogger.Error("Failed to check favorite existence", err, nil)
		return false, fmt.Errorf("failed to check favorite existence: %w", err)
	}
	return exists, nil
}

// FindIDsByUser returns the set in insertion order, oldest entry first.
func (r *PostgresFavoritesRepository) FindIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresFavoritesRepository",
		"method":    "FindIDsByUser",
		"user_id":   userID,
	})

	query := "SELECT property_id FROM user_favorites WHERE user_id = $1 ORDER BY created_at ASC"
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		repoLogger.Error("Failed to query favorites", err, nil)
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			repoLogger.Error("Failed to scan favorite row", err, nil)
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during favorites iteration", err, nil)
		return nil, fmt.Errorf("error during favorites iteration: %w", err)
	}

	repoLogger.Debug("Favorites loaded", port.Fields{"count": len(ids)})
	return ids, nil
}

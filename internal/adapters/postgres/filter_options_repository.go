package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

// PostgresFilterOptionsRepository derives the filter panel dictionaries from
// the stored listings rather than keeping a separate options table.
type PostgresFilterOptionsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFilterOptionsRepository(pool *pgxpool.Pool) (*PostgresFilterOptionsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresFilterOptionsRepository{pool: pool}, nil
}

func (r *PostgresFilterOptionsRepository) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresFilterOptionsRepository",
		"method":    "GetFilterOptions",
	})

	opts := &domain.FilterOptions{}

	statuses, err := distinctStrings(ctx, r.pool, "SELECT DISTINCT status FROM properties ORDER BY status")
	if err != nil {
		repoLogger.Error("Failed to load distinct statuses", err, nil)
		return nil, fmt.Errorf("failed to load distinct statuses: %w", err)
	}
	for _, s := range statuses {
		opts.Statuses = append(opts.Statuses, domain.PropertyStatus(s))
	}

	types, err := distinctStrings(ctx, r.pool, "SELECT DISTINCT type FROM properties ORDER BY type")
	if err != nil {
		repoLogger.Error("Failed to load distinct types", err, nil)
		return nil, fmt.Errorf("failed to load distinct types: %w", err)
	}
	for _, t := range types {
		opts.Types = append(opts.Types, domain.PropertyType(t))
	}

	opts.Cities, err = distinctStrings(ctx, r.pool, "SELECT DISTINCT city FROM properties ORDER BY city")
	if err != nil {
		repoLogger.Error("Failed to load distinct cities", err, nil)
		return nil, fmt.Errorf("failed to load distinct cities: %w", err)
	}

	opts.Amenities, err = distinctStrings(ctx, r.pool,
		"SELECT DISTINCT unnest(amenities) AS amenity FROM properties ORDER BY amenity")
	if err != nil {
		repoLogger.Error("Failed to load distinct amenities", err, nil)
		return nil, fmt.Errorf("failed to load distinct amenities: %w", err)
	}

	opts.Price, err = numericRange(ctx, r.pool, "SELECT MIN(price), MAX(price) FROM properties")
	if err != nil {
		repoLogger.Error("Failed to load price range", err, nil)
		return nil, fmt.Errorf("failed to load price range: %w", err)
	}
	opts.Size, err = numericRange(ctx, r.pool, "SELECT MIN(size), MAX(size) FROM properties")
	if err != nil {
		repoLogger.Error("Failed to load size range", err, nil)
		return nil, fmt.Errorf("failed to load size range: %w", err)
	}

	repoLogger.Debug("Filter options loaded", port.Fields{
		"cities":    len(opts.Cities),
		"amenities": len(opts.Amenities),
	})
	return opts, nil
}

func distinctStrings(ctx context.Context, pool *pgxpool.Pool, query string) ([]string, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// numericRange returns nil when the table is empty, which the aggregate
// signals with NULLs.
func numericRange(ctx context.Context, pool *pgxpool.Pool, query string) (*domain.NumericRange, error) {
	var min, max *float64
	if err := pool.QueryRow(ctx, query).Scan(&min, &max); err != nil {
		return nil, err
	}
	if min == nil || max == nil {
		return nil, nil
	}
	return &domain.NumericRange{Min: *min, Max: *max}, nil
}

package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"

	"github.com/nasser0p/realestate/internal/constants"
	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

// geohashPrecision of 5 buckets locations into roughly city-district cells,
// enough for map grouping without leaking exact coordinates.
const geohashPrecision = 5

const propertyColumns = `id, title, title_ar, description, description_ar, status, type,
	city, city_ar, price, size, bedrooms, bathrooms, parking,
	amenities, amenities_ar, gallery, floor_plan_url,
	lat, lng, address, address_ar, geohash, date_added, is_featured,
	agent_name, agent_name_ar, agent_phone, agent_email`

// PostgresPropertyRepository implements the record store contract for
// property listings.
type PostgresPropertyRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPropertyRepository(pool *pgxpool.Pool) (*PostgresPropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPropertyRepository{pool: pool}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var (
		p           domain.Property
		agentName   *string
		agentNameAR *string
		agentPhone  *string
		agentEmail  *string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.TitleAR, &p.Description, &p.DescriptionAR, &p.Status, &p.Type,
		&p.City, &p.CityAR, &p.Price, &p.Size, &p.Bedrooms, &p.Bathrooms, &p.Parking,
		&p.Amenities, &p.AmenitiesAR, &p.Gallery, &p.FloorPlanURL,
		&p.Location.Lat, &p.Location.Lng, &p.Location.Address, &p.Location.AddressAR,
		&p.Geohash, &p.DateAdded, &p.IsFeatured,
		&agentName, &agentNameAR, &agentPhone, &agentEmail,
	)
	if err != nil {
		return nil, err
	}
	if agentName != nil {
		p.Agent = &domain.AgentContact{Name: *agentName}
		if agentNameAR != nil {
			p.Agent.NameAR = *agentNameAR
		}
		if agentPhone != nil {
			p.Agent.Phone = *agentPhone
		}
		if agentEmail != nil {
			p.Agent.Email = *agentEmail
		}
	}
	return &p, nil
}

func agentColumns(p *domain.Property) (name, nameAR, phone, email *string) {
	if p.Agent == nil {
		return nil, nil, nil, nil
	}
	return &p.Agent.Name, &p.Agent.NameAR, &p.Agent.Phone, &p.Agent.Email
}

// List fetches records matching the exact-field-equality options, newest
// first.
func (r *PostgresPropertyRepository) List(ctx context.Context, opts port.ListOptions) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "List",
	})

	whereClause, args := applyListOptions(opts)
	query := "SELECT " + propertyColumns + " FROM properties" + whereClause + " ORDER BY date_added DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var result []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during property iteration", err, nil)
		return nil, fmt.Errorf("error during property iteration: %w", err)
	}

	repoLogger.Debug("Listed properties", port.Fields{"count": len(result)})
	return result, nil
}

func (r *PostgresPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresPropertyRepository",
		"method":      "GetByID",
		"property_id": id,
	})

	query := "SELECT " + propertyColumns + " FROM properties WHERE id = $1"
	p, err := scanProperty(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Property not found", nil)
			return nil, domain.ErrNotFound
		}
		repoLogger.Error("Failed to get property", err, nil)
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return p, nil
}

// GetByIDs fetches up to the store's batch cap of records per call; larger
// lists must be chunked by the caller.
func (r *PostgresPropertyRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "GetByIDs",
		"id_count":  len(ids),
	})

	if len(ids) == 0 {
		return []domain.Property{}, nil
	}
	if len(ids) > constants.FavoritesFetchBatchSize {
		return nil, fmt.Errorf("id list exceeds the store batch limit of %d", constants.FavoritesFetchBatchSize)
	}

	query := "SELECT " + propertyColumns + " FROM properties WHERE id = ANY($1)"
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		repoLogger.Error("Failed to query properties by ids", err, nil)
		return nil, fmt.Errorf("failed to query properties by ids: %w", err)
	}
	defer rows.Close()

	var result []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			repoLogger.Error("Failed to scan property row", err, nil)
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during property iteration", err, nil)
		return nil, fmt.Errorf("error during property iteration: %w", err)
	}
	return result, nil
}

// Create assigns the id and creation timestamp when unset and inserts the
// record.
func (r *PostgresPropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresPropertyRepository",
		"method":    "Create",
	})

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.DateAdded.IsZero() {
		p.DateAdded = time.Now().UTC()
	}
	p.Geohash = geohash.EncodeWithPrecision(p.Location.Lat, p.Location.Lng, geohashPrecision)

	agentName, agentNameAR, agentPhone, agentEmail := agentColumns(p)

	query := `INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.TitleAR, p.Description, p.DescriptionAR, p.Status, p.Type,
		p.City, p.CityAR, p.Price, p.Size, p.Bedrooms, p.Bathrooms, p.Parking,
		p.Amenities, p.AmenitiesAR, p.Gallery, p.FloorPlanURL,
		p.Location.Lat, p.Location.Lng, p.Location.Address, p.Location.AddressAR,
		p.Geohash, p.DateAdded, p.IsFeatured,
		agentName, agentNameAR, agentPhone, agentEmail,
	)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	repoLogger.Debug("Property created", port.Fields{"property_id": p.ID})
	return p, nil
}

// Update rewrites every mutable field. id and date_added are deliberately
// missing from the SET list, which is what keeps them immutable.
func (r *PostgresPropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresPropertyRepository",
		"method":      "Update",
		"property_id": p.ID,
	})

	p.Geohash = geohash.EncodeWithPrecision(p.Location.Lat, p.Location.Lng, geohashPrecision)
	agentName, agentNameAR, agentPhone, agentEmail := agentColumns(p)

	query := `UPDATE properties SET
		title = $2, title_ar = $3, description = $4, description_ar = $5,
		status = $6, type = $7, city = $8, city_ar = $9,
		price = $10, size = $11, bedrooms = $12, bathrooms = $13, parking = $14,
		amenities = $15, amenities_ar = $16, gallery = $17, floor_plan_url = $18,
		lat = $19, lng = $20, address = $21, address_ar = $22, geohash = $23,
		is_featured = $24,
		agent_name = $25, agent_name_ar = $26, agent_phone = $27, agent_email = $28
		WHERE id = $1`
	cmdTag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, p.TitleAR, p.Description, p.DescriptionAR,
		p.Status, p.Type, p.City, p.CityAR,
		p.Price, p.Size, p.Bedrooms, p.Bathrooms, p.Parking,
		p.Amenities, p.AmenitiesAR, p.Gallery, p.FloorPlanURL,
		p.Location.Lat, p.Location.Lng, p.Location.Address, p.Location.AddressAR, p.Geohash,
		p.IsFeatured,
		agentName, agentNameAR, agentPhone, agentEmail,
	)
	if err != nil {
		repoLogger.Error("Failed to update property", err, nil)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Debug("Property not found for update", nil)
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresPropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PostgresPropertyRepository",
		"method":      "Delete",
		"property_id": id,
	})

	cmdTag, err := r.pool.Exec(ctx, "DELETE FROM properties WHERE id = $1", id)
	if err != nil {
		repoLogger.Error("Failed to delete property", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		repoLogger.Debug("Property not found for deletion", nil)
		return domain.ErrNotFound
	}

	repoLogger.Debug("Property deleted", nil)
	return nil
}

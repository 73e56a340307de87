package usecase

import (
	"context"
	"fmt"

	"github.com/nasser0p/realestate/internal/constants"
	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

// FindPropertiesUseCase runs the discovery pipeline: fetch the candidate
// records, apply the filter predicate, then slice the requested page.
type FindPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewFindPropertiesUseCase(repo port.PropertyRepositoryPort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{repo: repo}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria, lang domain.Language, pageSize, page int) (*domain.PaginatedProperties, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "FindProperties",
		"page":      page,
		"page_size": pageSize,
		"lang":      lang,
	})

	ucLogger.Info("Use case started", nil)

	// The store only understands exact-field-equality, so the scalar
	// criteria are pushed down and everything else is evaluated here.
	opts := port.ListOptions{
		Status: criteria.Status,
		Type:   criteria.Type,
		City:   criteria.City,
	}
	if criteria.Featured != nil && *criteria.Featured {
		opts.FeaturedOnly = true
	}
	items, err := uc.repo.List(ctx, opts)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	filtered := domain.FilterProperties(items, criteria, lang)

	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	slice, totalPages := domain.PaginateProperties(filtered, pageSize, page)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   len(filtered),
		"items_on_page": len(slice),
		"total_pages":   totalPages,
	})

	return &domain.PaginatedProperties{
		Properties: slice,
		TotalCount: len(filtered),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

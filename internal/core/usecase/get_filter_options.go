package usecase

import (
	"context"
	"fmt"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	repo port.FilterOptionsRepositoryPort
}

func NewGetFilterOptionsUseCase(repo port.FilterOptionsRepositoryPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{repo: repo}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetFilterOptions"})

	ucLogger.Info("Use case started", nil)

	options, err := uc.repo.GetFilterOptions(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, fmt.Errorf("failed to get filter options: %w", err)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return options, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/nasser0p/realestate/internal/contextkeys"
	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

// GenerateDescriptionUseCase asks the generative-text collaborator for a
// short marketing paragraph. No retries; the error surfaces to the editor.
type GenerateDescriptionUseCase struct {
	generator port.DescriptionGeneratorPort
}

func NewGenerateDescriptionUseCase(generator port.DescriptionGeneratorPort) *GenerateDescriptionUseCase {
	return &GenerateDescriptionUseCase{generator: generator}
}

func (uc *GenerateDescriptionUseCase) Execute(ctx context.Context, req domain.DescriptionRequest) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GenerateDescription",
		"lang":     req.Language,
		"type":     req.Type,
	})

	ucLogger.Info("Use case started", nil)

	text, err := uc.generator.Generate(ctx, req)
	if err != nil {
		ucLogger.Error("Generator returned an error", err, nil)
		return "", fmt.Errorf("failed to generate description: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"text_length": len(text)})
	return text, nil
}

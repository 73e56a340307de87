package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavoriteFlipsMembership(t *testing.T) {
	repo := &fakeFavoritesRepository{}
	uc := NewToggleFavoriteUseCase(repo)

	userID := uuid.New()
	propertyID := uuid.New()

	isFavorite, err := uc.Execute(context.Background(), userID, propertyID)
	require.NoError(t, err)
	assert.True(t, isFavorite)
	require.Len(t, repo.entries, 1)

	isFavorite, err = uc.Execute(context.Background(), userID, propertyID)
	require.NoError(t, err)
	assert.False(t, isFavorite)
	assert.Empty(t, repo.entries)
}

func TestToggleFavoriteTwiceRestoresOriginalState(t *testing.T) {
	repo := &fakeFavoritesRepository{}
	uc := NewToggleFavoriteUseCase(repo)

	userID := uuid.New()
	propertyID := uuid.New()

	_, err := uc.Execute(context.Background(), userID, propertyID)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), userID, propertyID)
	require.NoError(t, err)

	exists, err := repo.Exists(context.Background(), userID, propertyID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToggleFavoriteAnonymousIsNoOp(t *testing.T) {
	repo := &fakeFavoritesRepository{}
	uc := NewToggleFavoriteUseCase(repo)

	isFavorite, err := uc.Execute(context.Background(), uuid.Nil, uuid.New())
	require.NoError(t, err)
	assert.False(t, isFavorite)
	assert.Empty(t, repo.entries)
}

func TestToggleFavoriteReportsStoredStateOnFailure(t *testing.T) {
	repo := &fakeFavoritesRepository{addErr: errors.New("db down")}
	uc := NewToggleFavoriteUseCase(repo)

	// The add fails, so the reported state must stay "not a favorite".
	isFavorite, err := uc.Execute(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.False(t, isFavorite)
}

func TestIsFavoriteAnonymousIsFalse(t *testing.T) {
	repo := &fakeFavoritesRepository{}
	uc := NewIsFavoriteUseCase(repo)

	isFavorite, err := uc.Execute(context.Background(), uuid.Nil, uuid.New())
	require.NoError(t, err)
	assert.False(t, isFavorite)
}

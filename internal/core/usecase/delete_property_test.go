package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

func TestDeletePropertyRemovesRecordAndMedia(t *testing.T) {
	id := uuid.New()
	repo := &fakePropertyRepository{records: []domain.Property{{
		ID:           id,
		Gallery:      []string{"https://media.test/bucket/g1.jpg", "https://media.test/bucket/g2.jpg"},
		FloorPlanURL: "https://media.test/bucket/plan.jpg",
	}}}
	media := &fakeMediaStorage{}
	events := &fakeListingEvents{}

	uc := NewDeletePropertyUseCase(repo, media, events)
	require.NoError(t, uc.Execute(context.Background(), id))

	assert.Equal(t, []string{"g1.jpg", "g2.jpg", "plan.jpg"}, media.removed)
	assert.Equal(t, []uuid.UUID{id}, repo.deleted)
	assert.Equal(t, []string{port.EventPropertyDeleted}, events.events)
}

func TestDeletePropertyToleratesMediaFailures(t *testing.T) {
	id := uuid.New()
	repo := &fakePropertyRepository{records: []domain.Property{{
		ID:      id,
		Gallery: []string{"https://media.test/bucket/stuck.jpg", "https://media.test/bucket/fine.jpg"},
	}}}
	media := &fakeMediaStorage{
		removeErr: map[string]error{"stuck.jpg": errors.New("object locked")},
	}

	// A stuck object must not block the record deletion.
	uc := NewDeletePropertyUseCase(repo, media, &fakeListingEvents{})
	require.NoError(t, uc.Execute(context.Background(), id))

	assert.Equal(t, []string{"fine.jpg"}, media.removed)
	assert.Equal(t, []uuid.UUID{id}, repo.deleted)
}

func TestDeletePropertyToleratesForeignMediaURLs(t *testing.T) {
	id := uuid.New()
	repo := &fakePropertyRepository{records: []domain.Property{{
		ID:      id,
		Gallery: []string{"https://elsewhere.example/img.jpg"},
	}}}
	media := &fakeMediaStorage{}

	uc := NewDeletePropertyUseCase(repo, media, &fakeListingEvents{})
	require.NoError(t, uc.Execute(context.Background(), id))
	assert.Empty(t, media.removed)
}

func TestDeletePropertyKeepsMediaWhenRowDeleteFails(t *testing.T) {
	id := uuid.New()
	repo := &fakePropertyRepository{
		records:   []domain.Property{{ID: id, Gallery: []string{"https://media.test/bucket/g1.jpg"}}},
		deleteErr: errors.New("connection reset"),
	}
	media := &fakeMediaStorage{}

	// The surviving record must keep valid media references.
	uc := NewDeletePropertyUseCase(repo, media, &fakeListingEvents{})
	require.Error(t, uc.Execute(context.Background(), id))
	assert.Empty(t, media.removed)
}

func TestDeletePropertyUnknownIDFails(t *testing.T) {
	uc := NewDeletePropertyUseCase(&fakePropertyRepository{}, &fakeMediaStorage{}, &fakeListingEvents{})

	err := uc.Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeletePropertyEventFailureIsNotFatal(t *testing.T) {
	id := uuid.New()
	repo := &fakePropertyRepository{records: []domain.Property{{ID: id}}}
	events := &fakeListingEvents{err: errors.New("broker down")}

	uc := NewDeletePropertyUseCase(repo, &fakeMediaStorage{}, events)
	assert.NoError(t, uc.Execute(context.Background(), id))
}

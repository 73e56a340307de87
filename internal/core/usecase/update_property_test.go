package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

func TestUpdatePropertyKeepsIDAndCreationTimestamp(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.New()
	repo := &fakePropertyRepository{records: []domain.Property{{
		ID:        id,
		Title:     "Old Title",
		DateAdded: created,
	}}}
	events := &fakeListingEvents{}

	incoming := &domain.Property{
		ID:        id,
		Title:     "New Title",
		DateAdded: time.Now(), // must be discarded
	}

	uc := NewUpdatePropertyUseCase(repo, events)
	updated, err := uc.Execute(context.Background(), incoming)
	require.NoError(t, err)

	assert.Equal(t, id, updated.ID)
	assert.Equal(t, created, updated.DateAdded)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, []string{port.EventPropertyUpdated}, events.events)
}

func TestUpdatePropertyUnknownIDFails(t *testing.T) {
	uc := NewUpdatePropertyUseCase(&fakePropertyRepository{}, &fakeListingEvents{})

	_, err := uc.Execute(context.Background(), &domain.Property{ID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePropertyPublishesEvent(t *testing.T) {
	repo := &fakePropertyRepository{}
	events := &fakeListingEvents{}

	uc := NewCreatePropertyUseCase(repo, events)
	created, err := uc.Execute(context.Background(), &domain.Property{Title: "Fresh"})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, []string{port.EventPropertyCreated}, events.events)
}

func TestCreatePropertyEventFailureIsNotFatal(t *testing.T) {
	repo := &fakePropertyRepository{}
	events := &fakeListingEvents{err: errors.New("broker down")}

	uc := NewCreatePropertyUseCase(repo, events)
	created, err := uc.Execute(context.Background(), &domain.Property{Title: "Fresh"})
	require.NoError(t, err)
	assert.Len(t, repo.records, 1)
	assert.NotNil(t, created)
}

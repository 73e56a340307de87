package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

func mediaUpload(name string) port.MediaUpload {
	return port.MediaUpload{
		Filename:    name,
		ContentType: "image/jpeg",
		Size:        4,
		Content:     strings.NewReader("data"),
	}
}

func TestUploadPropertyMediaAppendsToGallery(t *testing.T) {
	id := uuid.New()
	repo := &fakePropertyRepository{records: []domain.Property{{
		ID:      id,
		Gallery: []string{"https://media.test/bucket/existing.jpg"},
	}}}
	media := &fakeMediaStorage{}

	uc := NewUploadPropertyMediaUseCase(repo, media)
	urls, err := uc.Execute(context.Background(), id, port.MediaGallery,
		[]port.MediaUpload{mediaUpload("a.jpg"), mediaUpload("b.jpg")})
	require.NoError(t, err)
	require.Len(t, urls, 2)

	require.Len(t, repo.updated, 1)
	assert.Len(t, repo.updated[0].Gallery, 3)
	for _, path := range media.uploads {
		assert.Contains(t, path, "properties/"+id.String()+"/gallery/")
		assert.True(t, strings.HasSuffix(path, ".jpg"))
	}
}

func TestUploadPropertyMediaFloorPlanReplacesURL(t *testing.T) {
	id := uuid.New()
	repo := &fakePropertyRepository{records: []domain.Property{{
		ID:           id,
		FloorPlanURL: "https://media.test/bucket/old-plan.jpg",
	}}}

	uc := NewUploadPropertyMediaUseCase(repo, &fakeMediaStorage{})
	urls, err := uc.Execute(context.Background(), id, port.MediaFloorPlan,
		[]port.MediaUpload{mediaUpload("plan.pdf")})
	require.NoError(t, err)
	require.Len(t, urls, 1)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, urls[0], repo.updated[0].FloorPlanURL)
}

func TestUploadPropertyMediaPartialFailureKeepsUploaded(t *testing.T) {
	id := uuid.New()
	repo := &fakePropertyRepository{records: []domain.Property{{ID: id}}}
	media := &fakeMediaStorage{failAfter: 1}

	uc := NewUploadPropertyMediaUseCase(repo, media)
	urls, err := uc.Execute(context.Background(), id, port.MediaGallery,
		[]port.MediaUpload{mediaUpload("ok.jpg"), mediaUpload("fails.jpg")})
	require.Error(t, err)

	// The first URL made it up and must be recorded despite the failure.
	require.Len(t, urls, 1)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, urls, repo.updated[0].Gallery)
}

func TestUploadPropertyMediaUnknownPropertyFails(t *testing.T) {
	uc := NewUploadPropertyMediaUseCase(&fakePropertyRepository{}, &fakeMediaStorage{})

	_, err := uc.Execute(context.Background(), uuid.New(), port.MediaGallery,
		[]port.MediaUpload{mediaUpload("a.jpg")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

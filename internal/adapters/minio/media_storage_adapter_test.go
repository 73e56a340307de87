package minio_adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, publicBaseURL string) *MinioMediaStorage {
	t.Helper()
	s, err := NewMinioMediaStorage(MinioConfig{
		Endpoint:      "minio.local:9000",
		AccessKey:     "access",
		SecretKey:     "secret",
		Bucket:        "property-media",
		PublicBaseURL: publicBaseURL,
	})
	require.NoError(t, err)
	return s
}

func TestPathFromURLRoundTrip(t *testing.T) {
	s := newTestStorage(t, "https://media.example.com/listings")

	path, err := s.PathFromURL("https://media.example.com/listings/properties/abc/gallery/1_img.jpg")
	require.NoError(t, err)
	assert.Equal(t, "properties/abc/gallery/1_img.jpg", path)
}

func TestPathFromURLRejectsForeignURLs(t *testing.T) {
	s := newTestStorage(t, "https://media.example.com/listings")

	_, err := s.PathFromURL("https://elsewhere.example/img.jpg")
	assert.Error(t, err)

	_, err = s.PathFromURL("https://media.example.com/listings/")
	assert.Error(t, err)
}

func TestDefaultPublicBaseURLUsesEndpointAndBucket(t *testing.T) {
	s := newTestStorage(t, "")

	path, err := s.PathFromURL("http://minio.local:9000/property-media/properties/abc/floorplan/2_plan.pdf")
	require.NoError(t, err)
	assert.Equal(t, "properties/abc/floorplan/2_plan.pdf", path)
}

func TestNewMinioMediaStorageValidatesConfig(t *testing.T) {
	_, err := NewMinioMediaStorage(MinioConfig{Bucket: "b"})
	assert.Error(t, err)

	_, err = NewMinioMediaStorage(MinioConfig{Endpoint: "minio.local:9000"})
	assert.Error(t, err)
}

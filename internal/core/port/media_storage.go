package port

import (
	"context"
	"io"
)

// MediaKind distinguishes the two media groups a listing owns.
type MediaKind string

const (
	MediaGallery   MediaKind = "gallery"
	MediaFloorPlan MediaKind = "floorplan"
)

// MediaUpload is one incoming file destined for the object store.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// MediaStoragePort is the contract for the object store holding gallery
// images and floor plans. Every upload yields a publicly dereferenceable
// URL; deletion needs the original storage path, which must be derivable
// from that URL.
type MediaStoragePort interface {
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (url string, err error)
	Remove(ctx context.Context, path string) error

	// PathFromURL recovers the storage path from a URL this store
	// produced. It fails for URLs pointing elsewhere.
	PathFromURL(url string) (string, error)
}

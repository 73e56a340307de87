package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

// fakePropertyRepository keeps records in a slice and records the GetByIDs
// batch sizes it was asked for.
type fakePropertyRepository struct {
	records []domain.Property

	batchSizes []int
	getByIDErr error
	updateErr  error
	deleteErr  error
	updated    []*domain.Property
	deleted    []uuid.UUID
}

func (f *fakePropertyRepository) List(_ context.Context, opts port.ListOptions) ([]domain.Property, error) {
	var result []domain.Property
	for _, p := range f.records {
		if opts.Status != "" && p.Status != opts.Status {
			continue
		}
		if opts.Type != "" && p.Type != opts.Type {
			continue
		}
		if opts.City != "" && p.City != opts.City {
			continue
		}
		if opts.FeaturedOnly && !p.IsFeatured {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePropertyRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Property, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	for i := range f.records {
		if f.records[i].ID == id {
			p := f.records[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakePropertyRepository) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Property, error) {
	f.batchSizes = append(f.batchSizes, len(ids))
	byID := make(map[uuid.UUID]domain.Property, len(f.records))
	for _, p := range f.records {
		byID[p.ID] = p
	}
	var result []domain.Property
	// Reverse iteration makes the return order deliberately different
	// from the requested order.
	for i := len(ids) - 1; i >= 0; i-- {
		if p, ok := byID[ids[i]]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePropertyRepository) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.records = append(f.records, *p)
	return p, nil
}

func (f *fakePropertyRepository) Update(_ context.Context, p *domain.Property) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, p)
	for i := range f.records {
		if f.records[i].ID == p.ID {
			f.records[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePropertyRepository) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeFavoritesRepository keeps the membership set in memory, preserving
// insertion order.
type fakeFavoritesRepository struct {
	entries []domain.FavoriteItem

	existsErr error
	addErr    error
	removeErr error
}

func (f *fakeFavoritesRepository) Add(_ context.Context, userID, propertyID uuid.UUID) error {
	if f.addErr != nil {
		return f.addErr
	}
	for _, e := range f.entries {
		if e.UserID == userID && e.PropertyID == propertyID {
			return nil
		}
	}
	f.entries = append(f.entries, domain.FavoriteItem{UserID: userID, PropertyID: propertyID})
	return nil
}

func (f *fakeFavoritesRepository) Remove(_ context.Context, userID, propertyID uuid.UUID) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	for i, e := range f.entries {
		if e.UserID == userID && e.PropertyID == propertyID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeFavoritesRepository) Exists(_ context.Context, userID, propertyID uuid.UUID) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, e := range f.entries {
		if e.UserID == userID && e.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavoritesRepository) FindIDsByUser(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for _, e := range f.entries {
		if e.UserID == userID {
			ids = append(ids, e.PropertyID)
		}
	}
	return ids, nil
}

// fakeMediaStorage produces predictable URLs and records removals.
type fakeMediaStorage struct {
	uploads   []string
	removed   []string
	failAfter int // fail uploads after this many successes, 0 disables
	removeErr map[string]error
}

func (f *fakeMediaStorage) Upload(_ context.Context, path string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.failAfter > 0 && len(f.uploads) >= f.failAfter {
		return "", fmt.Errorf("storage unavailable")
	}
	f.uploads = append(f.uploads, path)
	return "https://media.test/bucket/" + path, nil
}

func (f *fakeMediaStorage) Remove(_ context.Context, path string) error {
	if err, ok := f.removeErr[path]; ok {
		return err
	}
	f.removed = append(f.removed, path)
	return nil
}

func (f *fakeMediaStorage) PathFromURL(url string) (string, error) {
	const prefix = "https://media.test/bucket/"
	if !strings.HasPrefix(url, prefix) {
		return "", fmt.Errorf("url %q does not belong to this store", url)
	}
	return strings.TrimPrefix(url, prefix), nil
}

// fakeListingEvents records published events.
type fakeListingEvents struct {
	events []string
	err    error
}

func (f *fakeListingEvents) Publish(_ context.Context, event string, _ uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

// fakeDescriptionGenerator echoes a canned paragraph.
type fakeDescriptionGenerator struct {
	lastRequest domain.DescriptionRequest
	result      string
	err         error
}

func (f *fakeDescriptionGenerator) Generate(_ context.Context, req domain.DescriptionRequest) (string, error) {
	f.lastRequest = req
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

package port

import (
	"context"

	"github.com/google/uuid"
)

// Listing lifecycle event names.
const (
	EventPropertyCreated = "property.created"
	EventPropertyUpdated = "property.updated"
	EventPropertyDeleted = "property.deleted"
)

// ListingEventsPort publishes listing lifecycle events for downstream
// consumers. Publish failures must not fail the owning operation; callers
// log and continue.
type ListingEventsPort interface {
	Publish(ctx context.Context, event string, propertyID uuid.UUID) error
}

package ports

import (
	"context"

	"sportsbuddy-api/models"
)

// EventStore persists events. Membership changes are applied by the store
// itself so concurrent joins and leaves never overwrite each other.
type EventStore interface {
	// Create assigns ID and CreatedAt and returns the new id.
	Create(ctx context.Context, event *models.Event) (string, error)
	Read(ctx context.Context, id string) (*models.Event, error)
	// Update applies every field of the patch or none of them.
	Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter models.EventFilter, order models.EventOrder) ([]*models.Event, error)
	AddMember(ctx context.Context, id, uid string) (*models.Event, error)
	RemoveMember(ctx context.Context, id, uid string) (*models.Event, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Notifier delivers notices to the user. It never fails from the caller's point of view.
type Notifier interface {
	Notify(ctx context.Context, notice models.Notice)
}

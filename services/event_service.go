// File: /services/event_service.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sportsbuddy-api/models"
	"sportsbuddy-api/services/ports"
)

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

// EventService owns the event lifecycle: Upcoming, then Completed or deleted.
type EventService struct {
	store ports.EventStore
	now   Clock
	log   *slog.Logger
}

func NewEventService(store ports.EventStore, now Clock, log *slog.Logger) *EventService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &EventService{store: store, now: now, log: log}
}

// Create validates the draft and stores a new upcoming event owned by user
func (s *EventService) Create(ctx context.Context, draft models.EventDraft, user *models.Identity) (*models.Event, error) {
	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if err := Authorize(user, nil, models.ActionCreate, s.now()); err != nil {
		return nil, err
	}

	event := &models.Event{
		Name:         draft.Name,
		Sport:        draft.Sport,
		Location:     draft.Location,
		Description:  draft.Description,
		EventTime:    draft.EventTime.UTC(),
		CreatorID:    user.UID,
		CreatorEmail: user.Email,
		Status:       models.StatusUpcoming,
		JoinedUsers:  []string{},
	}
	if _, err := s.store.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event created", "event_id", event.ID, "creator_id", user.UID, "sport", event.Sport)
	return event, nil
}

// Get returns the stored event
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	return s.store.Read(ctx, id)
}

// Edit applies a partial update. Status is changed only through Complete.
func (s *EventService) Edit(ctx context.Context, id string, patch models.EventPatch, user *models.Identity) (*models.Event, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", models.ErrValidation)
	}
	if patch.Status != nil {
		return nil, fmt.Errorf("%w: status cannot be edited", models.ErrValidation)
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.EventTime != nil {
		utc := patch.EventTime.UTC()
		patch.EventTime = &utc
	}

	event, err := s.store.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(user, event, models.ActionEdit, s.now()); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event updated", "event_id", id, "user_id", user.UID)
	return updated, nil
}

// Complete marks the event completed ahead of its scheduled time
func (s *EventService) Complete(ctx context.Context, id string, user *models.Identity) (*models.Event, error) {
	event, err := s.store.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(user, event, models.ActionComplete, s.now()); err != nil {
		return nil, err
	}

	status := models.StatusCompleted
	updated, err := s.store.Update(ctx, id, models.EventPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event completed", "event_id", id, "user_id", user.UID)
	return updated, nil
}

// Delete removes the event permanently
func (s *EventService) Delete(ctx context.Context, id string, user *models.Identity) (*models.Event, error) {
	event, err := s.store.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(user, event, models.ActionDelete, s.now()); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "event deleted", "event_id", id, "user_id", user.UID)
	return event, nil
}

// File: /services/catalog_service.go
package services

import (
	"context"
	"iter"
	"time"

	"sportsbuddy-api/models"
	"sportsbuddy-api/services/ports"
)

var byEventTime = models.EventOrder{Field: models.OrderByEventTime}

// CatalogService builds the event listings shown to users. Every call reads
// the store again; nothing is cached between calls.
type CatalogService struct {
	store ports.EventStore
}

func NewCatalogService(store ports.EventStore) *CatalogService {
	return &CatalogService{store: store}
}

// Upcoming lists events that are still open at now, soonest first.
func (s *CatalogService) Upcoming(ctx context.Context, now time.Time, user *models.Identity) (iter.Seq[models.EventView], error) {
	events, err := s.store.List(ctx, models.EventFilter{}, byEventTime)
	if err != nil {
		return nil, err
	}
	return views(events, user, now, func(e *models.Event) bool {
		return models.EffectiveStatus(e, now) == models.StatusUpcoming
	}), nil
}

// All lists every event regardless of status. Admins only.
func (s *CatalogService) All(ctx context.Context, now time.Time, user *models.Identity) (iter.Seq[models.EventView], error) {
	if !user.IsAdmin() {
		return nil, denied("Access denied. Admins only.")
	}
	events, err := s.store.List(ctx, models.EventFilter{}, byEventTime)
	if err != nil {
		return nil, err
	}
	return views(events, user, now, nil), nil
}

// Joined lists the events user has joined, in any status.
func (s *CatalogService) Joined(ctx context.Context, now time.Time, user *models.Identity) (iter.Seq[models.EventView], error) {
	if user == nil {
		return nil, denied("sign in required")
	}
	events, err := s.store.List(ctx, models.EventFilter{MemberID: user.UID}, byEventTime)
	if err != nil {
		return nil, err
	}
	return views(events, user, now, nil), nil
}

// View returns the display state of a single event.
func (s *CatalogService) View(ctx context.Context, id string, now time.Time, user *models.Identity) (models.EventView, error) {
	event, err := s.store.Read(ctx, id)
	if err != nil {
		return models.EventView{}, err
	}
	return NewEventView(event, user, now), nil
}

func views(events []*models.Event, user *models.Identity, now time.Time, keep func(*models.Event) bool) iter.Seq[models.EventView] {
	return func(yield func(models.EventView) bool) {
		for _, e := range events {
			if keep != nil && !keep(e) {
				continue
			}
			if !yield(NewEventView(e, user, now)) {
				return
			}
		}
	}
}

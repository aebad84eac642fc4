// File: /services/membership_service.go
package services

import (
	"context"
	"log/slog"
	"time"

	"sportsbuddy-api/models"
	"sportsbuddy-api/services/ports"
)

// MembershipService adds and removes participants. The membership change
// itself is a store-side set operation, never a read-modify-write of the list.
type MembershipService struct {
	store ports.EventStore
	now   Clock
	log   *slog.Logger
}

func NewMembershipService(store ports.EventStore, now Clock, log *slog.Logger) *MembershipService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &MembershipService{store: store, now: now, log: log}
}

func (s *MembershipService) Join(ctx context.Context, eventID string, user *models.Identity) (*models.Event, error) {
	event, err := s.store.Read(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(user, event, models.ActionJoin, s.now()); err != nil {
		return nil, err
	}

	updated, err := s.store.AddMember(ctx, eventID, user.UID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user joined event", "event_id", eventID, "user_id", user.UID, "participants", len(updated.JoinedUsers))
	return updated, nil
}

func (s *MembershipService) Leave(ctx context.Context, eventID string, user *models.Identity) (*models.Event, error) {
	event, err := s.store.Read(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(user, event, models.ActionLeave, s.now()); err != nil {
		return nil, err
	}

	updated, err := s.store.RemoveMember(ctx, eventID, user.UID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "user left event", "event_id", eventID, "user_id", user.UID, "participants", len(updated.JoinedUsers))
	return updated, nil
}

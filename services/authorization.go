// File: /services/authorization.go
package services

import (
	"fmt"
	"time"

	"sportsbuddy-api/models"
)

// Authorize decides whether user may perform action on event at time now.
// It reads nothing but its arguments. event may be nil only for ActionCreate.
func Authorize(user *models.Identity, event *models.Event, action models.Action, now time.Time) error {
	if user == nil {
		return denied("sign in required")
	}

	if action == models.ActionCreate {
		if !user.IsAdmin() {
			return denied("Access denied. Admins only.")
		}
		return nil
	}

	if event == nil {
		return models.ErrNotFound
	}

	isCreator := event.CreatorID == user.UID
	completed := models.EffectiveStatus(event, now) == models.StatusCompleted

	switch action {
	case models.ActionEdit, models.ActionDelete:
		if !isCreator && !user.IsAdmin() {
			return denied("only the creator or an admin can %s this event", action)
		}
	case models.ActionComplete:
		if !isCreator && !user.IsAdmin() {
			return denied("only the creator or an admin can complete this event")
		}
		if completed {
			return denied("event is already completed")
		}
	case models.ActionJoin:
		if isCreator {
			return denied("you cannot join your own event")
		}
		if completed {
			return denied("event is already completed")
		}
		if event.HasMember(user.UID) {
			return denied("you have already joined this event")
		}
	case models.ActionLeave:
		if !event.HasMember(user.UID) {
			return denied("you have not joined this event")
		}
	default:
		return denied("unknown action %q", action)
	}
	return nil
}

// PermittedActions lists the event actions user may take right now.
func PermittedActions(user *models.Identity, event *models.Event, now time.Time) []models.Action {
	actions := make([]models.Action, 0, len(models.EventActions))
	for _, a := range models.EventActions {
		if Authorize(user, event, a, now) == nil {
			actions = append(actions, a)
		}
	}
	return actions
}

// NewEventView derives the per-user display state of event.
func NewEventView(event *models.Event, user *models.Identity, now time.Time) models.EventView {
	view := models.EventView{
		Event:            event,
		EffectiveStatus:  models.EffectiveStatus(event, now),
		ParticipantCount: len(event.JoinedUsers),
		Actions:          PermittedActions(user, event, now),
	}
	if user != nil {
		view.Joined = event.HasMember(user.UID)
		view.IsCreator = event.CreatorID == user.UID
	}
	return view
}

func denied(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{models.ErrPermissionDenied}, args...)...)
}

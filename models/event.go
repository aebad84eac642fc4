// File: /models/event.go
package models

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	return s == StatusUpcoming || s == StatusCompleted
}

type Event struct {
	ID           string      `json:"id" gorm:"primaryKey;size:191"`
	Name         string      `json:"name" gorm:"not null;size:255"`
	Sport        string      `json:"sport" gorm:"not null;size:100;index"`
	Location     string      `json:"location" gorm:"not null;size:255"`
	Description  string      `json:"description" gorm:"type:text"`
	EventTime    time.Time   `json:"event_time" gorm:"not null;index"`
	CreatorID    string      `json:"creator_id" gorm:"not null;size:191;index"`
	CreatorEmail string      `json:"creator_email" gorm:"size:255"`
	Status       EventStatus `json:"status" gorm:"not null;size:20;default:upcoming"`
	JoinedUsers  []string    `json:"joined_users" gorm:"-"`
	CreatedAt    time.Time   `json:"created_at"`

	Participants []EventParticipant `json:"-" gorm:"foreignKey:EventID"`
}

// EventParticipant is one element of an event's joined-user set.
// The (event_id, user_id) pair is unique.
type EventParticipant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   string    `json:"event_id" gorm:"not null;size:191;uniqueIndex:idx_event_participants_event_user"`
	UserID    string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:idx_event_participants_event_user"`
	CreatedAt time.Time `json:"created_at"`
}

// EffectiveStatus is the status shown to users and used for gating.
// An event whose time has passed counts as completed even if nobody completed it.
func EffectiveStatus(e *Event, now time.Time) EventStatus {
	if e.Status == StatusCompleted || e.EventTime.Before(now) {
		return StatusCompleted
	}
	return StatusUpcoming
}

// HasMember reports whether uid is in the joined-user set
func (e *Event) HasMember(uid string) bool {
	return slices.Contains(e.JoinedUsers, uid)
}

func (e *Event) Clone() *Event {
	c := *e
	c.JoinedUsers = slices.Clone(e.JoinedUsers)
	c.Participants = nil
	return &c
}

// EventDraft holds the caller-supplied fields of a new event.
type EventDraft struct {
	Name        string
	Sport       string
	Location    string
	Description string
	EventTime   time.Time
}

func (d *EventDraft) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Sport = strings.TrimSpace(d.Sport)
	d.Location = strings.TrimSpace(d.Location)
	d.Description = strings.TrimSpace(d.Description)
}

func (d EventDraft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "Event Name")
	}
	if strings.TrimSpace(d.Sport) == "" {
		missing = append(missing, "Sport")
	}
	if strings.TrimSpace(d.Location) == "" {
		missing = append(missing, "Location")
	}
	if d.EventTime.IsZero() {
		missing = append(missing, "Date & Time")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: please fill in all required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// EventPatch is a partial update. Nil fields are left untouched.
// Creator, membership and creation time are not part of it.
type EventPatch struct {
	Name        *string      `json:"name,omitempty"`
	Sport       *string      `json:"sport,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Description *string      `json:"description,omitempty"`
	EventTime   *time.Time   `json:"event_time,omitempty"`
	Status      *EventStatus `json:"status,omitempty"`
}

func (p EventPatch) Empty() bool {
	return p.Name == nil && p.Sport == nil && p.Location == nil &&
		p.Description == nil && p.EventTime == nil && p.Status == nil
}

// Validate checks every field the patch sets. Required fields may not be blanked.
func (p *EventPatch) Validate() error {
	required := []struct {
		label string
		field **string
	}{
		{"Event Name", &p.Name},
		{"Sport", &p.Sport},
		{"Location", &p.Location},
	}
	for _, r := range required {
		if *r.field == nil {
			continue
		}
		trimmed := strings.TrimSpace(**r.field)
		if trimmed == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrValidation, r.label)
		}
		*r.field = &trimmed
	}
	if p.Description != nil {
		trimmed := strings.TrimSpace(*p.Description)
		p.Description = &trimmed
	}
	if p.EventTime != nil && p.EventTime.IsZero() {
		return fmt.Errorf("%w: Date & Time is invalid", ErrValidation)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *p.Status)
	}
	return nil
}

// Apply copies the set fields onto e.
func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Sport != nil {
		e.Sport = *p.Sport
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.EventTime != nil {
		e.EventTime = *p.EventTime
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
}

// Columns returns the patch as a column map for gorm Updates.
func (p EventPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Sport != nil {
		cols["sport"] = *p.Sport
	}
	if p.Location != nil {
		cols["location"] = *p.Location
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.EventTime != nil {
		cols["event_time"] = *p.EventTime
	}
	if p.Status != nil {
		cols["status"] = string(*p.Status)
	}
	return cols
}

type OrderField string

const (
	OrderByEventTime OrderField = "event_time"
	OrderByCreatedAt OrderField = "created_at"
)

type EventOrder struct {
	Field OrderField
	Desc  bool
}

// EventFilter narrows a listing. Empty fields match everything.
type EventFilter struct {
	CreatorID string
	MemberID  string
	Status    EventStatus
}

func (f EventFilter) Match(e *Event) bool {
	if f.CreatorID != "" && e.CreatorID != f.CreatorID {
		return false
	}
	if f.MemberID != "" && !e.HasMember(f.MemberID) {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	return true
}

// SortEvents orders events in place. Ties fall back to id so listings are stable.
func SortEvents(events []*Event, order EventOrder) {
	slices.SortStableFunc(events, func(a, b *Event) int {
		var ta, tb time.Time
		if order.Field == OrderByCreatedAt {
			ta, tb = a.CreatedAt, b.CreatedAt
		} else {
			ta, tb = a.EventTime, b.EventTime
		}
		c := ta.Compare(tb)
		if c == 0 {
			c = strings.Compare(a.ID, b.ID)
		}
		if order.Desc {
			return -c
		}
		return c
	})
}

// NormalizeMembers sorts the member set and drops duplicates.
func NormalizeMembers(members []string) []string {
	out := slices.Clone(members)
	slices.Sort(out)
	out = slices.Compact(out)
	if out == nil {
		out = []string{}
	}
	return out
}

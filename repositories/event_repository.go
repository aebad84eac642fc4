// File: /repositories/event_repository.go
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sportsbuddy-api/models"
)

// EventRepository stores events in MySQL. The joined-user set lives in
// event_participants with a unique (event_id, user_id) key.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event. CreatedAt is read from the database server clock.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (string, error) {
	stored := event.Clone()
	stored.ID = uuid.New().String()
	members := models.NormalizeMembers(stored.JoinedUsers)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var now time.Time
		if err := tx.Raw("SELECT UTC_TIMESTAMP(3)").Row().Scan(&now); err != nil {
			return err
		}
		stored.CreatedAt = now.UTC()

		if err := tx.Omit(clause.Associations).Create(stored).Error; err != nil {
			return err
		}
		for _, uid := range members {
			if err := tx.Create(&models.EventParticipant{EventID: stored.ID, UserID: uid}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", storeError("create event", err)
	}

	event.ID = stored.ID
	event.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

// Read retrieves one event with its joined users
func (r *EventRepository) Read(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Preload("Participants").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, storeError("read event", err)
	}
	return withMembers(&event), nil
}

// Update applies the patch in a single transaction
func (r *EventRepository) Update(ctx context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&current, "id = ?", id).Error; err != nil {
			return err
		}
		cols := patch.Columns()
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&models.Event{}).Where("id = ?", id).Updates(cols).Error
	})
	if err != nil {
		return nil, storeError("update event", err)
	}
	return r.Read(ctx, id)
}

// Delete removes the event and its participant rows
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Event{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("event_id = ?", id).Delete(&models.EventParticipant{}).Error
	})
	if err != nil {
		return storeError("delete event", err)
	}
	return nil
}

// List returns events matching the filter in the requested order
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter, order models.EventOrder) ([]*models.Event, error) {
	query := r.db.WithContext(ctx).Model(&models.Event{}).Preload("Participants")

	if filter.CreatorID != "" {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.MemberID != "" {
		query = query.Where("id IN (?)",
			r.db.Model(&models.EventParticipant{}).Select("event_id").Where("user_id = ?", filter.MemberID))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	column := "event_time"
	if order.Field == models.OrderByCreatedAt {
		column = "created_at"
	}
	query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: order.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: order.Desc})

	var rows []models.Event
	if err := query.Find(&rows).Error; err != nil {
		return nil, storeError("list events", err)
	}

	events := make([]*models.Event, 0, len(rows))
	for i := range rows {
		events = append(events, withMembers(&rows[i]))
	}
	return events, nil
}

// AddMember inserts the participant row unless it already exists
func (r *EventRepository) AddMember(ctx context.Context, id, uid string) (*models.Event, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEventShared(tx, id); err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.EventParticipant{EventID: id, UserID: uid}).Error
	})
	if err != nil {
		return nil, storeError("join event", err)
	}
	return r.Read(ctx, id)
}

// RemoveMember deletes the participant row if present
func (r *EventRepository) RemoveMember(ctx context.Context, id, uid string) (*models.Event, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockEventShared(tx, id); err != nil {
			return err
		}
		return tx.Where("event_id = ? AND user_id = ?", id, uid).Delete(&models.EventParticipant{}).Error
	})
	if err != nil {
		return nil, storeError("leave event", err)
	}
	return r.Read(ctx, id)
}

// Helper functions

// lockEventShared keeps the event row from being deleted while a participant row is written.
func lockEventShared(tx *gorm.DB, id string) error {
	var event models.Event
	return tx.Clauses(clause.Locking{Strength: "SHARE"}).Select("id").First(&event, "id = ?", id).Error
}

func withMembers(e *models.Event) *models.Event {
	members := make([]string, 0, len(e.Participants))
	for _, p := range e.Participants {
		members = append(members, p.UserID)
	}
	e.JoinedUsers = models.NormalizeMembers(members)
	e.Participants = nil
	return e
}

func storeError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", models.ErrNotFound, op)
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrPersistence):
		return err
	}
	return fmt.Errorf("%w: %s: %w", models.ErrPersistence, op, err)
}

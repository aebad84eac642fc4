// File: /repositories/memory_repository.go
package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"sportsbuddy-api/models"
)

// MemoryEventRepository keeps events in process memory. Each operation holds
// the lock for its whole duration, so set operations are atomic.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]*models.Event
	now    func() time.Time
}

func NewMemoryEventRepository(now func() time.Time) *MemoryEventRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryEventRepository{
		events: make(map[string]*models.Event),
		now:    now,
	}
}

func (r *MemoryEventRepository) Create(_ context.Context, event *models.Event) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := event.Clone()
	stored.ID = uuid.New().String()
	stored.CreatedAt = r.now().UTC()
	stored.JoinedUsers = models.NormalizeMembers(stored.JoinedUsers)
	r.events[stored.ID] = stored

	event.ID = stored.ID
	event.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

func (r *MemoryEventRepository) Read(_ context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return e.Clone(), nil
}

func (r *MemoryEventRepository) Update(_ context.Context, id string, patch models.EventPatch) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	patch.Apply(e)
	return e.Clone(), nil
}

func (r *MemoryEventRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	delete(r.events, id)
	return nil
}

func (r *MemoryEventRepository) List(_ context.Context, filter models.EventFilter, order models.EventOrder) ([]*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*models.Event, 0, len(r.events))
	for _, e := range r.events {
		if filter.Match(e) {
			events = append(events, e.Clone())
		}
	}
	models.SortEvents(events, order)
	return events, nil
}

func (r *MemoryEventRepository) AddMember(_ context.Context, id, uid string) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	e.JoinedUsers = models.NormalizeMembers(append(e.JoinedUsers, uid))
	return e.Clone(), nil
}

func (r *MemoryEventRepository) RemoveMember(_ context.Context, id, uid string) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	kept := e.JoinedUsers[:0:0]
	for _, m := range e.JoinedUsers {
		if m != uid {
			kept = append(kept, m)
		}
	}
	e.JoinedUsers = models.NormalizeMembers(kept)
	return e.Clone(), nil
}

type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
	now     func() time.Time
}

func NewMemoryUserRepository(now func() time.Time) *MemoryUserRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryUserRepository{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
		now:     now,
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, taken := r.byEmail[email]; taken {
		return fmt.Errorf("%w: %s", models.ErrEmailTaken, user.Email)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = r.now().UTC()
	user.UpdatedAt = user.CreatedAt

	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[email] = user.ID
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, id)
	}
	found := *u
	return &found, nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[strings.ToLower(email)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUserNotFound, email)
	}
	return r.GetByID(ctx, id)
}

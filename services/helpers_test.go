package services

import (
	"context"
	"io"
	"iter"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sportsbuddy-api/models"
	"sportsbuddy-api/repositories"
)

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

var (
	admin = &models.Identity{UID: "admin-1", Email: "admin@example.com", Role: models.RoleAdmin}
	alice = &models.Identity{UID: "alice", Email: "alice@example.com", Role: models.RoleUser}
	bob   = &models.Identity{UID: "bob", Email: "bob@example.com", Role: models.RoleUser}
)

func fixedClock() time.Time { return testNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	store   *repositories.MemoryEventRepository
	events  *EventService
	members *MembershipService
	catalog *CatalogService
}

func newFixture() *fixture {
	store := repositories.NewMemoryEventRepository(fixedClock)
	return &fixture{
		store:   store,
		events:  NewEventService(store, fixedClock, discardLogger()),
		members: NewMembershipService(store, fixedClock, discardLogger()),
		catalog: NewCatalogService(store),
	}
}

func (f *fixture) createEvent(t *testing.T, name string, at time.Time) *models.Event {
	t.Helper()
	e, err := f.events.Create(context.Background(), models.EventDraft{
		Name:      name,
		Sport:     "Football",
		Location:  "Bengaluru",
		EventTime: at,
	}, admin)
	require.NoError(t, err)
	return e
}

func collect(seq iter.Seq[models.EventView]) []models.EventView {
	var out []models.EventView
	for v := range seq {
		out = append(out, v)
	}
	return out
}

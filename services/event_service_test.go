package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sportsbuddy-api/models"
	"sportsbuddy-api/services/ports/mocks"
)

func TestEventService_Create_Success(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	e, err := f.events.Create(ctx, models.EventDraft{
		Name:        "  Sunday Futsal ",
		Sport:       "Football",
		Location:    "Bengaluru",
		Description: "5-a-side",
		EventTime:   testNow.Add(24 * time.Hour),
	}, admin)

	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Sunday Futsal", e.Name)

	stored, err := f.store.Read(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUpcoming, stored.Status)
	assert.Empty(t, stored.JoinedUsers)
	assert.Equal(t, admin.UID, stored.CreatorID)
	assert.Equal(t, admin.Email, stored.CreatorEmail)
	assert.Equal(t, testNow, stored.CreatedAt)
}

func TestEventService_Create_NonAdminDenied(t *testing.T) {
	f := newFixture()

	_, err := f.events.Create(context.Background(), models.EventDraft{
		Name: "Chess", Sport: "Chess", Location: "Pune", EventTime: testNow.Add(time.Hour),
	}, alice)

	assert.ErrorIs(t, err, models.ErrPermissionDenied)
	events, _ := f.store.List(context.Background(), models.EventFilter{}, models.EventOrder{})
	assert.Empty(t, events)
}

func TestEventService_Create_ValidationError(t *testing.T) {
	f := newFixture()

	_, err := f.events.Create(context.Background(), models.EventDraft{Name: "No sport"}, admin)

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestEventService_Create_PersistenceError(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewEventService(store, fixedClock, discardLogger())

	store.EXPECT().Create(mock.Anything, mock.Anything).Return("", models.ErrPersistence)

	_, err := svc.Create(context.Background(), models.EventDraft{
		Name: "Run", Sport: "Running", Location: "Goa", EventTime: testNow.Add(time.Hour),
	}, admin)

	assert.ErrorIs(t, err, models.ErrPersistence)
}

func TestEventService_Edit_ByCreator(t *testing.T) {
	f := newFixture()
	e := f.createEvent(t, "Match", testNow.Add(time.Hour))

	loc := "Chennai"
	updated, err := f.events.Edit(context.Background(), e.ID, models.EventPatch{Location: &loc}, admin)

	require.NoError(t, err)
	assert.Equal(t, "Chennai", updated.Location)
	assert.Equal(t, "Match", updated.Name)
}

func TestEventService_Edit_DeniedLeavesEventUnchanged(t *testing.T) {
	f := newFixture()
	e := f.createEvent(t, "Match", testNow.Add(time.Hour))

	name := "Hijacked"
	_, err := f.events.Edit(context.Background(), e.ID, models.EventPatch{Name: &name}, alice)

	assert.ErrorIs(t, err, models.ErrPermissionDenied)
	stored, _ := f.store.Read(context.Background(), e.ID)
	assert.Equal(t, "Match", stored.Name)
}

func TestEventService_Edit_RejectsStatusAndEmptyPatch(t *testing.T) {
	f := newFixture()
	e := f.createEvent(t, "Match", testNow.Add(time.Hour))

	status := models.StatusUpcoming
	_, err := f.events.Edit(context.Background(), e.ID, models.EventPatch{Status: &status}, admin)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = f.events.Edit(context.Background(), e.ID, models.EventPatch{}, admin)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestEventService_Edit_InvalidFieldAppliesNothing(t *testing.T) {
	f := newFixture()
	e := f.createEvent(t, "Match", testNow.Add(time.Hour))

	name, sport := "Renamed", ""
	_, err := f.events.Edit(context.Background(), e.ID, models.EventPatch{Name: &name, Sport: &sport}, admin)

	assert.ErrorIs(t, err, models.ErrValidation)
	stored, _ := f.store.Read(context.Background(), e.ID)
	assert.Equal(t, "Match", stored.Name)
}

func TestEventService_Edit_NotFound(t *testing.T) {
	f := newFixture()
	name := "x"

	_, err := f.events.Edit(context.Background(), "missing", models.EventPatch{Name: &name}, admin)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEventService_Complete(t *testing.T) {
	f := newFixture()
	e := f.createEvent(t, "Match", testNow.Add(time.Hour))

	done, err := f.events.Complete(context.Background(), e.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, done.Status)

	_, err = f.events.Complete(context.Background(), e.ID, admin)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)
}

func TestEventService_Complete_PersistenceErrorOnUpdate(t *testing.T) {
	store := mocks.NewMockEventStore(t)
	svc := NewEventService(store, fixedClock, discardLogger())
	e := &models.Event{ID: "e1", CreatorID: admin.UID, Status: models.StatusUpcoming, EventTime: testNow.Add(time.Hour)}

	store.EXPECT().Read(mock.Anything, "e1").Return(e, nil)
	store.EXPECT().Update(mock.Anything, "e1", mock.MatchedBy(func(p models.EventPatch) bool {
		return p.Status != nil && *p.Status == models.StatusCompleted
	})).Return(nil, errors.Join(models.ErrPersistence, errors.New("connection reset")))

	_, err := svc.Complete(context.Background(), "e1", admin)

	assert.ErrorIs(t, err, models.ErrPersistence)
}

func TestEventService_Delete(t *testing.T) {
	f := newFixture()
	e := f.createEvent(t, "Match", testNow.Add(time.Hour))

	_, err := f.events.Delete(context.Background(), e.ID, alice)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)

	_, err = f.events.Delete(context.Background(), e.ID, admin)
	require.NoError(t, err)

	_, err = f.events.Get(context.Background(), e.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = f.events.Delete(context.Background(), e.ID, admin)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEventService_Delete_CompletedEvent(t *testing.T) {
	f := newFixture()
	e := f.createEvent(t, "Old match", testNow.Add(-time.Hour))

	_, err := f.events.Delete(context.Background(), e.ID, admin)

	assert.NoError(t, err)
}

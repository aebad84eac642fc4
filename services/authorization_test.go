package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sportsbuddy-api/models"
)

func TestAuthorize_Create(t *testing.T) {
	assert.NoError(t, Authorize(admin, nil, models.ActionCreate, testNow))
	assert.ErrorIs(t, Authorize(alice, nil, models.ActionCreate, testNow), models.ErrPermissionDenied)
	assert.ErrorIs(t, Authorize(nil, nil, models.ActionCreate, testNow), models.ErrPermissionDenied)
}

func TestAuthorize_NonCreatorNonAdminDeniedInEveryState(t *testing.T) {
	states := map[string]*models.Event{
		"upcoming":        {CreatorID: "carol", Status: models.StatusUpcoming, EventTime: testNow.Add(time.Hour)},
		"past":            {CreatorID: "carol", Status: models.StatusUpcoming, EventTime: testNow.Add(-time.Hour)},
		"completed":       {CreatorID: "carol", Status: models.StatusCompleted, EventTime: testNow.Add(time.Hour)},
		"joined upcoming": {CreatorID: "carol", Status: models.StatusUpcoming, EventTime: testNow.Add(time.Hour), JoinedUsers: []string{"alice"}},
	}
	for name, e := range states {
		for _, action := range []models.Action{models.ActionEdit, models.ActionComplete, models.ActionDelete} {
			t.Run(name+"/"+string(action), func(t *testing.T) {
				assert.ErrorIs(t, Authorize(alice, e, action, testNow), models.ErrPermissionDenied)
			})
		}
	}
}

func TestAuthorize_CreatorAndAdminMayManage(t *testing.T) {
	e := &models.Event{CreatorID: "alice", Status: models.StatusUpcoming, EventTime: testNow.Add(time.Hour)}

	for _, user := range []*models.Identity{alice, admin} {
		for _, action := range []models.Action{models.ActionEdit, models.ActionComplete, models.ActionDelete} {
			assert.NoError(t, Authorize(user, e, action, testNow), "%s %s", user.UID, action)
		}
	}
}

func TestAuthorize_CompleteRequiresUpcoming(t *testing.T) {
	past := &models.Event{CreatorID: "alice", Status: models.StatusUpcoming, EventTime: testNow.Add(-time.Hour)}
	done := &models.Event{CreatorID: "alice", Status: models.StatusCompleted, EventTime: testNow.Add(time.Hour)}

	assert.ErrorIs(t, Authorize(admin, past, models.ActionComplete, testNow), models.ErrPermissionDenied)
	assert.ErrorIs(t, Authorize(alice, done, models.ActionComplete, testNow), models.ErrPermissionDenied)
	assert.NoError(t, Authorize(admin, done, models.ActionDelete, testNow))
	assert.NoError(t, Authorize(alice, done, models.ActionEdit, testNow))
}

func TestAuthorize_Join(t *testing.T) {
	open := &models.Event{CreatorID: "alice", Status: models.StatusUpcoming, EventTime: testNow.Add(time.Hour)}
	joined := &models.Event{CreatorID: "alice", Status: models.StatusUpcoming, EventTime: testNow.Add(time.Hour), JoinedUsers: []string{"bob"}}
	past := &models.Event{CreatorID: "alice", Status: models.StatusUpcoming, EventTime: testNow.Add(-time.Second)}

	assert.NoError(t, Authorize(bob, open, models.ActionJoin, testNow))
	assert.NoError(t, Authorize(admin, open, models.ActionJoin, testNow))
	assert.ErrorIs(t, Authorize(alice, open, models.ActionJoin, testNow), models.ErrPermissionDenied)
	assert.ErrorIs(t, Authorize(bob, joined, models.ActionJoin, testNow), models.ErrPermissionDenied)
	assert.ErrorIs(t, Authorize(bob, past, models.ActionJoin, testNow), models.ErrPermissionDenied)
	assert.ErrorIs(t, Authorize(nil, open, models.ActionJoin, testNow), models.ErrPermissionDenied)
}

func TestAuthorize_Leave(t *testing.T) {
	joined := &models.Event{CreatorID: "alice", Status: models.StatusCompleted, EventTime: testNow.Add(-time.Hour), JoinedUsers: []string{"bob"}}

	assert.NoError(t, Authorize(bob, joined, models.ActionLeave, testNow))
	assert.ErrorIs(t, Authorize(alice, joined, models.ActionLeave, testNow), models.ErrPermissionDenied)
}

func TestAuthorize_MissingEvent(t *testing.T) {
	assert.ErrorIs(t, Authorize(admin, nil, models.ActionEdit, testNow), models.ErrNotFound)
}

func TestPermittedActions(t *testing.T) {
	e := &models.Event{CreatorID: "alice", Status: models.StatusUpcoming, EventTime: testNow.Add(time.Hour), JoinedUsers: []string{"bob"}}

	assert.Equal(t, []models.Action{models.ActionLeave}, PermittedActions(bob, e, testNow))
	assert.Equal(t, []models.Action{models.ActionEdit, models.ActionComplete, models.ActionDelete}, PermittedActions(alice, e, testNow))
	assert.Equal(t, []models.Action{models.ActionJoin, models.ActionEdit, models.ActionComplete, models.ActionDelete}, PermittedActions(admin, e, testNow))
	assert.Empty(t, PermittedActions(nil, e, testNow))
}

func TestNewEventView(t *testing.T) {
	e := &models.Event{CreatorID: "alice", Status: models.StatusUpcoming, EventTime: testNow.Add(-time.Hour), JoinedUsers: []string{"bob"}}

	v := NewEventView(e, bob, testNow)

	assert.Equal(t, models.StatusCompleted, v.EffectiveStatus)
	assert.True(t, v.Joined)
	assert.False(t, v.IsCreator)
	assert.Equal(t, 1, v.ParticipantCount)
	assert.Equal(t, []models.Action{models.ActionLeave}, v.Actions)
}

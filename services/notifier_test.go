package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"sportsbuddy-api/models"
	"sportsbuddy-api/services/ports/mocks"
)

func TestNoticeForError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: please fill in all required fields: Sport", models.ErrValidation), "Please fill in all required fields: Sport."},
		{Authorize(bob, nil, models.ActionCreate, testNow), "Access denied. Admins only."},
		{fmt.Errorf("%w: abc", models.ErrNotFound), "Event not found."},
		{fmt.Errorf("%w: update event: %w", models.ErrPersistence, errors.New("dial tcp: refused")), "Something went wrong while saving. Please try again."},
		{errors.New("boom"), "An unexpected error occurred."},
	}
	for _, tt := range tests {
		n := NoticeForError(tt.err)
		assert.Equal(t, models.SeverityError, n.Severity)
		assert.Equal(t, tt.want, n.Message)
	}
}

func TestMultiNotifier_FansOut(t *testing.T) {
	first := mocks.NewMockNotifier(t)
	second := mocks.NewMockNotifier(t)
	notice := models.Notice{Message: MsgEventJoined, Severity: models.SeveritySuccess}

	first.EXPECT().Notify(context.Background(), notice).Return()
	second.EXPECT().Notify(context.Background(), notice).Return()

	MultiNotifier{first, second}.Notify(context.Background(), notice)
}

type fakeQueue struct {
	messages []*gomail.Message
	full     bool
}

func (q *fakeQueue) Enqueue(m *gomail.Message) bool {
	if q.full {
		return false
	}
	q.messages = append(q.messages, m)
	return true
}

func TestMailNotifier(t *testing.T) {
	q := &fakeQueue{}
	n := NewMailNotifier(q, MailOptions{
		FromEmail:  "noreply@example.com",
		FromName:   "SportsBuddy",
		Severities: []models.Severity{models.SeveritySuccess},
	}, discardLogger())
	ctx := context.Background()

	n.Notify(ctx, models.Notice{Message: MsgEventJoined, Severity: models.SeveritySuccess, Recipient: "alice@example.com"})
	n.Notify(ctx, models.Notice{Message: "nope", Severity: models.SeverityError, Recipient: "alice@example.com"})
	n.Notify(ctx, models.Notice{Message: MsgEventJoined, Severity: models.SeveritySuccess})

	require.Len(t, q.messages, 1)
	assert.Equal(t, []string{"alice@example.com"}, q.messages[0].GetHeader("To"))
	assert.Equal(t, []string{"SportsBuddy - " + MsgEventJoined}, q.messages[0].GetHeader("Subject"))

	q.full = true
	assert.NotPanics(t, func() {
		n.Notify(ctx, models.Notice{Message: MsgEventLeft, Severity: models.SeveritySuccess, Recipient: "alice@example.com"})
	})
}

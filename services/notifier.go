// File: /services/notifier.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"sportsbuddy-api/models"
	"sportsbuddy-api/services/ports"
)

// Success notices for each operation.
const (
	MsgEventCreated   = "Event added successfully!"
	MsgEventUpdated   = "Event updated successfully!"
	MsgEventCompleted = "Event marked as completed."
	MsgEventDeleted   = "Event deleted."
	MsgEventJoined    = "You have joined the event!"
	MsgEventLeft      = "You have left the event."
	MsgRegistered     = "Registration successful!"
)

// NoticeForError turns a service error into the message shown to the user.
// Storage failures get a generic message; the cause is only logged.
func NoticeForError(err error) models.Notice {
	n := models.Notice{Severity: models.SeverityError}
	switch {
	case errors.Is(err, models.ErrPersistence):
		n.Message = "Something went wrong while saving. Please try again."
	case errors.Is(err, models.ErrNotFound):
		n.Message = "Event not found."
	case errors.Is(err, models.ErrUserNotFound):
		n.Message = "User not found."
	case errors.Is(err, models.ErrInvalidCredentials):
		n.Message = "Invalid email or password."
	case errors.Is(err, models.ErrInvalidToken):
		n.Message = "Your session has expired. Please sign in again."
	case errors.Is(err, models.ErrEmailTaken):
		n.Message = "Email already registered."
	case errors.Is(err, models.ErrValidation):
		n.Message = detail(err, models.ErrValidation)
	case errors.Is(err, models.ErrPermissionDenied):
		n.Message = detail(err, models.ErrPermissionDenied)
	default:
		n.Message = "An unexpected error occurred."
	}
	return n
}

// detail strips the sentinel prefix added by fmt.Errorf("%w: ...").
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") && !strings.HasSuffix(msg, "!") {
		msg += "."
	}
	return msg
}

// LogNotifier writes notices to the structured log.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, notice models.Notice) {
	level := slog.LevelInfo
	if notice.Severity == models.SeverityError {
		level = slog.LevelWarn
	}
	n.log.Log(ctx, level, "notice", "message", notice.Message, "severity", notice.Severity, "recipient", notice.Recipient)
}

// MultiNotifier sends each notice to every sink in order.
type MultiNotifier []ports.Notifier

func (m MultiNotifier) Notify(ctx context.Context, notice models.Notice) {
	for _, n := range m {
		n.Notify(ctx, notice)
	}
}

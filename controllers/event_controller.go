// File: /controllers/event_controller.go
package controllers

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sportsbuddy-api/middleware"
	"sportsbuddy-api/models"
	"sportsbuddy-api/services"
	"sportsbuddy-api/services/ports"
	"sportsbuddy-api/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type EventController struct {
	events   *services.EventService
	members  *services.MembershipService
	catalog  *services.CatalogService
	notifier ports.Notifier
	now      services.Clock
	log      *slog.Logger
}

func NewEventController(
	events *services.EventService,
	members *services.MembershipService,
	catalog *services.CatalogService,
	notifier ports.Notifier,
	now services.Clock,
	log *slog.Logger,
) *EventController {
	if now == nil {
		now = time.Now
	}
	return &EventController{
		events:   events,
		members:  members,
		catalog:  catalog,
		notifier: notifier,
		now:      now,
		log:      log,
	}
}

type CreateEventRequest struct {
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	EventTime   time.Time `json:"event_time"`
}

type UpdateEventRequest struct {
	Name        *string    `json:"name"`
	Sport       *string    `json:"sport"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	EventTime   *time.Time `json:"event_time"`
	Status      *string    `json:"status"`

	CreatorID   *string   `json:"creator_id"`
	JoinedUsers *[]string `json:"joined_users"`
	CreatedAt   *string   `json:"created_at"`
}

// GetEvents lists upcoming events, soonest first
func (ec *EventController) GetEvents(c *gin.Context) {
	user := middleware.CurrentIdentity(c)
	seq, err := ec.catalog.Upcoming(c.Request.Context(), ec.now(), user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}
	ec.sendViews(c, seq)
}

// GetAllEvents lists every event for administrators
func (ec *EventController) GetAllEvents(c *gin.Context) {
	user := middleware.CurrentIdentity(c)
	seq, err := ec.catalog.All(c.Request.Context(), ec.now(), user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}
	ec.sendViews(c, seq)
}

// GetJoinedEvents lists the events the caller has joined
func (ec *EventController) GetJoinedEvents(c *gin.Context) {
	user := middleware.CurrentIdentity(c)
	seq, err := ec.catalog.Joined(c.Request.Context(), ec.now(), user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}
	ec.sendViews(c, seq)
}

func (ec *EventController) GetEvent(c *gin.Context) {
	user := middleware.CurrentIdentity(c)
	view, err := ec.catalog.View(c.Request.Context(), c.Param("id"), ec.now(), user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}
	utils.SendData(c, http.StatusOK, view)
}

func (ec *EventController) CreateEvent(c *gin.Context) {
	user := middleware.CurrentIdentity(c)

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ec.handleError(c, badRequest(err), user)
		return
	}

	event, err := ec.events.Create(c.Request.Context(), models.EventDraft{
		Name:        req.Name,
		Sport:       req.Sport,
		Location:    req.Location,
		Description: req.Description,
		EventTime:   req.EventTime,
	}, user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}

	ec.succeed(c, http.StatusCreated, services.MsgEventCreated, models.SeveritySuccess, user, event)
}

func (ec *EventController) UpdateEvent(c *gin.Context) {
	user := middleware.CurrentIdentity(c)

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ec.handleError(c, badRequest(err), user)
		return
	}
	if req.CreatorID != nil || req.JoinedUsers != nil || req.CreatedAt != nil {
		ec.handleError(c, fmtValidation("creator, participants and creation time cannot be edited"), user)
		return
	}

	patch := models.EventPatch{
		Name:        req.Name,
		Sport:       req.Sport,
		Location:    req.Location,
		Description: req.Description,
		EventTime:   req.EventTime,
	}
	if req.Status != nil {
		status := models.EventStatus(*req.Status)
		patch.Status = &status
	}

	event, err := ec.events.Edit(c.Request.Context(), c.Param("id"), patch, user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}

	ec.succeed(c, http.StatusOK, services.MsgEventUpdated, models.SeveritySuccess, user, event)
}

func (ec *EventController) CompleteEvent(c *gin.Context) {
	user := middleware.CurrentIdentity(c)
	event, err := ec.events.Complete(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}
	ec.succeed(c, http.StatusOK, services.MsgEventCompleted, models.SeveritySuccess, user, event)
}

func (ec *EventController) DeleteEvent(c *gin.Context) {
	user := middleware.CurrentIdentity(c)
	if _, err := ec.events.Delete(c.Request.Context(), c.Param("id"), user); err != nil {
		ec.handleError(c, err, user)
		return
	}
	ec.succeed(c, http.StatusOK, services.MsgEventDeleted, models.SeverityInfo, user, nil)
}

func (ec *EventController) JoinEvent(c *gin.Context) {
	user := middleware.CurrentIdentity(c)
	event, err := ec.members.Join(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}
	ec.succeed(c, http.StatusOK, services.MsgEventJoined, models.SeveritySuccess, user, event)
}

func (ec *EventController) LeaveEvent(c *gin.Context) {
	user := middleware.CurrentIdentity(c)
	event, err := ec.members.Leave(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		ec.handleError(c, err, user)
		return
	}
	ec.succeed(c, http.StatusOK, services.MsgEventLeft, models.SeverityInfo, user, event)
}

// Helper functions

func (ec *EventController) sendViews(c *gin.Context, seq iter.Seq[models.EventView]) {
	limit := utils.ParseLimit(c.Query("limit"), defaultListLimit, maxListLimit)
	views := make([]models.EventView, 0)
	for v := range seq {
		if len(views) == limit {
			break
		}
		views = append(views, v)
	}
	utils.SendList(c, http.StatusOK, views, len(views), limit)
}

func (ec *EventController) succeed(c *gin.Context, status int, message string, severity models.Severity, user *models.Identity, event *models.Event) {
	notice := models.Notice{Message: message, Severity: severity}
	if user != nil {
		notice.Recipient = user.Email
	}
	ec.notifier.Notify(c.Request.Context(), notice)

	var data interface{}
	if event != nil {
		data = services.NewEventView(event, user, ec.now())
	}
	utils.SendNotice(c, status, notice.Message, string(notice.Severity), data)
}

func (ec *EventController) handleError(c *gin.Context, err error, user *models.Identity) {
	notice := services.NoticeForError(err)
	if user != nil {
		notice.Recipient = user.Email
	}
	ec.notifier.Notify(c.Request.Context(), notice)

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		ec.log.ErrorContext(c.Request.Context(), "event request failed", "path", c.FullPath(), "error", err)
	}
	utils.SendError(c, status, notice.Message)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrPersistence):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func badRequest(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "parsing time") {
		msg = "Date & Time is invalid"
	}
	return fmtValidation(msg)
}

func fmtValidation(msg string) error {
	return fmt.Errorf("%w: %s", models.ErrValidation, msg)
}

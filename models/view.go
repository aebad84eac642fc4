// File: /models/view.go
package models

type Action string

const (
	ActionCreate   Action = "create"
	ActionEdit     Action = "edit"
	ActionComplete Action = "complete"
	ActionDelete   Action = "delete"
	ActionJoin     Action = "join"
	ActionLeave    Action = "leave"
)

// EventActions lists the actions that apply to an existing event, in display order.
var EventActions = []Action{ActionJoin, ActionLeave, ActionEdit, ActionComplete, ActionDelete}

// EventView is an event as displayed to one user at one instant.
type EventView struct {
	*Event
	EffectiveStatus  EventStatus `json:"effective_status"`
	Joined           bool        `json:"joined"`
	IsCreator        bool        `json:"is_creator"`
	ParticipantCount int         `json:"participant_count"`
	Actions          []Action    `json:"actions"`
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notice is a short user-facing message about the outcome of an operation.
type Notice struct {
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
	Recipient string   `json:"-"`
}

package domain

import "time"

type EventType string

const (
	EventReportCreated   EventType = "report.created"
	EventResponseCreated EventType = "response.created"
	EventReplyCreated    EventType = "reply.created"
	EventThreadDeleted   EventType = "thread.deleted"
)

// Event is published by the alert store after each committed mutation.
type Event struct {
	Type       EventType `json:"type"`
	ThreadID   string    `json:"thread_id"`
	Report     *Report   `json:"report,omitempty"`
	Response   *Response `json:"response,omitempty"`
	Reply      *Reply    `json:"reply,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

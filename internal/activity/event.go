// Package activity implements the activity log pipeline: events published
// by request handlers, persisted by a worker and optionally streamed to
// Kafka.
package activity

import (
	"time"

	"github.com/google/uuid"
)

// Topic is the pub/sub topic activity events travel on.
const Topic = "activity.events"

// ModuleDesktopClientMFA tags events produced by the desktop-client login flow.
const ModuleDesktopClientMFA = "desktop_client_mfa"

// Event kinds for the desktop-client login flow.
const (
	KindConnected   = "connected"
	KindLoginFailed = "login_failed"
)

// Context identifies who did what from where. Filled from the request
// metadata of the gRPC call that produced the event.
type Context struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	IP        string    `json:"ip"`
	Device    string    `json:"device"`
}

// Event is one activity log entry.
type Event struct {
	ID       string            `json:"id"`
	Context  Context           `json:"context"`
	Module   string            `json:"module"`
	Kind     string            `json:"event"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewEvent assembles an event with a fresh ID.
func NewEvent(ctx Context, module, kind string, metadata map[string]string) *Event {
	return &Event{
		ID:       uuid.New().String(),
		Context:  ctx,
		Module:   module,
		Kind:     kind,
		Metadata: metadata,
	}
}

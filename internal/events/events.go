// Package events publishes workflow notifications after a transaction
// commits. Delivery is at-most-once: a failed publish is logged and dropped.
package events

import (
	"context"
	"log"
	"time"
)

// Type identifies a workflow notification.
type Type string

const (
	DocumentVerified              Type = "document.verified"
	DocumentRejected              Type = "document.rejected"
	DocumentResubmissionRequested Type = "document.resubmission_requested"
	DocumentResubmitted           Type = "document.resubmitted"
	DocumentReplaced              Type = "document.replaced"
	AllDocumentsVerified          Type = "documents.all_verified"
	CandidateDocumentsRejected    Type = "candidate.documents_rejected"
	MockInterviewScheduled        Type = "mock_interview.scheduled"
	MockInterviewCompleted        Type = "mock_interview.completed"
	TrainingStatusChanged         Type = "training.status_changed"
	RecruiterAssigned             Type = "recruiter.assigned"
	CREAssigned                   Type = "cre.assigned"
)

// Event is one pending notification.
type Event struct {
	Type    Type                   `json:"type"`
	Payload map[string]interface{} `json:"payload"`
	At      time.Time              `json:"at"`
}

// New stamps an event with the current time.
func New(t Type, payload map[string]interface{}) Event {
	return Event{Type: t, Payload: payload, At: time.Now().UTC()}
}

// Publisher delivers one event. Implementations must not block on retries.
type Publisher interface {
	Publish(ctx context.Context, eventType Type, payload map[string]interface{}) error
}

// Dispatch publishes events in order. Errors are logged, never returned, so a
// committed state change is never reported as failed.
func Dispatch(ctx context.Context, p Publisher, evs []Event) {
	if p == nil {
		return
	}
	for _, ev := range evs {
		if err := p.Publish(ctx, ev.Type, ev.Payload); err != nil {
			log.Printf("[events] publish %s failed: %v", ev.Type, err)
		}
	}
}

// Buffer collects events inside a transaction for dispatch after commit.
type Buffer struct {
	events []Event
}

func (b *Buffer) Add(t Type, payload map[string]interface{}) {
	b.events = append(b.events, New(t, payload))
}

func (b *Buffer) Events() []Event {
	return b.events
}

// Reset drops buffered events, used when a transaction is retried or rolled back.
func (b *Buffer) Reset() {
	b.events = nil
}

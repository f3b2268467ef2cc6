package interview

import (
	"time"

	"gorm.io/datatypes"
)

// Decision is the outcome recorded when a mock interview is completed.
type Decision string

const (
	DecisionApproved      Decision = "approved"
	DecisionNeedsTraining Decision = "needs_training"
	DecisionRejected      Decision = "rejected"
)

// Mode is how the interview is conducted.
type Mode string

const (
	ModeOnline   Mode = "online"
	ModeInPerson Mode = "in_person"
	ModePhone    Mode = "phone"
)

// MockInterview is scheduled open (Decision == nil) and becomes terminal once
// completed.
type MockInterview struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	AssignmentID    uint            `gorm:"not null;index;uniqueIndex:idx_open_mock_interview,where:decision IS NULL" json:"assignment_id"`
	CoordinatorID   uint            `gorm:"not null;index" json:"coordinator_id"`
	InterviewType   string          `gorm:"size:64;default:'mock'" json:"interview_type"`
	ScheduledTime   time.Time       `gorm:"not null" json:"scheduled_time"`
	DurationMinutes int             `gorm:"default:60" json:"duration_minutes"`
	MeetingLink     string          `gorm:"type:text" json:"meeting_link,omitempty"`
	Mode            Mode            `gorm:"size:32;default:'online'" json:"mode"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	Decision        *Decision       `gorm:"size:32" json:"decision"`
	ConductedAt     *time.Time      `json:"conducted_at"`
	Ratings         datatypes.JSON  `json:"ratings,omitempty"`
	Remarks         string          `gorm:"type:text" json:"remarks,omitempty"`
	ChecklistItems  []ChecklistItem `gorm:"foreignKey:MockInterviewID" json:"checklist_items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (MockInterview) TableName() string {
	return "mock_interviews"
}

// IsCompleted reports whether the interview has been conducted.
func (m *MockInterview) IsCompleted() bool {
	return m.ConductedAt != nil
}

// ChecklistItem is one scored or pass/fail criterion recorded at completion.
type ChecklistItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MockInterviewID uint      `gorm:"not null;index" json:"mock_interview_id"`
	Category        string    `gorm:"size:64" json:"category"`
	Criterion       string    `gorm:"size:255;not null" json:"criterion"`
	Passed          bool      `json:"passed"`
	Score           *int      `json:"score,omitempty"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (ChecklistItem) TableName() string {
	return "mock_interview_checklist_items"
}

// History is the coordination ledger, separate from the assignment ledger.
type History struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AssignmentID    uint      `gorm:"not null;index" json:"assignment_id"`
	InterviewID     uint      `gorm:"not null;index" json:"interview_id"`
	InterviewType   string    `gorm:"size:64" json:"interview_type"`
	Action          string    `gorm:"size:32" json:"action"`
	PreviousStatus  string    `gorm:"size:64" json:"previous_status"`
	NewStatus       string    `gorm:"size:64" json:"new_status"`
	PerformedBy     *uint     `json:"performed_by,omitempty"`
	PerformedByName string    `gorm:"size:128" json:"performed_by_name,omitempty"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func (History) TableName() string {
	return "interview_status_history"
}

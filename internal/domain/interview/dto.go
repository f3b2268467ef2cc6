package interview

import (
	"encoding/json"
	"time"
)

type CreateMockInterviewDTO struct {
	AssignmentID    uint      `json:"assignment_id" binding:"required"`
	CoordinatorID   uint      `json:"coordinator_id" binding:"required"`
	InterviewType   string    `json:"interview_type"`
	ScheduledTime   time.Time `json:"scheduled_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	MeetingLink     string    `json:"meeting_link"`
	Mode            string    `json:"mode"`
	Notes           string    `json:"notes"`
}

type UpdateMockInterviewDTO struct {
	ScheduledTime   *time.Time `json:"scheduled_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	MeetingLink     *string    `json:"meeting_link,omitempty"`
	Mode            *string    `json:"mode,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

type ChecklistItemDTO struct {
	Category  string `json:"category"`
	Criterion string `json:"criterion" binding:"required"`
	Passed    bool   `json:"passed"`
	Score     *int   `json:"score,omitempty"`
	Notes     string `json:"notes"`
}

type CompleteMockInterviewDTO struct {
	Decision       string             `json:"decision" binding:"required"`
	ChecklistItems []ChecklistItemDTO `json:"checklist_items"`
	Ratings        json.RawMessage    `json:"ratings,omitempty"`
	Remarks        string             `json:"remarks"`
}

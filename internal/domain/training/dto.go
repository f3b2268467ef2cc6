package training

import "time"

type CreateAssignmentDTO struct {
	AssignmentID uint   `json:"assignment_id" binding:"required"`
	TrainerID    uint   `json:"trainer_id" binding:"required"`
	ScreeningID  *uint  `json:"screening_id,omitempty"`
	TrainingType string `json:"training_type"`
	FocusAreas   string `json:"focus_areas"`
	Priority     string `json:"priority"`
	Notes        string `json:"notes"`
}

type TransitionDTO struct {
	Notes string `json:"notes"`
}

type CreateSessionDTO struct {
	Topic           string    `json:"topic" binding:"required"`
	ScheduledTime   time.Time `json:"scheduled_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}

type UpdateSessionDTO struct {
	Topic           *string    `json:"topic,omitempty"`
	ScheduledTime   *time.Time `json:"scheduled_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

type CompleteSessionDTO struct {
	Attended          bool   `json:"attended"`
	PerformanceRating *int   `json:"performance_rating,omitempty"`
	Notes             string `json:"notes"`
}

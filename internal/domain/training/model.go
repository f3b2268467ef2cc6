package training

import "time"

// Status is the lifecycle state of a training assignment.
type Status string

const (
	StatusAssigned             Status = "assigned"
	StatusInProgress           Status = "in_progress"
	StatusCompleted            Status = "completed"
	StatusReadyForReassessment Status = "ready_for_reassessment"
	StatusCancelled            Status = "cancelled"
)

// Screening is an interview screening that can spawn screening-linked training.
type Screening struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	AssignmentID      uint      `gorm:"not null;index" json:"assignment_id"`
	Decision          string    `gorm:"size:32" json:"decision"`
	IsAssignedTrainer bool      `gorm:"default:false" json:"is_assigned_trainer"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Screening) TableName() string {
	return "screenings"
}

// Assignment is training given to a candidate on one project assignment.
// ScreeningID nil means basic training.
type Assignment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	AssignmentID uint       `gorm:"not null;index" json:"assignment_id"`
	ScreeningID  *uint      `gorm:"index" json:"screening_id"`
	TrainerID    uint       `gorm:"not null;index" json:"trainer_id"`
	AssignedBy   *uint      `json:"assigned_by,omitempty"`
	TrainingType string     `gorm:"size:64" json:"training_type"`
	FocusAreas   string     `gorm:"type:text" json:"focus_areas,omitempty"`
	Priority     string     `gorm:"size:16;default:'medium'" json:"priority"`
	Status       Status     `gorm:"size:32;default:'assigned';index" json:"status"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	StartedAt    *time.Time `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
	Sessions     []Session  `gorm:"foreignKey:TrainingAssignmentID" json:"sessions,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Assignment) TableName() string {
	return "training_assignments"
}

// IsBasic reports whether the training is not tied to a screening.
func (a *Assignment) IsBasic() bool {
	return a.ScreeningID == nil
}

// Session is one sitting of a training assignment.
type Session struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	TrainingAssignmentID uint       `gorm:"not null;index" json:"training_assignment_id"`
	SessionNumber        int        `json:"session_number"`
	Topic                string     `gorm:"size:255" json:"topic"`
	ScheduledTime        time.Time  `json:"scheduled_time"`
	DurationMinutes      int        `gorm:"default:60" json:"duration_minutes"`
	Attended             bool       `json:"attended"`
	PerformanceRating    *int       `json:"performance_rating,omitempty"`
	Notes                string     `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt          *time.Time `json:"completed_at"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (Session) TableName() string {
	return "training_sessions"
}

// IsCompleted reports whether the session has been closed.
func (s *Session) IsCompleted() bool {
	return s.CompletedAt != nil
}

// History is the training subsystem ledger.
type History struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	TrainingAssignmentID uint      `gorm:"not null;index" json:"training_assignment_id"`
	AssignmentID         uint      `gorm:"not null;index" json:"assignment_id"`
	Action               string    `gorm:"size:32" json:"action"`
	PreviousStatus       Status    `gorm:"size:32" json:"previous_status"`
	NewStatus            Status    `gorm:"size:32" json:"new_status"`
	PerformedBy          *uint     `json:"performed_by,omitempty"`
	PerformedByName      string    `gorm:"size:128" json:"performed_by_name,omitempty"`
	Notes                string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

func (History) TableName() string {
	return "training_history"
}

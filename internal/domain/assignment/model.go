package assignment

import (
	"time"

	"github.com/linskybing/recruit-go/internal/domain/status"
)

// Assignment maps one candidate to one project role and caches the latest
// main/sub status. StatusHistory is the source of truth for transitions.
type Assignment struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	CandidateID  uint               `gorm:"not null;index:idx_assignment_triple" json:"candidate_id"`
	ProjectID    uint               `gorm:"not null;index:idx_assignment_triple" json:"project_id"`
	RoleID       uint               `gorm:"not null;index:idx_assignment_triple" json:"role_id"`
	MainStatusID *uint              `gorm:"index" json:"main_status_id"`
	SubStatusID  *uint              `gorm:"index" json:"sub_status_id"`
	MainStatus   *status.MainStatus `gorm:"foreignKey:MainStatusID" json:"main_status,omitempty"`
	SubStatus    *status.SubStatus  `gorm:"foreignKey:SubStatusID" json:"sub_status,omitempty"`
	RecruiterID  *uint              `json:"recruiter_id"`
	IsActive     bool               `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func (Assignment) TableName() string {
	return "candidate_project_assignments"
}

// StatusHistory is an append-only ledger row. Labels are snapshotted so the
// trail stays readable if the catalog is relabelled later.
type StatusHistory struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	AssignmentID    uint        `gorm:"not null;index" json:"assignment_id"`
	MainStatusID    uint        `gorm:"not null" json:"main_status_id"`
	SubStatusID     uint        `gorm:"not null;index" json:"sub_status_id"`
	MainStatusName  status.Name `gorm:"size:64" json:"main_status_name"`
	SubStatusName   status.Name `gorm:"size:64;index" json:"sub_status_name"`
	MainStatusLabel string      `gorm:"size:128" json:"main_status_label"`
	SubStatusLabel  string      `gorm:"size:128" json:"sub_status_label"`
	FromMainStatus  status.Name `gorm:"size:64" json:"from_main_status,omitempty"`
	FromSubStatus   status.Name `gorm:"size:64" json:"from_sub_status,omitempty"`
	ChangedByUserID *uint       `json:"changed_by_user_id"`
	ChangedByName   string      `gorm:"size:128" json:"changed_by_name"`
	Reason          string      `gorm:"type:text" json:"reason"`
	Notes           string      `gorm:"type:text" json:"notes"`
	ChangedAt       time.Time   `gorm:"not null;index" json:"changed_at"`
}

func (StatusHistory) TableName() string {
	return "candidate_project_status_history"
}

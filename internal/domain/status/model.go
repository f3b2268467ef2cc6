package status

import "time"

// Name is the stable key of a catalog entry. The constants below are the
// targets the workflow code transitions to; the catalog table itself may hold
// more (display-only) entries.
type Name string

// Main statuses
const (
	MainNominated  Name = "nominated"
	MainDocuments  Name = "documents"
	MainInterview  Name = "interview"
	MainProcessing Name = "processing"
	MainRejected   Name = "rejected"
)

// Sub statuses
const (
	SubPendingDocuments       Name = "pending_documents"
	SubVerificationInProgress Name = "verification_in_progress"
	SubRejectedDocuments      Name = "rejected_documents"
	SubDocumentsVerified      Name = "documents_verified"
	SubMockInterviewScheduled Name = "mock_interview_scheduled"
	SubMockInterviewPassed    Name = "mock_interview_passed"
	SubMockInterviewFailed    Name = "mock_interview_failed"
	SubRejectedInterview      Name = "rejected_interview"
	SubTrainingAssigned       Name = "training_assigned"
	SubTrainingInProgress     Name = "training_in_progress"
	SubTrainingCompleted      Name = "training_completed"
	SubReadyForReassessment   Name = "ready_for_reassessment"
	SubMockInterviewAssigned  Name = "mock_interview_assigned"
	SubInterviewScheduled     Name = "interview_scheduled"
	SubProcessingInitiated    Name = "processing_initiated"
)

func (n Name) String() string { return string(n) }

// MainStatus is a coarse pipeline stage.
type MainStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      Name      `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Label     string    `gorm:"size:128;not null" json:"label"`
	Order     int       `gorm:"column:sort_order;default:0" json:"order"`
	Color     string    `gorm:"size:32" json:"color,omitempty"`
	Icon      string    `gorm:"size:64" json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MainStatus) TableName() string {
	return "main_statuses"
}

// SubStatus is a fine-grained stage that always belongs to one MainStatus.
type SubStatus struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	MainStatusID uint        `gorm:"not null;index" json:"main_status_id"`
	MainStatus   *MainStatus `gorm:"foreignKey:MainStatusID" json:"main_status,omitempty"`
	Name         Name        `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Label        string      `gorm:"size:128;not null" json:"label"`
	Order        int         `gorm:"column:sort_order;default:0" json:"order"`
	Color        string      `gorm:"size:32" json:"color,omitempty"`
	Icon         string      `gorm:"size:64" json:"icon,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (SubStatus) TableName() string {
	return "sub_statuses"
}

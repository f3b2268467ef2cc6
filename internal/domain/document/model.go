package document

import "time"

// VerificationStatus is the lifecycle state of one document within an assignment.
type VerificationStatus string

const (
	VerificationPending              VerificationStatus = "pending"
	VerificationVerified             VerificationStatus = "verified"
	VerificationRejected             VerificationStatus = "rejected"
	VerificationResubmissionRequired VerificationStatus = "resubmission_required"
	VerificationResubmitted          VerificationStatus = "resubmitted"
)

// Valid reports whether s is a known verification status.
func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected,
		VerificationResubmissionRequired, VerificationResubmitted:
		return true
	}
	return false
}

// DocumentType is reference data, e.g. "passport" or "offer_letter".
type DocumentType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Label     string    `gorm:"size:128" json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

func (DocumentType) TableName() string {
	return "document_types"
}

// ProjectRequirement declares which document types a project asks for.
type ProjectRequirement struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	ProjectID      uint          `gorm:"not null;uniqueIndex:idx_project_doc_type" json:"project_id"`
	DocumentTypeID uint          `gorm:"not null;uniqueIndex:idx_project_doc_type" json:"document_type_id"`
	DocumentType   *DocumentType `gorm:"foreignKey:DocumentTypeID" json:"document_type,omitempty"`
	IsRequired     bool          `gorm:"default:true" json:"is_required"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (ProjectRequirement) TableName() string {
	return "project_document_requirements"
}

// Document is a candidate-owned upload. Replaced documents are soft deleted.
type Document struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	CandidateID    uint               `gorm:"not null;index" json:"candidate_id"`
	DocumentTypeID uint               `gorm:"not null;index" json:"document_type_id"`
	DocumentType   *DocumentType      `gorm:"foreignKey:DocumentTypeID" json:"document_type,omitempty"`
	FileName       string             `gorm:"size:255" json:"file_name"`
	FileURL        string             `gorm:"type:text" json:"file_url"`
	FileSize       int64              `json:"file_size"`
	MimeType       string             `gorm:"size:128" json:"mime_type"`
	DocumentNumber string             `gorm:"size:128" json:"document_number,omitempty"`
	ExpiryDate     *time.Time         `json:"expiry_date,omitempty"`
	Status         VerificationStatus `gorm:"size:32;default:'pending'" json:"status"`
	VerifiedAt     *time.Time         `json:"verified_at,omitempty"`
	VerifiedBy     *uint              `json:"verified_by,omitempty"`
	RejectedAt     *time.Time         `json:"rejected_at,omitempty"`
	RejectedBy     *uint              `json:"rejected_by,omitempty"`
	RejectionNote  string             `gorm:"type:text" json:"rejection_note,omitempty"`
	IsDeleted      bool               `gorm:"default:false;index" json:"is_deleted"`
	DeletedAt      *time.Time         `json:"deleted_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// Verification links a Document to an Assignment. One live row per pair.
type Verification struct {
	ID                    uint               `gorm:"primaryKey" json:"id"`
	AssignmentID          uint               `gorm:"not null;index" json:"assignment_id"`
	DocumentID            uint               `gorm:"not null;index" json:"document_id"`
	Document              *Document          `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
	Status                VerificationStatus `gorm:"size:32;default:'pending';index" json:"status"`
	RejectionReason       string             `gorm:"type:text" json:"rejection_reason,omitempty"`
	ResubmissionRequested bool               `gorm:"default:false" json:"resubmission_requested"`
	ResubmissionReason    string             `gorm:"type:text" json:"resubmission_reason,omitempty"`
	VerifiedBy            *uint              `json:"verified_by,omitempty"`
	VerifiedAt            *time.Time         `json:"verified_at,omitempty"`
	IsDeleted             bool               `gorm:"default:false;index" json:"is_deleted"`
	DeletedAt             *time.Time         `json:"deleted_at,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

func (Verification) TableName() string {
	return "document_verifications"
}

// HistoryAction tags rows of the verification ledger.
type HistoryAction string

const (
	ActionVerified              HistoryAction = "verified"
	ActionRejected              HistoryAction = "rejected"
	ActionResubmissionRequested HistoryAction = "resubmission_requested"
	ActionResubmitted           HistoryAction = "resubmitted"
	ActionReplaced              HistoryAction = "replaced"
	ActionUploaded              HistoryAction = "uploaded"
)

// VerificationHistory is the per-document audit trail.
type VerificationHistory struct {
	ID              uint               `gorm:"primaryKey" json:"id"`
	VerificationID  uint               `gorm:"not null;index" json:"verification_id"`
	DocumentID      uint               `gorm:"not null;index" json:"document_id"`
	AssignmentID    uint               `gorm:"not null;index" json:"assignment_id"`
	Action          HistoryAction      `gorm:"size:32;not null" json:"action"`
	PreviousStatus  VerificationStatus `gorm:"size:32" json:"previous_status"`
	NewStatus       VerificationStatus `gorm:"size:32" json:"new_status"`
	Reason          string             `gorm:"type:text" json:"reason,omitempty"`
	PerformedBy     *uint              `json:"performed_by,omitempty"`
	PerformedByName string             `gorm:"size:128" json:"performed_by_name,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

func (VerificationHistory) TableName() string {
	return "document_verification_history"
}

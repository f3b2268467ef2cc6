package document

type VerifyDocumentDTO struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
}

type ResubmissionDTO struct {
	Reason string `json:"reason" binding:"required"`
}

// FileInfo describes a stored blob. Blob bytes never pass through the workflow.
type FileInfo struct {
	FileName       string `json:"file_name"`
	FileURL        string `json:"file_url"`
	FileSize       int64  `json:"file_size"`
	MimeType       string `json:"mime_type"`
	DocumentNumber string `json:"document_number,omitempty"`
}

// Summary is the read model returned for an assignment's documents.
type Summary struct {
	AssignmentID  uint           `json:"assignment_id"`
	Counts        Counts         `json:"counts"`
	SubStatus     string         `json:"sub_status"`
	AllVerified   bool           `json:"all_verified"`
	Verifications []Verification `json:"verifications"`
}

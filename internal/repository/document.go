package repository

import (
	"time"

	"github.com/linskybing/recruit-go/internal/domain/document"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	GetDocument(id uint) (document.Document, error)
	CreateDocument(d *document.Document) error
	SaveDocument(d *document.Document) error
	SoftDeleteDocument(id uint, at time.Time) error
	ListLiveDocumentsByType(candidateID, documentTypeID uint) ([]document.Document, error)
	GetDocumentType(id uint) (document.DocumentType, error)

	GetVerification(assignmentID, documentID uint) (document.Verification, error)
	CreateVerification(v *document.Verification) error
	SaveVerification(v *document.Verification) error
	SoftDeleteVerificationsByDocument(documentID uint, at time.Time) ([]document.Verification, error)
	ListVerifications(assignmentID uint) ([]document.Verification, error)

	RequiredTypeIDs(projectID uint) ([]uint, error)
	VerifiedTypeIDs(assignmentID uint) ([]uint, error)

	AppendHistory(h *document.VerificationHistory) error
	ListHistory(documentID uint) ([]document.VerificationHistory, error)
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{
		db: db,
	}
}

func (r *DBDocumentRepo) GetDocument(id uint) (document.Document, error) {
	var d document.Document
	err := r.db.Where("is_deleted = ?", false).First(&d, id).Error
	return d, err
}

func (r *DBDocumentRepo) CreateDocument(d *document.Document) error {
	return r.db.Create(d).Error
}

func (r *DBDocumentRepo) SaveDocument(d *document.Document) error {
	return r.db.Save(d).Error
}

func (r *DBDocumentRepo) SoftDeleteDocument(id uint, at time.Time) error {
	return r.db.Model(&document.Document{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": at}).Error
}

func (r *DBDocumentRepo) ListLiveDocumentsByType(candidateID, documentTypeID uint) ([]document.Document, error) {
	var list []document.Document
	err := r.db.Where("candidate_id = ? AND document_type_id = ? AND is_deleted = ?", candidateID, documentTypeID, false).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *DBDocumentRepo) GetDocumentType(id uint) (document.DocumentType, error) {
	var t document.DocumentType
	err := r.db.First(&t, id).Error
	return t, err
}

func (r *DBDocumentRepo) GetVerification(assignmentID, documentID uint) (document.Verification, error) {
	var v document.Verification
	err := r.db.Where("assignment_id = ? AND document_id = ? AND is_deleted = ?", assignmentID, documentID, false).
		First(&v).Error
	return v, err
}

func (r *DBDocumentRepo) CreateVerification(v *document.Verification) error {
	return r.db.Create(v).Error
}

func (r *DBDocumentRepo) SaveVerification(v *document.Verification) error {
	return r.db.Save(v).Error
}

// SoftDeleteVerificationsByDocument flags every live row for the document and
// returns the rows as they were before the flag.
func (r *DBDocumentRepo) SoftDeleteVerificationsByDocument(documentID uint, at time.Time) ([]document.Verification, error) {
	var rows []document.Verification
	if err := r.db.Where("document_id = ? AND is_deleted = ?", documentID, false).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}
	err := r.db.Model(&document.Verification{}).
		Where("document_id = ? AND is_deleted = ?", documentID, false).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": at}).Error
	return rows, err
}

func (r *DBDocumentRepo) ListVerifications(assignmentID uint) ([]document.Verification, error) {
	var list []document.Verification
	err := r.db.Preload("Document").
		Where("assignment_id = ? AND is_deleted = ?", assignmentID, false).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *DBDocumentRepo) RequiredTypeIDs(projectID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&document.ProjectRequirement{}).
		Distinct("document_type_id").
		Where("project_id = ? AND is_required = ?", projectID, true).
		Pluck("document_type_id", &ids).Error
	return ids, err
}

func (r *DBDocumentRepo) VerifiedTypeIDs(assignmentID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("document_verifications dv").
		Distinct("d.document_type_id").
		Joins("JOIN documents d ON d.id = dv.document_id").
		Where("dv.assignment_id = ? AND dv.status = ? AND dv.is_deleted = ? AND d.is_deleted = ?",
			assignmentID, document.VerificationVerified, false, false).
		Pluck("d.document_type_id", &ids).Error
	return ids, err
}

func (r *DBDocumentRepo) AppendHistory(h *document.VerificationHistory) error {
	return r.db.Create(h).Error
}

func (r *DBDocumentRepo) ListHistory(documentID uint) ([]document.VerificationHistory, error) {
	var list []document.VerificationHistory
	err := r.db.Where("document_id = ?", documentID).Order("created_at ASC, id ASC").Find(&list).Error
	return list, err
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	if tx == nil {
		return r
	}
	return &DBDocumentRepo{
		db: tx,
	}
}

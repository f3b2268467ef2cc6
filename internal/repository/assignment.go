package repository

import (
	"github.com/linskybing/recruit-go/internal/domain/assignment"
	"github.com/linskybing/recruit-go/internal/domain/status"
	"gorm.io/gorm"
)

type AssignmentRepo interface {
	GetByID(id uint) (assignment.Assignment, error)
	FindActive(candidateID, projectID, roleID uint) (assignment.Assignment, error)
	Create(a *assignment.Assignment) error
	UpdateStatus(id uint, mainStatusID, subStatusID uint) error
	SetRecruiter(candidateID, recruiterID uint) error
	AppendHistory(h *assignment.StatusHistory) error
	ListHistory(assignmentID uint) ([]assignment.StatusHistory, error)
	LatestHistoryInto(assignmentID uint, sub status.Name) (assignment.StatusHistory, error)
	WithTx(tx *gorm.DB) AssignmentRepo
}

type DBAssignmentRepo struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) *DBAssignmentRepo {
	return &DBAssignmentRepo{
		db: db,
	}
}

func (r *DBAssignmentRepo) GetByID(id uint) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := r.db.Preload("MainStatus").Preload("SubStatus").First(&a, id).Error
	return a, err
}

func (r *DBAssignmentRepo) FindActive(candidateID, projectID, roleID uint) (assignment.Assignment, error) {
	var a assignment.Assignment
	err := r.db.
		Where("candidate_id = ? AND project_id = ? AND role_id = ? AND is_active = ?", candidateID, projectID, roleID, true).
		First(&a).Error
	return a, err
}

func (r *DBAssignmentRepo) Create(a *assignment.Assignment) error {
	return r.db.Create(a).Error
}

// UpdateStatus moves both pointers in one statement so they never disagree.
func (r *DBAssignmentRepo) UpdateStatus(id uint, mainStatusID, subStatusID uint) error {
	res := r.db.Model(&assignment.Assignment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"main_status_id": mainStatusID,
			"sub_status_id":  subStatusID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetRecruiter stamps the owning recruiter on every active assignment of a
// candidate.
func (r *DBAssignmentRepo) SetRecruiter(candidateID, recruiterID uint) error {
	return r.db.Model(&assignment.Assignment{}).
		Where("candidate_id = ? AND is_active = ?", candidateID, true).
		Update("recruiter_id", recruiterID).Error
}

func (r *DBAssignmentRepo) AppendHistory(h *assignment.StatusHistory) error {
	return r.db.Create(h).Error
}

func (r *DBAssignmentRepo) ListHistory(assignmentID uint) ([]assignment.StatusHistory, error) {
	var list []assignment.StatusHistory
	err := r.db.Where("assignment_id = ?", assignmentID).
		Order("changed_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *DBAssignmentRepo) LatestHistoryInto(assignmentID uint, sub status.Name) (assignment.StatusHistory, error) {
	var h assignment.StatusHistory
	err := r.db.Where("assignment_id = ? AND sub_status_name = ?", assignmentID, sub).
		Order("changed_at DESC, id DESC").
		First(&h).Error
	return h, err
}

func (r *DBAssignmentRepo) WithTx(tx *gorm.DB) AssignmentRepo {
	if tx == nil {
		return r
	}
	return &DBAssignmentRepo{
		db: tx,
	}
}

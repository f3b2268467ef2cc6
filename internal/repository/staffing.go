package repository

import (
	"time"

	"github.com/linskybing/recruit-go/internal/domain/staffing"
	"github.com/linskybing/recruit-go/internal/domain/user"
	"gorm.io/gorm"
)

type StaffingRepo interface {
	ActiveRecruiter(candidateID uint) (staffing.RecruiterAssignment, error)
	DeactivateRecruiter(candidateID uint, by *uint, at time.Time) (int64, error)
	CreateRecruiterAssignment(a *staffing.RecruiterAssignment) error
	CountActiveRecruiters(candidateID uint) (int64, error)
	RecruiterLoads() ([]staffing.Load, error)

	ActiveCRE(candidateID uint) (staffing.CREAssignment, error)
	DeactivateCRE(candidateID uint, by *uint, at time.Time) (int64, error)
	CreateCREAssignment(a *staffing.CREAssignment) error
	CREAssignmentCount(candidateID uint) (int64, error)
	CRELoads() ([]staffing.Load, error)

	StaleRNRCandidates(cutoff time.Time) ([]user.Candidate, error)
	WithTx(tx *gorm.DB) StaffingRepo
}

type DBStaffingRepo struct {
	db *gorm.DB
}

func NewStaffingRepo(db *gorm.DB) *DBStaffingRepo {
	return &DBStaffingRepo{
		db: db,
	}
}

func (r *DBStaffingRepo) ActiveRecruiter(candidateID uint) (staffing.RecruiterAssignment, error) {
	var a staffing.RecruiterAssignment
	err := r.db.Where("candidate_id = ? AND is_active = ?", candidateID, true).First(&a).Error
	return a, err
}

func (r *DBStaffingRepo) DeactivateRecruiter(candidateID uint, by *uint, at time.Time) (int64, error) {
	res := r.db.Model(&staffing.RecruiterAssignment{}).
		Where("candidate_id = ? AND is_active = ?", candidateID, true).
		Updates(map[string]interface{}{
			"is_active":     false,
			"unassigned_at": at,
			"unassigned_by": by,
		})
	return res.RowsAffected, res.Error
}

func (r *DBStaffingRepo) CreateRecruiterAssignment(a *staffing.RecruiterAssignment) error {
	return r.db.Create(a).Error
}

func (r *DBStaffingRepo) CountActiveRecruiters(candidateID uint) (int64, error) {
	var n int64
	err := r.db.Model(&staffing.RecruiterAssignment{}).
		Where("candidate_id = ? AND is_active = ?", candidateID, true).
		Count(&n).Error
	return n, err
}

// RecruiterLoads lists every active recruiter with their active candidate
// count, including recruiters that currently own nobody.
func (r *DBStaffingRepo) RecruiterLoads() ([]staffing.Load, error) {
	var loads []staffing.Load
	err := r.db.Table("users u").
		Select("u.id AS user_id, COUNT(ra.id) AS active").
		Joins("JOIN user_roles ur ON ur.user_id = u.id").
		Joins("JOIN roles ro ON ro.id = ur.role_id AND ro.name = ?", user.RoleRecruiter).
		Joins("LEFT JOIN candidate_recruiter_assignments ra ON ra.recruiter_id = u.id AND ra.is_active = ?", true).
		Where("u.is_active = ?", true).
		Group("u.id").
		Order("active ASC, u.id ASC").
		Scan(&loads).Error
	return loads, err
}

func (r *DBStaffingRepo) ActiveCRE(candidateID uint) (staffing.CREAssignment, error) {
	var a staffing.CREAssignment
	err := r.db.Where("candidate_id = ? AND is_active = ?", candidateID, true).First(&a).Error
	return a, err
}

func (r *DBStaffingRepo) DeactivateCRE(candidateID uint, by *uint, at time.Time) (int64, error) {
	res := r.db.Model(&staffing.CREAssignment{}).
		Where("candidate_id = ? AND is_active = ?", candidateID, true).
		Updates(map[string]interface{}{
			"is_active":     false,
			"unassigned_at": at,
			"unassigned_by": by,
		})
	return res.RowsAffected, res.Error
}

func (r *DBStaffingRepo) CreateCREAssignment(a *staffing.CREAssignment) error {
	return r.db.Create(a).Error
}

func (r *DBStaffingRepo) CREAssignmentCount(candidateID uint) (int64, error) {
	var n int64
	err := r.db.Model(&staffing.CREAssignment{}).
		Where("candidate_id = ? AND is_active = ?", candidateID, true).
		Count(&n).Error
	return n, err
}

// CRELoads counts only active CRE rows whose candidate is still in RNR.
func (r *DBStaffingRepo) CRELoads() ([]staffing.Load, error) {
	var loads []staffing.Load
	err := r.db.Table("users u").
		Select("u.id AS user_id, COUNT(c.id) AS active").
		Joins("JOIN user_roles ur ON ur.user_id = u.id").
		Joins("JOIN roles ro ON ro.id = ur.role_id AND ro.name = ?", user.RoleCRE).
		Joins("LEFT JOIN candidate_cre_assignments ca ON ca.cre_id = u.id AND ca.is_active = ?", true).
		Joins("LEFT JOIN candidates c ON c.id = ca.candidate_id AND c.status = ?", user.CandidateStatusRNR).
		Where("u.is_active = ?", true).
		Group("u.id").
		Order("active ASC, u.id ASC").
		Scan(&loads).Error
	return loads, err
}

func (r *DBStaffingRepo) StaleRNRCandidates(cutoff time.Time) ([]user.Candidate, error) {
	var list []user.Candidate
	err := r.db.Model(&user.Candidate{}).
		Where("status = ? AND updated_at <= ?", user.CandidateStatusRNR, cutoff).
		Where("NOT EXISTS (SELECT 1 FROM candidate_cre_assignments ca WHERE ca.candidate_id = candidates.id AND ca.is_active = ?)", true).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *DBStaffingRepo) WithTx(tx *gorm.DB) StaffingRepo {
	if tx == nil {
		return r
	}
	return &DBStaffingRepo{
		db: tx,
	}
}

package user

import "time"

// RoleName values used by workflow decisions.
type RoleName string

const (
	RoleAdmin                RoleName = "admin"
	RoleRecruiter            RoleName = "recruiter"
	RoleCRE                  RoleName = "cre"
	RoleInterviewCoordinator RoleName = "interview_coordinator"
	RoleTrainer              RoleName = "trainer"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName is the name written into ledger snapshots.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type Role struct {
	ID   uint     `gorm:"primaryKey" json:"id"`
	Name RoleName `gorm:"size:64;uniqueIndex;not null" json:"name"`
}

type UserRole struct {
	UserID uint `gorm:"primaryKey" json:"user_id"`
	RoleID uint `gorm:"primaryKey" json:"role_id"`
	Role   Role `gorm:"foreignKey:RoleID" json:"role"`
}

// CandidateStatusRNR marks a candidate whose contact attempts went unanswered.
const CandidateStatusRNR = "rnr"

type Candidate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	Phone     string    `gorm:"size:32" json:"phone"`
	Status    string    `gorm:"size:32;default:'new';index" json:"status"`
	CreatedBy *uint     `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

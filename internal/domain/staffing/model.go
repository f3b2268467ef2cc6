package staffing

import "time"

// DefaultRecruiterReason and DefaultCREReason are stamped on balancer rows.
const (
	DefaultRecruiterReason = "Auto-assigned by workload balancer"
	DefaultCREReason       = "Auto-assigned: candidate in RNR status"
	SelfAssignedReason     = "Assigned to acting user"
)

// RecruiterAssignment gives a candidate a human owner. At most one row per
// candidate is active; a partial unique index backs the application check.
type RecruiterAssignment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CandidateID  uint       `gorm:"not null;index;uniqueIndex:idx_recruiter_active_candidate,where:is_active" json:"candidate_id"`
	RecruiterID  uint       `gorm:"not null;index" json:"recruiter_id"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	AssignedAt   time.Time  `json:"assigned_at"`
	AssignedBy   *uint      `json:"assigned_by,omitempty"`
	UnassignedAt *time.Time `json:"unassigned_at,omitempty"`
	UnassignedBy *uint      `json:"unassigned_by,omitempty"`
	Reason       string     `gorm:"type:text" json:"reason"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (RecruiterAssignment) TableName() string {
	return "candidate_recruiter_assignments"
}

// CREAssignment hands an RNR candidate to a customer relationship executive.
type CREAssignment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CandidateID  uint       `gorm:"not null;index;uniqueIndex:idx_cre_active_candidate,where:is_active" json:"candidate_id"`
	CREID        uint       `gorm:"column:cre_id;not null;index" json:"cre_id"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	AssignedAt   time.Time  `json:"assigned_at"`
	AssignedBy   *uint      `json:"assigned_by,omitempty"`
	UnassignedAt *time.Time `json:"unassigned_at,omitempty"`
	UnassignedBy *uint      `json:"unassigned_by,omitempty"`
	Reason       string     `gorm:"type:text" json:"reason"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (CREAssignment) TableName() string {
	return "candidate_cre_assignments"
}

// Load is the number of active assignments held by one owner.
type Load struct {
	UserID uint
	Active int64
}

// PickLeastLoaded returns the owner with the fewest active assignments,
// breaking ties on the lowest user id.
func PickLeastLoaded(loads []Load) (uint, bool) {
	if len(loads) == 0 {
		return 0, false
	}
	best := loads[0]
	for _, l := range loads[1:] {
		if l.Active < best.Active || (l.Active == best.Active && l.UserID < best.UserID) {
			best = l
		}
	}
	return best.UserID, true
}

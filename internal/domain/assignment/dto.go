package assignment

type NominateDTO struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
	ProjectID   uint `json:"project_id" binding:"required"`
	RoleID      uint `json:"role_id" binding:"required"`
}

type TransitionDTO struct {
	SubStatus string `json:"sub_status" binding:"required"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes"`
}

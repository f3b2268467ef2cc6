package user

type AssignOwnerDTO struct {
	CandidateID uint `json:"candidate_id" binding:"required"`
}

type OwnerDTO struct {
	CandidateID uint   `json:"candidate_id"`
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
}

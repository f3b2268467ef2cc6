package document

import "github.com/linskybing/recruit-go/internal/domain/status"

// Counts is the input of the aggregate document rule for one assignment.
type Counts struct {
	Required  int `json:"required"`
	Submitted int `json:"submitted"`
	Pending   int `json:"pending"`
	Verified  int `json:"verified"`
	Rejected  int `json:"rejected"`
}

// AggregateSubStatus maps counts to the assignment's document sub status.
// Rules are evaluated top to bottom and the first match wins: incomplete or
// pending work beats rejection, which beats full verification.
func AggregateSubStatus(c Counts) status.Name {
	switch {
	case c.Submitted == 0:
		return status.SubPendingDocuments
	case c.Pending > 0 || c.Submitted < c.Required:
		return status.SubVerificationInProgress
	case c.Rejected > 0:
		return status.SubRejectedDocuments
	default:
		return status.SubDocumentsVerified
	}
}

// Tally builds Counts from live verification rows. Rows marked deleted are
// ignored. Rows awaiting a re-upload or a re-review count as pending.
func Tally(required int, rows []Verification) Counts {
	c := Counts{Required: required}
	for _, v := range rows {
		if v.IsDeleted {
			continue
		}
		c.Submitted++
		switch v.Status {
		case VerificationPending, VerificationResubmitted, VerificationResubmissionRequired:
			c.Pending++
		case VerificationVerified:
			c.Verified++
		case VerificationRejected:
			c.Rejected++
		}
	}
	return c
}

// AllRequiredVerified reports whether every required document type has at
// least one verified document. An empty requirement set is never complete.
func AllRequiredVerified(requiredTypes []uint, verifiedTypes []uint) bool {
	if len(requiredTypes) == 0 {
		return false
	}
	have := make(map[uint]struct{}, len(verifiedTypes))
	for _, t := range verifiedTypes {
		have[t] = struct{}{}
	}
	for _, t := range requiredTypes {
		if _, ok := have[t]; !ok {
			return false
		}
	}
	return true
}

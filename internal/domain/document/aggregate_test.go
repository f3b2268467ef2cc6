package document

import (
	"testing"

	"github.com/linskybing/recruit-go/internal/domain/status"
	"github.com/stretchr/testify/assert"
)

func TestAggregateSubStatus(t *testing.T) {
	tests := []struct {
		name string
		in   Counts
		want status.Name
	}{
		{"nothing submitted", Counts{Required: 3}, status.SubPendingDocuments},
		{"nothing submitted and nothing required", Counts{}, status.SubPendingDocuments},
		{"pending beats rejected", Counts{Required: 2, Submitted: 2, Pending: 1, Rejected: 1}, status.SubVerificationInProgress},
		{"incomplete beats rejected", Counts{Required: 3, Submitted: 2, Rejected: 2}, status.SubVerificationInProgress},
		{"incomplete with all verified", Counts{Required: 3, Submitted: 2, Verified: 2}, status.SubVerificationInProgress},
		{"rejected beats verified", Counts{Required: 2, Submitted: 2, Verified: 1, Rejected: 1}, status.SubRejectedDocuments},
		{"all verified", Counts{Required: 2, Submitted: 2, Verified: 2}, status.SubDocumentsVerified},
		{"extra submissions verified", Counts{Required: 2, Submitted: 3, Verified: 3}, status.SubDocumentsVerified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateSubStatus(tt.in))
		})
	}
}

func TestAggregateSubStatus_Idempotent(t *testing.T) {
	for req := 0; req <= 3; req++ {
		for sub := 0; sub <= 4; sub++ {
			for pend := 0; pend <= sub; pend++ {
				for rej := 0; rej <= sub-pend; rej++ {
					c := Counts{Required: req, Submitted: sub, Pending: pend, Rejected: rej, Verified: sub - pend - rej}
					assert.Equal(t, AggregateSubStatus(c), AggregateSubStatus(c), "counts %+v", c)
				}
			}
		}
	}
}

func TestTally_ThreeRequiredTwoVerifiedOnePending(t *testing.T) {
	rows := []Verification{
		{DocumentID: 1, Status: VerificationVerified},
		{DocumentID: 2, Status: VerificationVerified},
		{DocumentID: 3, Status: VerificationPending},
	}
	c := Tally(3, rows)
	assert.Equal(t, Counts{Required: 3, Submitted: 3, Pending: 1, Verified: 2}, c)
	assert.Equal(t, status.SubVerificationInProgress, AggregateSubStatus(c))

	rows[2].Status = VerificationVerified
	assert.Equal(t, status.SubDocumentsVerified, AggregateSubStatus(Tally(3, rows)))
}

func TestTally_SkipsDeletedRows(t *testing.T) {
	rows := []Verification{
		{DocumentID: 1, Status: VerificationRejected, IsDeleted: true},
		{DocumentID: 2, Status: VerificationPending},
	}
	c := Tally(1, rows)
	assert.Equal(t, 1, c.Submitted)
	assert.Equal(t, 1, c.Pending)
	assert.Zero(t, c.Rejected)
}

func TestTally_ResubmissionStatesCountAsPending(t *testing.T) {
	rows := []Verification{
		{Status: VerificationResubmissionRequired},
		{Status: VerificationResubmitted},
		{Status: VerificationRejected},
	}
	c := Tally(3, rows)
	assert.Equal(t, 2, c.Pending)
	assert.Equal(t, 1, c.Rejected)
	assert.Equal(t, status.SubVerificationInProgress, AggregateSubStatus(c))
}

func TestAllRequiredVerified(t *testing.T) {
	assert.False(t, AllRequiredVerified(nil, []uint{1}))
	assert.False(t, AllRequiredVerified([]uint{1, 2, 3}, []uint{1, 2}))
	assert.True(t, AllRequiredVerified([]uint{1, 2, 3}, []uint{3, 2, 1, 1}))
	assert.True(t, AllRequiredVerified([]uint{2}, []uint{1, 2}))
}

func TestVerificationStatusValid(t *testing.T) {
	assert.True(t, VerificationResubmitted.Valid())
	assert.False(t, VerificationStatus("approved").Valid())
}

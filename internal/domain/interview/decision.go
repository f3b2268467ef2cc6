package interview

import (
	"fmt"

	"github.com/linskybing/recruit-go/internal/domain/status"
)

var decisionTargets = map[Decision]status.Name{
	DecisionApproved:      status.SubMockInterviewPassed,
	DecisionNeedsTraining: status.SubMockInterviewFailed,
	DecisionRejected:      status.SubRejectedInterview,
}

// ParseDecision converts a raw string to a Decision.
func ParseDecision(s string) (Decision, error) {
	d := Decision(s)
	if _, ok := decisionTargets[d]; !ok {
		return "", fmt.Errorf("unknown mock interview decision %q", s)
	}
	return d, nil
}

// TargetSubStatus returns the assignment sub status a decision leads to.
func TargetSubStatus(d Decision) (status.Name, bool) {
	n, ok := decisionTargets[d]
	return n, ok
}

// State names the interview for the coordination ledger.
func (m *MockInterview) State() string {
	if m.Decision == nil {
		return "scheduled"
	}
	return "completed_" + string(*m.Decision)
}

package cron

//go:generate mockgen -destination=mock/sweep_mock.go -package=mock github.com/linskybing/recruit-go/internal/cron CREAssigner,StaleCandidateFinder

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/recruit-go/internal/domain/staffing"
	"github.com/linskybing/recruit-go/internal/domain/user"
)

// CREAssigner hands one candidate to a CRE.
type CREAssigner interface {
	AssignCRE(ctx context.Context, candidateID, preferredAssigner uint) (*staffing.CREAssignment, error)
}

// StaleCandidateFinder lists RNR candidates without an active CRE that have
// not been touched since cutoff.
type StaleCandidateFinder interface {
	StaleRNRCandidates(ctx context.Context, cutoff time.Time) ([]user.Candidate, error)
}

// SweepResult counts one pass of the sweep.
type SweepResult struct {
	Scanned  int
	Assigned int
	Failed   int
}

// RNRSweep assigns a CRE to every candidate stuck in RNR for longer than
// StaleAfter. Candidates are processed one at a time and a failure on one
// never stops the rest. The sweep acts as no user, so the assigner resolves
// to the system user and the CRE always comes from the balancer.
type RNRSweep struct {
	Finder     StaleCandidateFinder
	Assigner   CREAssigner
	StaleAfter time.Duration
	Now        func() time.Time
}

func NewRNRSweep(finder StaleCandidateFinder, assigner CREAssigner, staleDays int) *RNRSweep {
	return &RNRSweep{
		Finder:     finder,
		Assigner:   assigner,
		StaleAfter: time.Duration(staleDays) * 24 * time.Hour,
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *RNRSweep) Run(ctx context.Context) (SweepResult, error) {
	var res SweepResult
	cutoff := s.Now().Add(-s.StaleAfter)

	candidates, err := s.Finder.StaleRNRCandidates(ctx, cutoff)
	if err != nil {
		log.Printf("[sweep] failed to list stale RNR candidates: %v", err)
		return res, err
	}

	for _, c := range candidates {
		// The finder filters in SQL; re-check so a loose finder cannot
		// hand out fresh candidates.
		if c.Status != user.CandidateStatusRNR || c.UpdatedAt.After(cutoff) {
			continue
		}
		res.Scanned++
		if ctx.Err() != nil {
			res.Failed++
			continue
		}
		a, err := s.Assigner.AssignCRE(ctx, c.ID, 0)
		if err != nil {
			res.Failed++
			log.Printf("[sweep] assign CRE for candidate %d failed: %v", c.ID, err)
			continue
		}
		res.Assigned++
		log.Printf("[sweep] candidate %d assigned to CRE %d", c.ID, a.CREID)
	}

	log.Printf("[sweep] done: scanned=%d assigned=%d failed=%d", res.Scanned, res.Assigned, res.Failed)
	return res, nil
}

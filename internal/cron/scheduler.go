package cron

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Job is anything the scheduler can run on a timer.
type Job interface {
	Run(ctx context.Context) (SweepResult, error)
}

// Scheduler wraps robfig/cron and runs the RNR sweep on a fixed spec.
type Scheduler struct {
	cron *cron.Cron
	job  Job
	spec string
}

func NewScheduler(job Job, spec string) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		job:  job,
		spec: spec,
	}
}

// Start registers the sweep and starts ticking. The first run happens on the
// first tick, not at startup.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if _, err := s.job.Run(ctx); err != nil {
			log.Printf("[scheduler] sweep error: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	log.Printf("[scheduler] cron started, spec: %s", s.spec)
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("[scheduler] cron stopped")
}

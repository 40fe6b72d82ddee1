package cron

import (
	"context"
	"log"
	"time"

	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/robfig/cron/v3"
)

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron              *cron.Cron
	leadRepo          repository.LeadRepository
	schedule          string
	processingTimeout time.Duration
}

// NewScheduler creates a scheduler running the stale-enrichment sweep:
// leads left in "processing" beyond processingTimeout are flipped to
// "failed". The enrichment worker is external and can die mid-run; this is
// the server-side cleanup.
func NewScheduler(leadRepo repository.LeadRepository, schedule string, processingTimeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:              cron.New(),
		leadRepo:          leadRepo,
		schedule:          schedule,
		processingTimeout: processingTimeout,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc(s.schedule, s.sweepStaleProcessing)
	if err != nil {
		log.Printf("[Cron] ❌ Invalid sweep schedule %q: %v", s.schedule, err)
		return
	}
	s.cron.Start()
	log.Printf("[Cron] Stale-enrichment sweep scheduled (%s)", s.schedule)
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sweepStaleProcessing() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-s.processingTimeout)
	n, err := s.leadRepo.MarkStaleProcessingFailed(ctx, cutoff)
	if err != nil {
		log.Printf("[Cron] ❌ Stale-enrichment sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[Cron] Marked %d stale processing lead(s) as failed", n)
	}
}

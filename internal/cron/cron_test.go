package cron

import (
	"context"
	"testing"
	"time"

	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepStaleProcessing(t *testing.T) {
	ctx := context.Background()
	repos := repository.NewMemoryRepositories(nil)

	stuck := &repository.Lead{Name: "Stuck", Company: "C", Status: "processing", UserID: 1}
	require.NoError(t, repos.LeadRepo.Create(ctx, stuck))

	// Negative timeout puts the cutoff in the future, so anything in
	// "processing" is already stale.
	s := NewScheduler(repos.LeadRepo, "*/10 * * * *", -time.Hour)
	s.sweepStaleProcessing()

	got, err := repos.LeadRepo.FindByID(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", got.Status)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	repos := repository.NewMemoryRepositories(nil)
	s := NewScheduler(repos.LeadRepo, "not a schedule", time.Minute)
	// Must log and return, not panic.
	s.Start()
	s.Stop()
}

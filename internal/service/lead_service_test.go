package service

import (
	"context"
	"testing"

	"github.com/leadgrid/leadgrid-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadService() LeadService {
	repos := repository.NewMemoryRepositories(nil)
	return NewLeadService(repos.LeadRepo)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	lead, err := svc.Create(ctx, 1, CreateLeadInput{Name: "Test Lead", Company: "Test Company"})
	require.NoError(t, err)
	assert.Equal(t, "pending", lead.Status)
	assert.Equal(t, 0, lead.Confidence)
	assert.Equal(t, 1, lead.UserID)
	assert.Nil(t, lead.TechStack)

	leads, err := svc.List(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Test Lead", leads[0].Name)

	// The lead is invisible to any other user.
	other, err := svc.List(ctx, 2, "")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreateHonorsSuppliedStatusAndConfidence(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	lead, err := svc.Create(ctx, 1, CreateLeadInput{
		Name:       "Elena Fisher",
		Company:    "Stripe",
		Status:     strPtr("enriched"),
		Confidence: intPtr(98),
	})
	require.NoError(t, err)
	assert.Equal(t, "enriched", lead.Status)
	assert.Equal(t, 98, lead.Confidence)
}

func TestTechStackRoundTripThroughService(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	created, err := svc.Create(ctx, 1, CreateLeadInput{
		Name:      "L",
		Company:   "C",
		TechStack: []string{"a", "b"},
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.TechStack)

	bare, err := svc.Create(ctx, 1, CreateLeadInput{Name: "M", Company: "C"})
	require.NoError(t, err)
	got, err = svc.GetByID(ctx, bare.ID, 1)
	require.NoError(t, err)
	assert.Nil(t, got.TechStack)
}

func TestGetByIDEnforcesOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	lead, err := svc.Create(ctx, 1, CreateLeadInput{Name: "L", Company: "C"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, lead.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, lead.ID, got.ID)

	// A foreign owner and a nonexistent id get the same outcome.
	_, err = svc.GetByID(ctx, lead.ID, 2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetByID(ctx, 9999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFilterIsCaseInsensitiveOnNameAndCompany(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	_, err := svc.Create(ctx, 1, CreateLeadInput{Name: "Elena Fisher", Company: "Stripe"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, CreateLeadInput{Name: "David Chen", Company: "Vercel"})
	require.NoError(t, err)

	byName, err := svc.List(ctx, 1, "ELENA")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Elena Fisher", byName[0].Name)

	byCompany, err := svc.List(ctx, 1, "verc")
	require.NoError(t, err)
	require.Len(t, byCompany, 1)
	assert.Equal(t, "David Chen", byCompany[0].Name)

	none, err := svc.List(ctx, 1, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := svc.List(ctx, 1, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := svc.Create(ctx, 1, CreateLeadInput{Name: name, Company: "C"})
		require.NoError(t, err)
	}

	leads, err := svc.List(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, leads, 3)
	assert.Equal(t, "First", leads[0].Name)
	assert.Equal(t, "Second", leads[1].Name)
	assert.Equal(t, "Third", leads[2].Name)
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	created, err := svc.Create(ctx, 1, CreateLeadInput{
		Name:      "Elena Fisher",
		Company:   "Stripe",
		Title:     strPtr("VP of Product"),
		TechStack: []string{"React"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, 1, UpdateLeadInput{
		Confidence: intPtr(99),
		Status:     strPtr("enriched"),
	})
	require.NoError(t, err)

	assert.Equal(t, 99, updated.Confidence)
	assert.Equal(t, "enriched", updated.Status)
	// Everything else untouched.
	assert.Equal(t, "Elena Fisher", updated.Name)
	assert.Equal(t, "Stripe", updated.Company)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "VP of Product", *updated.Title)
	assert.Equal(t, []string{"React"}, updated.TechStack)
	// Ownership and creation time never change.
	assert.Equal(t, 1, updated.UserID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, !updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateReplacesTechStackWhenSupplied(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	created, err := svc.Create(ctx, 1, CreateLeadInput{Name: "L", Company: "C", TechStack: []string{"a"}})
	require.NoError(t, err)

	ts := []string{"x", "y"}
	updated, err := svc.Update(ctx, created.ID, 1, UpdateLeadInput{TechStack: &ts})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, updated.TechStack)
}

func TestUpdateRejectsForeignOwner(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	created, err := svc.Create(ctx, 1, CreateLeadInput{Name: "L", Company: "C"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, 2, UpdateLeadInput{Name: strPtr("Hijacked")})
	assert.ErrorIs(t, err, ErrNotFound)

	// No mutation happened.
	got, err := svc.GetByID(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "L", got.Name)
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	created, err := svc.Create(ctx, 1, CreateLeadInput{Name: "L", Company: "C"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, 1))
	_, err = svc.GetByID(ctx, created.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRejectsForeignOrMissing(t *testing.T) {
	ctx := context.Background()
	svc := newLeadService()

	created, err := svc.Create(ctx, 1, CreateLeadInput{Name: "L", Company: "C"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID, 2), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 9999, 1), ErrNotFound)

	// The foreign delete attempt mutated nothing.
	got, err := svc.GetByID(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

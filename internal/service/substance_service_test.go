package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/clausius/internal/repository"
	"github.com/alexanderramin/clausius/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubstanceService(t *testing.T) SubstanceService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewSubstanceService(repository.NewSQLiteSubstanceRepo(db))
}

func TestSubstanceService_CreateAssignsIDAndTimestamps(t *testing.T) {
	svc := newSubstanceService(t)
	ctx := context.Background()

	sub := testutil.NewTestSubstance("argon")
	sub.ID = ""
	require.NoError(t, svc.Create(ctx, sub))

	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.CreatedAt.IsZero())
	assert.Equal(t, sub.CreatedAt, sub.UpdatedAt)

	fetched, err := svc.GetByName(ctx, "argon")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, fetched.ID)
}

func TestSubstanceService_CreateRejectsInvalid(t *testing.T) {
	svc := newSubstanceService(t)
	ctx := context.Background()

	sub := testutil.NewTestSubstance("broken")
	sub.TripleT = 0
	err := svc.Create(ctx, sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "triple-point temperature")
}

func TestSubstanceService_UpdateRefreshesTimestamp(t *testing.T) {
	svc := newSubstanceService(t)
	ctx := context.Background()

	sub := testutil.NewTestSubstance("argon")
	require.NoError(t, svc.Create(ctx, sub))

	created := sub.CreatedAt
	sub.EnthalpyVap = 7000
	require.NoError(t, svc.Update(ctx, sub))

	fetched, err := svc.GetByName(ctx, "argon")
	require.NoError(t, err)
	assert.Equal(t, 7000.0, fetched.EnthalpyVap)
	assert.False(t, fetched.UpdatedAt.Before(created))
}

func TestSubstanceService_DeleteByName(t *testing.T) {
	svc := newSubstanceService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.NewTestSubstance("argon")))
	require.NoError(t, svc.Delete(ctx, "ARGON"))

	_, err := svc.GetByName(ctx, "argon")
	assert.Error(t, err)
}

func TestSubstanceService_DeleteUnknown(t *testing.T) {
	svc := newSubstanceService(t)
	err := svc.Delete(context.Background(), "unobtainium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

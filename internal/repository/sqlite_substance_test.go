package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/clausius/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstanceRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubstanceRepo(db)
	ctx := context.Background()

	sub := testutil.NewTestSubstance("argon")
	require.NoError(t, repo.Create(ctx, sub))

	fetched, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, sub.ID, fetched.ID)
	assert.Equal(t, "argon", fetched.Name)
	assert.Equal(t, sub.TripleT, fetched.TripleT)
	assert.Equal(t, sub.AntoineTriple, fetched.AntoineTriple)
	assert.Equal(t, sub.AntoineCritical, fetched.AntoineCritical)
}

func TestSubstanceRepo_GetByName_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubstanceRepo(db)
	ctx := context.Background()

	sub := testutil.NewTestSubstance("Nitrogen")
	require.NoError(t, repo.Create(ctx, sub))

	fetched, err := repo.GetByName(ctx, "nitrogen")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, fetched.ID)
}

func TestSubstanceRepo_GetByName_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubstanceRepo(db)
	ctx := context.Background()

	_, err := repo.GetByName(ctx, "unobtainium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSubstanceRepo_ListIncludesSeedsSortedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubstanceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSubstance("argon")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3, "two seeded presets plus argon")
	assert.Equal(t, "argon", list[0].Name)
	assert.Equal(t, "carbon dioxide", list[1].Name)
	assert.Equal(t, "water", list[2].Name)
}

func TestSubstanceRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubstanceRepo(db)
	ctx := context.Background()

	sub := testutil.NewTestSubstance("argon")
	require.NoError(t, repo.Create(ctx, sub))

	sub.EnthalpyVap = 7000
	require.NoError(t, repo.Update(ctx, sub))

	fetched, err := repo.GetByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 7000.0, fetched.EnthalpyVap)
}

func TestSubstanceRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubstanceRepo(db)
	ctx := context.Background()

	sub := testutil.NewTestSubstance("argon")
	require.NoError(t, repo.Create(ctx, sub))
	require.NoError(t, repo.Delete(ctx, sub.ID))

	_, err := repo.GetByID(ctx, sub.ID)
	assert.Error(t, err)
}

func TestSubstanceRepo_RejectsDuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSubstanceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSubstance("argon")))
	err := repo.Create(ctx, testutil.NewTestSubstance("Argon"))
	assert.Error(t, err)
}

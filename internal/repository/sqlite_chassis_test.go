package repository_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/swapplan/internal/repository"
	"github.com/alexanderramin/swapplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChassisRepo_CreateAndGetByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChassisRepo(db)
	ctx := context.Background()

	c := testutil.NewTestChassis("2003–2009 4Runner (N210)",
		testutil.WithAliases("2004–2009 Toyota 4Runner (N210)"),
		testutil.WithOverrideYAML("hours:\n  fitment: 18\n"),
		testutil.WithChassisNotes("Tight tunnel.", "Check rack clearance."),
	)
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByName(ctx, c.Name)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, c.Defaults, got.Defaults)
	assert.Equal(t, []string{"Tight tunnel.", "Check rack clearance."}, got.Notes)
	assert.Equal(t, []string{"2004–2009 Toyota 4Runner (N210)"}, got.Aliases)
	assert.True(t, got.HasOverride())
}

func TestChassisRepo_GetByAlias(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChassisRepo(db)
	ctx := context.Background()

	c := testutil.NewTestChassis("2000–2006 Tahoe/Silverado (GMT800)",
		testutil.WithAliases("1999–2006 Chevy/GMC Truck (GMT800)"))
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Create(ctx, testutil.NewTestChassis("1984–2001 Jeep Cherokee (XJ)")))

	got, err := repo.GetByName(ctx, "1999–2006 chevy/gmc truck (gmt800)")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, c.Name, got.Name)
}

func TestChassisRepo_NoOverrideIsEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChassisRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestChassis("Plain")))
	got, err := repo.GetByName(ctx, "Plain")
	require.NoError(t, err)
	assert.False(t, got.HasOverride())
	assert.Nil(t, got.Aliases)
}

func TestChassisRepo_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChassisRepo(db)

	_, err := repo.GetByName(context.Background(), "DeLorean")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestChassisRepo_DuplicateAliasRejected(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChassisRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestChassis("A", testutil.WithAliases("Shared"))))
	err := repo.Create(ctx, testutil.NewTestChassis("B", testutil.WithAliases("shared")))
	assert.Error(t, err)
}

func TestChassisRepo_ListOrderAndAliases(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChassisRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestChassis("Second", testutil.WithChassisPosition(1))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestChassis("First",
		testutil.WithChassisPosition(0), testutil.WithAliases("Alpha", "Uno"))))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Name)
	assert.Equal(t, []string{"Alpha", "Uno"}, list[0].Aliases)
	assert.Equal(t, "Second", list[1].Name)
	assert.Empty(t, list[1].Aliases)
}

func TestChassisRepo_DeleteAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteChassisRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestChassis("A", testutil.WithAliases("Alias A"))))
	require.NoError(t, repo.DeleteAll(ctx))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.GetByName(ctx, "Alias A")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

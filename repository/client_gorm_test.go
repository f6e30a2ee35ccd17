package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kinesia-app/kinesia/domains/client"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestClientRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewClientGormRepository(newTestDB(t))
	require.NoError(t, repo.InitSchema(ctx))

	c := &client.Client{OwnerID: "prac-1", DisplayName: "Ana", Email: "ana@example.com", Enabled: true}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	found, err := repo.GetByID(ctx, "prac-1", c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.DisplayName)

	found.Notes = "prefers morning sessions"
	require.NoError(t, repo.Update(ctx, found))

	listed, err := repo.ListByOwner(ctx, "prac-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "prefers morning sessions", listed[0].Notes)

	require.NoError(t, repo.Delete(ctx, "prac-1", c.ID))
	_, err = repo.GetByID(ctx, "prac-1", c.ID)
	assert.ErrorIs(t, err, client.ErrClientNotFound)
}

func TestClientRepositoryScopesByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewClientGormRepository(newTestDB(t))
	require.NoError(t, repo.InitSchema(ctx))

	mine := &client.Client{OwnerID: "prac-1", DisplayName: "Ana"}
	theirs := &client.Client{OwnerID: "prac-2", DisplayName: "Bruno"}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	// Another owner's rows are invisible through every accessor.
	_, err := repo.GetByID(ctx, "prac-1", theirs.ID)
	assert.ErrorIs(t, err, client.ErrClientNotFound)

	listed, err := repo.ListByOwner(ctx, "prac-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Ana", listed[0].DisplayName)

	err = repo.Delete(ctx, "prac-1", theirs.ID)
	assert.ErrorIs(t, err, client.ErrClientNotFound)
}

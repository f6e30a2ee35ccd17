package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinesia-app/kinesia/domains/profile"
)

func TestProfileRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileGormRepository(newTestDB(t))
	require.NoError(t, repo.InitSchema(ctx))

	p := &profile.Practitioner{Email: "ana@example.com", DisplayName: "Ana"}
	require.NoError(t, repo.Create(ctx, p, "hashed-secret"))
	assert.NotEmpty(t, p.ID)

	byEmail, hash, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed-secret", hash)
	assert.Equal(t, p.ID, byEmail.ID)
	assert.False(t, byEmail.Complete())

	byEmail.PractitionerName = "Ana Torres"
	require.NoError(t, repo.Update(ctx, byEmail))

	byID, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, byID.Complete())
}

func TestProfileRepositoryUnknownEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileGormRepository(newTestDB(t))
	require.NoError(t, repo.InitSchema(ctx))

	_, _, err := repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

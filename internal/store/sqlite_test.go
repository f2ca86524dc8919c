package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orbosis/pkg/types"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()

	s, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "orbosis.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	original := &types.Profile{
		ID:                "1719830000001",
		FullName:          "Asha Rao",
		Email:             "asha@example.com",
		Role:              types.RoleDonor,
		DonationAmount:    2500,
		DonationAmountRaw: "2500",
		DonationFrequency: "monthly",
	}

	require.NoError(t, s.Set(ctx, KeyCurrentUser, original))

	got, err := s.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, cmp.Diff(original, got))
}

func TestSQLite_MissingKey(t *testing.T) {
	got, err := newTestSQLite(t).Get(context.Background(), "nothing-here")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLite_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	require.NoError(t, s.SetValue(ctx, KeyRole, "donor"))
	require.NoError(t, s.SetValue(ctx, KeyRole, "volunteer"))

	got, err := s.GetValue(ctx, KeyRole)
	require.NoError(t, err)
	assert.Equal(t, "volunteer", got)
}

func TestSQLite_Merge(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)
	key := RoleKey(types.RoleDonor)

	require.NoError(t, s.Set(ctx, key, &types.Profile{
		FullName:       "Asha Rao",
		Role:           types.RoleDonor,
		DonationAmount: 125000,
	}))

	merged, err := s.Merge(ctx, key, &types.Profile{
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Role:     types.RoleVolunteer,
	})
	require.NoError(t, err)

	assert.Equal(t, types.RoleDonor, merged.Role)
	assert.Equal(t, int64(125000), merged.DonationAmount)
	assert.Equal(t, "9876543210", merged.Phone)
}

func TestSQLite_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLite(t)

	require.NoError(t, s.SetValue(ctx, KeyAuthToken, "tok"))
	require.NoError(t, s.Delete(ctx, KeyAuthToken))

	got, err := s.GetValue(ctx, KeyAuthToken)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "orbosis.db")

	first, err := NewSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, KeyCurrentUser, &types.Profile{FullName: "Asha Rao"}))
	require.NoError(t, first.Close())

	second, err := NewSQLite(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Asha Rao", got.FullName)
}

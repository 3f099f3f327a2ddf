package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
)

func TestCreateTeam(t *testing.T) {
	store := newTestStore(t)
	users := newTestUserService(t, store)
	svc := NewTeamService(store)
	ctx := context.Background()

	alice, err := users.Create(ctx, CreateUserParams{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, CreateUserParams{Email: "bob@example.com", Password: "supersecret"})
	require.NoError(t, err)

	team, err := svc.CreateTeam(ctx, "Platform", "Berlin", alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, team.LeaderID)
	assert.Equal(t, []string{alice.ID}, team.Members)

	t.Run("leader team reference is set", func(t *testing.T) {
		got, err := users.SingleUser(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, team.ID, got.TeamID)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := svc.CreateTeam(ctx, "Platform", "Munich", bob.ID)
		assert.True(t, errs.IsConflict(err))
	})

	t.Run("leader of another team conflicts", func(t *testing.T) {
		_, err := svc.CreateTeam(ctx, "Other", "Munich", alice.ID)
		assert.True(t, errs.IsConflict(err))
	})

	t.Run("missing leader", func(t *testing.T) {
		_, err := svc.CreateTeam(ctx, "Ghost", "Munich", "7b0d2c3e-0000-4000-8000-000000000000")
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.CreateTeam(ctx, "", "Munich", bob.ID)
		assert.True(t, errs.IsInvalidArgument(err))
	})
}

func TestCreateTeamRemovesLeaderFromOldTeam(t *testing.T) {
	store := newTestStore(t)
	users := newTestUserService(t, store)
	svc := NewTeamService(store)
	ctx := context.Background()

	alice, err := users.Create(ctx, CreateUserParams{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, CreateUserParams{Email: "bob@example.com", Password: "supersecret"})
	require.NoError(t, err)

	first, err := svc.CreateTeam(ctx, "First", "Berlin", alice.ID)
	require.NoError(t, err)

	// Put bob into alice's team, then let him found his own.
	first.Members = append(first.Members, bob.ID)
	require.NoError(t, store.UpdateTeam(ctx, first))

	second, err := svc.CreateTeam(ctx, "Second", "Munich", bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob.ID}, second.Members)

	gotFirst, err := svc.TeamDetails(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID}, gotFirst.Members)
}

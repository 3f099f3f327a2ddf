package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

func TestHideEntityForClient(t *testing.T) {
	store := newTestStore(t)
	users := newTestUserService(t, store)
	hierarchy := NewHierarchyService(store)
	svc := NewVisibilityService(store)
	ctx := context.Background()

	user, err := users.Create(ctx, CreateUserParams{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	client, err := hierarchy.AddClient(ctx, "Acme", "", "")
	require.NoError(t, err)
	category, err := hierarchy.AddCategory(ctx, "Ops")
	require.NoError(t, err)

	t.Run("first hide creates the settings record", func(t *testing.T) {
		settings, err := svc.HideEntityForClient(ctx, user.ID, client.ID, category.ID, models.EntityTypeCategory)
		require.NoError(t, err)
		require.Len(t, settings.HiddenEntities, 1)
		assert.Equal(t, category.ID, settings.HiddenEntities[0].EntityID)
		assert.True(t, settings.HiddenEntities[0].Hidden)

		got, err := users.SingleUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{settings.ID}, got.Settings)
	})

	t.Run("repeat hide of the same entity does not duplicate", func(t *testing.T) {
		settings, err := svc.HideEntityForClient(ctx, user.ID, client.ID, category.ID, models.EntityTypeCategory)
		require.NoError(t, err)
		assert.Len(t, settings.HiddenEntities, 1)
	})

	t.Run("different entity appends", func(t *testing.T) {
		subgroup, err := hierarchy.AddSubgroup(ctx, "QA", category.ID)
		require.NoError(t, err)

		settings, err := svc.HideEntityForClient(ctx, user.ID, client.ID, subgroup.ID, models.EntityTypeSubgroup)
		require.NoError(t, err)
		assert.Len(t, settings.HiddenEntities, 2)
	})

	t.Run("unknown entity type rejected", func(t *testing.T) {
		_, err := svc.HideEntityForClient(ctx, user.ID, client.ID, category.ID, "Widget")
		assert.True(t, errs.IsInvalidArgument(err))
	})
}

func TestVisibleCategoriesForClient(t *testing.T) {
	store := newTestStore(t)
	users := newTestUserService(t, store)
	hierarchy := NewHierarchyService(store)
	svc := NewVisibilityService(store)
	ctx := context.Background()

	user, err := users.Create(ctx, CreateUserParams{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	client, err := hierarchy.AddClient(ctx, "Acme", "", "")
	require.NoError(t, err)

	visible, err := hierarchy.AddCategory(ctx, "Visible")
	require.NoError(t, err)
	globallyHidden, err := hierarchy.AddCategory(ctx, "GloballyHidden")
	require.NoError(t, err)
	overridden, err := hierarchy.AddCategory(ctx, "Overridden")
	require.NoError(t, err)

	_, err = hierarchy.ToggleCategory(ctx, globallyHidden.ID)
	require.NoError(t, err)

	t.Run("without a settings record only the global flag applies", func(t *testing.T) {
		got, err := svc.VisibleCategoriesForClient(ctx, client.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("override excludes the named category as well", func(t *testing.T) {
		_, err = svc.HideEntityForClient(ctx, user.ID, client.ID, overridden.ID, models.EntityTypeCategory)
		require.NoError(t, err)

		got, err := svc.VisibleCategoriesForClient(ctx, client.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, visible.ID, got[0].ID)
	})

	t.Run("hidden entries of other types do not affect categories", func(t *testing.T) {
		subgroup, err := hierarchy.AddSubgroup(ctx, "QA", visible.ID)
		require.NoError(t, err)
		_, err = svc.HideEntityForClient(ctx, user.ID, client.ID, subgroup.ID, models.EntityTypeSubgroup)
		require.NoError(t, err)

		got, err := svc.VisibleCategoriesForClient(ctx, client.ID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestShaperSoftFail(t *testing.T) {
	store := newTestStore(t)
	hierarchy := NewHierarchyService(store)
	shaper := NewShaper(store)
	ctx := context.Background()

	a, err := hierarchy.AddCategory(ctx, "A")
	require.NoError(t, err)
	b, err := hierarchy.AddCategory(ctx, "B")
	require.NoError(t, err)

	t.Run("order and duplicates survive", func(t *testing.T) {
		got := shaper.Categories(ctx, []string{b.ID, a.ID, b.ID})
		require.Len(t, got, 3)
		assert.Equal(t, []string{b.ID, a.ID, b.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("unresolvable ids are dropped", func(t *testing.T) {
		got := shaper.Categories(ctx, []string{a.ID, "7b0d2c3e-0000-4000-8000-000000000000", "garbage"})
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)
	})

	t.Run("single refs resolve to nil when empty or missing", func(t *testing.T) {
		assert.Nil(t, shaper.User(ctx, ""))
		assert.Nil(t, shaper.Team(ctx, "7b0d2c3e-0000-4000-8000-000000000000"))
	})
}

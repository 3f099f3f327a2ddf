package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
)

func TestAddClientAndCounts(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, "Acme", "12345", "manufacturing")
	require.NoError(t, err)
	require.NotEmpty(t, client.ID)
	assert.Equal(t, "Acme", client.Name)
	assert.Empty(t, client.ProcessGroups)

	count, err := svc.ClientsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := svc.ClientDetail(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, got.ID)
}

func TestClientDetailErrors(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.ClientDetail(ctx, "not-a-uuid")
		assert.True(t, errs.IsInvalidArgument(err))
	})

	t.Run("missing client", func(t *testing.T) {
		_, err := svc.ClientDetail(ctx, "7b0d2c3e-0000-4000-8000-000000000000")
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestAddCategoryToClient(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, "Acme", "", "")
	require.NoError(t, err)
	category, err := svc.AddCategory(ctx, "Operations")
	require.NoError(t, err)

	t.Run("attach by name", func(t *testing.T) {
		updated, err := svc.AddCategoryToClient(ctx, "Operations", client.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{category.ID}, updated.ProcessGroups)
	})

	t.Run("duplicate attach is preserved", func(t *testing.T) {
		updated, err := svc.AddCategoryToClient(ctx, "Operations", client.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{category.ID, category.ID}, updated.ProcessGroups)
	})

	t.Run("unknown category name", func(t *testing.T) {
		_, err := svc.AddCategoryToClient(ctx, "Nope", client.ID)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestAddCategoryToMultipleClients(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	a, err := svc.AddClient(ctx, "A", "", "")
	require.NoError(t, err)
	b, err := svc.AddClient(ctx, "B", "", "")
	require.NoError(t, err)
	category, err := svc.AddCategory(ctx, "Shared")
	require.NoError(t, err)

	missing := "7b0d2c3e-0000-4000-8000-000000000000"
	result, err := svc.AddCategoryToMultipleClients(ctx, category.ID, []string{a.ID, missing, b.ID})
	require.NoError(t, err)

	assert.Len(t, result.Clients, 2)
	assert.Equal(t, []string{missing}, result.SkippedClientIDs)

	gotA, err := svc.ClientDetail(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{category.ID}, gotA.ProcessGroups)
}

func TestAddSubgroupAsymmetry(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	// Attaching to a missing category fails, but the subgroup itself has
	// already been created.
	_, err := svc.AddSubgroup(ctx, "Orphan", "7b0d2c3e-0000-4000-8000-000000000000")
	assert.True(t, errs.IsNotFound(err))

	subgroups, err := svc.Subgroups(ctx)
	require.NoError(t, err)
	require.Len(t, subgroups, 1)
	assert.Equal(t, "Orphan", subgroups[0].Name)
}

func TestAddProcessAttachesToSubgroup(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	category, err := svc.AddCategory(ctx, "Ops")
	require.NoError(t, err)
	subgroup, err := svc.AddSubgroup(ctx, "QA", category.ID)
	require.NoError(t, err)

	process, err := svc.AddProcess(ctx, "Review", subgroup.ID)
	require.NoError(t, err)

	got, err := svc.SubgroupDetails(ctx, subgroup.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{process.ID}, got.Processes)
}

func TestBatchAddProcesses(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	category, err := svc.AddCategory(ctx, "Ops")
	require.NoError(t, err)
	sgA, err := svc.AddSubgroup(ctx, "A", category.ID)
	require.NoError(t, err)
	sgB, err := svc.AddSubgroup(ctx, "B", category.ID)
	require.NoError(t, err)

	p1, err := svc.AddProcess(ctx, "P1", sgA.ID)
	require.NoError(t, err)
	p2, err := svc.AddProcess(ctx, "P2", sgA.ID)
	require.NoError(t, err)

	t.Run("partial success", func(t *testing.T) {
		missing := "7b0d2c3e-0000-4000-8000-000000000000"
		result, err := svc.BatchAddProcesses(ctx, []string{p1.ID, missing, p2.ID}, sgB.ID)
		require.NoError(t, err)

		assert.Len(t, result.Processes, 2)
		assert.Equal(t, []string{missing}, result.SkippedProcessIDs)

		got, err := svc.SubgroupDetails(ctx, sgB.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{p1.ID, p2.ID}, got.Processes)
	})

	t.Run("no resolvable ids", func(t *testing.T) {
		_, err := svc.BatchAddProcesses(ctx, []string{"7b0d2c3e-0000-4000-8000-000000000001"}, sgB.ID)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("missing subgroup", func(t *testing.T) {
		_, err := svc.BatchAddProcesses(ctx, []string{p1.ID}, "7b0d2c3e-0000-4000-8000-000000000000")
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestReassignCategory(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	oldClient, err := svc.AddClient(ctx, "Old", "", "")
	require.NoError(t, err)
	newClient, err := svc.AddClient(ctx, "New", "", "")
	require.NoError(t, err)
	category, err := svc.AddCategory(ctx, "Moving")
	require.NoError(t, err)
	_, err = svc.AddCategoryToClient(ctx, "Moving", oldClient.ID)
	require.NoError(t, err)

	t.Run("moves the reference", func(t *testing.T) {
		_, err := svc.ReassignCategory(ctx, category.ID, oldClient.ID, newClient.ID)
		require.NoError(t, err)

		gotOld, err := svc.ClientDetail(ctx, oldClient.ID)
		require.NoError(t, err)
		assert.Empty(t, gotOld.ProcessGroups)

		gotNew, err := svc.ClientDetail(ctx, newClient.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{category.ID}, gotNew.ProcessGroups)
	})

	t.Run("repeated reassign does not duplicate", func(t *testing.T) {
		_, err := svc.ReassignCategory(ctx, category.ID, oldClient.ID, newClient.ID)
		require.NoError(t, err)

		gotNew, err := svc.ClientDetail(ctx, newClient.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{category.ID}, gotNew.ProcessGroups)
	})

	t.Run("same old and new client is a no-op", func(t *testing.T) {
		_, err := svc.ReassignCategory(ctx, category.ID, newClient.ID, newClient.ID)
		require.NoError(t, err)

		gotNew, err := svc.ClientDetail(ctx, newClient.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{category.ID}, gotNew.ProcessGroups)
	})

	t.Run("missing old client is tolerated", func(t *testing.T) {
		_, err := svc.ReassignCategory(ctx, category.ID, "7b0d2c3e-0000-4000-8000-000000000000", oldClient.ID)
		require.NoError(t, err)

		gotOld, err := svc.ClientDetail(ctx, oldClient.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{category.ID}, gotOld.ProcessGroups)
	})

	t.Run("missing new client fails", func(t *testing.T) {
		_, err := svc.ReassignCategory(ctx, category.ID, oldClient.ID, "7b0d2c3e-0000-4000-8000-000000000000")
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestReassignSubgroup(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	oldCat, err := svc.AddCategory(ctx, "Old")
	require.NoError(t, err)
	newCat, err := svc.AddCategory(ctx, "New")
	require.NoError(t, err)
	subgroup, err := svc.AddSubgroup(ctx, "QA", oldCat.ID)
	require.NoError(t, err)

	_, err = svc.ReassignSubgroup(ctx, subgroup.ID, oldCat.ID, newCat.ID)
	require.NoError(t, err)

	gotOld, err := svc.FindCategory(ctx, oldCat.ID)
	require.NoError(t, err)
	assert.Empty(t, gotOld.Subgroups)

	gotNew, err := svc.FindCategory(ctx, newCat.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{subgroup.ID}, gotNew.Subgroups)
}

func TestReassignProcess(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	category, err := svc.AddCategory(ctx, "Ops")
	require.NoError(t, err)
	oldSg, err := svc.AddSubgroup(ctx, "Old", category.ID)
	require.NoError(t, err)
	newSg, err := svc.AddSubgroup(ctx, "New", category.ID)
	require.NoError(t, err)
	process, err := svc.AddProcess(ctx, "Review", oldSg.ID)
	require.NoError(t, err)

	_, err = svc.ReassignProcess(ctx, process.ID, oldSg.ID, newSg.ID)
	require.NoError(t, err)

	gotOld, err := svc.SubgroupDetails(ctx, oldSg.ID)
	require.NoError(t, err)
	assert.Empty(t, gotOld.Processes)

	gotNew, err := svc.SubgroupDetails(ctx, newSg.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{process.ID}, gotNew.Processes)
}

func TestTogglesAreSelfInverse(t *testing.T) {
	store := newTestStore(t)
	svc := NewHierarchyService(store)
	ctx := context.Background()

	category, err := svc.AddCategory(ctx, "Ops")
	require.NoError(t, err)
	subgroup, err := svc.AddSubgroup(ctx, "QA", category.ID)
	require.NoError(t, err)
	process, err := svc.AddProcess(ctx, "Review", subgroup.ID)
	require.NoError(t, err)

	c1, err := svc.ToggleCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, c1.Hidden)
	c2, err := svc.ToggleCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, c2.Hidden)

	s1, err := svc.ToggleSubgroup(ctx, subgroup.ID)
	require.NoError(t, err)
	assert.True(t, s1.Hidden)
	s2, err := svc.ToggleSubgroup(ctx, subgroup.ID)
	require.NoError(t, err)
	assert.False(t, s2.Hidden)

	p1, err := svc.ToggleProcess(ctx, process.ID)
	require.NoError(t, err)
	assert.True(t, p1.Hidden)
	p2, err := svc.ToggleProcess(ctx, process.ID)
	require.NoError(t, err)
	assert.False(t, p2.Hidden)
}

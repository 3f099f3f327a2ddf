package service

import (
	"context"
	"log/slog"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage"
)

// HierarchyService maintains the client → category → subgroup → process chain:
// creation, attachment, reassignment and visibility toggles of the entities
// and the two-sided reference lists between them.
type HierarchyService struct {
	store storage.Store
}

// NewHierarchyService creates a new HierarchyService with the given storage backend.
func NewHierarchyService(store storage.Store) *HierarchyService {
	return &HierarchyService{store: store}
}

// ClientBatchResult reports a partial-success batch attach: the clients that
// were updated and the ids that did not resolve.
type ClientBatchResult struct {
	Clients          []*models.Client `json:"clients"`
	SkippedClientIDs []string         `json:"skippedClientIds"`
}

// ProcessBatchResult reports a partial-success batch attach: the processes
// that were attached and the ids that did not resolve.
type ProcessBatchResult struct {
	Processes         []*models.Process `json:"processes"`
	SkippedProcessIDs []string          `json:"skippedProcessIds"`
}

// AddClient creates a new client.
func (s *HierarchyService) AddClient(ctx context.Context, name, taxID, description string) (*models.Client, error) {
	const op = "HierarchyService.AddClient"
	slog.Info("AddClient", "name", name)

	client := &models.Client{Name: name, TaxID: taxID, Description: description}
	if err := s.store.CreateClient(ctx, client); err != nil {
		slog.Error("AddClient failed", "name", name, "error", err)
		return nil, errs.Wrap(err, op, name)
	}
	return client, nil
}

// AddCategory creates a new category, unattached to any client.
func (s *HierarchyService) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	const op = "HierarchyService.AddCategory"
	slog.Info("AddCategory", "name", name)

	category := &models.Category{Name: name}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		slog.Error("AddCategory failed", "name", name, "error", err)
		return nil, errs.Wrap(err, op, name)
	}
	return category, nil
}

// AddCategoryToClient attaches the category with the given name to a client's
// process groups. The attach does not dedupe: adding the same category twice
// leaves its id listed twice, matching the historical contract.
func (s *HierarchyService) AddCategoryToClient(ctx context.Context, name, clientID string) (*models.Client, error) {
	const op = "HierarchyService.AddCategoryToClient"
	slog.Info("AddCategoryToClient", "name", name, "client_id", clientID)

	category, err := s.store.GetCategoryByName(ctx, name)
	if err != nil {
		return nil, errs.Wrap(err, op, name)
	}
	if category == nil {
		return nil, errs.Wrap(errs.NotFound("category not found", name), op)
	}

	client, err := s.store.GetClient(ctx, clientID)
	if err != nil {
		return nil, errs.Wrap(err, op, clientID)
	}

	client.ProcessGroups = append(client.ProcessGroups, category.ID)
	if err := s.store.UpdateClient(ctx, client); err != nil {
		slog.Error("AddCategoryToClient failed", "client_id", clientID, "error", err)
		return nil, errs.Wrap(err, op, name, clientID)
	}
	return client, nil
}

// AddCategoryToMultipleClients attaches one category to several clients.
// Client ids that do not resolve are skipped individually and reported in the
// result; the remaining clients are still updated.
func (s *HierarchyService) AddCategoryToMultipleClients(ctx context.Context, categoryID string, clientIDs []string) (*ClientBatchResult, error) {
	const op = "HierarchyService.AddCategoryToMultipleClients"
	slog.Info("AddCategoryToMultipleClients", "category_id", categoryID, "clients_count", len(clientIDs))

	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, errs.Wrap(err, op, categoryID)
	}

	result := &ClientBatchResult{}
	for _, clientID := range clientIDs {
		client, err := s.store.GetClient(ctx, clientID)
		if err != nil {
			slog.Warn("AddCategoryToMultipleClients skipping client", "client_id", clientID, "error", err)
			result.SkippedClientIDs = append(result.SkippedClientIDs, clientID)
			continue
		}
		client.ProcessGroups = append(client.ProcessGroups, category.ID)
		if err := s.store.UpdateClient(ctx, client); err != nil {
			slog.Warn("AddCategoryToMultipleClients update failed", "client_id", clientID, "error", err)
			result.SkippedClientIDs = append(result.SkippedClientIDs, clientID)
			continue
		}
		result.Clients = append(result.Clients, client)
	}
	return result, nil
}

// AddSubgroup creates a subgroup and attaches it to the given category.
// The create and the attach are separate writes: when the category does not
// resolve the subgroup has already been created and the attach error is
// surfaced. Callers relying on this asymmetry exist, so it is preserved.
func (s *HierarchyService) AddSubgroup(ctx context.Context, name, categoryID string) (*models.Subgroup, error) {
	const op = "HierarchyService.AddSubgroup"
	slog.Info("AddSubgroup", "name", name, "category_id", categoryID)

	subgroup := &models.Subgroup{Name: name}
	if err := s.store.CreateSubgroup(ctx, subgroup); err != nil {
		slog.Error("AddSubgroup failed", "name", name, "error", err)
		return nil, errs.Wrap(err, op, name)
	}

	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		slog.Error("AddSubgroup attach failed", "subgroup_id", subgroup.ID, "category_id", categoryID, "error", err)
		return nil, errs.Wrap(err, op, categoryID)
	}
	category.Subgroups = append(category.Subgroups, subgroup.ID)
	if err := s.store.UpdateCategory(ctx, category); err != nil {
		return nil, errs.Wrap(err, op, categoryID)
	}
	return subgroup, nil
}

// AddProcess creates a process and attaches it to the given subgroup, with
// the same create-then-attach asymmetry as AddSubgroup.
func (s *HierarchyService) AddProcess(ctx context.Context, name, subgroupID string) (*models.Process, error) {
	const op = "HierarchyService.AddProcess"
	slog.Info("AddProcess", "name", name, "subgroup_id", subgroupID)

	process := &models.Process{Name: name}
	if err := s.store.CreateProcess(ctx, process); err != nil {
		slog.Error("AddProcess failed", "name", name, "error", err)
		return nil, errs.Wrap(err, op, name)
	}

	subgroup, err := s.store.GetSubgroup(ctx, subgroupID)
	if err != nil {
		slog.Error("AddProcess attach failed", "process_id", process.ID, "subgroup_id", subgroupID, "error", err)
		return nil, errs.Wrap(err, op, subgroupID)
	}
	subgroup.Processes = append(subgroup.Processes, process.ID)
	if err := s.store.UpdateSubgroup(ctx, subgroup); err != nil {
		return nil, errs.Wrap(err, op, subgroupID)
	}
	return process, nil
}

// BatchAddProcesses attaches every resolvable process id to one subgroup.
// Unresolvable ids are dropped and reported; zero resolvable ids is a hard
// failure. There is no detach step, so a process can end up listed under
// several subgroups. That inconsistency is accepted, not corrected here.
func (s *HierarchyService) BatchAddProcesses(ctx context.Context, processIDs []string, subgroupID string) (*ProcessBatchResult, error) {
	const op = "HierarchyService.BatchAddProcesses"
	slog.Info("BatchAddProcesses", "subgroup_id", subgroupID, "processes_count", len(processIDs))

	subgroup, err := s.store.GetSubgroup(ctx, subgroupID)
	if err != nil {
		return nil, errs.Wrap(err, op, subgroupID)
	}

	processes, err := s.store.GetProcessesByIDs(ctx, processIDs)
	if err != nil {
		return nil, errs.Wrap(err, op, subgroupID)
	}
	if len(processes) == 0 {
		return nil, errs.Wrap(errs.NotFound("no valid processes found for given ids", processIDs...), op)
	}

	resolved := make(map[string]bool, len(processes))
	for _, p := range processes {
		resolved[p.ID] = true
		if !containsID(subgroup.Processes, p.ID) {
			subgroup.Processes = append(subgroup.Processes, p.ID)
		}
	}
	if err := s.store.UpdateSubgroup(ctx, subgroup); err != nil {
		slog.Error("BatchAddProcesses failed", "subgroup_id", subgroupID, "error", err)
		return nil, errs.Wrap(err, op, subgroupID)
	}

	result := &ProcessBatchResult{Processes: processes}
	for _, id := range processIDs {
		if !resolved[id] {
			result.SkippedProcessIDs = append(result.SkippedProcessIDs, id)
		}
	}
	return result, nil
}

// ReassignCategory moves a category reference between two clients' process
// group lists. The attach to the new client happens first and is idempotent;
// the detach from the old client is best-effort and skipped entirely when the
// two client ids are equal.
func (s *HierarchyService) ReassignCategory(ctx context.Context, categoryID, oldClientID, newClientID string) (*models.Category, error) {
	const op = "HierarchyService.ReassignCategory"
	slog.Info("ReassignCategory", "category_id", categoryID, "old_client_id", oldClientID, "new_client_id", newClientID)

	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, errs.Wrap(err, op, categoryID)
	}

	newClient, err := s.store.GetClient(ctx, newClientID)
	if err != nil {
		return nil, errs.Wrap(err, op, newClientID)
	}
	if !containsID(newClient.ProcessGroups, categoryID) {
		newClient.ProcessGroups = append(newClient.ProcessGroups, categoryID)
		if err := s.store.UpdateClient(ctx, newClient); err != nil {
			return nil, errs.Wrap(err, op, categoryID, newClientID)
		}
	}

	if oldClientID != "" && oldClientID != newClientID {
		s.detachCategory(ctx, categoryID, oldClientID)
	}
	return category, nil
}

func (s *HierarchyService) detachCategory(ctx context.Context, categoryID, clientID string) {
	client, err := s.store.GetClient(ctx, clientID)
	if err != nil {
		slog.Warn("ReassignCategory skipping detach", "old_client_id", clientID, "error", err)
		return
	}
	client.ProcessGroups = removeID(client.ProcessGroups, categoryID)
	if err := s.store.UpdateClient(ctx, client); err != nil {
		slog.Warn("ReassignCategory detach failed", "old_client_id", clientID, "error", err)
	}
}

// ReassignSubgroup moves a subgroup reference between two categories'
// subgroup lists.
func (s *HierarchyService) ReassignSubgroup(ctx context.Context, subgroupID, oldCategoryID, newCategoryID string) (*models.Subgroup, error) {
	const op = "HierarchyService.ReassignSubgroup"
	slog.Info("ReassignSubgroup", "subgroup_id", subgroupID, "old_category_id", oldCategoryID, "new_category_id", newCategoryID)

	subgroup, err := s.store.GetSubgroup(ctx, subgroupID)
	if err != nil {
		return nil, errs.Wrap(err, op, subgroupID)
	}

	newCategory, err := s.store.GetCategory(ctx, newCategoryID)
	if err != nil {
		return nil, errs.Wrap(err, op, newCategoryID)
	}
	if !containsID(newCategory.Subgroups, subgroupID) {
		newCategory.Subgroups = append(newCategory.Subgroups, subgroupID)
		if err := s.store.UpdateCategory(ctx, newCategory); err != nil {
			return nil, errs.Wrap(err, op, subgroupID, newCategoryID)
		}
	}

	if oldCategoryID != "" && oldCategoryID != newCategoryID {
		s.detachSubgroup(ctx, subgroupID, oldCategoryID)
	}
	return subgroup, nil
}

func (s *HierarchyService) detachSubgroup(ctx context.Context, subgroupID, categoryID string) {
	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		slog.Warn("ReassignSubgroup skipping detach", "old_category_id", categoryID, "error", err)
		return
	}
	category.Subgroups = removeID(category.Subgroups, subgroupID)
	if err := s.store.UpdateCategory(ctx, category); err != nil {
		slog.Warn("ReassignSubgroup detach failed", "old_category_id", categoryID, "error", err)
	}
}

// ReassignProcess moves a process reference between two subgroups' process
// lists.
func (s *HierarchyService) ReassignProcess(ctx context.Context, processID, oldSubgroupID, newSubgroupID string) (*models.Process, error) {
	const op = "HierarchyService.ReassignProcess"
	slog.Info("ReassignProcess", "process_id", processID, "old_subgroup_id", oldSubgroupID, "new_subgroup_id", newSubgroupID)

	process, err := s.store.GetProcess(ctx, processID)
	if err != nil {
		return nil, errs.Wrap(err, op, processID)
	}

	newSubgroup, err := s.store.GetSubgroup(ctx, newSubgroupID)
	if err != nil {
		return nil, errs.Wrap(err, op, newSubgroupID)
	}
	if !containsID(newSubgroup.Processes, processID) {
		newSubgroup.Processes = append(newSubgroup.Processes, processID)
		if err := s.store.UpdateSubgroup(ctx, newSubgroup); err != nil {
			return nil, errs.Wrap(err, op, processID, newSubgroupID)
		}
	}

	if oldSubgroupID != "" && oldSubgroupID != newSubgroupID {
		s.detachProcess(ctx, processID, oldSubgroupID)
	}
	return process, nil
}

func (s *HierarchyService) detachProcess(ctx context.Context, processID, subgroupID string) {
	subgroup, err := s.store.GetSubgroup(ctx, subgroupID)
	if err != nil {
		slog.Warn("ReassignProcess skipping detach", "old_subgroup_id", subgroupID, "error", err)
		return
	}
	subgroup.Processes = removeID(subgroup.Processes, processID)
	if err := s.store.UpdateSubgroup(ctx, subgroup); err != nil {
		slog.Warn("ReassignProcess detach failed", "old_subgroup_id", subgroupID, "error", err)
	}
}

// ToggleCategory flips the category's global hidden flag.
func (s *HierarchyService) ToggleCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	const op = "HierarchyService.ToggleCategory"

	category, err := s.store.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, errs.Wrap(err, op, categoryID)
	}
	category.Hidden = !category.Hidden
	if err := s.store.UpdateCategory(ctx, category); err != nil {
		return nil, errs.Wrap(err, op, categoryID)
	}
	slog.Info("ToggleCategory", "category_id", categoryID, "hidden", category.Hidden)
	return category, nil
}

// ToggleSubgroup flips the subgroup's global hidden flag.
func (s *HierarchyService) ToggleSubgroup(ctx context.Context, subgroupID string) (*models.Subgroup, error) {
	const op = "HierarchyService.ToggleSubgroup"

	subgroup, err := s.store.GetSubgroup(ctx, subgroupID)
	if err != nil {
		return nil, errs.Wrap(err, op, subgroupID)
	}
	subgroup.Hidden = !subgroup.Hidden
	if err := s.store.UpdateSubgroup(ctx, subgroup); err != nil {
		return nil, errs.Wrap(err, op, subgroupID)
	}
	slog.Info("ToggleSubgroup", "subgroup_id", subgroupID, "hidden", subgroup.Hidden)
	return subgroup, nil
}

// ToggleProcess flips the process's global hidden flag.
func (s *HierarchyService) ToggleProcess(ctx context.Context, processID string) (*models.Process, error) {
	const op = "HierarchyService.ToggleProcess"

	process, err := s.store.GetProcess(ctx, processID)
	if err != nil {
		return nil, errs.Wrap(err, op, processID)
	}
	process.Hidden = !process.Hidden
	if err := s.store.UpdateProcess(ctx, process); err != nil {
		return nil, errs.Wrap(err, op, processID)
	}
	slog.Info("ToggleProcess", "process_id", processID, "hidden", process.Hidden)
	return process, nil
}

// Clients lists all clients.
func (s *HierarchyService) Clients(ctx context.Context) ([]*models.Client, error) {
	clients, err := s.store.ListClients(ctx)
	return clients, errs.Wrap(err, "HierarchyService.Clients")
}

// ClientsCount returns the number of clients.
func (s *HierarchyService) ClientsCount(ctx context.Context) (int, error) {
	count, err := s.store.CountClients(ctx)
	return count, errs.Wrap(err, "HierarchyService.ClientsCount")
}

// ClientDetail retrieves one client as the root of a nested view. A malformed
// id fails before any store access; a missing client is NotFound. The nested
// hops (categories, subgroups, processes) are resolved by the Shaper and fail
// soft.
func (s *HierarchyService) ClientDetail(ctx context.Context, clientID string) (*models.Client, error) {
	client, err := s.store.GetClient(ctx, clientID)
	return client, errs.Wrap(err, "HierarchyService.ClientDetail", clientID)
}

// Categories lists all categories.
func (s *HierarchyService) Categories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	return categories, errs.Wrap(err, "HierarchyService.Categories")
}

// FindCategory retrieves one category.
func (s *HierarchyService) FindCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	category, err := s.store.GetCategory(ctx, categoryID)
	return category, errs.Wrap(err, "HierarchyService.FindCategory", categoryID)
}

// Subgroups lists all subgroups.
func (s *HierarchyService) Subgroups(ctx context.Context) ([]*models.Subgroup, error) {
	subgroups, err := s.store.ListSubgroups(ctx)
	return subgroups, errs.Wrap(err, "HierarchyService.Subgroups")
}

// SubgroupDetails retrieves one subgroup.
func (s *HierarchyService) SubgroupDetails(ctx context.Context, subgroupID string) (*models.Subgroup, error) {
	subgroup, err := s.store.GetSubgroup(ctx, subgroupID)
	return subgroup, errs.Wrap(err, "HierarchyService.SubgroupDetails", subgroupID)
}

// Processes lists all processes.
func (s *HierarchyService) Processes(ctx context.Context) ([]*models.Process, error) {
	processes, err := s.store.ListProcesses(ctx)
	return processes, errs.Wrap(err, "HierarchyService.Processes")
}

// FindProcess retrieves one process.
func (s *HierarchyService) FindProcess(ctx context.Context, processID string) (*models.Process, error) {
	process, err := s.store.GetProcess(ctx, processID)
	return process, errs.Wrap(err, "HierarchyService.FindProcess", processID)
}

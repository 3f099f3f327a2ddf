package service

import (
	"context"
	"log/slog"

	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage"
)

// Shaper composes nested read views by walking reference id lists: a client's
// process groups into categories, a category's subgroups, a subgroup's
// processes, a team's leader/members/clients, a user's favorites. Every hop
// fails soft — an id that does not resolve is omitted from the result, never
// turned into a query failure. Only root lookups (owned by the services)
// fail hard.
//
// Ids are resolved one by one rather than batched so that list order and
// duplicate references survive, matching the reference-list semantics.
type Shaper struct {
	store storage.Store
}

// NewShaper creates a new Shaper over the given storage backend.
func NewShaper(store storage.Store) *Shaper {
	return &Shaper{store: store}
}

// Categories resolves category ids, omitting any that fail.
func (sh *Shaper) Categories(ctx context.Context, ids []string) []*models.Category {
	out := make([]*models.Category, 0, len(ids))
	for _, id := range ids {
		category, err := sh.store.GetCategory(ctx, id)
		if err != nil {
			slog.Debug("Shaper dropping unresolvable category", "category_id", id, "error", err)
			continue
		}
		out = append(out, category)
	}
	return out
}

// Subgroups resolves subgroup ids, omitting any that fail.
func (sh *Shaper) Subgroups(ctx context.Context, ids []string) []*models.Subgroup {
	out := make([]*models.Subgroup, 0, len(ids))
	for _, id := range ids {
		subgroup, err := sh.store.GetSubgroup(ctx, id)
		if err != nil {
			slog.Debug("Shaper dropping unresolvable subgroup", "subgroup_id", id, "error", err)
			continue
		}
		out = append(out, subgroup)
	}
	return out
}

// Processes resolves process ids, omitting any that fail.
func (sh *Shaper) Processes(ctx context.Context, ids []string) []*models.Process {
	out := make([]*models.Process, 0, len(ids))
	for _, id := range ids {
		process, err := sh.store.GetProcess(ctx, id)
		if err != nil {
			slog.Debug("Shaper dropping unresolvable process", "process_id", id, "error", err)
			continue
		}
		out = append(out, process)
	}
	return out
}

// Clients resolves client ids, omitting any that fail.
func (sh *Shaper) Clients(ctx context.Context, ids []string) []*models.Client {
	out := make([]*models.Client, 0, len(ids))
	for _, id := range ids {
		client, err := sh.store.GetClient(ctx, id)
		if err != nil {
			slog.Debug("Shaper dropping unresolvable client", "client_id", id, "error", err)
			continue
		}
		out = append(out, client)
	}
	return out
}

// Users resolves user ids, omitting any that fail.
func (sh *Shaper) Users(ctx context.Context, ids []string) []*models.User {
	out := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		user, err := sh.store.GetUser(ctx, id)
		if err != nil {
			slog.Debug("Shaper dropping unresolvable user", "user_id", id, "error", err)
			continue
		}
		out = append(out, user)
	}
	return out
}

// User resolves a single user reference, nil when it does not resolve.
func (sh *Shaper) User(ctx context.Context, id string) *models.User {
	if id == "" {
		return nil
	}
	user, err := sh.store.GetUser(ctx, id)
	if err != nil {
		slog.Debug("Shaper dropping unresolvable user", "user_id", id, "error", err)
		return nil
	}
	return user
}

// Team resolves a single team reference, nil when it does not resolve.
func (sh *Shaper) Team(ctx context.Context, id string) *models.Team {
	if id == "" {
		return nil
	}
	team, err := sh.store.GetTeam(ctx, id)
	if err != nil {
		slog.Debug("Shaper dropping unresolvable team", "team_id", id, "error", err)
		return nil
	}
	return team
}

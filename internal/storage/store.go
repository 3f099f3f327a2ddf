// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

// Store defines the entity repository: CRUD and lookup for every entity type.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Contract:
//
//   - Create* assigns a UUID (and CreatedAt where applicable) when unset.
//   - Get* on a syntactically invalid id fails with errs.InvalidArgument
//     before any store access; on a missing row it fails with errs.NotFound.
//   - GetUserByEmail, GetTeamByName and GetSettings are lookup probes: a
//     missing record yields (nil, nil), not an error.
//   - Uniqueness violations (email, team name, (user, client) settings pair)
//     fail with errs.Conflict.
//   - There is no physical delete; removal always means removing an id from a
//     parent's reference list via Update*.
type Store interface {
	// Clients
	CreateClient(ctx context.Context, client *models.Client) error
	GetClient(ctx context.Context, id string) (*models.Client, error)
	ListClients(ctx context.Context) ([]*models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
	CountClients(ctx context.Context) (int, error)

	// Categories
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error

	// Subgroups
	CreateSubgroup(ctx context.Context, subgroup *models.Subgroup) error
	GetSubgroup(ctx context.Context, id string) (*models.Subgroup, error)
	ListSubgroups(ctx context.Context) ([]*models.Subgroup, error)
	UpdateSubgroup(ctx context.Context, subgroup *models.Subgroup) error

	// Processes
	CreateProcess(ctx context.Context, process *models.Process) error
	GetProcess(ctx context.Context, id string) (*models.Process, error)
	GetProcessesByIDs(ctx context.Context, ids []string) ([]*models.Process, error)
	ListProcesses(ctx context.Context) ([]*models.Process, error)
	UpdateProcess(ctx context.Context, process *models.Process) error

	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	CountUsers(ctx context.Context) (int, error)

	// Teams
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, team *models.Team) error

	// Visibility override records
	CreateSettings(ctx context.Context, settings *models.ClientSettings) error
	GetSettings(ctx context.Context, userID, clientID string) (*models.ClientSettings, error)
	GetSettingsByClient(ctx context.Context, clientID string) (*models.ClientSettings, error)
	UpdateSettings(ctx context.Context, settings *models.ClientSettings) error

	// Close releases any resources held by the store.
	Close() error
}

package service

import (
	"context"
	"log/slog"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage"
)

// TeamService maintains teams and the team↔user edges: a user leads at most
// one team and belongs to at most one team's member list at a time.
type TeamService struct {
	store storage.Store
}

// NewTeamService creates a new TeamService with the given storage backend.
func NewTeamService(store storage.Store) *TeamService {
	return &TeamService{store: store}
}

// CreateTeam creates a team led by the given user. It fails with Conflict if
// the leader already leads another team or the team name is taken. As a side
// effect the leader is removed from every other team's member list before
// becoming the sole initial member of the new team, and the leader's own team
// reference is updated.
func (s *TeamService) CreateTeam(ctx context.Context, teamName, subsidiary, leaderID string) (*models.Team, error) {
	const op = "TeamService.CreateTeam"
	slog.Info("CreateTeam", "team_name", teamName, "subsidiary", subsidiary, "leader_id", leaderID)

	if teamName == "" {
		return nil, errs.Wrap(errs.InvalidArgument("team name is required"), op)
	}
	if subsidiary == "" {
		return nil, errs.Wrap(errs.InvalidArgument("subsidiary is required"), op)
	}

	leader, err := s.store.GetUser(ctx, leaderID)
	if err != nil {
		return nil, errs.Wrap(err, op, leaderID)
	}

	existing, err := s.store.GetTeamByName(ctx, teamName)
	if err != nil {
		return nil, errs.Wrap(err, op, teamName)
	}
	if existing != nil {
		return nil, errs.Wrap(errs.Conflict("team name already taken", teamName), op)
	}

	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, errs.Wrap(err, op)
	}
	for _, t := range teams {
		if t.LeaderID == leaderID {
			return nil, errs.Wrap(errs.Conflict("leader already leads a team", leaderID, t.ID), op)
		}
	}

	// Membership in one team excludes membership in another.
	for _, t := range teams {
		if containsID(t.Members, leaderID) {
			t.Members = removeID(t.Members, leaderID)
			if err := s.store.UpdateTeam(ctx, t); err != nil {
				return nil, errs.Wrap(err, op, t.ID)
			}
			slog.Info("CreateTeam removed leader from previous team", "team_id", t.ID, "leader_id", leaderID)
		}
	}

	team := &models.Team{
		TeamName:   teamName,
		Subsidiary: subsidiary,
		LeaderID:   leaderID,
		Members:    []string{leaderID},
	}
	if err := s.store.CreateTeam(ctx, team); err != nil {
		slog.Error("CreateTeam failed", "team_name", teamName, "error", err)
		return nil, errs.Wrap(err, op, teamName)
	}

	leader.TeamID = team.ID
	if err := s.store.UpdateUser(ctx, leader); err != nil {
		return nil, errs.Wrap(err, op, leaderID)
	}

	slog.Info("Team created", "team_id", team.ID, "team_name", team.TeamName)
	return team, nil
}

// Teams lists all teams.
func (s *TeamService) Teams(ctx context.Context) ([]*models.Team, error) {
	teams, err := s.store.ListTeams(ctx)
	return teams, errs.Wrap(err, "TeamService.Teams")
}

// TeamDetails retrieves one team as the root of a nested view; the leader,
// member and client hops are resolved by the Shaper and fail soft.
func (s *TeamService) TeamDetails(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.store.GetTeam(ctx, teamID)
	return team, errs.Wrap(err, "TeamService.TeamDetails", teamID)
}

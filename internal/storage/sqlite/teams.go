package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

// CreateTeam inserts a new team. A duplicate team name fails with Conflict.
func (s *SQLiteStore) CreateTeam(ctx context.Context, team *models.Team) error {
	if team.TeamName == "" {
		return errs.InvalidArgument("team name is required")
	}
	if team.Subsidiary == "" {
		return errs.InvalidArgument("subsidiary is required")
	}
	if team.LeaderID == "" {
		return errs.InvalidArgument("leader is required")
	}
	if team.ID == "" {
		team.ID = newID()
	}

	members, err := marshalList(team.Members)
	if err != nil {
		return err
	}
	clients, err := marshalList(team.Clients)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO teams (id, team_name, subsidiary, leader_id, members, clients) VALUES (?, ?, ?, ?, ?, ?)",
		team.ID, team.TeamName, team.Subsidiary, team.LeaderID, members, clients,
	)
	if isUniqueViolation(err) {
		return errs.Conflict("team name already taken", team.TeamName)
	}
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	return nil
}

// GetTeam retrieves a team by id.
func (s *SQLiteStore) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	team, err := scanTeam(s.db.QueryRowContext(ctx,
		"SELECT id, team_name, subsidiary, leader_id, members, clients FROM teams WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, errs.NotFound("team not found", id)
	}
	return team, err
}

// GetTeamByName is a lookup probe: a missing team yields (nil, nil).
func (s *SQLiteStore) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	team, err := scanTeam(s.db.QueryRowContext(ctx,
		"SELECT id, team_name, subsidiary, leader_id, members, clients FROM teams WHERE team_name = ?", name,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return team, err
}

func scanTeam(row scanner) (*models.Team, error) {
	var (
		team    models.Team
		members string
		clients string
	)
	err := row.Scan(&team.ID, &team.TeamName, &team.Subsidiary, &team.LeaderID, &members, &clients)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan team: %w", err)
	}
	if err := unmarshalList(members, &team.Members); err != nil {
		return nil, err
	}
	if err := unmarshalList(clients, &team.Clients); err != nil {
		return nil, err
	}
	return &team, nil
}

// ListTeams retrieves all teams.
func (s *SQLiteStore) ListTeams(ctx context.Context) ([]*models.Team, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, team_name, subsidiary, leader_id, members, clients FROM teams ORDER BY team_name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}
	return teams, nil
}

// UpdateTeam persists changes to an existing team.
func (s *SQLiteStore) UpdateTeam(ctx context.Context, team *models.Team) error {
	if err := checkID(team.ID); err != nil {
		return err
	}

	members, err := marshalList(team.Members)
	if err != nil {
		return err
	}
	clients, err := marshalList(team.Clients)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE teams SET team_name = ?, subsidiary = ?, leader_id = ?, members = ?, clients = ? WHERE id = ?",
		team.TeamName, team.Subsidiary, team.LeaderID, members, clients, team.ID,
	)
	if isUniqueViolation(err) {
		return errs.Conflict("team name already taken", team.TeamName)
	}
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound("team not found", team.ID)
	}
	return nil
}

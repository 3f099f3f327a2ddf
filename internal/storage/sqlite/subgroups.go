package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

// CreateSubgroup inserts a new subgroup.
func (s *SQLiteStore) CreateSubgroup(ctx context.Context, subgroup *models.Subgroup) error {
	if subgroup.Name == "" {
		return errs.InvalidArgument("subgroup name is required")
	}
	if subgroup.ID == "" {
		subgroup.ID = newID()
	}

	processes, err := marshalList(subgroup.Processes)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO subgroups (id, name, processes, hidden) VALUES (?, ?, ?, ?)",
		subgroup.ID, subgroup.Name, processes, subgroup.Hidden,
	)
	if err != nil {
		return fmt.Errorf("failed to insert subgroup: %w", err)
	}
	return nil
}

// GetSubgroup retrieves a subgroup by id.
func (s *SQLiteStore) GetSubgroup(ctx context.Context, id string) (*models.Subgroup, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var (
		subgroup  models.Subgroup
		processes string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, processes, hidden FROM subgroups WHERE id = ?", id,
	).Scan(&subgroup.ID, &subgroup.Name, &processes, &subgroup.Hidden)
	if err == sql.ErrNoRows {
		return nil, errs.NotFound("subgroup not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subgroup: %w", err)
	}

	if err := unmarshalList(processes, &subgroup.Processes); err != nil {
		return nil, err
	}
	return &subgroup, nil
}

// ListSubgroups retrieves all subgroups.
func (s *SQLiteStore) ListSubgroups(ctx context.Context) ([]*models.Subgroup, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, processes, hidden FROM subgroups ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list subgroups: %w", err)
	}
	defer rows.Close()

	var subgroups []*models.Subgroup
	for rows.Next() {
		var (
			subgroup  models.Subgroup
			processes string
		)
		if err := rows.Scan(&subgroup.ID, &subgroup.Name, &processes, &subgroup.Hidden); err != nil {
			return nil, fmt.Errorf("failed to scan subgroup: %w", err)
		}
		if err := unmarshalList(processes, &subgroup.Processes); err != nil {
			return nil, err
		}
		subgroups = append(subgroups, &subgroup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subgroups: %w", err)
	}
	return subgroups, nil
}

// UpdateSubgroup persists changes to an existing subgroup.
func (s *SQLiteStore) UpdateSubgroup(ctx context.Context, subgroup *models.Subgroup) error {
	if err := checkID(subgroup.ID); err != nil {
		return err
	}

	processes, err := marshalList(subgroup.Processes)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE subgroups SET name = ?, processes = ?, hidden = ? WHERE id = ?",
		subgroup.Name, processes, subgroup.Hidden, subgroup.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subgroup: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound("subgroup not found", subgroup.ID)
	}
	return nil
}

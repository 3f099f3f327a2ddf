package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

// CreateProcess inserts a new process.
func (s *SQLiteStore) CreateProcess(ctx context.Context, process *models.Process) error {
	if process.Name == "" {
		return errs.InvalidArgument("process name is required")
	}
	if process.ID == "" {
		process.ID = newID()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO processes (id, name, hidden) VALUES (?, ?, ?)",
		process.ID, process.Name, process.Hidden,
	)
	if err != nil {
		return fmt.Errorf("failed to insert process: %w", err)
	}
	return nil
}

// GetProcess retrieves a process by id.
func (s *SQLiteStore) GetProcess(ctx context.Context, id string) (*models.Process, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var process models.Process
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, hidden FROM processes WHERE id = ?", id,
	).Scan(&process.ID, &process.Name, &process.Hidden)
	if err == sql.ErrNoRows {
		return nil, errs.NotFound("process not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get process: %w", err)
	}
	return &process, nil
}

// GetProcessesByIDs retrieves the processes matching the given ids, in the
// order the ids were supplied. Ids that do not resolve are omitted.
func (s *SQLiteStore) GetProcessesByIDs(ctx context.Context, ids []string) ([]*models.Process, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := "SELECT id, name, hidden FROM processes WHERE id IN (?" + repeatPlaceholder(len(ids)-1) + ")"
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get processes by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*models.Process, len(ids))
	for rows.Next() {
		var process models.Process
		if err := rows.Scan(&process.ID, &process.Name, &process.Hidden); err != nil {
			return nil, fmt.Errorf("failed to scan process: %w", err)
		}
		byID[process.ID] = &process
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate processes: %w", err)
	}

	var processes []*models.Process
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			processes = append(processes, p)
			delete(byID, id) // a duplicated input id resolves once
		}
	}
	return processes, nil
}

// ListProcesses retrieves all processes.
func (s *SQLiteStore) ListProcesses(ctx context.Context) ([]*models.Process, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, hidden FROM processes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	defer rows.Close()

	var processes []*models.Process
	for rows.Next() {
		var process models.Process
		if err := rows.Scan(&process.ID, &process.Name, &process.Hidden); err != nil {
			return nil, fmt.Errorf("failed to scan process: %w", err)
		}
		processes = append(processes, &process)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate processes: %w", err)
	}
	return processes, nil
}

// UpdateProcess persists changes to an existing process.
func (s *SQLiteStore) UpdateProcess(ctx context.Context, process *models.Process) error {
	if err := checkID(process.ID); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE processes SET name = ?, hidden = ? WHERE id = ?",
		process.Name, process.Hidden, process.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update process: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound("process not found", process.ID)
	}
	return nil
}

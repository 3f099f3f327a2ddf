package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

// CreateClient inserts a new client. The name is required; an empty id is
// assigned a fresh UUID.
func (s *SQLiteStore) CreateClient(ctx context.Context, client *models.Client) error {
	if client.Name == "" {
		return errs.InvalidArgument("client name is required")
	}
	if client.ID == "" {
		client.ID = newID()
	}

	groups, err := marshalList(client.ProcessGroups)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO clients (id, name, tax_id, description, process_groups, is_favorite) VALUES (?, ?, ?, ?, ?, ?)",
		client.ID, client.Name, client.TaxID, client.Description, groups, client.IsFavorite,
	)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

// GetClient retrieves a client by id.
func (s *SQLiteStore) GetClient(ctx context.Context, id string) (*models.Client, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	var (
		client models.Client
		groups string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, tax_id, description, process_groups, is_favorite FROM clients WHERE id = ?",
		id,
	).Scan(&client.ID, &client.Name, &client.TaxID, &client.Description, &groups, &client.IsFavorite)
	if err == sql.ErrNoRows {
		return nil, errs.NotFound("client not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	if err := unmarshalList(groups, &client.ProcessGroups); err != nil {
		return nil, err
	}
	return &client, nil
}

// ListClients retrieves all clients.
func (s *SQLiteStore) ListClients(ctx context.Context) ([]*models.Client, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, tax_id, description, process_groups, is_favorite FROM clients ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		var (
			client models.Client
			groups string
		)
		if err := rows.Scan(&client.ID, &client.Name, &client.TaxID, &client.Description, &groups, &client.IsFavorite); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		if err := unmarshalList(groups, &client.ProcessGroups); err != nil {
			return nil, err
		}
		clients = append(clients, &client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate clients: %w", err)
	}
	return clients, nil
}

// UpdateClient persists changes to an existing client.
func (s *SQLiteStore) UpdateClient(ctx context.Context, client *models.Client) error {
	if err := checkID(client.ID); err != nil {
		return err
	}

	groups, err := marshalList(client.ProcessGroups)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE clients SET name = ?, tax_id = ?, description = ?, process_groups = ?, is_favorite = ? WHERE id = ?",
		client.Name, client.TaxID, client.Description, groups, client.IsFavorite, client.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound("client not found", client.ID)
	}
	return nil
}

// CountClients returns the number of client records.
func (s *SQLiteStore) CountClients(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM clients").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

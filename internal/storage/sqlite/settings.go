package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

// CreateSettings inserts a new visibility override record. The (user, client)
// pair is unique; a second record for the same pair fails with Conflict.
func (s *SQLiteStore) CreateSettings(ctx context.Context, settings *models.ClientSettings) error {
	if settings.UserID == "" || settings.ClientID == "" {
		return errs.InvalidArgument("user id and client id are required")
	}
	if settings.ID == "" {
		settings.ID = newID()
	}

	entities, err := marshalList(settings.HiddenEntities)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO client_settings (id, user_id, client_id, hidden_entities) VALUES (?, ?, ?, ?)",
		settings.ID, settings.UserID, settings.ClientID, entities,
	)
	if isUniqueViolation(err) {
		return errs.Conflict("settings already exist for this user and client", settings.UserID, settings.ClientID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert settings: %w", err)
	}
	return nil
}

// GetSettings is a lookup probe for the unique (user, client) record: a
// missing record yields (nil, nil).
func (s *SQLiteStore) GetSettings(ctx context.Context, userID, clientID string) (*models.ClientSettings, error) {
	settings, err := scanSettings(s.db.QueryRowContext(ctx,
		"SELECT id, user_id, client_id, hidden_entities FROM client_settings WHERE user_id = ? AND client_id = ?",
		userID, clientID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return settings, err
}

// GetSettingsByClient returns the first settings record for the client
// regardless of user, or (nil, nil). The read path of the visibility queries
// is client-scoped only; this mirrors that contract.
func (s *SQLiteStore) GetSettingsByClient(ctx context.Context, clientID string) (*models.ClientSettings, error) {
	settings, err := scanSettings(s.db.QueryRowContext(ctx,
		"SELECT id, user_id, client_id, hidden_entities FROM client_settings WHERE client_id = ? LIMIT 1",
		clientID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return settings, err
}

func scanSettings(row scanner) (*models.ClientSettings, error) {
	var (
		settings models.ClientSettings
		entities string
	)
	err := row.Scan(&settings.ID, &settings.UserID, &settings.ClientID, &entities)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}
	if err := unmarshalList(entities, &settings.HiddenEntities); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings persists changes to an existing settings record.
func (s *SQLiteStore) UpdateSettings(ctx context.Context, settings *models.ClientSettings) error {
	if err := checkID(settings.ID); err != nil {
		return err
	}

	entities, err := marshalList(settings.HiddenEntities)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE client_settings SET hidden_entities = ? WHERE id = ?",
		entities, settings.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound("settings not found", settings.ID)
	}
	return nil
}

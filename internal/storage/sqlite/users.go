package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

const userColumns = "id, email, password_hash, first_name, last_name, profile_image, description, role, favorites, team_id, settings, created_at"

// CreateUser inserts a new user. A duplicate email fails with Conflict.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.Email == "" {
		return errs.InvalidArgument("email is required")
	}
	if user.PasswordHash == "" {
		return errs.InvalidArgument("password hash is required")
	}
	if user.ID == "" {
		user.ID = newID()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	favorites, err := marshalList(user.Favorites)
	if err != nil {
		return err
	}
	settings, err := marshalList(user.Settings)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.ProfileImage, user.Description, user.Role, favorites, user.TeamID,
		settings, user.CreatedAt,
	)
	if isUniqueViolation(err) {
		return errs.Conflict("email already registered", user.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	user, err := scanUser(s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, errs.NotFound("user not found", id)
	}
	return user, err
}

// GetUserByEmail is a lookup probe: a missing user yields (nil, nil).
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// scanner abstracts sql.Row and sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		user      models.User
		favorites string
		settings  string
	)
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.ProfileImage, &user.Description, &user.Role, &favorites, &user.TeamID,
		&settings, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	if err := unmarshalList(favorites, &user.Favorites); err != nil {
		return nil, err
	}
	if err := unmarshalList(settings, &user.Settings); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers retrieves all users.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY email")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// UpdateUser persists changes to an existing user.
func (s *SQLiteStore) UpdateUser(ctx context.Context, user *models.User) error {
	if err := checkID(user.ID); err != nil {
		return err
	}

	favorites, err := marshalList(user.Favorites)
	if err != nil {
		return err
	}
	settings, err := marshalList(user.Settings)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET email = ?, password_hash = ?, first_name = ?, last_name = ?,
		 profile_image = ?, description = ?, role = ?, favorites = ?, team_id = ?, settings = ?
		 WHERE id = ?`,
		user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.ProfileImage, user.Description, user.Role, favorites, user.TeamID,
		settings, user.ID,
	)
	if isUniqueViolation(err) {
		return errs.Conflict("email already registered", user.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound("user not found", user.ID)
	}
	return nil
}

// CountUsers returns the number of user records. Used by the creation path to
// decide whether the bootstrap admin promotion applies.
func (s *SQLiteStore) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

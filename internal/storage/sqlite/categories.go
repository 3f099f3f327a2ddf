package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
)

// CreateCategory inserts a new category.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.Name == "" {
		return errs.InvalidArgument("category name is required")
	}
	if category.ID == "" {
		category.ID = newID()
	}

	subgroups, err := marshalList(category.Subgroups)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, subgroups, hidden) VALUES (?, ?, ?, ?)",
		category.ID, category.Name, subgroups, category.Hidden,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// GetCategory retrieves a category by id.
func (s *SQLiteStore) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return s.scanCategory(s.db.QueryRowContext(ctx,
		"SELECT id, name, subgroups, hidden FROM categories WHERE id = ?", id,
	), id)
}

// GetCategoryByName is a lookup probe: a missing category yields (nil, nil).
// When several categories share a name, the first by insertion wins.
func (s *SQLiteStore) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.scanCategory(s.db.QueryRowContext(ctx,
		"SELECT id, name, subgroups, hidden FROM categories WHERE name = ? LIMIT 1", name,
	), name)
	if errs.IsNotFound(err) {
		return nil, nil
	}
	return category, err
}

func (s *SQLiteStore) scanCategory(row *sql.Row, arg string) (*models.Category, error) {
	var (
		category  models.Category
		subgroups string
	)
	err := row.Scan(&category.ID, &category.Name, &subgroups, &category.Hidden)
	if err == sql.ErrNoRows {
		return nil, errs.NotFound("category not found", arg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if err := unmarshalList(subgroups, &category.Subgroups); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories retrieves all categories.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]*models.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, subgroups, hidden FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var (
			category  models.Category
			subgroups string
		)
		if err := rows.Scan(&category.ID, &category.Name, &subgroups, &category.Hidden); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		if err := unmarshalList(subgroups, &category.Subgroups); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory persists changes to an existing category.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, category *models.Category) error {
	if err := checkID(category.ID); err != nil {
		return err
	}

	subgroups, err := marshalList(category.Subgroups)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, subgroups = ?, hidden = ? WHERE id = ?",
		category.Name, subgroups, category.Hidden, category.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.NotFound("category not found", category.ID)
	}
	return nil
}

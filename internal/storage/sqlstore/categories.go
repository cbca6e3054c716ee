package sqlstore

import (
	"context"

	"eventHub/internal/models"
)

func (s *Store) CreateCategory(ctx context.Context, c *models.Category) error {
	const op = "storage.sqlstore.CreateCategory"

	err := s.queryRow(ctx,
		`INSERT INTO categories (name, description) VALUES (?, ?) RETURNING id`,
		c.Name, c.Description,
	).Scan(&c.ID)
	if err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) CategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	const op = "storage.sqlstore.CategoryByID"

	var c models.Category
	err := s.queryRow(ctx, `SELECT id, name, description FROM categories WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return &c, nil
}

func (s *Store) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "storage.sqlstore.Categories"

	rows, err := s.query(ctx, `SELECT id, name, description FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, s.wrapErr(op, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, s.wrapErr(op, err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, s.wrapErr(op, err)
	}

	return categories, nil
}

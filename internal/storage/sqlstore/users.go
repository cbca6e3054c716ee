package sqlstore

import (
	"context"

	"eventHub/internal/models"
)

const userColumns = `id, username, email, first_name, last_name, phone, bio, role, password_hash, created_at`

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	const op = "storage.sqlstore.CreateUser"

	query := `
		INSERT INTO users (username, email, first_name, last_name, phone, bio, role, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := s.queryRow(ctx, query,
		u.Username, u.Email, u.FirstName, u.LastName, u.Phone, u.Bio,
		string(u.Role), u.PasswordHash, toMillis(u.CreatedAt),
	).Scan(&u.ID)
	if err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.sqlstore.UserByID"

	u, err := scanUser(s.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return u, nil
}

// UserByLogin finds a user by username or email.
func (s *Store) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.sqlstore.UserByLogin"

	query := `SELECT ` + userColumns + ` FROM users WHERE username = ? OR LOWER(email) = LOWER(?)`

	u, err := scanUser(s.queryRow(ctx, query, login, login))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return u, nil
}

func (s *Store) UpdateUser(ctx context.Context, u *models.User) error {
	const op = "storage.sqlstore.UpdateUser"

	query := `
		UPDATE users
		SET email = ?, first_name = ?, last_name = ?, phone = ?, bio = ?, role = ?
		WHERE id = ?`

	res, err := s.exec(ctx, query, u.Email, u.FirstName, u.LastName, u.Phone, u.Bio, string(u.Role), u.ID)
	if err != nil {
		return s.wrapErr(op, err)
	}
	if err = expectAffected(res); err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.sqlstore.CountUsers"

	var n int
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, s.wrapErr(op, err)
	}

	return n, nil
}

func (s *Store) RecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	const op = "storage.sqlstore.RecentUsers"

	rows, err := s.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, s.wrapErr(op, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, s.wrapErr(op, err)
		}
		users = append(users, *u)
	}

	if err = rows.Err(); err != nil {
		return nil, s.wrapErr(op, err)
	}

	return users, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		u         models.User
		role      string
		createdAt int64
	)

	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName,
		&u.Phone, &u.Bio, &role, &u.PasswordHash, &createdAt)
	if err != nil {
		return nil, err
	}

	u.Role = models.Role(role)
	u.CreatedAt = fromMillis(createdAt)

	return &u, nil
}

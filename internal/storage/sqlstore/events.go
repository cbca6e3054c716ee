package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"eventHub/internal/models"
	"eventHub/internal/storage"
)

const eventColumns = `id, title, description, date, location, category_id, creator_id, status, capacity, price, created_at, updated_at`

func (s *Store) CreateEvent(ctx context.Context, e *models.Event) error {
	const op = "storage.sqlstore.CreateEvent"

	query := `
		INSERT INTO events (title, description, date, location, category_id, creator_id, status, capacity, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := s.queryRow(ctx, query,
		e.Title, e.Description, toMillis(e.Date), e.Location, nullInt64(e.CategoryID),
		e.CreatorID, string(e.Status), e.Capacity, e.Price,
		toMillis(e.CreatedAt), toMillis(e.UpdatedAt),
	).Scan(&e.ID)
	if err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) UpdateEvent(ctx context.Context, e *models.Event) error {
	const op = "storage.sqlstore.UpdateEvent"

	query := `
		UPDATE events
		SET title = ?, description = ?, date = ?, location = ?, category_id = ?,
			status = ?, capacity = ?, price = ?, updated_at = ?
		WHERE id = ?`

	res, err := s.exec(ctx, query,
		e.Title, e.Description, toMillis(e.Date), e.Location, nullInt64(e.CategoryID),
		string(e.Status), e.Capacity, e.Price, toMillis(e.UpdatedAt), e.ID,
	)
	if err != nil {
		return s.wrapErr(op, err)
	}
	if err = expectAffected(res); err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) EventByID(ctx context.Context, id int64) (*models.Event, error) {
	const op = "storage.sqlstore.EventByID"

	e, err := scanEvent(s.queryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return e, nil
}

// LockEvent reads the event and, inside a transaction, holds its row until commit.
func (s *Store) LockEvent(ctx context.Context, id int64) (*models.Event, error) {
	const op = "storage.sqlstore.LockEvent"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ? ` + s.dialect.LockClause

	e, err := scanEvent(s.queryRow(ctx, query, id))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return e, nil
}

func (s *Store) ListEvents(ctx context.Context, filter storage.EventFilter) ([]models.Event, error) {
	const op = "storage.sqlstore.ListEvents"

	var (
		where []string
		args  []any
	)

	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(filter.Status))
	}
	if filter.CategoryID != 0 {
		where = append(where, "category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.CreatorID != 0 {
		where = append(where, "creator_id = ?")
		args = append(args, filter.CreatorID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		where = append(where, `(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(location) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := s.query(ctx, query, args...)
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return collectEvents(op, s, rows)
}

// EventsRegisteredBy lists the distinct events the user holds a registration for.
func (s *Store) EventsRegisteredBy(ctx context.Context, userID int64) ([]models.Event, error) {
	const op = "storage.sqlstore.EventsRegisteredBy"

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id IN (SELECT event_id FROM registrations WHERE user_id = ?)
		ORDER BY date DESC, id DESC`

	rows, err := s.query(ctx, query, userID)
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return collectEvents(op, s, rows)
}

func (s *Store) CountEvents(ctx context.Context) (int, error) {
	const op = "storage.sqlstore.CountEvents"

	var n int
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, s.wrapErr(op, err)
	}

	return n, nil
}

func (s *Store) RecentEvents(ctx context.Context, limit int) ([]models.Event, error) {
	const op = "storage.sqlstore.RecentEvents"

	rows, err := s.query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return collectEvents(op, s, rows)
}

func collectEvents(op string, s *Store, rows *sql.Rows) ([]models.Event, error) {
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, s.wrapErr(op, err)
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, s.wrapErr(op, err)
	}

	return events, nil
}

func scanEvent(row scanner) (*models.Event, error) {
	var (
		e          models.Event
		date       int64
		categoryID sql.NullInt64
		status     string
		createdAt  int64
		updatedAt  int64
	)

	err := row.Scan(&e.ID, &e.Title, &e.Description, &date, &e.Location, &categoryID,
		&e.CreatorID, &status, &e.Capacity, &e.Price, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	e.Date = fromMillis(date)
	e.CategoryID = fromNullInt64(categoryID)
	e.Status = models.EventStatus(status)
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)

	return &e, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

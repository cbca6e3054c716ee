package sqlstore

import (
	"context"
	"database/sql"

	"eventHub/internal/models"
)

const registrationColumns = `id, user_id, event_id, status, payment_method, created_at, cancelled_at, cancellation_reason`

func (s *Store) CreateRegistration(ctx context.Context, r *models.Registration) error {
	const op = "storage.sqlstore.CreateRegistration"

	query := `
		INSERT INTO registrations (user_id, event_id, status, payment_method, created_at, cancelled_at, cancellation_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := s.queryRow(ctx, query,
		r.UserID, r.EventID, string(r.Status), string(r.PaymentMethod),
		toMillis(r.CreatedAt), nullMillis(r.CancelledAt), r.CancellationReason,
	).Scan(&r.ID)
	if err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) UpdateRegistration(ctx context.Context, r *models.Registration) error {
	const op = "storage.sqlstore.UpdateRegistration"

	query := `
		UPDATE registrations
		SET status = ?, payment_method = ?, cancelled_at = ?, cancellation_reason = ?
		WHERE id = ?`

	res, err := s.exec(ctx, query,
		string(r.Status), string(r.PaymentMethod), nullMillis(r.CancelledAt), r.CancellationReason, r.ID,
	)
	if err != nil {
		return s.wrapErr(op, err)
	}
	if err = expectAffected(res); err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) RegistrationByID(ctx context.Context, id int64) (*models.Registration, error) {
	const op = "storage.sqlstore.RegistrationByID"

	r, err := scanRegistration(s.queryRow(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id = ?`, id))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return r, nil
}

func (s *Store) RegistrationByUserEvent(ctx context.Context, userID, eventID int64) (*models.Registration, error) {
	const op = "storage.sqlstore.RegistrationByUserEvent"

	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE user_id = ? AND event_id = ?`

	r, err := scanRegistration(s.queryRow(ctx, query, userID, eventID))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return r, nil
}

func (s *Store) CountConfirmed(ctx context.Context, eventID int64) (int, error) {
	const op = "storage.sqlstore.CountConfirmed"

	query := `
		SELECT COUNT(*)
		FROM registrations
		WHERE event_id = ? AND status = ?`

	var n int
	if err := s.queryRow(ctx, query, eventID, string(models.RegistrationConfirmed)).Scan(&n); err != nil {
		return 0, s.wrapErr(op, err)
	}

	return n, nil
}

func (s *Store) CountRegistrations(ctx context.Context) (int, error) {
	const op = "storage.sqlstore.CountRegistrations"

	var n int
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&n); err != nil {
		return 0, s.wrapErr(op, err)
	}

	return n, nil
}

func scanRegistration(row scanner) (*models.Registration, error) {
	var (
		r           models.Registration
		status      string
		method      string
		createdAt   int64
		cancelledAt sql.NullInt64
	)

	err := row.Scan(&r.ID, &r.UserID, &r.EventID, &status, &method, &createdAt, &cancelledAt, &r.CancellationReason)
	if err != nil {
		return nil, err
	}

	r.Status = models.RegistrationStatus(status)
	r.PaymentMethod = models.PaymentMethod(method)
	r.CreatedAt = fromMillis(createdAt)
	r.CancelledAt = fromNullMillis(cancelledAt)

	return &r, nil
}

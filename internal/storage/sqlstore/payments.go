package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"eventHub/internal/models"
)

const paymentColumns = `p.id, p.registration_id, p.amount, p.payment_method, p.status, p.transaction_id,
	p.refund_transaction_id, p.bank_response, p.refund_response, p.created_at, p.updated_at, p.paid_at, p.refunded_at`

func (s *Store) CreatePayment(ctx context.Context, p *models.Payment) error {
	const op = "storage.sqlstore.CreatePayment"

	bank, refund, err := encodeResponses(p)
	if err != nil {
		return s.wrapErr(op, err)
	}

	query := `
		INSERT INTO payments (registration_id, amount, payment_method, status, transaction_id, refund_transaction_id,
			bank_response, refund_response, created_at, updated_at, paid_at, refunded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err = s.queryRow(ctx, query,
		p.RegistrationID, p.Amount, string(p.PaymentMethod), string(p.Status),
		nullString(p.TransactionID), nullString(p.RefundTransactionID), bank, refund,
		toMillis(p.CreatedAt), toMillis(p.UpdatedAt), nullMillis(p.PaidAt), nullMillis(p.RefundedAt),
	).Scan(&p.ID)
	if err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) UpdatePayment(ctx context.Context, p *models.Payment) error {
	const op = "storage.sqlstore.UpdatePayment"

	bank, refund, err := encodeResponses(p)
	if err != nil {
		return s.wrapErr(op, err)
	}

	query := `
		UPDATE payments
		SET status = ?, transaction_id = ?, refund_transaction_id = ?, bank_response = ?, refund_response = ?,
			updated_at = ?, paid_at = ?, refunded_at = ?
		WHERE id = ?`

	res, err := s.exec(ctx, query,
		string(p.Status), nullString(p.TransactionID), nullString(p.RefundTransactionID), bank, refund,
		toMillis(p.UpdatedAt), nullMillis(p.PaidAt), nullMillis(p.RefundedAt), p.ID,
	)
	if err != nil {
		return s.wrapErr(op, err)
	}
	if err = expectAffected(res); err != nil {
		return s.wrapErr(op, err)
	}

	return nil
}

func (s *Store) PaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	const op = "storage.sqlstore.PaymentByID"

	p, err := scanPayment(s.queryRow(ctx, `SELECT `+paymentColumns+` FROM payments p WHERE p.id = ?`, id))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return p, nil
}

func (s *Store) PaymentByRegistration(ctx context.Context, registrationID int64) (*models.Payment, error) {
	const op = "storage.sqlstore.PaymentByRegistration"

	query := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.registration_id = ?`

	p, err := scanPayment(s.queryRow(ctx, query, registrationID))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return p, nil
}

// PaymentsByUser lists the payments of the user's registrations, newest first.
func (s *Store) PaymentsByUser(ctx context.Context, userID int64) ([]models.Payment, error) {
	const op = "storage.sqlstore.PaymentsByUser"

	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		JOIN registrations r ON r.id = p.registration_id
		WHERE r.user_id = ?
		ORDER BY p.created_at DESC, p.id DESC`

	rows, err := s.query(ctx, query, userID)
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return collectPayments(op, s, rows)
}

// PendingPaymentsBefore lists pending payments created before the cutoff.
func (s *Store) PendingPaymentsBefore(ctx context.Context, before time.Time) ([]models.Payment, error) {
	const op = "storage.sqlstore.PendingPaymentsBefore"

	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.status = ? AND p.created_at < ?
		ORDER BY p.created_at ASC`

	rows, err := s.query(ctx, query, string(models.PaymentPending), toMillis(before))
	if err != nil {
		return nil, s.wrapErr(op, err)
	}

	return collectPayments(op, s, rows)
}

func collectPayments(op string, s *Store, rows *sql.Rows) ([]models.Payment, error) {
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, s.wrapErr(op, err)
		}
		payments = append(payments, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, s.wrapErr(op, err)
	}

	return payments, nil
}

func scanPayment(row scanner) (*models.Payment, error) {
	var (
		p              models.Payment
		method         string
		status         string
		transactionID  sql.NullString
		refundID       sql.NullString
		bankResponse   sql.NullString
		refundResponse sql.NullString
		createdAt      int64
		updatedAt      int64
		paidAt         sql.NullInt64
		refundedAt     sql.NullInt64
	)

	err := row.Scan(&p.ID, &p.RegistrationID, &p.Amount, &method, &status, &transactionID,
		&refundID, &bankResponse, &refundResponse, &createdAt, &updatedAt, &paidAt, &refundedAt)
	if err != nil {
		return nil, err
	}

	p.PaymentMethod = models.PaymentMethod(method)
	p.Status = models.PaymentStatus(status)
	p.TransactionID = transactionID.String
	p.RefundTransactionID = refundID.String
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	p.PaidAt = fromNullMillis(paidAt)
	p.RefundedAt = fromNullMillis(refundedAt)

	if p.BankResponse, err = decodeResponse(bankResponse); err != nil {
		return nil, err
	}
	if p.RefundResponse, err = decodeResponse(refundResponse); err != nil {
		return nil, err
	}

	return &p, nil
}

func encodeResponses(p *models.Payment) (sql.NullString, sql.NullString, error) {
	bank, err := encodeResponse(p.BankResponse)
	if err != nil {
		return sql.NullString{}, sql.NullString{}, err
	}
	refund, err := encodeResponse(p.RefundResponse)
	if err != nil {
		return sql.NullString{}, sql.NullString{}, err
	}
	return bank, refund, nil
}

func encodeResponse(r *models.BankResponse) (sql.NullString, error) {
	if r == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeResponse(v sql.NullString) (*models.BankResponse, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	var r models.BankResponse
	if err := json.Unmarshal([]byte(v.String), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

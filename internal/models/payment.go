package models

import "time"

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentProcessing    PaymentStatus = "processing"
	PaymentCompleted     PaymentStatus = "completed"
	PaymentFailed        PaymentStatus = "failed"
	PaymentRefunded      PaymentStatus = "refunded"
	PaymentRefundPending PaymentStatus = "refund_pending"
)

type BankStatus string

const (
	BankSuccess   BankStatus = "success"
	BankCancelled BankStatus = "cancelled"
	BankExpired   BankStatus = "expired"
)

// BankResponse is the record the simulated bank hands back for a charge,
// a refund or an abandoned attempt.
type BankResponse struct {
	TransactionID string        `json:"transaction_id,omitempty"`
	Status        BankStatus    `json:"status"`
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency,omitempty"`
	Method        PaymentMethod `json:"method,omitempty"`
	Bank          string        `json:"bank,omitempty"`
	Message       string        `json:"message"`
	Timestamp     time.Time     `json:"timestamp"`
}

type Payment struct {
	ID                  int64         `json:"id"`
	RegistrationID      int64         `json:"registration_id"`
	Amount              int64         `json:"amount"`
	PaymentMethod       PaymentMethod `json:"payment_method"`
	Status              PaymentStatus `json:"status"`
	TransactionID       string        `json:"transaction_id,omitempty"`
	RefundTransactionID string        `json:"refund_transaction_id,omitempty"`
	BankResponse        *BankResponse `json:"bank_response,omitempty"`
	RefundResponse      *BankResponse `json:"refund_response,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	PaidAt              *time.Time    `json:"paid_at,omitempty"`
	RefundedAt          *time.Time    `json:"refunded_at,omitempty"`
}

// IsSettled reports whether the bank already took the payment.
func (p *Payment) IsSettled() bool {
	return p.Status == PaymentCompleted || p.Status == PaymentProcessing
}

func (p *Payment) CanRefund() bool {
	return p.Status == PaymentCompleted
}

// RefundAmount is the full original amount; there is no fee schedule.
func (p *Payment) RefundAmount() int64 {
	if !p.CanRefund() {
		return 0
	}
	return p.Amount
}

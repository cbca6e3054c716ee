package models

import "time"

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
	RegistrationRefunded  RegistrationStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash        PaymentMethod = "cash"
	MethodCardMir     PaymentMethod = "card_mir"
	MethodCardOther   PaymentMethod = "card_other"
	MethodNotSelected PaymentMethod = "not_selected"
)

// IsOnline reports whether the method is settled through the bank.
func (m PaymentMethod) IsOnline() bool {
	return m == MethodCardMir || m == MethodCardOther
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCardMir, MethodCardOther, MethodNotSelected:
		return true
	}
	return false
}

type Registration struct {
	ID                 int64              `json:"id"`
	UserID             int64              `json:"user_id"`
	EventID            int64              `json:"event_id"`
	Status             RegistrationStatus `json:"status"`
	PaymentMethod      PaymentMethod      `json:"payment_method"`
	CreatedAt          time.Time          `json:"created_at"`
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
	CancellationReason string             `json:"cancellation_reason,omitempty"`
}

// IsClosed reports whether the registration already left the active states.
func (r *Registration) IsClosed() bool {
	return r.Status == RegistrationCancelled || r.Status == RegistrationRefunded
}

// Package payment fakes the acquiring bank. Nothing leaves the process:
// references are generated locally and every call succeeds.
package payment

import (
	"encoding/hex"
	"strings"
	"time"

	"eventHub/internal/lib/errs"
	"eventHub/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultCurrency = "RUB"
	DefaultBank     = "Demo Bank MIR"
)

var (
	ErrAlreadyProcessed = errs.Policy("payment has already been processed")
	ErrNotRefundable    = errs.Policy("payment is not eligible for a refund")
)

type Simulator struct {
	currency string
	bank     string
}

func NewSimulator(currency, bank string) *Simulator {
	if currency == "" {
		currency = DefaultCurrency
	}
	if bank == "" {
		bank = DefaultBank
	}

	return &Simulator{currency: currency, bank: bank}
}

// Charge settles a pending or failed payment.
func (s *Simulator) Charge(p *models.Payment, now time.Time) error {
	if p.IsSettled() || p.Status == models.PaymentRefunded || p.Status == models.PaymentRefundPending {
		return ErrAlreadyProcessed
	}

	txID := newReference("TXN")

	p.Status = models.PaymentCompleted
	p.TransactionID = txID
	p.BankResponse = &models.BankResponse{
		TransactionID: txID,
		Status:        models.BankSuccess,
		Amount:        p.Amount,
		Currency:      s.currency,
		Method:        p.PaymentMethod,
		Bank:          s.bank,
		Message:       "payment processed successfully",
		Timestamp:     now,
	}
	p.PaidAt = &now
	p.UpdatedAt = now

	return nil
}

// Abandon records that the payer walked away from the attempt.
func (s *Simulator) Abandon(p *models.Payment, now time.Time) error {
	if p.IsSettled() || p.Status == models.PaymentRefunded || p.Status == models.PaymentRefundPending {
		return ErrAlreadyProcessed
	}

	p.Status = models.PaymentFailed
	p.BankResponse = &models.BankResponse{
		Status:    models.BankCancelled,
		Amount:    p.Amount,
		Method:    p.PaymentMethod,
		Message:   "payment cancelled by user",
		Timestamp: now,
	}
	p.UpdatedAt = now

	return nil
}

// Expire fails a payment left pending for too long.
func (s *Simulator) Expire(p *models.Payment, now time.Time) error {
	if p.Status != models.PaymentPending {
		return ErrAlreadyProcessed
	}

	p.Status = models.PaymentFailed
	p.BankResponse = &models.BankResponse{
		Status:    models.BankExpired,
		Amount:    p.Amount,
		Method:    p.PaymentMethod,
		Message:   "payment session expired",
		Timestamp: now,
	}
	p.UpdatedAt = now

	return nil
}

// Refund returns the full amount of a completed online payment.
func (s *Simulator) Refund(p *models.Payment, now time.Time) error {
	if !p.CanRefund() || !p.PaymentMethod.IsOnline() {
		return ErrNotRefundable
	}

	refID := newReference("REF")

	p.Status = models.PaymentRefunded
	p.RefundTransactionID = refID
	p.RefundResponse = &models.BankResponse{
		TransactionID: refID,
		Status:        models.BankSuccess,
		Amount:        p.Amount,
		Currency:      s.currency,
		Method:        p.PaymentMethod,
		Bank:          s.bank,
		Message:       "funds returned to card",
		Timestamp:     now,
	}
	p.RefundedAt = &now
	p.UpdatedAt = now

	return nil
}

// newReference builds ids like TXN3F2A9C0B11DE.
func newReference(prefix string) string {
	id := uuid.New()
	return prefix + strings.ToUpper(hex.EncodeToString(id[:]))[:12]
}

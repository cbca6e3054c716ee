// Package registrations runs the registration, payment and cancellation
// lifecycle. Every state change that touches seats or money happens inside a
// store transaction holding the event row lock.
package registrations

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/payment"
	"eventHub/internal/policy"
	"eventHub/internal/storage"
)

var (
	ErrEventClosed        = errs.NotFound("event is not open for registration")
	ErrAlreadyRegistered  = errs.Conflict("you are already registered for this event")
	ErrEventFull          = errs.Conflict("no seats left for this event")
	ErrMethodRequired     = errs.Validation("choose a payment method for a paid event")
	ErrInvalidMethod      = errs.Validation("unknown payment method")
	ErrInvalidAction      = errs.Validation("action must be pay or cancel")
	ErrNotOwner           = errs.Authorization("you do not have access to this registration")
	ErrRegistrationClosed = errs.Policy("registration is already cancelled")
	ErrTooLate            = errs.Policy("registration can no longer be cancelled, the event starts too soon")
	ErrPaymentNotFound    = errs.NotFound("payment not found")
	ErrRegNotFound        = errs.NotFound("registration not found")
)

const (
	ActionPay    = "pay"
	ActionCancel = "cancel"
)

// Outcome tells which branch a cancellation took.
type Outcome string

const (
	OutcomeRefunded     Outcome = "refunded"
	OutcomeManualRefund Outcome = "manual_refund"
	OutcomeCancelled    Outcome = "cancelled"
)

type Store interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
	LockEvent(ctx context.Context, id int64) (*models.Event, error)
	CountConfirmed(ctx context.Context, eventID int64) (int, error)
	CreateRegistration(ctx context.Context, r *models.Registration) error
	UpdateRegistration(ctx context.Context, r *models.Registration) error
	RegistrationByID(ctx context.Context, id int64) (*models.Registration, error)
	RegistrationByUserEvent(ctx context.Context, userID, eventID int64) (*models.Registration, error)
	CreatePayment(ctx context.Context, p *models.Payment) error
	UpdatePayment(ctx context.Context, p *models.Payment) error
	PaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	PaymentByRegistration(ctx context.Context, registrationID int64) (*models.Payment, error)
	PaymentsByUser(ctx context.Context, userID int64) ([]models.Payment, error)
	PendingPaymentsBefore(ctx context.Context, before time.Time) ([]models.Payment, error)
}

type Service struct {
	log    *slog.Logger
	store  Store
	bank   *payment.Simulator
	cutoff time.Duration
	now    func() time.Time
}

func New(log *slog.Logger, store Store, bank *payment.Simulator, cutoff time.Duration) *Service {
	if cutoff <= 0 {
		cutoff = policy.DefaultCancelCutoff
	}

	return &Service{
		log:    log,
		store:  store,
		bank:   bank,
		cutoff: cutoff,
		now:    time.Now,
	}
}

type RegisterResult struct {
	Registration *models.Registration `json:"registration"`
	Payment      *models.Payment      `json:"payment,omitempty"`
	Message      string               `json:"-"`
}

type PaymentResult struct {
	Registration *models.Registration `json:"registration"`
	Payment      *models.Payment      `json:"payment"`
	Message      string               `json:"-"`
}

type CancelResult struct {
	Registration *models.Registration `json:"registration"`
	Payment      *models.Payment      `json:"payment,omitempty"`
	Outcome      Outcome              `json:"outcome"`
	Message      string               `json:"-"`
}

// Register signs user up for a published event. Free events and cash
// payers are confirmed at once; online payers get a pending payment.
func (s *Service) Register(ctx context.Context, user *models.User, eventID int64, method models.PaymentMethod) (*RegisterResult, error) {
	const op = "services.registrations.Register"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("event_id", eventID),
		slog.Int64("user_id", user.ID),
	)

	if method == "" {
		method = models.MethodNotSelected
	}
	if !method.Valid() {
		return nil, ErrInvalidMethod
	}

	var res RegisterResult

	err := s.store.InTx(ctx, func(ctx context.Context) error {
		event, err := s.store.LockEvent(ctx, eventID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrEventClosed
			}
			return err
		}
		if !event.IsPublished() {
			return ErrEventClosed
		}

		_, err = s.store.RegistrationByUserEvent(ctx, user.ID, eventID)
		switch {
		case err == nil:
			return ErrAlreadyRegistered
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		if event.HasCapacityLimit() {
			confirmed, err := s.store.CountConfirmed(ctx, eventID)
			if err != nil {
				return err
			}
			if confirmed >= event.Capacity {
				return ErrEventFull
			}
		}

		if !event.IsFree() && method == models.MethodNotSelected {
			return ErrMethodRequired
		}

		now := s.now()
		reg := &models.Registration{
			UserID:        user.ID,
			EventID:       eventID,
			PaymentMethod: method,
			CreatedAt:     now,
		}

		needsPayment := !event.IsFree() && method.IsOnline()
		if needsPayment {
			reg.Status = models.RegistrationPending
		} else {
			reg.Status = models.RegistrationConfirmed
		}

		if err = s.store.CreateRegistration(ctx, reg); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return ErrAlreadyRegistered
			}
			return err
		}
		res.Registration = reg

		switch {
		case needsPayment:
			p := &models.Payment{
				RegistrationID: reg.ID,
				Amount:         event.Price,
				PaymentMethod:  method,
				Status:         models.PaymentPending,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err = s.store.CreatePayment(ctx, p); err != nil {
				return err
			}
			res.Payment = p
			res.Message = "Registration successful. Proceed to payment."
		case !event.IsFree():
			res.Message = "Registration successful. Pay in cash at the event."
		default:
			res.Message = "Registration successful."
		}

		return nil
	})
	if err != nil {
		return nil, s.fail(log, op, "failed to register", err)
	}

	log.Info("user registered",
		slog.Int64("registration_id", res.Registration.ID),
		slog.String("status", string(res.Registration.Status)),
	)

	return &res, nil
}

// ProcessPayment pays or abandons a pending payment owned by user. A settled
// payment yields payment.ErrAlreadyProcessed together with its current state.
func (s *Service) ProcessPayment(ctx context.Context, user *models.User, paymentID int64, action string) (*PaymentResult, error) {
	const op = "services.registrations.ProcessPayment"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("payment_id", paymentID),
		slog.String("action", action),
	)

	if action != ActionPay && action != ActionCancel {
		return nil, ErrInvalidAction
	}

	var res PaymentResult

	err := s.store.InTx(ctx, func(ctx context.Context) error {
		p, reg, event, err := s.lockPayment(ctx, paymentID)
		if err != nil {
			return err
		}
		if !policy.OwnsRegistration(user, reg) {
			return ErrNotOwner
		}
		if p.IsSettled() {
			res.Payment, res.Registration = p, reg
			res.Message = "This payment has already been processed."
			return payment.ErrAlreadyProcessed
		}
		if reg.IsClosed() {
			return ErrRegistrationClosed
		}

		now := s.now()

		if action == ActionCancel {
			if err = s.bank.Abandon(p, now); err != nil {
				return err
			}
			if err = s.store.UpdatePayment(ctx, p); err != nil {
				return err
			}
			res.Payment, res.Registration = p, reg
			res.Message = "Payment cancelled."
			return nil
		}

		if event.HasCapacityLimit() && reg.Status != models.RegistrationConfirmed {
			confirmed, err := s.store.CountConfirmed(ctx, event.ID)
			if err != nil {
				return err
			}
			if confirmed >= event.Capacity {
				return ErrEventFull
			}
		}

		if err = s.bank.Charge(p, now); err != nil {
			return err
		}
		if err = s.store.UpdatePayment(ctx, p); err != nil {
			return err
		}

		reg.Status = models.RegistrationConfirmed
		if err = s.store.UpdateRegistration(ctx, reg); err != nil {
			return err
		}

		res.Payment, res.Registration = p, reg
		res.Message = "Payment successful. Your registration is confirmed."
		return nil
	})
	if err != nil {
		if errors.Is(err, payment.ErrAlreadyProcessed) && res.Payment != nil {
			log.Info("payment already processed", slog.String("status", string(res.Payment.Status)))
			return &res, err
		}
		return nil, s.fail(log, op, "failed to process payment", err)
	}

	log.Info("payment processed", slog.String("status", string(res.Payment.Status)))

	return &res, nil
}

// Cancel withdraws user's registration and refunds a completed card payment.
func (s *Service) Cancel(ctx context.Context, user *models.User, registrationID int64, reason string) (*CancelResult, error) {
	const op = "services.registrations.Cancel"

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("registration_id", registrationID),
	)

	var res CancelResult

	err := s.store.InTx(ctx, func(ctx context.Context) error {
		reg, err := s.store.RegistrationByID(ctx, registrationID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrRegNotFound
			}
			return err
		}
		if !policy.OwnsRegistration(user, reg) {
			return ErrNotOwner
		}

		event, err := s.store.LockEvent(ctx, reg.EventID)
		if err != nil {
			return err
		}

		// Re-read under the event lock.
		if reg, err = s.store.RegistrationByID(ctx, registrationID); err != nil {
			return err
		}
		if reg.IsClosed() {
			return ErrRegistrationClosed
		}

		now := s.now()
		if !policy.CanCancelRegistration(event, now, s.cutoff) {
			return ErrTooLate
		}

		reg.Status = models.RegistrationCancelled
		reg.CancelledAt = &now
		reg.CancellationReason = reason

		p, err := s.store.PaymentByRegistration(ctx, reg.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		res.Outcome = OutcomeCancelled
		res.Message = "Registration cancelled."

		if p != nil {
			switch {
			case p.CanRefund() && p.PaymentMethod.IsOnline():
				if err = s.bank.Refund(p, now); err != nil {
					return err
				}
				if err = s.store.UpdatePayment(ctx, p); err != nil {
					return err
				}
				reg.Status = models.RegistrationRefunded
				res.Outcome = OutcomeRefunded
				res.Message = fmt.Sprintf("Registration cancelled. %d %s refunded to your card.",
					p.RefundAmount(), p.RefundResponse.Currency)
			case p.PaymentMethod == models.MethodCash:
				res.Outcome = OutcomeManualRefund
				res.Message = "Registration cancelled. Arrange the cash refund with the organizer."
			case p.Status == models.PaymentPending:
				if err = s.bank.Abandon(p, now); err != nil {
					return err
				}
				if err = s.store.UpdatePayment(ctx, p); err != nil {
					return err
				}
			default:
				// Failed or already refunded payments carry no money to return.
			}
			res.Payment = p
		}

		if err = s.store.UpdateRegistration(ctx, reg); err != nil {
			return err
		}
		res.Registration = reg

		return nil
	})
	if err != nil {
		return nil, s.fail(log, op, "failed to cancel registration", err)
	}

	log.Info("registration cancelled", slog.String("outcome", string(res.Outcome)))

	return &res, nil
}

func (s *Service) MyPayments(ctx context.Context, user *models.User) ([]models.Payment, error) {
	const op = "services.registrations.MyPayments"

	payments, err := s.store.PaymentsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}

// ExpireStalePayments fails payments left pending longer than ttl and
// returns how many were expired. Registrations stay pending.
func (s *Service) ExpireStalePayments(ctx context.Context, ttl time.Duration) (int, error) {
	const op = "services.registrations.ExpireStalePayments"

	log := s.log.With(slog.String("op", op))

	stale, err := s.store.PendingPaymentsBefore(ctx, s.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	expired := 0
	for _, candidate := range stale {
		changed := false
		err = s.store.InTx(ctx, func(ctx context.Context) error {
			p, _, _, err := s.lockPayment(ctx, candidate.ID)
			if err != nil {
				return err
			}
			if p.Status != models.PaymentPending {
				return nil
			}
			if err = s.bank.Expire(p, s.now()); err != nil {
				return err
			}
			if err = s.store.UpdatePayment(ctx, p); err != nil {
				return err
			}
			changed = true
			return nil
		})
		if err != nil {
			log.Error("failed to expire payment", slog.Int64("payment_id", candidate.ID), sl.Err(err))
			continue
		}
		if changed {
			expired++
		}
	}

	if expired > 0 {
		log.Info("stale payments expired", slog.Int("count", expired))
	}

	return expired, nil
}

// lockPayment loads a payment with its registration and locks the event row.
// The payment is read again once the lock is held.
func (s *Service) lockPayment(ctx context.Context, paymentID int64) (*models.Payment, *models.Registration, *models.Event, error) {
	p, err := s.store.PaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, nil, ErrPaymentNotFound
		}
		return nil, nil, nil, err
	}

	reg, err := s.store.RegistrationByID(ctx, p.RegistrationID)
	if err != nil {
		return nil, nil, nil, err
	}

	event, err := s.store.LockEvent(ctx, reg.EventID)
	if err != nil {
		return nil, nil, nil, err
	}

	if p, err = s.store.PaymentByID(ctx, paymentID); err != nil {
		return nil, nil, nil, err
	}
	if reg, err = s.store.RegistrationByID(ctx, p.RegistrationID); err != nil {
		return nil, nil, nil, err
	}

	return p, reg, event, nil
}

// fail logs unexpected errors and passes kind errors through unchanged.
func (s *Service) fail(log *slog.Logger, op, msg string, err error) error {
	var kindErr *errs.Error
	if errors.As(err, &kindErr) {
		log.Warn(msg, slog.String("reason", kindErr.Msg))
		return err
	}

	log.Error(msg, sl.Err(err))
	return fmt.Errorf("%s: %w", op, err)
}

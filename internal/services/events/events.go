// Package events manages the event catalog and categories.
package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/policy"
	"eventHub/internal/storage"
)

var (
	ErrEventNotFound    = errs.NotFound("event not found")
	ErrNoAccess         = errs.Authorization("you do not have access to this event")
	ErrNotOrganizer     = errs.Authorization("only organizers can create events")
	ErrCannotEdit       = errs.Authorization("you cannot edit this event")
	ErrNotAdmin         = errs.Authorization("only administrators can manage categories")
	ErrUnknownCategory  = errs.Validation("category does not exist")
	ErrInvalidStatus    = errs.Validation("unknown event status")
	ErrTitleRequired    = errs.Validation("title is required")
	ErrNegativeNumbers  = errs.Validation("capacity and price must not be negative")
	ErrCategoryExists   = errs.Conflict("category already exists")
	ErrCategoryRequired = errs.Validation("category name is required")
)

type Store interface {
	CreateEvent(ctx context.Context, e *models.Event) error
	UpdateEvent(ctx context.Context, e *models.Event) error
	EventByID(ctx context.Context, id int64) (*models.Event, error)
	ListEvents(ctx context.Context, filter storage.EventFilter) ([]models.Event, error)
	EventsRegisteredBy(ctx context.Context, userID int64) ([]models.Event, error)
	CountConfirmed(ctx context.Context, eventID int64) (int, error)
	RegistrationByUserEvent(ctx context.Context, userID, eventID int64) (*models.Registration, error)
	PaymentByRegistration(ctx context.Context, registrationID int64) (*models.Payment, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	CategoryByID(ctx context.Context, id int64) (*models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type Service struct {
	log    *slog.Logger
	store  Store
	cutoff time.Duration
	now    func() time.Time
}

func New(log *slog.Logger, store Store, cutoff time.Duration) *Service {
	if cutoff <= 0 {
		cutoff = policy.DefaultCancelCutoff
	}

	return &Service{log: log, store: store, cutoff: cutoff, now: time.Now}
}

// Input carries the editable fields of an event.
type Input struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	CategoryID  *int64
	Status      models.EventStatus
	Capacity    int
	Price       int64
}

// Detail is an event as seen by a particular viewer.
type Detail struct {
	Event          *models.Event        `json:"event"`
	ConfirmedCount int                  `json:"confirmed_count"`
	Registration   *models.Registration `json:"registration,omitempty"`
	Payment        *models.Payment      `json:"payment,omitempty"`
	CanCancel      bool                 `json:"can_cancel"`
	RefundAmount   int64                `json:"refund_amount"`
}

type MyEvents struct {
	Created    []models.Event `json:"created"`
	Registered []models.Event `json:"registered"`
}

// Create stores a new event. Without an explicit status, admins publish
// right away and organizers start with a draft.
func (s *Service) Create(ctx context.Context, user *models.User, in Input) (*models.Event, error) {
	const op = "services.events.Create"

	log := s.log.With(slog.String("op", op), slog.Int64("user_id", user.ID))

	if !policy.CanCreateEvent(user) {
		return nil, ErrNotOrganizer
	}

	if in.Status == "" {
		in.Status = models.EventDraft
		if policy.IsAdmin(user) {
			in.Status = models.EventPublished
		}
	}
	if err := s.check(ctx, in); err != nil {
		return nil, err
	}

	now := s.now()
	e := &models.Event{CreatorID: user.ID, CreatedAt: now}
	apply(e, in, now)

	if err := s.store.CreateEvent(ctx, e); err != nil {
		log.Error("failed to create event", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event created", slog.Int64("event_id", e.ID), slog.String("status", string(e.Status)))

	return e, nil
}

// Update replaces the editable fields. Only the creator or an admin may edit.
func (s *Service) Update(ctx context.Context, user *models.User, id int64, in Input) (*models.Event, error) {
	const op = "services.events.Update"

	log := s.log.With(slog.String("op", op), slog.Int64("event_id", id))

	e, err := s.event(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditEvent(user, e) {
		return nil, ErrCannotEdit
	}

	if in.Status == "" {
		in.Status = e.Status
	}
	if err = s.check(ctx, in); err != nil {
		return nil, err
	}

	apply(e, in, s.now())

	if err = s.store.UpdateEvent(ctx, e); err != nil {
		log.Error("failed to update event", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("event updated")

	return e, nil
}

// Detail loads an event with the viewer's registration state. viewer may be nil.
func (s *Service) Detail(ctx context.Context, viewer *models.User, id int64) (*Detail, error) {
	const op = "services.events.Detail"

	e, err := s.event(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewEvent(viewer, e) {
		return nil, ErrNoAccess
	}

	d := &Detail{Event: e}

	if d.ConfirmedCount, err = s.store.CountConfirmed(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if viewer == nil {
		return d, nil
	}

	reg, err := s.store.RegistrationByUserEvent(ctx, viewer.ID, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return d, nil
	case err != nil:
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	d.Registration = reg
	d.CanCancel = policy.CanCancel(reg, e, s.now(), s.cutoff)
	d.RefundAmount = policy.RefundQuote(reg, e)

	p, err := s.store.PaymentByRegistration(ctx, reg.ID)
	switch {
	case err == nil:
		d.Payment = p
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return d, nil
}

// List returns published events, optionally narrowed by category and search text.
func (s *Service) List(ctx context.Context, categoryID int64, search string) ([]models.Event, error) {
	const op = "services.events.List"

	list, err := s.store.ListEvents(ctx, storage.EventFilter{
		Status:     models.EventPublished,
		CategoryID: categoryID,
		Search:     strings.TrimSpace(search),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (s *Service) MyEvents(ctx context.Context, user *models.User) (*MyEvents, error) {
	const op = "services.events.MyEvents"

	created, err := s.store.ListEvents(ctx, storage.EventFilter{CreatorID: user.ID})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	registered, err := s.store.EventsRegisteredBy(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &MyEvents{Created: created, Registered: registered}, nil
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	const op = "services.events.Categories"

	list, err := s.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (s *Service) CreateCategory(ctx context.Context, user *models.User, name, description string) (*models.Category, error) {
	const op = "services.events.CreateCategory"

	if !policy.IsAdmin(user) {
		return nil, ErrNotAdmin
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryRequired
	}

	c := &models.Category{Name: name, Description: description}
	if err := s.store.CreateCategory(ctx, c); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("category created", slog.String("op", op), slog.Int64("category_id", c.ID))

	return c, nil
}

func (s *Service) event(ctx context.Context, id int64) (*models.Event, error) {
	e, err := s.store.EventByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("services.events.event: %w", err)
	}

	return e, nil
}

func (s *Service) check(ctx context.Context, in Input) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if !in.Status.Valid() {
		return ErrInvalidStatus
	}
	if in.Capacity < 0 || in.Price < 0 {
		return ErrNegativeNumbers
	}

	if in.CategoryID != nil {
		if _, err := s.store.CategoryByID(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return ErrUnknownCategory
			}
			return err
		}
	}

	return nil
}

func apply(e *models.Event, in Input, now time.Time) {
	e.Title = strings.TrimSpace(in.Title)
	e.Description = in.Description
	e.Date = in.Date
	e.Location = in.Location
	e.CategoryID = in.CategoryID
	e.Status = in.Status
	e.Capacity = in.Capacity
	e.Price = in.Price
	e.UpdatedAt = now
}

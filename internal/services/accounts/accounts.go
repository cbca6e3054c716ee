// Package accounts handles sign-up, login, profiles and the admin views.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventHub/internal/auth"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/policy"
	"eventHub/internal/storage"
)

const (
	MinPasswordLen = 8
	recentLimit    = 5
)

var (
	ErrBadCredentials = errs.Unauthenticated("invalid username or password")
	ErrBadToken       = errs.Unauthenticated("session is invalid or expired")
	ErrTaken          = errs.Conflict("username or email is already taken")
	ErrWeakPassword   = errs.Validation(fmt.Sprintf("password must be at least %d characters", MinPasswordLen))
	ErrInvalidRole    = errs.Validation("unknown role")
	ErrUserNotFound   = errs.NotFound("user not found")
	ErrAdminOnly      = errs.Authorization("administrator access required")
	ErrNoUsername     = errs.Validation("username is required")
)

type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByID(ctx context.Context, id int64) (*models.User, error)
	UserByLogin(ctx context.Context, login string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	CountUsers(ctx context.Context) (int, error)
	RecentUsers(ctx context.Context, limit int) ([]models.User, error)
	CountEvents(ctx context.Context) (int, error)
	RecentEvents(ctx context.Context, limit int) ([]models.Event, error)
	CountRegistrations(ctx context.Context) (int, error)
}

type Service struct {
	log    *slog.Logger
	store  Store
	tokens *auth.Tokens
	now    func() time.Time
}

func New(log *slog.Logger, store Store, tokens *auth.Tokens) *Service {
	return &Service{log: log, store: store, tokens: tokens, now: time.Now}
}

type SignUpInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

type ProfileInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Bio       string
}

type Dashboard struct {
	TotalEvents        int            `json:"total_events"`
	TotalUsers         int            `json:"total_users"`
	TotalRegistrations int            `json:"total_registrations"`
	RecentEvents       []models.Event `json:"recent_events"`
	RecentUsers        []models.User  `json:"recent_users"`
}

// SignUp creates a user with the default role.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	const op = "services.accounts.SignUp"

	log := s.log.With(slog.String("op", op))

	u, err := s.create(ctx, in, models.RoleUser)
	if err != nil {
		return nil, s.fail(log, op, "failed to sign up", err)
	}

	log.Info("user signed up", slog.Int64("user_id", u.ID))

	return u, nil
}

// EnsureAdmin makes sure an administrator named in.Username exists. A missing
// account is created; an existing one is promoted and keeps its password.
func (s *Service) EnsureAdmin(ctx context.Context, in SignUpInput) (*models.User, error) {
	const op = "services.accounts.EnsureAdmin"

	log := s.log.With(slog.String("op", op))

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, ErrNoUsername
	}

	u, err := s.store.UserByLogin(ctx, username)
	switch {
	case err == nil:
		if u.Role == models.RoleAdmin {
			return u, nil
		}

		u.Role = models.RoleAdmin
		if err = s.store.UpdateUser(ctx, u); err != nil {
			return nil, s.fail(log, op, "failed to promote admin", err)
		}

		log.Info("user promoted to admin", slog.Int64("user_id", u.ID))

		return u, nil
	case !errors.Is(err, storage.ErrNotFound):
		return nil, s.fail(log, op, "failed to look up admin", err)
	}

	in.Username = username
	if u, err = s.create(ctx, in, models.RoleAdmin); err != nil {
		return nil, s.fail(log, op, "failed to create admin", err)
	}

	log.Info("admin created", slog.Int64("user_id", u.ID))

	return u, nil
}

func (s *Service) create(ctx context.Context, in SignUpInput, role models.Role) (*models.User, error) {
	if len(in.Password) < MinPasswordLen {
		return nil, ErrWeakPassword
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	if err = s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrTaken
		}
		return nil, err
	}

	return u, nil
}

// fail passes kind errors through and logs and wraps everything else.
func (s *Service) fail(log *slog.Logger, op, msg string, err error) error {
	var kindErr *errs.Error
	if errors.As(err, &kindErr) {
		return err
	}

	log.Error(msg, sl.Err(err))
	return fmt.Errorf("%s: %w", op, err)
}

// Login checks credentials given a username or an email and issues a token.
func (s *Service) Login(ctx context.Context, login, password string) (*models.User, string, error) {
	const op = "services.accounts.Login"

	log := s.log.With(slog.String("op", op))

	u, err := s.store.UserByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		log.Warn("wrong password", slog.Int64("user_id", u.ID))
		return nil, "", ErrBadCredentials
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in", slog.Int64("user_id", u.ID))

	return u, token, nil
}

// Authenticate resolves a session token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "services.accounts.Authenticate"

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrBadToken
	}

	id, err := claims.UserID()
	if err != nil {
		return nil, ErrBadToken
	}

	u, err := s.store.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBadToken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Service) TokenTTL() time.Duration {
	return s.tokens.TTL()
}

func (s *Service) Profile(ctx context.Context, id int64) (*models.User, error) {
	const op = "services.accounts.Profile"

	u, err := s.store.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Service) UpdateProfile(ctx context.Context, user *models.User, in ProfileInput) (*models.User, error) {
	const op = "services.accounts.UpdateProfile"

	u, err := s.Profile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if email := strings.ToLower(strings.TrimSpace(in.Email)); email != "" {
		u.Email = email
	}
	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Phone = in.Phone
	u.Bio = in.Bio

	if err = s.store.UpdateUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrTaken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("profile updated", slog.String("op", op), slog.Int64("user_id", u.ID))

	return u, nil
}

func (s *Service) SetRole(ctx context.Context, admin *models.User, userID int64, role models.Role) (*models.User, error) {
	const op = "services.accounts.SetRole"

	if !policy.IsAdmin(admin) {
		return nil, ErrAdminOnly
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.Role = role
	if err = s.store.UpdateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("role changed",
		slog.String("op", op),
		slog.Int64("user_id", u.ID),
		slog.String("role", string(role)),
	)

	return u, nil
}

func (s *Service) Dashboard(ctx context.Context, admin *models.User) (*Dashboard, error) {
	const op = "services.accounts.Dashboard"

	if !policy.IsAdmin(admin) {
		return nil, ErrAdminOnly
	}

	var (
		d   Dashboard
		err error
	)

	if d.TotalEvents, err = s.store.CountEvents(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if d.TotalUsers, err = s.store.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if d.TotalRegistrations, err = s.store.CountRegistrations(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if d.RecentEvents, err = s.store.RecentEvents(ctx, recentLimit); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if d.RecentUsers, err = s.store.RecentUsers(ctx, recentLimit); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &d, nil
}

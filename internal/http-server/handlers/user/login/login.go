package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	// Login is a username or an email.
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Response struct {
	response.Response
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=LoginProvider
type LoginProvider interface {
	Login(ctx context.Context, login, password string) (*models.User, string, error)
	TokenTTL() time.Duration
}

// New checks credentials and hands the token back both in the body and as
// an HttpOnly cookie.
func New(log *slog.Logger, provider LoginProvider, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.login.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		user, token, err := provider.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			log.Warn("login failed", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to log in")))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(provider.TokenTTL().Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("user logged in", slog.Int64("user_id", user.ID))

		render.JSON(w, r, Response{
			Response: response.OKWithMessage("Welcome, " + user.Username + "!"),
			Token:    token,
			User:     user,
		})
	}
}

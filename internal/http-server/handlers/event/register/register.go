package register

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/services/registrations"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	PaymentMethod models.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=cash card_mir card_other not_selected"`
}

type Response struct {
	response.Response
	Registration *models.Registration `json:"registration"`
	Payment      *models.Payment      `json:"payment,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Registrar
type Registrar interface {
	Register(ctx context.Context, user *models.User, eventID int64, method models.PaymentMethod) (*registrations.RegisterResult, error)
}

func New(log *slog.Logger, registrar Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.register.New"

		log := log.With(slog.String("op", op))

		user := mwauth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.ParseInt(eventIdStr, 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID), slog.Int64("user_id", user.ID))

		var req Request

		// An empty body registers without choosing a payment method.
		err = render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		res, err := registrar.Register(r.Context(), user, eventID, req.PaymentMethod)
		if err != nil {
			log.Error("failed to register", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to register for event")))
			return
		}

		log.Info("registered for event", slog.Int64("registration_id", res.Registration.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response:     response.OKWithMessage(res.Message),
			Registration: res.Registration,
			Payment:      res.Payment,
		})
	}
}

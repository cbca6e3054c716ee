package cancelRegistration

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
	Reason string `json:"reason" validate:"max=500"`
}

type Response struct {
	response.Response
	Outcome      registrations.Outcome `json:"outcome"`
	Registration *models.Registration  `json:"registration"`
	Payment      *models.Payment       `json:"payment,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Canceller
type Canceller interface {
	Cancel(ctx context.Context, user *models.User, registrationID int64, reason string) (*registrations.CancelResult, error)
}

func New(log *slog.Logger, canceller Canceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.cancelRegistration.New"

		log := log.With(slog.String("op", op))

		user := mwauth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		regID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid registration id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid registration id format"))
			return
		}

		log = log.With(slog.Int64("registration_id", regID))

		var req Request

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

		res, err := canceller.Cancel(r.Context(), user, regID, req.Reason)
		if err != nil {
			log.Error("failed to cancel registration", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to cancel registration")))
			return
		}

		log.Info("registration cancelled", slog.String("outcome", string(res.Outcome)))

		render.JSON(w, r, Response{
			Response:     response.OKWithMessage(res.Message),
			Outcome:      res.Outcome,
			Registration: res.Registration,
			Payment:      res.Payment,
		})
	}
}

package processPayment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/payment"
	"eventHub/internal/services/registrations"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Action string `json:"action" validate:"required,oneof=pay cancel"`
}

type Response struct {
	response.Response
	Payment      *models.Payment      `json:"payment"`
	Registration *models.Registration `json:"registration"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentProcessor
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, user *models.User, paymentID int64, action string) (*registrations.PaymentResult, error)
}

func New(log *slog.Logger, processor PaymentProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.processPayment.New"

		log := log.With(slog.String("op", op))

		user := mwauth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		paymentIdStr := chi.URLParam(r, "id")
		if paymentIdStr == "" {
			log.Error("payment id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("payment id is required"))
			return
		}

		paymentID, err := strconv.ParseInt(paymentIdStr, 10, 64)
		if err != nil {
			log.Error("invalid payment id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid payment id format"))
			return
		}

		log = log.With(slog.Int64("payment_id", paymentID))

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
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

		res, err := processor.ProcessPayment(r.Context(), user, paymentID, req.Action)
		if err != nil {
			// A settled payment is not a failure for the payer.
			if errors.Is(err, payment.ErrAlreadyProcessed) && res != nil {
				log.Info("payment already processed", slog.String("status", string(res.Payment.Status)))
				render.JSON(w, r, Response{
					Response:     response.OKWithMessage(res.Message),
					Payment:      res.Payment,
					Registration: res.Registration,
				})
				return
			}

			log.Error("failed to process payment", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to process payment")))
			return
		}

		log.Info("payment processed", slog.String("status", string(res.Payment.Status)))

		render.JSON(w, r, Response{
			Response:     response.OKWithMessage(res.Message),
			Payment:      res.Payment,
			Registration: res.Registration,
		})
	}
}

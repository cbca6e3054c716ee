package myPayments

import (
	"context"
	"log/slog"
	"net/http"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"

	"github.com/go-chi/render"
)

type PaymentsResponse struct {
	response.Response
	Payments []models.Payment `json:"payments"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentsGetter
type PaymentsGetter interface {
	MyPayments(ctx context.Context, user *models.User) ([]models.Payment, error)
}

func New(log *slog.Logger, getter PaymentsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.myPayments.New"

		log := log.With(slog.String("op", op))

		user := mwauth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		payments, err := getter.MyPayments(r.Context(), user)
		if err != nil {
			log.Error("failed to get payments", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get payments"))
			return
		}

		if payments == nil {
			payments = []models.Payment{}
		}

		render.JSON(w, r, PaymentsResponse{
			Response: response.OK(),
			Payments: payments,
		})
	}
}

package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/services/accounts"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	*accounts.Dashboard
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardProvider
type DashboardProvider interface {
	Dashboard(ctx context.Context, admin *models.User) (*accounts.Dashboard, error)
}

func New(log *slog.Logger, provider DashboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.dashboard.New"

		log := log.With(slog.String("op", op))

		d, err := provider.Dashboard(r.Context(), mwauth.UserFromContext(r.Context()))
		if err != nil {
			log.Error("failed to build dashboard", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to build dashboard")))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), Dashboard: d})
	}
}

package getProfile

import (
	"context"
	"log/slog"
	"net/http"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileGetter
type ProfileGetter interface {
	Profile(ctx context.Context, id int64) (*models.User, error)
}

func New(log *slog.Logger, getter ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getProfile.New"

		log := log.With(slog.String("op", op))

		user := mwauth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		profile, err := getter.Profile(r.Context(), user.ID)
		if err != nil {
			log.Error("failed to get profile", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to get profile")))
			return
		}

		render.JSON(w, r, Response{Response: response.OK(), User: profile})
	}
}

package myEvents

import (
	"context"
	"log/slog"
	"net/http"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/services/events"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Created    []models.Event `json:"created"`
	Registered []models.Event `json:"registered"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MyEventsGetter
type MyEventsGetter interface {
	MyEvents(ctx context.Context, user *models.User) (*events.MyEvents, error)
}

// New lists the events the user organizes and the ones they registered for.
func New(log *slog.Logger, getter MyEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.myEvents.New"

		log := log.With(slog.String("op", op))

		user := mwauth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		mine, err := getter.MyEvents(r.Context(), user)
		if err != nil {
			log.Error("failed to get user events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		resp := Response{
			Response:   response.OK(),
			Created:    mine.Created,
			Registered: mine.Registered,
		}
		if resp.Created == nil {
			resp.Created = []models.Event{}
		}
		if resp.Registered == nil {
			resp.Registered = []models.Event{}
		}

		render.JSON(w, r, resp)
	}
}

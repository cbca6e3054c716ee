package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	List(ctx context.Context, categoryID int64, search string) ([]models.Event, error)
}

// New lists published events. Query parameters: category (id) and search.
func New(log *slog.Logger, lister EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(slog.String("op", op))

		var categoryID int64
		if raw := r.URL.Query().Get("category"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.Error("invalid category format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid category format"))
				return
			}
			categoryID = id
		}

		list, err := lister.List(r.Context(), categoryID, r.URL.Query().Get("search"))
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		if list == nil {
			list = []models.Event{}
		}

		log.Info("events successfully received", slog.Int("count", len(list)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   list,
		})
	}
}

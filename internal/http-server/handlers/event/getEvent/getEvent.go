package getEvent

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/services/events"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventResponse struct {
	response.Response
	*events.Detail
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDetailer
type EventDetailer interface {
	Detail(ctx context.Context, viewer *models.User, id int64) (*events.Detail, error)
}

func New(log *slog.Logger, detailer EventDetailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log := log.With(slog.String("op", op))

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

		log = log.With(slog.Int64("event_id", eventID))

		detail, err := detailer.Detail(r.Context(), mwauth.UserFromContext(r.Context()), eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to get event information")))
			return
		}

		log.Info("event info successfully received")

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Detail:   detail,
		})
	}
}

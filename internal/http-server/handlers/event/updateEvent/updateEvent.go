package updateEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/services/events"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request replaces every editable field. An empty status keeps the current one.
type Request struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Date        time.Time          `json:"date" validate:"required"`
	Location    string             `json:"location"`
	CategoryID  *int64             `json:"category_id"`
	Status      models.EventStatus `json:"status" validate:"omitempty,oneof=draft published cancelled"`
	Capacity    int                `json:"capacity" validate:"gte=0"`
	Price       int64              `json:"price" validate:"gte=0"`
}

type Response struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	Update(ctx context.Context, user *models.User, id int64, in events.Input) (*models.Event, error)
}

func New(log *slog.Logger, updater EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log := log.With(slog.String("op", op))

		user := mwauth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		eventID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int64("event_id", eventID))

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

		event, err := updater.Update(r.Context(), user, eventID, events.Input{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Location:    req.Location,
			CategoryID:  req.CategoryID,
			Status:      req.Status,
			Capacity:    req.Capacity,
			Price:       req.Price,
		})
		if err != nil {
			log.Error("failed to update event", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to update event")))
			return
		}

		log.Info("event updated")

		render.JSON(w, r, Response{
			Response: response.OKWithMessage("Event updated."),
			Event:    event,
		})
	}
}

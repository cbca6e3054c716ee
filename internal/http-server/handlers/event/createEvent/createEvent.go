package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"
	"eventHub/internal/services/events"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Date        time.Time          `json:"date" validate:"required"`
	Location    string             `json:"location"`
	CategoryID  *int64             `json:"category_id"`
	Status      models.EventStatus `json:"status" validate:"omitempty,oneof=draft published cancelled"`
	Capacity    int                `json:"capacity" validate:"gte=0"`
	Price       int64              `json:"price" validate:"gte=0"`
}

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	Create(ctx context.Context, user *models.User, in events.Input) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		user := mwauth.UserFromContext(r.Context())
		if user == nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event, err := creator.Create(r.Context(), user, events.Input{
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
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to add event")))

			return
		}

		log.Info("event added", slog.Int64("id", event.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, EventResponse{
			Response: response.OKWithMessage("Event created."),
			Event:    event,
		})
	}
}

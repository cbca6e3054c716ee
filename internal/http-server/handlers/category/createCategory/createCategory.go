package createCategory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/errs"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type Response struct {
	response.Response
	Category *models.Category `json:"category"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoryCreator
type CategoryCreator interface {
	CreateCategory(ctx context.Context, user *models.User, name, description string) (*models.Category, error)
}

func New(log *slog.Logger, creator CategoryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.createCategory.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		category, err := creator.CreateCategory(r.Context(), mwauth.UserFromContext(r.Context()), req.Name, req.Description)
		if err != nil {
			log.Error("failed to create category", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to create category")))
			return
		}

		log.Info("category created", slog.Int64("category_id", category.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Category: category,
		})
	}
}

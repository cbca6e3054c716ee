package setRole

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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Role models.Role `json:"role" validate:"required,oneof=user organizer admin"`
}

type Response struct {
	response.Response
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoleSetter
type RoleSetter interface {
	SetRole(ctx context.Context, admin *models.User, userID int64, role models.Role) (*models.User, error)
}

func New(log *slog.Logger, setter RoleSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.setRole.New"

		log := log.With(slog.String("op", op))

		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			log.Error("invalid user id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id format"))
			return
		}

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

		user, err := setter.SetRole(r.Context(), mwauth.UserFromContext(r.Context()), userID, req.Role)
		if err != nil {
			log.Error("failed to set role", sl.Err(err))
			render.Status(r, response.StatusFor(err))
			render.JSON(w, r, response.Error(errs.Message(err, "failed to set role")))
			return
		}

		log.Info("role updated", slog.Int64("user_id", userID), slog.String("role", string(req.Role)))

		render.JSON(w, r, Response{
			Response: response.OKWithMessage("Role updated."),
			User:     user,
		})
	}
}

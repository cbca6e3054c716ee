package listCategories

import (
	"context"
	"log/slog"
	"net/http"

	"eventHub/internal/lib/api/response"
	"eventHub/internal/lib/logger/sl"
	"eventHub/internal/models"

	"github.com/go-chi/render"
)

type CategoriesResponse struct {
	response.Response
	Categories []models.Category `json:"categories"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CategoriesGetter
type CategoriesGetter interface {
	Categories(ctx context.Context) ([]models.Category, error)
}

func New(log *slog.Logger, getter CategoriesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.category.listCategories.New"

		log := log.With(slog.String("op", op))

		list, err := getter.Categories(r.Context())
		if err != nil {
			log.Error("failed to get categories", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get categories"))
			return
		}

		if list == nil {
			list = []models.Category{}
		}

		render.JSON(w, r, CategoriesResponse{
			Response:   response.OK(),
			Categories: list,
		})
	}
}

package logout

import (
	"log/slog"
	"net/http"

	"eventHub/internal/lib/api/response"

	"github.com/go-chi/render"
)

// New expires the session cookie. Bearer tokens stay valid until they expire.
func New(log *slog.Logger, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.logout.New"

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Debug("session cookie cleared", slog.String("op", op))

		render.JSON(w, r, response.OKWithMessage("You have been logged out."))
	}
}

package updateEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventHub/internal/http-server/handlers/event/updateEvent/mocks"
	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/logger/handlers/slogdiscard"
	"eventHub/internal/models"
	"eventHub/internal/services/events"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := &models.User{ID: 2, Role: models.RoleOrganizer}
	body := `{"title":"Renamed","date":"2026-12-25T18:00:00Z","status":"published"}`
	input := events.Input{
		Title:  "Renamed",
		Date:   time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC),
		Status: models.EventPublished,
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: "4",
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, user, int64(4), input).
					Return(&models.Event{ID: 4, Title: "Renamed", Status: models.EventPublished}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "Not the creator",
			eventID: "4",
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, user, int64(4), input).Return(nil, events.ErrCannotEdit)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you cannot edit this event"}`,
		},
		{
			name:    "Missing event",
			eventID: "9",
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, user, int64(9), input).Return(nil, events.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Bad id",
			eventID:        "x",
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewEventUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Put("/events/{id}", New(logger, updater))

			req := httptest.NewRequest(http.MethodPut, "/events/"+tc.eventID, bytes.NewBufferString(body))
			req = req.WithContext(mwauth.WithUser(req.Context(), user))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.Contains(t, rr.Body.String(), `"message":"Event updated."`)
			}
		})
	}
}

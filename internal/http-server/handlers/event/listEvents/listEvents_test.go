package listEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventHub/internal/http-server/handlers/event/listEvents/mocks"
	"eventHub/internal/lib/logger/handlers/slogdiscard"
	"eventHub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC)
	testEvents := []models.Event{
		{ID: 1, Title: "Test Event 1", Date: testTime, Capacity: 100, Status: models.EventPublished},
		{ID: 2, Title: "Test Event 2", Date: testTime.Add(24 * time.Hour), Capacity: 200, Status: models.EventPublished},
	}

	testCases := []struct {
		name           string
		query          string
		mockSetup      func(m *mocks.EventLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:  "Success with events",
			query: "",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", mock.Anything, int64(0), "").Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "OK", resp.Status)
				require.Len(t, resp.Events, 2)
				assert.Equal(t, int64(1), resp.Events[0].ID)
				assert.Equal(t, "Test Event 2", resp.Events[1].Title)
			},
		},
		{
			name:  "Filters are passed through",
			query: "?category=3&search=jazz",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", mock.Anything, int64(3), "jazz").Return(testEvents[:1], nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Len(t, resp.Events, 1)
			},
		},
		{
			name:  "Nil list renders as empty array",
			query: "",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", mock.Anything, int64(0), "").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","events":[]}`,
		},
		{
			name:           "Invalid category",
			query:          "?category=music",
			mockSetup:      func(m *mocks.EventLister) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid category format"}`,
		},
		{
			name:  "Storage error",
			query: "",
			mockSetup: func(m *mocks.EventLister) {
				m.On("List", mock.Anything, int64(0), "").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewEventLister(t)
			tc.mockSetup(lister)

			req := httptest.NewRequest(http.MethodGet, "/events"+tc.query, nil)
			rr := httptest.NewRecorder()

			New(logger, lister).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}

package processPayment

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventHub/internal/http-server/handlers/payment/processPayment/mocks"
	"eventHub/internal/http-server/middleware/mwauth"
	"eventHub/internal/lib/logger/handlers/slogdiscard"
	"eventHub/internal/models"
	"eventHub/internal/payment"
	"eventHub/internal/services/registrations"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProcessPaymentHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := &models.User{ID: 5}

	paid := &registrations.PaymentResult{
		Payment:      &models.Payment{ID: 3, Status: models.PaymentCompleted, TransactionID: "TXN00AA11BB22CC"},
		Registration: &models.Registration{ID: 8, Status: models.RegistrationConfirmed},
		Message:      "Payment successful. Your registration is confirmed.",
	}

	testCases := []struct {
		name           string
		paymentID      string
		requestBody    string
		mockSetup      func(m *mocks.PaymentProcessor)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name:        "Pay",
			paymentID:   "3",
			requestBody: `{"action":"pay"}`,
			mockSetup: func(m *mocks.PaymentProcessor) {
				m.On("ProcessPayment", mock.Anything, user, int64(3), "pay").Return(paid, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp Response
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "Payment successful. Your registration is confirmed.", resp.Message)
				assert.Equal(t, "TXN00AA11BB22CC", resp.Payment.TransactionID)
				assert.Equal(t, models.RegistrationConfirmed, resp.Registration.Status)
			},
		},
		{
			name:        "Cancel attempt",
			paymentID:   "3",
			requestBody: `{"action":"cancel"}`,
			mockSetup: func(m *mocks.PaymentProcessor) {
				m.On("ProcessPayment", mock.Anything, user, int64(3), "cancel").Return(&registrations.PaymentResult{
					Payment:      &models.Payment{ID: 3, Status: models.PaymentFailed},
					Registration: &models.Registration{ID: 8, Status: models.RegistrationPending},
					Message:      "Payment cancelled.",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				assert.Contains(t, string(body), `"message":"Payment cancelled."`)
				assert.Contains(t, string(body), `"status":"failed"`)
			},
		},
		{
			name:        "Already processed",
			paymentID:   "3",
			requestBody: `{"action":"pay"}`,
			mockSetup: func(m *mocks.PaymentProcessor) {
				m.On("ProcessPayment", mock.Anything, user, int64(3), "pay").Return(&registrations.PaymentResult{
					Payment:      paid.Payment,
					Registration: paid.Registration,
					Message:      "This payment has already been processed.",
				}, payment.ErrAlreadyProcessed)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp Response
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Empty(t, resp.Error)
				assert.Equal(t, "This payment has already been processed.", resp.Message)
				assert.Equal(t, models.PaymentCompleted, resp.Payment.Status)
				assert.Equal(t, models.RegistrationConfirmed, resp.Registration.Status)
			},
		},
		{
			name:        "Already processed without state",
			paymentID:   "3",
			requestBody: `{"action":"cancel"}`,
			mockSetup: func(m *mocks.PaymentProcessor) {
				m.On("ProcessPayment", mock.Anything, user, int64(3), "cancel").Return(nil, payment.ErrAlreadyProcessed)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"payment has already been processed"}`,
		},
		{
			name:        "Someone else's payment",
			paymentID:   "3",
			requestBody: `{"action":"pay"}`,
			mockSetup: func(m *mocks.PaymentProcessor) {
				m.On("ProcessPayment", mock.Anything, user, int64(3), "pay").Return(nil, registrations.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you do not have access to this registration"}`,
		},
		{
			name:        "Event filled up",
			paymentID:   "3",
			requestBody: `{"action":"pay"}`,
			mockSetup: func(m *mocks.PaymentProcessor) {
				m.On("ProcessPayment", mock.Anything, user, int64(3), "pay").Return(nil, registrations.ErrEventFull)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"no seats left for this event"}`,
		},
		{
			name:           "Unknown action",
			paymentID:      "3",
			requestBody:    `{"action":"refund"}`,
			mockSetup:      func(m *mocks.PaymentProcessor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Action must be one of [pay cancel]"}`,
		},
		{
			name:           "Missing action",
			paymentID:      "3",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.PaymentProcessor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Action is a required field"}`,
		},
		{
			name:           "Bad id",
			paymentID:      "x1",
			requestBody:    `{"action":"pay"}`,
			mockSetup:      func(m *mocks.PaymentProcessor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid payment id format"}`,
		},
		{
			name:        "Internal error",
			paymentID:   "3",
			requestBody: `{"action":"pay"}`,
			mockSetup: func(m *mocks.PaymentProcessor) {
				m.On("ProcessPayment", mock.Anything, user, int64(3), "pay").Return(nil, errors.New("tx aborted"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to process payment"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			processor := mocks.NewPaymentProcessor(t)
			tc.mockSetup(processor)

			router := chi.NewRouter()
			router.Post("/payments/{id}", New(logger, processor))

			req := httptest.NewRequest(http.MethodPost, "/payments/"+tc.paymentID, bytes.NewBufferString(tc.requestBody))
			req = req.WithContext(mwauth.WithUser(req.Context(), user))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

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

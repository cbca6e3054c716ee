package login

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventHub/internal/http-server/handlers/user/login/mocks"
	"eventHub/internal/lib/logger/handlers/slogdiscard"
	"eventHub/internal/models"
	"eventHub/internal/services/accounts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const cookieName = "event_hub_token"

func TestLoginSetsCookie(t *testing.T) {
	t.Parallel()

	provider := mocks.NewLoginProvider(t)
	provider.On("Login", mock.Anything, "anna", "secret-pass").
		Return(&models.User{ID: 1, Username: "anna"}, "signed.jwt.token", nil)
	provider.On("TokenTTL").Return(2 * time.Hour)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBufferString(`{"login":"anna","password":"secret-pass"}`))

	New(slogdiscard.NewDiscardLogger(), provider, cookieName).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"token":"signed.jwt.token"`)
	assert.Contains(t, rr.Body.String(), `"message":"Welcome, anna!"`)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 7200, cookies[0].MaxAge)
}

func TestLoginFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.LoginProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Wrong password",
			requestBody: `{"login":"anna","password":"nope"}`,
			mockSetup: func(m *mocks.LoginProvider) {
				m.On("Login", mock.Anything, "anna", "nope").Return(nil, "", accounts.ErrBadCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid username or password"}`,
		},
		{
			name:           "Missing password",
			requestBody:    `{"login":"anna"}`,
			mockSetup:      func(m *mocks.LoginProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Password is a required field"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `[`,
			mockSetup:      func(m *mocks.LoginProvider) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewLoginProvider(t)
			tc.mockSetup(provider)

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewBufferString(tc.requestBody))

			New(slogdiscard.NewDiscardLogger(), provider, cookieName).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			assert.Empty(t, rr.Result().Cookies())
		})
	}
}

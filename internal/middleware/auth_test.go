package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/endlessblink/sweatbot/internal/middleware"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	authMiddleware := middleware.NewAuthMiddlewareHandler("appSecret")

	testCases := []struct {
		name               string
		path               string
		method             string
		authTokenHeader    string
		expectedStatusCode int
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/challenges/active",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "VersionWithoutToken",
			path:               "/version",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "CalculateWithoutToken",
			path:               "/points/calculate",
			method:             "POST",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "CalculateValidToken",
			path:               "/points/calculate",
			method:             "POST",
			authTokenHeader:    "appSecret",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "CalculateInvalidToken",
			path:               "/points/calculate",
			method:             "POST",
			authTokenHeader:    "wrong-token",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "HistoryValidToken",
			path:               "/points/history/page/1/size/10",
			method:             "GET",
			authTokenHeader:    "appSecret",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "AchievementsWithoutToken",
			path:               "/achievements/progress/user-1",
			method:             "GET",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "OptionsPreflightAlwaysOK",
			path:               "/points/calculate",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			assert.NoError(t, err)
			if tc.authTokenHeader != "" {
				req.Header.Add("Authorization", tc.authTokenHeader)
			}

			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
		})
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rkarlsb/taskline/internal/api/shared"
	"github.com/rkarlsb/taskline/internal/service/auth"
	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedErr   error
	}{
		{
			name:          "well-formed header",
			authHeader:    "Bearer some-token",
			expectedToken: "some-token",
		},
		{
			name:        "absent header",
			authHeader:  "",
			expectedErr: auth.ErrMissingToken,
		},
		{
			name:        "no scheme",
			authHeader:  "some-token",
			expectedErr: auth.ErrInvalidToken,
		},
		{
			name:        "wrong scheme",
			authHeader:  "Basic some-token",
			expectedErr: auth.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/todos", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}

			token, err := bearerToken(req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, token)
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		authHeader        string
		validateErr       error
		claims            *auth.Claims
		expectedStatus    int
		expectedPrincipal shared.Principal
	}{
		{
			name:              "valid token",
			authHeader:        "Bearer valid-token",
			validateErr:       nil,
			claims:            &auth.Claims{UserID: 42, Username: "alice"},
			expectedStatus:    http.StatusOK,
			expectedPrincipal: shared.Principal{UserID: 42, Username: "alice"},
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			validateErr:    nil,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			validateErr:    nil,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &auth.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			m := NewAuthMiddleware(jwtService)

			var capturedPrincipal shared.Principal
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				principal, ok := GetPrincipal(r)
				if ok {
					capturedPrincipal = principal
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/todos", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()

			m.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedPrincipal, capturedPrincipal)
			}
		})
	}
}

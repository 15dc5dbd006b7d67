package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/app/service"
	"github.com/globex/wordcount/internal/mocks"
	"github.com/globex/wordcount/internal/storage"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthIface) {
	ctrl := gomock.NewController(t)

	mockAuth := mocks.NewMockAuthIface(ctrl)

	return NewAuth(mockAuth, zap.NewNop()), mockAuth
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		body         string
		mockError    error
		mockTimes    int
		expectedCode int
	}{
		{
			name:         "valid token and email",
			header:       "Bearer valid-token",
			body:         `{"email":"ada@example.com"}`,
			mockTimes:    1,
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing header",
			header:       "",
			body:         `{"email":"ada@example.com"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "header too short",
			header:       "Bearer",
			body:         `{"email":"ada@example.com"}`,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "invalid email",
			header:       "Bearer valid-token",
			body:         `{"email":"not-an-email"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "email mismatch",
			header:       "Bearer valid-token",
			body:         `{"email":"ada@example.com"}`,
			mockError:    service.ErrEmailMismatch,
			mockTimes:    1,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "revoked user",
			header:       "Bearer valid-token",
			body:         `{"email":"ada@example.com"}`,
			mockError:    storage.ErrNotFound,
			mockTimes:    1,
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockAuth := newTestAuthHandler(t)

			mockAuth.EXPECT().
				VerifyToken(gomock.Any(), "valid-token", "ada@example.com").
				Return(tt.mockError).
				Times(tt.mockTimes)

			req := httptest.NewRequest(http.MethodPost, "/auth/verify", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rr := httptest.NewRecorder()
			handler.Verify(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockAuth := newTestAuthHandler(t)

		mockAuth.EXPECT().
			LogIn(gomock.Any(), "ada@example.com", "password123").
			Return("issued-token", &storage.User{Email: "ada@example.com", DisplayName: "Ada"}, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			bytes.NewBufferString(`{"email":"ada@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"success": true,
			"token": "issued-token",
			"user": {"email":"ada@example.com","displayName":"Ada"}
		}`, rr.Body.String())
	})

	t.Run("wrong credentials", func(t *testing.T) {
		handler, mockAuth := newTestAuthHandler(t)

		mockAuth.EXPECT().
			LogIn(gomock.Any(), "ada@example.com", "password123").
			Return("", nil, service.ErrWrongCredentials).
			Times(1)

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			bytes.NewBufferString(`{"email":"ada@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("short password rejected before service", func(t *testing.T) {
		handler, _ := newTestAuthHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			bytes.NewBufferString(`{"email":"ada@example.com","password":"short"}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSignup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockAuth := newTestAuthHandler(t)

		mockAuth.EXPECT().
			SignUp(gomock.Any(), "Ada", "ada@example.com", "password123").
			Return("issued-token", &storage.User{Email: "ada@example.com", DisplayName: "Ada"}, nil).
			Times(1)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup",
			bytes.NewBufferString(`{"displayName":"Ada","email":"ada@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{
			"success": true,
			"token": "issued-token",
			"user": {"email":"ada@example.com","displayName":"Ada"}
		}`, rr.Body.String())
	})

	t.Run("account exists", func(t *testing.T) {
		handler, mockAuth := newTestAuthHandler(t)

		mockAuth.EXPECT().
			SignUp(gomock.Any(), "Ada", "ada@example.com", "password123").
			Return("", nil, storage.ErrConflict).
			Times(1)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup",
			bytes.NewBufferString(`{"displayName":"Ada","email":"ada@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"Account already exists"}`, rr.Body.String())
	})

	t.Run("invalid email", func(t *testing.T) {
		handler, _ := newTestAuthHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/auth/signup",
			bytes.NewBufferString(`{"displayName":"Ada","email":"nope","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ada@example.com", true},
		{"first.last@sub.example.org", true},
		{"a-b@c-d.io", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"ada@", false},
		{"ada@example", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, validEmail(tt.email))
		})
	}
}

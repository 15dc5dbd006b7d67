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
	"github.com/globex/wordcount/internal/middleware"
	"github.com/globex/wordcount/internal/mocks"
	"github.com/globex/wordcount/internal/storage"
)

func newTestPostHandler(t *testing.T) (*PostHandler, *mocks.MockURLServiceIface) {
	ctrl := gomock.NewController(t)

	mockService := mocks.NewMockURLServiceIface(ctrl)

	return NewPost(mockService, zap.NewNop()), mockService
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockResponse *storage.URLRecord
		mockError    error
		expectedCode int
		expectedBody string
	}{
		{
			name: "valid URL",
			body: `{"url":"http://example.com"}`,
			mockResponse: &storage.URLRecord{
				ID:        "id-1",
				UserID:    "test-user-id",
				URL:       "http://example.com",
				Domain:    "example.com",
				WordCount: 2,
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"success":true,"url":{"domain":"example.com","url":"http://example.com","wordcount":2,"favorite":false}}`,
		},
		{
			name:         "duplicate URL",
			body:         `{"url":"http://example.com"}`,
			mockError:    storage.ErrConflict,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"URL already counted"}`,
		},
		{
			name:         "invalid URL",
			body:         `{"url":"not a url"}`,
			mockError:    service.ErrInvalidURL,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"Invalid URL"}`,
		},
		{
			name:         "fetch failure",
			body:         `{"url":"http://example.com"}`,
			mockError:    service.ErrUpstream,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Could not fetch page"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := newTestPostHandler(t)

			mockService.EXPECT().
				AddURL(gomock.Any(), "test-user-id", gomock.Any()).
				Return(tt.mockResponse, tt.mockError).
				Times(1)

			req := httptest.NewRequest(http.MethodPost, "/url/add", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = middleware.InjectUserID(req, "test-user-id")

			rr := httptest.NewRecorder()
			handler.Add(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode int
	}{
		{
			name:         "empty url",
			body:         `{"url":""}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty body",
			body:         ``,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown field",
			body:         `{"link":"http://example.com"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No service expectation: validation failures must not reach it.
			handler, _ := newTestPostHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/url/add", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = middleware.InjectUserID(req, "test-user-id")

			rr := httptest.NewRecorder()
			handler.Add(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAddUnauthenticated(t *testing.T) {
	// No user id in context and no service expectation: nothing is stored.
	handler, _ := newTestPostHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/url/add", bytes.NewBufferString(`{"url":"http://example.com"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.Add(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

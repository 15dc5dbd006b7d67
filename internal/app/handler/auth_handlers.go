package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/app/service"
	"github.com/globex/wordcount/internal/models"
	"github.com/globex/wordcount/internal/storage"
)

// minPasswordLen matches the schema-level minimum of the public API.
const minPasswordLen = 8

type AuthHandler struct {
	auth   service.AuthIface
	logger *zap.Logger
}

func NewAuth(auth service.AuthIface, l *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: l,
	}
}

func (h *AuthHandler) decode(res http.ResponseWriter, req *http.Request, dst interface{}) bool {
	err := decodeJSONBody(res, req, dst)
	if err == nil {
		return true
	}

	var mr *malformedRequest
	if errors.As(err, &mr) {
		writeError(res, mr.status, mr.msg)
		return false
	}

	h.logger.Error("decode", zap.Error(err))
	writeError(res, http.StatusInternalServerError, "Internal error")
	return false
}

// Verify confirms that the bearer token in the Authorization header
// belongs to the account with the email in the body.
func (h *AuthHandler) Verify(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	header := req.Header.Get("Authorization")
	if len(header) < 8 || !strings.HasPrefix(header, "Bearer ") {
		writeError(res, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token := header[7:]

	var request models.VerifyRequest
	if !h.decode(res, req, &request) {
		return
	}

	if !validEmail(request.Email) {
		writeError(res, http.StatusBadRequest, "Invalid email address")
		return
	}

	err := h.auth.VerifyToken(ctx, token, request.Email)
	switch {
	case err == nil:
		writeJSON(res, http.StatusOK, models.SuccessResponse{Success: true})
	case errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrEmailMismatch),
		errors.Is(err, storage.ErrNotFound):
		writeError(res, http.StatusUnauthorized, "Unauthorized")
	default:
		h.logger.Error("verify", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Internal error")
	}
}

// Login authenticates an account and issues a fresh token. Unknown
// account and wrong password answer the same 401.
func (h *AuthHandler) Login(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.LoginRequest
	if !h.decode(res, req, &request) {
		return
	}

	if request.Email == "" || len(request.Password) < minPasswordLen {
		writeError(res, http.StatusBadRequest, "Invalid email or password")
		return
	}

	token, user, err := h.auth.LogIn(ctx, request.Email, request.Password)
	if errors.Is(err, service.ErrWrongCredentials) {
		writeError(res, http.StatusUnauthorized, "Wrong email or password")
		return
	}
	if err != nil {
		h.logger.Error("login", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(res, http.StatusOK, models.AuthResponse{
		Success: true,
		Token:   token,
		User:    models.AuthUser{Email: user.Email, DisplayName: user.DisplayName},
	})
}

// Signup creates an account and issues its first token. An already
// registered email answers 401.
func (h *AuthHandler) Signup(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.SignupRequest
	if !h.decode(res, req, &request) {
		return
	}

	if request.DisplayName == "" || len(request.Password) < minPasswordLen {
		writeError(res, http.StatusBadRequest, "Invalid signup data")
		return
	}

	if !validEmail(request.Email) {
		writeError(res, http.StatusBadRequest, "Invalid email address")
		return
	}

	token, user, err := h.auth.SignUp(ctx, request.DisplayName, request.Email, request.Password)
	if errors.Is(err, storage.ErrConflict) {
		writeError(res, http.StatusUnauthorized, "Account already exists")
		return
	}
	if err != nil {
		h.logger.Error("signup", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Internal error")
		return
	}

	writeJSON(res, http.StatusCreated, models.AuthResponse{
		Success: true,
		Token:   token,
		User:    models.AuthUser{Email: user.Email, DisplayName: user.DisplayName},
	})
}

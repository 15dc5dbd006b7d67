package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/app/service"
	"github.com/globex/wordcount/internal/middleware"
	"github.com/globex/wordcount/internal/models"
	"github.com/globex/wordcount/internal/storage"
)

type ChangeHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewChange(s service.URLServiceIface, l *zap.Logger) *ChangeHandler {
	return &ChangeHandler{
		service: s,
		logger:  l,
	}
}

// Favorite handles PUT /url/favorite/change. The store scopes the update
// to the requesting user, so a foreign record id answers 404 without
// being touched. Setting the current value again succeeds.
func (h *ChangeHandler) Favorite(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeError(res, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request models.FavoriteChangeRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeError(res, mr.status, mr.msg)
		} else {
			h.logger.Error("favorite decode", zap.Error(err))
			writeError(res, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	if request.URLID == "" {
		writeError(res, http.StatusBadRequest, "url_id is required")
		return
	}

	err = h.service.SetFavorite(ctx, userID, request.URLID, request.IsFavorite)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(res, http.StatusNotFound, "URL not found")
		return
	}
	if err != nil {
		h.logger.Error("favorite", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Could not update favorite")
		return
	}

	writeJSON(res, http.StatusOK, models.SuccessResponse{Success: true})
}

// Delete handles DELETE /url/delete. Deleting an unknown or already
// deleted id is an idempotent success.
func (h *ChangeHandler) Delete(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeError(res, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := req.URL.Query().Get("id")
	if id == "" {
		writeError(res, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.service.DeleteURL(ctx, userID, id); err != nil {
		h.logger.Error("delete", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Could not delete URL")
		return
	}

	writeJSON(res, http.StatusOK, models.SuccessResponse{Success: true})
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/app/service"
	"github.com/globex/wordcount/internal/middleware"
	"github.com/globex/wordcount/internal/models"
	"github.com/globex/wordcount/internal/storage"
)

// addTimeout bounds the whole add pipeline: duplicate check, page fetch
// and insert. It is longer than the store timeouts because the fetch of
// an arbitrary page dominates.
const addTimeout = 30 * time.Second

type PostHandler struct {
	urlService service.URLServiceIface
	logger     *zap.Logger
}

func NewPost(s service.URLServiceIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		urlService: s,
		logger:     l,
	}
}

// Add handles POST /url/add: fetches the submitted page, counts its
// words and stores the record for the authenticated user.
func (h *PostHandler) Add(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), addTimeout)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeError(res, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request models.AddURLRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeError(res, mr.status, mr.msg)
		} else {
			h.logger.Error("add decode", zap.Error(err))
			writeError(res, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	if request.URL == "" {
		writeError(res, http.StatusBadRequest, "URL is required")
		return
	}

	r, err := h.urlService.AddURL(ctx, userID, request.URL)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			h.logger.Info(fmt.Sprintf("URL %s already counted", request.URL))
			writeError(res, http.StatusBadRequest, "URL already counted")
		case errors.Is(err, service.ErrInvalidURL):
			writeError(res, http.StatusBadRequest, "Invalid URL")
		case errors.Is(err, service.ErrUpstream):
			writeError(res, http.StatusInternalServerError, "Could not fetch page")
		default:
			h.logger.Error("add", zap.Error(err))
			writeError(res, http.StatusInternalServerError, "Could not save URL")
		}
		return
	}

	writeJSON(res, http.StatusCreated, models.AddURLResponse{
		Success: true,
		URL: models.URLPayload{
			Domain:    r.Domain,
			URL:       r.URL,
			WordCount: r.WordCount,
			Favorite:  r.Favorite,
		},
	})
}

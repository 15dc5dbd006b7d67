package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/globex/wordcount/internal/app/service"
	"github.com/globex/wordcount/internal/middleware"
	"github.com/globex/wordcount/internal/models"
)

// defaultLimit caps list responses when the client sends no limit.
const defaultLimit = 10

type GetHandler struct {
	service service.URLServiceIface
	logger  *zap.Logger
}

func NewGet(s service.URLServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// parseLimit reads the limit query parameter, falling back to the
// default for missing or unusable values.
func parseLimit(req *http.Request) int {
	raw := req.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultLimit
	}
	return limit
}

// List handles GET /url/list: one page of the user's records for a
// domain, ordered by url. The optional url parameter is a cursor; the
// page resumes strictly after it.
func (h *GetHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeError(res, http.StatusUnauthorized, "Unauthorized")
		return
	}

	domain := req.URL.Query().Get("domain")
	if domain == "" {
		writeError(res, http.StatusBadRequest, "Domain is required")
		return
	}

	afterURL := req.URL.Query().Get("url")

	records, err := h.service.ListByDomain(ctx, userID, domain, afterURL, parseLimit(req))
	if err != nil {
		h.logger.Error("list", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Could not list URLs")
		return
	}

	urls := make([]models.URLPayload, 0, len(records))
	for _, r := range records {
		urls = append(urls, models.URLPayload{
			Domain:    r.Domain,
			URL:       r.URL,
			WordCount: r.WordCount,
			Favorite:  r.Favorite,
		})
	}

	writeJSON(res, http.StatusOK, models.ListURLsResponse{Success: true, URLs: urls})
}

// Domains handles GET /url/list/domains: the user's distinct domains.
func (h *GetHandler) Domains(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeError(res, http.StatusUnauthorized, "Unauthorized")
		return
	}

	domains, err := h.service.Domains(ctx, userID, parseLimit(req))
	if err != nil {
		h.logger.Error("domains", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Could not list domains")
		return
	}

	writeJSON(res, http.StatusOK, models.ListDomainsResponse{Success: true, Domains: domains})
}

// Count handles GET /url/count: document count and summed word count of
// the user's records for a domain.
func (h *GetHandler) Count(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	userID, ok := middleware.UserIDFromContext(req.Context())
	if !ok {
		writeError(res, http.StatusUnauthorized, "Unauthorized")
		return
	}

	domain := req.URL.Query().Get("domain")
	if domain == "" {
		writeError(res, http.StatusBadRequest, "Domain is required")
		return
	}

	stats, err := h.service.DomainStats(ctx, userID, domain)
	if err != nil {
		h.logger.Error("count", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Could not aggregate domain")
		return
	}

	writeJSON(res, http.StatusOK, models.DomainCountResponse{
		Success: true,
		DCount:  stats.Documents,
		WCount:  stats.Words,
	})
}

// PingDB reports storage availability.
func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

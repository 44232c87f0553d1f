package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iho/bankview/internal/adapter/http/dto"
	"github.com/iho/bankview/internal/usecase"
)

// RefreshService re-fetches both collections.
type RefreshService interface {
	Refresh(ctx context.Context) usecase.RefreshReport
}

// CacheInvalidator drops cached fetch results.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// RefreshHandler handles manual refresh requests.
type RefreshHandler struct {
	service     RefreshService
	invalidator CacheInvalidator
}

// NewRefreshHandler creates a new RefreshHandler. invalidator may be nil
// when fetch caching is disabled.
func NewRefreshHandler(service RefreshService, invalidator CacheInvalidator) *RefreshHandler {
	return &RefreshHandler{service: service, invalidator: invalidator}
}

// Refresh handles POST /refresh. With ?force=true the fetch cache is
// dropped first so both collections come from the remote API.
func (h *RefreshHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	if force && h.invalidator != nil {
		if err := h.invalidator.Invalidate(r.Context()); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("failed to invalidate fetch cache")
		}
	}

	report := h.service.Refresh(r.Context())
	writeJSON(w, http.StatusOK, dto.RefreshFromReport(report))
}

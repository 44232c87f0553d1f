package handler

import (
	"net/http"

	"github.com/iho/bankview/internal/adapter/http/dto"
	"github.com/iho/bankview/internal/usecase"
)

// StateReader exposes the current application state.
type StateReader interface {
	Snapshot() usecase.State
}

// HomeHandler serves the home view.
type HomeHandler struct {
	state StateReader
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(state StateReader) *HomeHandler {
	return &HomeHandler{state: state}
}

// Get handles GET /.
func (h *HomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HomeFromState(h.state.Snapshot()))
}

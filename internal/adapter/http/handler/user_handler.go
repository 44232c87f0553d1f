package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/bankview/internal/adapter/http/dto"
	"github.com/iho/bankview/internal/domain"
)

// UserService defines the interface for mock login and the profile view.
type UserService interface {
	LogIn(ctx context.Context, name string) (domain.User, error)
	CurrentUser() domain.User
	Profile(name string) (domain.User, error)
}

// UserHandler handles login and profile requests.
type UserHandler struct {
	service UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Current handles GET /login.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.UserFromDomain(h.service.CurrentUser()))
}

// Login handles POST /login. Any well-formed name is accepted.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.LogIn(r.Context(), req.UserName)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// Profile handles GET /user/{userName}.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Profile(chi.URLParam(r, "userName"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

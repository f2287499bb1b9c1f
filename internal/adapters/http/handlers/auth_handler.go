// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/adapters/http/middleware"
	"github.com/arimodu/shopper/internal/ports"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	auth   ports.AuthService
	cookie SessionCookie
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth ports.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.auth.Register(r.Context(), req.Name, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.cookie.set(w, res.Token)
	writeJSON(w, http.StatusCreated, dto.ToUserResponse(res.User))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.auth.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.cookie.set(w, res.Token)
	writeJSON(w, http.StatusOK, dto.ToUserResponse(res.User))
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), middleware.SessionTokenFromContext(r.Context())); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.cookie.clear(w)
	w.WriteHeader(http.StatusNoContent)
}

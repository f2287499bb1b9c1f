package handlers

import (
	"log/slog"
	"net/http"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/platform/logging"
	"github.com/arimodu/shopper/internal/ports"
)

// UserHandler handles the caller's own account under /user/me.
type UserHandler struct {
	account ports.AccountService
	auth    ports.AuthService
	cookie  SessionCookie
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(account ports.AccountService, auth ports.AuthService, cookie SessionCookie) *UserHandler {
	return &UserHandler{account: account, auth: auth, cookie: cookie}
}

// Me handles GET /api/v1/user/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	o, err := h.account.Overview(r.Context(), callerID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOverviewResponse(o))
}

// UpdateMe handles PATCH /api/v1/user/me. A password change ends every
// session of the user, including the current one. The new password is
// already stored by then, so a failure to end sessions is logged and the
// update still answers 200.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID := callerID(r)
	u, passwordChanged, err := h.account.UpdateProfile(r.Context(), userID, req.ToProfileUpdate())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if passwordChanged {
		if err := h.auth.EndAllSessions(r.Context(), userID); err != nil {
			logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to end sessions after password change",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
		}
		h.cookie.clear(w)
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// DeleteMe handles DELETE /api/v1/user/me.
func (h *UserHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)
	if err := h.account.DeleteAccount(r.Context(), userID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	// The account is gone; a failure here only leaves orphaned sessions that
	// no longer resolve to a user.
	if err := h.auth.EndAllSessions(r.Context(), userID); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "failed to end sessions of deleted user",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	h.cookie.clear(w)
	w.WriteHeader(http.StatusNoContent)
}

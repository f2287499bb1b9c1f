package handlers

import (
	"net/http"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/ports"
)

// ListHandler handles list CRUD and ACL membership.
type ListHandler struct {
	svc ports.ListService
}

// NewListHandler creates a new ListHandler with the given service port.
func NewListHandler(svc ports.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// CreateList handles POST /api/v1/list/create.
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.CreateList(r.Context(), callerID(r), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToListResponse(l))
}

// GetList handles GET /api/v1/list/{listId}.
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "listId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.GetList(r.Context(), callerID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l))
}

// UpdateList handles PATCH /api/v1/list/{listId}.
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "listId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.UpdateList(r.Context(), callerID(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l))
}

// DeleteList handles DELETE /api/v1/list/{listId}.
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "listId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteList(r.Context(), callerID(r), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddUser handles PUT /api/v1/list/acl.
func (h *ListHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req dto.ACLRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.InviteUser(r.Context(), callerID(r), req.ListID, req.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l))
}

// RemoveUser handles DELETE /api/v1/list/acl.
func (h *ListHandler) RemoveUser(w http.ResponseWriter, r *http.Request) {
	var req dto.ACLRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.RemoveUser(r.Context(), callerID(r), req.ListID, req.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l))
}

package handlers

import (
	"net/http"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/ports"
)

// ItemHandler handles item operations. Item mutations answer with the whole
// refreshed list.
type ItemHandler struct {
	svc ports.ListService
}

// NewItemHandler creates a new ItemHandler with the given service port.
func NewItemHandler(svc ports.ListService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// CreateItem handles POST /api/v1/item/create.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.AddItem(r.Context(), callerID(r), req.ListID, *req.Order, req.Content)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToListResponse(l))
}

// GetItem handles GET /api/v1/item/{itemId}.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "itemId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	it, err := h.svc.GetItem(r.Context(), callerID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToItemResponse(it))
}

// UpdateItem handles PATCH /api/v1/item/{itemId}.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "itemId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.svc.UpdateItem(r.Context(), callerID(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l))
}

// DeleteItem handles DELETE /api/v1/item/{itemId}.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r, "itemId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	l, err := h.svc.DeleteItem(r.Context(), callerID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListResponse(l))
}

package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/adapters/http/handlers"
	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/mocks"
)

func TestItemHandler_CreateItem(t *testing.T) {
	t.Parallel()

	t.Run("returns whole list", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockListService(t)
		h := handlers.NewItemHandler(svc)

		svc.EXPECT().AddItem(mock.Anything, guestID, listID, 1, "Milk").Return(groceries(), nil)

		rec := httptest.NewRecorder()
		req := asCaller(httptest.NewRequest(http.MethodPost, "/api/v1/item/create",
			jsonBody(t, map[string]any{"list_id": listID, "order": 1, "content": "Milk"})), guestID)
		h.CreateItem(rec, req)

		requireStatus(t, rec, http.StatusCreated)
		resp := decodeJSON[dto.ListResponse](t, rec)
		if len(resp.Items) != 1 || resp.Items[0].IsDone {
			t.Errorf("items = %+v, want one undone item", resp.Items)
		}
	})

	t.Run("missing order is 400", func(t *testing.T) {
		t.Parallel()
		h := handlers.NewItemHandler(mocks.NewMockListService(t))

		rec := httptest.NewRecorder()
		req := asCaller(httptest.NewRequest(http.MethodPost, "/api/v1/item/create",
			jsonBody(t, map[string]any{"list_id": listID, "content": "Milk"})), guestID)
		h.CreateItem(rec, req)

		requireStatus(t, rec, http.StatusBadRequest)
	})
}

func TestItemHandler_GetItem(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockListService(t)
	h := handlers.NewItemHandler(svc)

	svc.EXPECT().GetItem(mock.Anything, ownerID, itemID).
		Return(&list.Item{ID: itemID, Order: 1, Content: "Milk"}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/item/"+itemID, http.NoBody)
	req = asCaller(withChiParams(req, map[string]string{"itemId": itemID}), ownerID)
	h.GetItem(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ItemResponse](t, rec)
	if resp.Content != "Milk" {
		t.Errorf("content = %q, want Milk", resp.Content)
	}
}

func TestItemHandler_UpdateItem_OnlyIsDone(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockListService(t)
	h := handlers.NewItemHandler(svc)

	done := true
	updated := groceries()
	updated.Items[0].IsDone = true
	svc.EXPECT().UpdateItem(mock.Anything, ownerID, itemID, list.ItemPatch{IsDone: &done}).Return(updated, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/item/"+itemID, jsonBody(t, map[string]bool{"is_done": true}))
	req = asCaller(withChiParams(req, map[string]string{"itemId": itemID}), ownerID)
	h.UpdateItem(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse](t, rec)
	if !resp.Items[0].IsDone || resp.Items[0].Content != "Milk" || resp.Items[0].Order != 1 {
		t.Errorf("item = %+v, want done Milk with order 1", resp.Items[0])
	}
}

func TestItemHandler_DeleteItem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "forbidden", err: domain.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockListService(t)
			h := handlers.NewItemHandler(svc)

			if tt.err != nil {
				svc.EXPECT().DeleteItem(mock.Anything, ownerID, itemID).Return(nil, tt.err)
			} else {
				l := groceries()
				l.Items = nil
				svc.EXPECT().DeleteItem(mock.Anything, ownerID, itemID).Return(l, nil)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/item/"+itemID, http.NoBody)
			req = asCaller(withChiParams(req, map[string]string{"itemId": itemID}), ownerID)
			h.DeleteItem(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

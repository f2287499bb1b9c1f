package dto_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/arimodu/shopper/internal/adapters/http/dto"
	"github.com/arimodu/shopper/internal/domain"
)

const (
	listUUID = "3f1c2a8e-5b7d-4e3a-9c1f-0a2b3c4d5e6f"
	userUUID = "9b8a7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
func boolPtr(b bool) *bool { return &b }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCredentialsRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CredentialsRequest
		wantField string
	}{
		{name: "valid", req: dto.CredentialsRequest{Name: "alice", Password: "pw"}},
		{name: "missing name", req: dto.CredentialsRequest{Password: "pw"}, wantField: "name"},
		{name: "blank name", req: dto.CredentialsRequest{Name: "  ", Password: "pw"}, wantField: "name"},
		{name: "missing password", req: dto.CredentialsRequest{Name: "alice"}, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateListRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateListRequest
		wantField string
	}{
		{name: "empty patch", req: dto.UpdateListRequest{}},
		{name: "archive only", req: dto.UpdateListRequest{Archived: boolPtr(false)}},
		{name: "new owner", req: dto.UpdateListRequest{Owner: stringPtr(userUUID)}},
		{name: "blank name", req: dto.UpdateListRequest{Name: stringPtr(" ")}, wantField: "name"},
		{name: "owner not a uuid", req: dto.UpdateListRequest{Owner: stringPtr("bob")}, wantField: "owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestACLRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.ACLRequest{ListID: listUUID, UserID: userUUID}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.ACLRequest{ListID: "x", UserID: userUUID}).Validate(), "list_id")
	requireValidationField(t, (&dto.ACLRequest{ListID: listUUID}).Validate(), "user_id")
}

func TestCreateItemRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateItemRequest
		wantField string
	}{
		{name: "valid", req: dto.CreateItemRequest{ListID: listUUID, Order: intPtr(1), Content: "Milk"}},
		{name: "zero order is present", req: dto.CreateItemRequest{ListID: listUUID, Order: intPtr(0), Content: "Milk"}},
		{name: "missing order", req: dto.CreateItemRequest{ListID: listUUID, Content: "Milk"}, wantField: "order"},
		{name: "missing content", req: dto.CreateItemRequest{ListID: listUUID, Order: intPtr(1)}, wantField: "content"},
		{name: "bad list id", req: dto.CreateItemRequest{ListID: "42", Order: intPtr(1), Content: "Milk"}, wantField: "list_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateItemRequest_ExplicitFalseIsPresent(t *testing.T) {
	t.Parallel()

	var req dto.UpdateItemRequest
	if err := json.Unmarshal([]byte(`{"is_done":false}`), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	patch := req.ToPatch()
	if patch.IsDone == nil || *patch.IsDone {
		t.Errorf("ToPatch().IsDone = %v, want pointer to false", patch.IsDone)
	}
	if patch.Order != nil || patch.Content != nil {
		t.Errorf("ToPatch() = %+v, want only IsDone set", patch)
	}

	requireValidationField(t, (&dto.UpdateItemRequest{Content: stringPtr("")}).Validate(), "content")
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.UpdateProfileRequest{}).Validate(); err != nil {
		t.Errorf("Validate(empty) = %v, want nil", err)
	}
	requireValidationField(t, (&dto.UpdateProfileRequest{Name: stringPtr("")}).Validate(), "name")
	requireValidationField(t, (&dto.UpdateProfileRequest{Password: stringPtr("")}).Validate(), "password")
}

package dto

import (
	"strings"

	"github.com/google/uuid"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/ports"
)

const (
	msgRequired     = domain.MsgRequired
	msgMustNotEmpty = "must not be empty"
	msgInvalidUUID  = "must be a valid UUID"
)

// CredentialsRequest is the JSON body of register and login.
type CredentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (r *CredentialsRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateProfileRequest is the JSON body of PATCH /user/me.
// All fields are optional; nil means "do not change this field.".
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateProfileRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Password != nil && *r.Password == "" {
		fields["password"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToProfileUpdate maps the request to the service input.
func (r *UpdateProfileRequest) ToProfileUpdate() ports.ProfileUpdate {
	return ports.ProfileUpdate{Name: r.Name, Password: r.Password}
}

// CreateListRequest is the JSON body of POST /list/create.
type CreateListRequest struct {
	Name string `json:"name"`
}

// Validate checks that the name is present.
func (r *CreateListRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.NewValidationError("name", msgRequired)
	}
	return nil
}

// UpdateListRequest is the JSON body of PATCH /list/{listId}.
// All fields are optional; nil means "do not change this field.".
type UpdateListRequest struct {
	Name     *string `json:"name,omitempty"`
	Owner    *string `json:"owner,omitempty"`
	Archived *bool   `json:"archived,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateListRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Owner != nil && !isUUID(*r.Owner) {
		fields["owner"] = msgInvalidUUID
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch maps the request to a list patch.
func (r *UpdateListRequest) ToPatch() list.Patch {
	return list.Patch{Name: r.Name, Owner: r.Owner, Archived: r.Archived}
}

// ACLRequest is the JSON body of PUT and DELETE /list/acl.
type ACLRequest struct {
	ListID string `json:"list_id"`
	UserID string `json:"user_id"`
}

// Validate checks that both ids are UUIDs.
func (r *ACLRequest) Validate() error {
	fields := make(map[string]string)

	if !isUUID(r.ListID) {
		fields["list_id"] = msgInvalidUUID
	}
	if !isUUID(r.UserID) {
		fields["user_id"] = msgInvalidUUID
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CreateItemRequest is the JSON body of POST /item/create.
type CreateItemRequest struct {
	ListID  string `json:"list_id"`
	Order   *int   `json:"order"`
	Content string `json:"content"`
}

// Validate checks that every field is present.
func (r *CreateItemRequest) Validate() error {
	fields := make(map[string]string)

	if !isUUID(r.ListID) {
		fields["list_id"] = msgInvalidUUID
	}
	if r.Order == nil {
		fields["order"] = msgRequired
	}
	if strings.TrimSpace(r.Content) == "" {
		fields["content"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateItemRequest is the JSON body of PATCH /item/{itemId}. A present
// is_done of false is applied, not ignored.
type UpdateItemRequest struct {
	Order   *int    `json:"order,omitempty"`
	Content *string `json:"content,omitempty"`
	IsDone  *bool   `json:"is_done,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateItemRequest) Validate() error {
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		return domain.NewValidationError("content", msgMustNotEmpty)
	}
	return nil
}

// ToPatch maps the request to an item patch.
func (r *UpdateItemRequest) ToPatch() list.ItemPatch {
	return list.ItemPatch{Order: r.Order, Content: r.Content, IsDone: r.IsDone}
}

func isUUID(s string) bool {
	return uuid.Validate(s) == nil
}

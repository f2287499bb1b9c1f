// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/ports"
)

// UserResponse is a user as exposed over HTTP. The password hash is never
// serialized.
type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name}
}

// ItemResponse represents a single list item in HTTP responses.
type ItemResponse struct {
	ID      string `json:"id"`
	Order   int    `json:"order"`
	Content string `json:"content"`
	IsDone  bool   `json:"is_done"`
}

// ToItemResponse converts a domain Item to an HTTP response DTO.
func ToItemResponse(it *list.Item) ItemResponse {
	return ItemResponse{
		ID:      it.ID,
		Order:   it.Order,
		Content: it.Content,
		IsDone:  it.IsDone,
	}
}

// ListResponse is the full list aggregate returned by every list and item
// mutation.
type ListResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Owner        string         `json:"owner"`
	Archived     bool           `json:"archived"`
	Items        []ItemResponse `json:"items"`
	InvitedUsers []string       `json:"invited_users"`
}

// ToListResponse converts a domain List to an HTTP response DTO. Items and
// invited users are always encoded as arrays, never null.
func ToListResponse(l *list.List) ListResponse {
	items := make([]ItemResponse, len(l.Items))
	for i := range l.Items {
		items[i] = ToItemResponse(&l.Items[i])
	}

	invited := make([]string, len(l.InvitedUsers))
	copy(invited, l.InvitedUsers)

	return ListResponse{
		ID:           l.ID,
		Name:         l.Name,
		Owner:        l.Owner,
		Archived:     l.Archived,
		Items:        items,
		InvitedUsers: invited,
	}
}

// ToListResponses converts a slice of domain Lists.
func ToListResponses(lists []list.List) []ListResponse {
	out := make([]ListResponse, len(lists))
	for i := range lists {
		out[i] = ToListResponse(&lists[i])
	}
	return out
}

// OverviewResponse is the body of GET /user/me.
type OverviewResponse struct {
	User         UserResponse   `json:"user"`
	Lists        []ListResponse `json:"lists"`
	InvitedLists []ListResponse `json:"invited_lists"`
}

// ToOverviewResponse converts an account overview to an HTTP response DTO.
func ToOverviewResponse(o *ports.Overview) OverviewResponse {
	return OverviewResponse{
		User:         ToUserResponse(o.User),
		Lists:        ToListResponses(o.Lists),
		InvitedLists: ToListResponses(o.InvitedLists),
	}
}

// HealthResponse is the body of the liveness and readiness endpoints. Checks
// maps a component name such as "postgres" or "redis-sessions" to "ok" or
// its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

package ports

import (
	"context"

	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
)

// AuthResult is a user together with the opaque session token issued for it.
type AuthResult struct {
	User  *user.User
	Token string
}

// AuthService defines the service port for registration and session handling.
type AuthService interface {
	// Register creates a user and issues a session.
	// Returns domain.ErrConflict if the name is taken.
	Register(ctx context.Context, name, password string) (*AuthResult, error)

	// Login verifies credentials and issues a session.
	// Returns domain.ErrNotFound for an unknown name and
	// domain.ErrUnauthorized for a wrong password.
	Login(ctx context.Context, name, password string) (*AuthResult, error)

	// Logout destroys the session behind token.
	Logout(ctx context.Context, token string) error

	// Authenticate resolves token to a user id.
	// Returns domain.ErrUnauthorized when the token is missing, unknown or expired.
	Authenticate(ctx context.Context, token string) (string, error)

	// EndAllSessions destroys every session of userID.
	EndAllSessions(ctx context.Context, userID string) error
}

// Overview is the caller's account together with the lists they can see.
type Overview struct {
	User         *user.User
	Lists        []list.List
	InvitedLists []list.List
}

// ProfileUpdate carries the optional fields of a profile change. Password is
// plaintext and hashed by the service.
type ProfileUpdate struct {
	Name     *string
	Password *string
}

// AccountService defines the service port for self-service account operations.
type AccountService interface {
	// Overview returns the user with owned and invited lists.
	Overview(ctx context.Context, userID string) (*Overview, error)

	// UpdateProfile applies the present fields of upd. passwordChanged
	// reports whether the caller must end the user's sessions.
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (u *user.User, passwordChanged bool, err error)

	// DeleteAccount deletes the user, the lists they own and their ACL
	// memberships.
	DeleteAccount(ctx context.Context, userID string) error
}

// ListService defines the service port for list aggregate operations. Every
// call is made on behalf of callerID and authorized against the loaded list.
// Mutations return the whole refreshed list.
type ListService interface {
	CreateList(ctx context.Context, callerID, name string) (*list.List, error)
	GetList(ctx context.Context, callerID, listID string) (*list.List, error)
	UpdateList(ctx context.Context, callerID, listID string, patch list.Patch) (*list.List, error)
	DeleteList(ctx context.Context, callerID, listID string) error

	InviteUser(ctx context.Context, callerID, listID, userID string) (*list.List, error)
	RemoveUser(ctx context.Context, callerID, listID, userID string) (*list.List, error)

	AddItem(ctx context.Context, callerID, listID string, order int, content string) (*list.List, error)
	// GetItem only checks that the item exists.
	GetItem(ctx context.Context, callerID, itemID string) (*list.Item, error)
	UpdateItem(ctx context.Context, callerID, itemID string, patch list.ItemPatch) (*list.List, error)
	DeleteItem(ctx context.Context, callerID, itemID string) (*list.List, error)
}

package ports

import (
	"context"

	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
)

// Store is the persistence port for users, lists, items and list ACLs.
// Every backend (document, relational, in-memory) satisfies the same contract:
//
//   - Absent entities are not errors. Lookups return a nil pointer, deletes
//     return false and list queries return an empty slice.
//   - Errors are reserved for storage failures. Duplicate user names wrap
//     domain.ErrConflict.
//   - Mutating list and item operations return the whole refreshed list.
//   - Deleting a user cascades to the lists it owns and its ACL memberships;
//     deleting a list cascades to its items and ACL entries.
//   - Items are returned sorted by Order, ties in insertion order.
type Store interface {
	HealthChecker

	CreateUser(ctx context.Context, name, passwordHash string) (*user.User, error)
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	GetUserByName(ctx context.Context, name string) (*user.User, error)
	UpdateUser(ctx context.Context, id string, patch user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)

	CreateList(ctx context.Context, name, ownerID string) (*list.List, error)
	GetListByID(ctx context.Context, id string) (*list.List, error)
	GetListByItemID(ctx context.Context, itemID string) (*list.List, error)
	// GetListsByUserID returns the lists owned by ownerID.
	GetListsByUserID(ctx context.Context, ownerID string) ([]list.List, error)
	// GetInvitedLists returns the lists whose ACL contains userID.
	GetInvitedLists(ctx context.Context, userID string) ([]list.List, error)
	// UpdateList merges the present fields of patch. A new owner is removed
	// from the ACL in the same operation.
	UpdateList(ctx context.Context, id string, patch list.Patch) (*list.List, error)
	DeleteList(ctx context.Context, id string) (bool, error)

	GetItemByID(ctx context.Context, itemID string) (*list.Item, error)
	// AddItem appends a new item with IsDone false and returns the list.
	AddItem(ctx context.Context, listID string, order int, content string) (*list.List, error)
	// UpdateItem merges the present fields of patch into the item and returns
	// its owning list.
	UpdateItem(ctx context.Context, itemID string, patch list.ItemPatch) (*list.List, error)
	DeleteItem(ctx context.Context, itemID string) (bool, error)

	// AddUserToList and RemoveUserFromList are idempotent.
	AddUserToList(ctx context.Context, listID, userID string) (*list.List, error)
	RemoveUserFromList(ctx context.Context, listID, userID string) (*list.List, error)

	// Close releases connections held by the backend.
	Close(ctx context.Context) error
}

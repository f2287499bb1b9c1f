// Package policy decides whether a caller may perform an operation on a list.
// Decisions are pure functions of the caller id, the loaded list aggregate and
// the operation; callers must load the list (and report not-found) first.
package policy

import (
	"fmt"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
)

// Operation describes a category of list operation for policy checks.
type Operation int

const (
	// OpUnspecified represents an invalid operation and is always denied.
	OpUnspecified Operation = iota
	// OpReadList represents reading a list aggregate.
	OpReadList
	// OpCreateItem represents adding an item to a list.
	OpCreateItem
	// OpUpdateItem represents patching an item.
	OpUpdateItem
	// OpDeleteItem represents deleting an item.
	OpDeleteItem
	// OpUpdateList represents patching list fields, archiving included.
	OpUpdateList
	// OpDeleteList represents deleting a list.
	OpDeleteList
	// OpInviteUser represents adding a user to the ACL.
	OpInviteUser
	// OpRemoveUser represents removing a user from the ACL.
	OpRemoveUser
)

// String implements fmt.Stringer.
func (op Operation) String() string {
	switch op {
	case OpReadList:
		return "read_list"
	case OpCreateItem:
		return "create_item"
	case OpUpdateItem:
		return "update_item"
	case OpDeleteItem:
		return "delete_item"
	case OpUpdateList:
		return "update_list"
	case OpDeleteList:
		return "delete_list"
	case OpInviteUser:
		return "invite_user"
	case OpRemoveUser:
		return "remove_user"
	default:
		return "unspecified"
	}
}

// Role is the relationship between a caller and a list.
type Role int

const (
	RoleNone Role = iota
	RoleCollaborator
	RoleOwner
)

// RoleOf returns the caller's role on l.
func RoleOf(callerID string, l *list.List) Role {
	switch {
	case callerID == "":
		return RoleNone
	case l.Owner == callerID:
		return RoleOwner
	case l.IsInvited(callerID):
		return RoleCollaborator
	default:
		return RoleNone
	}
}

// Authorize returns nil when callerID may perform op on l. targetUserID is
// only consulted by the ACL operations. Denials wrap domain.ErrForbidden;
// ACL requests that name an invalid target return a *domain.ValidationError.
func Authorize(callerID string, l *list.List, op Operation, targetUserID string) error {
	role := RoleOf(callerID, l)

	switch op {
	case OpReadList, OpCreateItem, OpUpdateItem, OpDeleteItem:
		if role == RoleNone {
			return deny(op, "caller is neither owner nor invited")
		}
		return nil

	case OpUpdateList, OpDeleteList:
		if role != RoleOwner {
			return deny(op, "only the owner may modify the list")
		}
		return nil

	case OpInviteUser:
		if role != RoleOwner {
			return deny(op, "only the owner may invite users")
		}
		if targetUserID == l.Owner {
			return domain.NewValidationError("user_id", "owner cannot be invited to their own list")
		}
		return nil

	case OpRemoveUser:
		if role != RoleOwner && targetUserID != callerID {
			return deny(op, "only the owner may remove other users")
		}
		if targetUserID == l.Owner {
			return domain.NewValidationError("user_id", "owner cannot be removed from their own list")
		}
		return nil

	default:
		return deny(op, "unknown operation")
	}
}

func deny(op Operation, reason string) error {
	return fmt.Errorf("%s: %s: %w", op, reason, domain.ErrForbidden)
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/policy"
	"github.com/arimodu/shopper/internal/ports"
)

// Compile-time check that ListService implements ports.ListService.
var _ ports.ListService = (*ListService)(nil)

// ListService implements ports.ListService. Every operation loads the list
// first (absent lists are domain.ErrNotFound), authorizes the caller against
// it and only then mutates storage. Mutations return the refreshed aggregate.
type ListService struct {
	store  ports.Store
	logger *slog.Logger
}

// NewListService creates a ListService backed by store.
func NewListService(store ports.Store, logger *slog.Logger) *ListService {
	return &ListService{store: store, logger: orDiscard(logger)}
}

// CreateList creates an empty list owned by callerID.
func (s *ListService) CreateList(ctx context.Context, callerID, name string) (*list.List, error) {
	s.logger.InfoContext(ctx, "creating list", slog.String("owner", callerID))

	if err := list.ValidateName(name); err != nil {
		return nil, err
	}

	l, err := s.store.CreateList(ctx, name, callerID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "CreateList", err, slog.String("owner", callerID))
	}
	return l, nil
}

// GetList returns the list if the caller owns it or is invited.
func (s *ListService) GetList(ctx context.Context, callerID, listID string) (*list.List, error) {
	return s.authorized(ctx, "GetList", callerID, listID, policy.OpReadList, "")
}

// UpdateList applies an owner-only partial update. A new owner must be an
// existing user; they leave the ACL as part of the same storage update.
func (s *ListService) UpdateList(ctx context.Context, callerID, listID string, patch list.Patch) (*list.List, error) {
	s.logger.InfoContext(ctx, "updating list", slog.String("list_id", listID))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	l, err := s.authorized(ctx, "UpdateList", callerID, listID, policy.OpUpdateList, "")
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return l, nil
	}

	if patch.Owner != nil && *patch.Owner != l.Owner {
		if err := s.requireUser(ctx, "UpdateList", "owner", *patch.Owner); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateList(ctx, listID, patch)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "UpdateList", err, slog.String("list_id", listID))
	}
	if updated == nil {
		return nil, notFound("list", listID)
	}
	return updated, nil
}

// DeleteList removes an owned list with its items and ACL.
func (s *ListService) DeleteList(ctx context.Context, callerID, listID string) error {
	s.logger.InfoContext(ctx, "deleting list", slog.String("list_id", listID))

	if _, err := s.authorized(ctx, "DeleteList", callerID, listID, policy.OpDeleteList, ""); err != nil {
		return err
	}

	deleted, err := s.store.DeleteList(ctx, listID)
	if err != nil {
		return storageFailure(ctx, s.logger, "DeleteList", err, slog.String("list_id", listID))
	}
	if !deleted {
		return notFound("list", listID)
	}
	return nil
}

// InviteUser adds userID to the ACL. Inviting an existing collaborator is a
// no-op.
func (s *ListService) InviteUser(ctx context.Context, callerID, listID, userID string) (*list.List, error) {
	s.logger.InfoContext(ctx, "inviting user",
		slog.String("list_id", listID),
		slog.String("user_id", userID),
	)

	if _, err := s.authorized(ctx, "InviteUser", callerID, listID, policy.OpInviteUser, userID); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, "InviteUser", "user_id", userID); err != nil {
		return nil, err
	}

	l, err := s.store.AddUserToList(ctx, listID, userID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "InviteUser", err, slog.String("list_id", listID))
	}
	if l == nil {
		return nil, notFound("list", listID)
	}
	return l, nil
}

// RemoveUser removes userID from the ACL. The owner may remove anyone else;
// a collaborator may remove only themself. Removing an absent user is a no-op.
func (s *ListService) RemoveUser(ctx context.Context, callerID, listID, userID string) (*list.List, error) {
	s.logger.InfoContext(ctx, "removing user",
		slog.String("list_id", listID),
		slog.String("user_id", userID),
	)

	if _, err := s.authorized(ctx, "RemoveUser", callerID, listID, policy.OpRemoveUser, userID); err != nil {
		return nil, err
	}

	l, err := s.store.RemoveUserFromList(ctx, listID, userID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "RemoveUser", err, slog.String("list_id", listID))
	}
	if l == nil {
		return nil, notFound("list", listID)
	}
	return l, nil
}

// AddItem appends an item to a list the caller can edit.
func (s *ListService) AddItem(ctx context.Context, callerID, listID string, order int, content string) (*list.List, error) {
	s.logger.InfoContext(ctx, "adding item", slog.String("list_id", listID))

	if err := list.ValidateContent(content); err != nil {
		return nil, err
	}
	if _, err := s.authorized(ctx, "AddItem", callerID, listID, policy.OpCreateItem, ""); err != nil {
		return nil, err
	}

	l, err := s.store.AddItem(ctx, listID, order, content)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "AddItem", err, slog.String("list_id", listID))
	}
	if l == nil {
		return nil, notFound("list", listID)
	}
	return l, nil
}

// GetItem returns the item by id. Item ids are random UUIDs, so this read is
// not checked against the owning list's ACL.
func (s *ListService) GetItem(ctx context.Context, _ string, itemID string) (*list.Item, error) {
	it, err := s.store.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "GetItem", err, slog.String("item_id", itemID))
	}
	if it == nil {
		return nil, notFound("item", itemID)
	}
	return it, nil
}

// UpdateItem resolves the item's list, authorizes the caller and merges the
// present fields of patch.
func (s *ListService) UpdateItem(ctx context.Context, callerID, itemID string, patch list.ItemPatch) (*list.List, error) {
	s.logger.InfoContext(ctx, "updating item", slog.String("item_id", itemID))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	l, err := s.authorizedByItem(ctx, "UpdateItem", callerID, itemID, policy.OpUpdateItem)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return l, nil
	}

	updated, err := s.store.UpdateItem(ctx, itemID, patch)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "UpdateItem", err, slog.String("item_id", itemID))
	}
	if updated == nil {
		return nil, notFound("item", itemID)
	}
	return updated, nil
}

// DeleteItem removes one item and returns the refreshed list. Sibling items
// keep their order values.
func (s *ListService) DeleteItem(ctx context.Context, callerID, itemID string) (*list.List, error) {
	s.logger.InfoContext(ctx, "deleting item", slog.String("item_id", itemID))

	l, err := s.authorizedByItem(ctx, "DeleteItem", callerID, itemID, policy.OpDeleteItem)
	if err != nil {
		return nil, err
	}

	deleted, err := s.store.DeleteItem(ctx, itemID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "DeleteItem", err, slog.String("item_id", itemID))
	}
	if !deleted {
		return nil, notFound("item", itemID)
	}

	refreshed, err := s.store.GetListByID(ctx, l.ID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "DeleteItem", err, slog.String("list_id", l.ID))
	}
	if refreshed == nil {
		return nil, notFound("list", l.ID)
	}
	return refreshed, nil
}

// authorized loads the list and applies the policy for op.
func (s *ListService) authorized(ctx context.Context, opName, callerID, listID string, op policy.Operation, target string) (*list.List, error) {
	l, err := s.store.GetListByID(ctx, listID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, opName, err, slog.String("list_id", listID))
	}
	if l == nil {
		return nil, notFound("list", listID)
	}
	return l, s.authorize(ctx, callerID, l, op, target)
}

// authorizedByItem resolves the list that owns itemID and applies the policy.
func (s *ListService) authorizedByItem(ctx context.Context, opName, callerID, itemID string, op policy.Operation) (*list.List, error) {
	l, err := s.store.GetListByItemID(ctx, itemID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, opName, err, slog.String("item_id", itemID))
	}
	if l == nil {
		return nil, notFound("item", itemID)
	}
	return l, s.authorize(ctx, callerID, l, op, "")
}

func (s *ListService) authorize(ctx context.Context, callerID string, l *list.List, op policy.Operation, target string) error {
	if err := policy.Authorize(callerID, l, op, target); err != nil {
		s.logger.WarnContext(ctx, "list operation denied",
			slog.String("operation", op.String()),
			slog.String("list_id", l.ID),
			slog.String("caller_id", callerID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// requireUser reports a validation error on field when userID is unknown.
func (s *ListService) requireUser(ctx context.Context, opName, field, userID string) error {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return storageFailure(ctx, s.logger, opName, err, slog.String("user_id", userID))
	}
	if u == nil {
		return domain.NewValidationError(field, fmt.Sprintf("user %q does not exist", userID))
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/arimodu/shopper/internal/app/fanout"
	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/ports"
)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

// AccountService implements ports.AccountService.
type AccountService struct {
	store  ports.Store
	hasher ports.PasswordHasher
	logger *slog.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(store ports.Store, hasher ports.PasswordHasher, logger *slog.Logger) *AccountService {
	return &AccountService{store: store, hasher: hasher, logger: orDiscard(logger)}
}

// Overview returns the user together with the lists they own and the lists
// they were invited to. The two list queries run concurrently.
func (s *AccountService) Overview(ctx context.Context, userID string) (*ports.Overview, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "Overview", err, slog.String("user_id", userID))
	}
	if u == nil {
		return nil, notFound("user", userID)
	}

	lookup := func(name string, run func(context.Context, string) ([]list.List, error)) fanout.Task[[]list.List] {
		return fanout.Task[[]list.List]{Name: name, Run: func(ctx context.Context) ([]list.List, error) {
			return run(ctx, userID)
		}}
	}
	results, err := fanout.All(ctx,
		lookup("GetListsByUserID", s.store.GetListsByUserID),
		lookup("GetInvitedLists", s.store.GetInvitedLists),
	)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "Overview", err, slog.String("user_id", userID))
	}

	return &ports.Overview{
		User:         u,
		Lists:        nonNil(results[0]),
		InvitedLists: nonNil(results[1]),
	}, nil
}

// UpdateProfile validates and applies the present fields of upd. A new
// password is hashed before it reaches storage.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, upd ports.ProfileUpdate) (*user.User, bool, error) {
	s.logger.InfoContext(ctx, "updating profile", slog.String("user_id", userID))

	ve := &domain.ValidationError{Fields: map[string]string{}}
	if upd.Name != nil {
		mergeFields(ve, user.ValidateName(*upd.Name))
	}
	if upd.Password != nil {
		mergeFields(ve, user.ValidatePassword(*upd.Password))
	}
	if len(ve.Fields) > 0 {
		return nil, false, ve
	}

	patch := user.Patch{Name: upd.Name}
	if upd.Password != nil {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to hash password",
				slog.String("operation", "UpdateProfile"),
				slog.String("user_id", userID),
				slog.Any("error", err),
			)
			return nil, false, fmt.Errorf("hashing password: %w", domain.ErrInternal)
		}
		patch.PasswordHash = &hash
	}

	if patch.IsEmpty() {
		u, err := s.store.GetUserByID(ctx, userID)
		if err != nil {
			return nil, false, storageFailure(ctx, s.logger, "UpdateProfile", err, slog.String("user_id", userID))
		}
		if u == nil {
			return nil, false, notFound("user", userID)
		}
		return u, false, nil
	}

	u, err := s.store.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, false, storageFailure(ctx, s.logger, "UpdateProfile", err, slog.String("user_id", userID))
	}
	if u == nil {
		return nil, false, notFound("user", userID)
	}
	return u, patch.PasswordHash != nil, nil
}

// DeleteAccount deletes the user. Storage cascades to owned lists and ACL
// memberships.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	s.logger.InfoContext(ctx, "deleting account", slog.String("user_id", userID))

	deleted, err := s.store.DeleteUser(ctx, userID)
	if err != nil {
		return storageFailure(ctx, s.logger, "DeleteAccount", err, slog.String("user_id", userID))
	}
	if !deleted {
		return notFound("user", userID)
	}
	return nil
}

func nonNil(lists []list.List) []list.List {
	if lists == nil {
		return []list.List{}
	}
	return lists
}


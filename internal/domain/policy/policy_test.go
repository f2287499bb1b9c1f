package policy

import (
	"errors"
	"testing"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
)

const (
	owner   = "owner-id"
	invited = "invited-id"
	outside = "outsider-id"
)

func testList() *list.List {
	return &list.List{
		ID:           "list-id",
		Name:         "Groceries",
		Owner:        owner,
		InvitedUsers: []string{invited},
	}
}

func TestRoleOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		caller string
		want   Role
	}{
		{owner, RoleOwner},
		{invited, RoleCollaborator},
		{outside, RoleNone},
		{"", RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.caller, func(t *testing.T) {
			t.Parallel()
			if got := RoleOf(tt.caller, testList()); got != tt.want {
				t.Errorf("RoleOf(%q) = %v, want %v", tt.caller, got, tt.want)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		caller  string
		op      Operation
		target  string
		wantErr error
	}{
		// Read and item operations: owner or invited.
		{"owner reads", owner, OpReadList, "", nil},
		{"invited reads", invited, OpReadList, "", nil},
		{"outsider reads", outside, OpReadList, "", domain.ErrForbidden},
		{"invited creates item", invited, OpCreateItem, "", nil},
		{"outsider creates item", outside, OpCreateItem, "", domain.ErrForbidden},
		{"invited updates item", invited, OpUpdateItem, "", nil},
		{"outsider updates item", outside, OpUpdateItem, "", domain.ErrForbidden},
		{"owner deletes item", owner, OpDeleteItem, "", nil},
		{"outsider deletes item", outside, OpDeleteItem, "", domain.ErrForbidden},

		// List mutations: owner only.
		{"owner updates list", owner, OpUpdateList, "", nil},
		{"invited updates list", invited, OpUpdateList, "", domain.ErrForbidden},
		{"owner deletes list", owner, OpDeleteList, "", nil},
		{"invited deletes list", invited, OpDeleteList, "", domain.ErrForbidden},

		// ACL add: owner only, never themself.
		{"owner invites other", owner, OpInviteUser, outside, nil},
		{"owner invites self", owner, OpInviteUser, owner, domain.ErrValidation},
		{"invited invites other", invited, OpInviteUser, outside, domain.ErrForbidden},

		// ACL remove: owner, or target removing themself; never the owner.
		{"owner removes invited", owner, OpRemoveUser, invited, nil},
		{"invited removes self", invited, OpRemoveUser, invited, nil},
		{"invited removes owner", invited, OpRemoveUser, owner, domain.ErrForbidden},
		{"owner removes self", owner, OpRemoveUser, owner, domain.ErrValidation},
		{"outsider removes invited", outside, OpRemoveUser, invited, domain.ErrForbidden},
		{"outsider removes absent self", outside, OpRemoveUser, outside, nil},

		{"unspecified op denied", owner, OpUnspecified, "", domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Authorize(tt.caller, testList(), tt.op, tt.target)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Authorize() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Authorize() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOperation_String(t *testing.T) {
	t.Parallel()

	if got := OpInviteUser.String(); got != "invite_user" {
		t.Errorf("OpInviteUser.String() = %q", got)
	}
	if got := Operation(99).String(); got != "unspecified" {
		t.Errorf("Operation(99).String() = %q", got)
	}
}

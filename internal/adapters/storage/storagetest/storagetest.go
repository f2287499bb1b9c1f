// Package storagetest holds the behavioral contract every ports.Store backend
// must satisfy. Backend packages call Run from their own tests with a factory
// that returns an empty store.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/ports"
)

// Factory returns a store with no users or lists. It should register any
// cleanup on t.
type Factory func(t *testing.T) ports.Store

// Run executes the contract suite. Subtests are not parallel because some
// backends share one database between factory calls.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s ports.Store)
	}{
		{"CreateUserAndLookup", testCreateUserAndLookup},
		{"DuplicateUserNameConflicts", testDuplicateUserName},
		{"UpdateUserMergesFields", testUpdateUser},
		{"AbsentEntitiesAreNotErrors", testAbsent},
		{"CreateListIsEmpty", testCreateList},
		{"ItemsSortedWithStableTies", testItemOrdering},
		{"UpdateItemPartial", testUpdateItemPartial},
		{"ItemOrderIsSixtyFourBit", testWideItemOrder},
		{"DeleteItemLeavesSiblings", testDeleteItem},
		{"UpdateListPartial", testUpdateListPartial},
		{"OwnerReassignmentLeavesACL", testOwnerReassignment},
		{"ACLIsIdempotent", testACLIdempotent},
		{"ListQueries", testListQueries},
		{"DeleteListCascades", testDeleteListCascades},
		{"DeleteUserCascades", testDeleteUserCascades},
		{"HealthCheck", testHealthCheck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

// uniqueName keeps names distinct across subtests that share a database.
func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func mustUser(t *testing.T, s ports.Store, prefix string) *user.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), uniqueName(prefix), "hash-"+prefix)
	require.NoError(t, err)
	require.NotNil(t, u)
	return u
}

func mustList(t *testing.T, s ports.Store, name, ownerID string) *list.List {
	t.Helper()
	l, err := s.CreateList(context.Background(), name, ownerID)
	require.NoError(t, err)
	require.NotNil(t, l)
	return l
}

func ptr[T any](v T) *T { return &v }

func contents(l *list.List) []string {
	out := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		out = append(out, it.Content)
	}
	return out
}

func testCreateUserAndLookup(t *testing.T, s ports.Store) {
	ctx := context.Background()
	name := uniqueName("alice")

	created, err := s.CreateUser(ctx, name, "hash")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, name, created.Name)
	require.Equal(t, "hash", created.PasswordHash)

	byID, err := s.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, byID)

	byName, err := s.GetUserByName(ctx, name)
	require.NoError(t, err)
	require.Equal(t, created, byName)
}

func testDuplicateUserName(t *testing.T, s ports.Store) {
	ctx := context.Background()
	name := uniqueName("dup")

	_, err := s.CreateUser(ctx, name, "a")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, name, "b")
	require.ErrorIs(t, err, domain.ErrConflict)

	other := mustUser(t, s, "other")
	_, err = s.UpdateUser(ctx, other.ID, user.Patch{Name: ptr(name)})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func testUpdateUser(t *testing.T, s ports.Store) {
	ctx := context.Background()
	u := mustUser(t, s, "bob")

	newName := uniqueName("robert")
	got, err := s.UpdateUser(ctx, u.ID, user.Patch{Name: ptr(newName)})
	require.NoError(t, err)
	require.Equal(t, newName, got.Name)
	require.Equal(t, u.PasswordHash, got.PasswordHash)

	got, err = s.UpdateUser(ctx, u.ID, user.Patch{PasswordHash: ptr("new-hash")})
	require.NoError(t, err)
	require.Equal(t, newName, got.Name)
	require.Equal(t, "new-hash", got.PasswordHash)

	old, err := s.GetUserByName(ctx, u.Name)
	require.NoError(t, err)
	require.Nil(t, old)
}

func testAbsent(t *testing.T, s ports.Store) {
	ctx := context.Background()
	missing := uuid.NewString()

	u, err := s.GetUserByID(ctx, missing)
	require.NoError(t, err)
	require.Nil(t, u)

	u, err = s.GetUserByName(ctx, uniqueName("nobody"))
	require.NoError(t, err)
	require.Nil(t, u)

	u, err = s.UpdateUser(ctx, missing, user.Patch{Name: ptr(uniqueName("x"))})
	require.NoError(t, err)
	require.Nil(t, u)

	ok, err := s.DeleteUser(ctx, missing)
	require.NoError(t, err)
	require.False(t, ok)

	l, err := s.GetListByID(ctx, missing)
	require.NoError(t, err)
	require.Nil(t, l)

	l, err = s.GetListByItemID(ctx, missing)
	require.NoError(t, err)
	require.Nil(t, l)

	l, err = s.UpdateList(ctx, missing, list.Patch{Name: ptr("x")})
	require.NoError(t, err)
	require.Nil(t, l)

	ok, err = s.DeleteList(ctx, missing)
	require.NoError(t, err)
	require.False(t, ok)

	it, err := s.GetItemByID(ctx, missing)
	require.NoError(t, err)
	require.Nil(t, it)

	l, err = s.AddItem(ctx, missing, 1, "milk")
	require.NoError(t, err)
	require.Nil(t, l)

	l, err = s.UpdateItem(ctx, missing, list.ItemPatch{IsDone: ptr(true)})
	require.NoError(t, err)
	require.Nil(t, l)

	ok, err = s.DeleteItem(ctx, missing)
	require.NoError(t, err)
	require.False(t, ok)

	l, err = s.RemoveUserFromList(ctx, missing, missing)
	require.NoError(t, err)
	require.Nil(t, l)

	lists, err := s.GetListsByUserID(ctx, missing)
	require.NoError(t, err)
	require.NotNil(t, lists)
	require.Empty(t, lists)

	lists, err = s.GetInvitedLists(ctx, missing)
	require.NoError(t, err)
	require.NotNil(t, lists)
	require.Empty(t, lists)
}

func testCreateList(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")

	l := mustList(t, s, "Groceries", owner.ID)
	require.NotEmpty(t, l.ID)
	require.Equal(t, "Groceries", l.Name)
	require.Equal(t, owner.ID, l.Owner)
	require.False(t, l.Archived)
	require.NotNil(t, l.Items)
	require.Empty(t, l.Items)
	require.NotNil(t, l.InvitedUsers)
	require.Empty(t, l.InvitedUsers)

	got, err := s.GetListByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, l, got)
}

func testItemOrdering(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")
	l := mustList(t, s, "Groceries", owner.ID)

	var err error
	for _, it := range []struct {
		order   int
		content string
	}{
		{3, "eggs"},
		{1, "milk"},
		{2, "bread"},
		{1, "butter"},
	} {
		l, err = s.AddItem(ctx, l.ID, it.order, it.content)
		require.NoError(t, err)
	}

	require.Equal(t, []string{"milk", "butter", "bread", "eggs"}, contents(l))
	for _, it := range l.Items {
		require.False(t, it.IsDone)
		require.NotEmpty(t, it.ID)
	}

	got, err := s.GetListByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, contents(l), contents(got))
}

func testUpdateItemPartial(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")
	l := mustList(t, s, "Groceries", owner.ID)

	l, err := s.AddItem(ctx, l.ID, 1, "milk")
	require.NoError(t, err)
	itemID := l.Items[0].ID

	l, err = s.UpdateItem(ctx, itemID, list.ItemPatch{IsDone: ptr(true)})
	require.NoError(t, err)
	require.Len(t, l.Items, 1)
	require.Equal(t, list.Item{ID: itemID, Order: 1, Content: "milk", IsDone: true}, l.Items[0])

	l, err = s.UpdateItem(ctx, itemID, list.ItemPatch{IsDone: ptr(false), Order: ptr(0)})
	require.NoError(t, err)
	require.Equal(t, list.Item{ID: itemID, Order: 0, Content: "milk", IsDone: false}, l.Items[0])

	it, err := s.GetItemByID(ctx, itemID)
	require.NoError(t, err)
	require.Equal(t, l.Items[0], *it)

	byItem, err := s.GetListByItemID(ctx, itemID)
	require.NoError(t, err)
	require.Equal(t, l.ID, byItem.ID)
}

func testWideItemOrder(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")
	l := mustList(t, s, "Groceries", owner.ID)

	l, err := s.AddItem(ctx, l.ID, 1<<40, "milk")
	require.NoError(t, err)
	l, err = s.AddItem(ctx, l.ID, -(1 << 40), "bread")
	require.NoError(t, err)
	require.Equal(t, []string{"bread", "milk"}, contents(l))

	milkID := l.Items[1].ID
	require.Equal(t, 1<<40, l.Items[1].Order)

	l, err = s.UpdateItem(ctx, milkID, list.ItemPatch{Order: ptr(1 << 41)})
	require.NoError(t, err)
	require.Equal(t, 1<<41, l.Items[1].Order)

	it, err := s.GetItemByID(ctx, milkID)
	require.NoError(t, err)
	require.Equal(t, 1<<41, it.Order)
}

func testDeleteItem(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")
	l := mustList(t, s, "Groceries", owner.ID)

	l, err := s.AddItem(ctx, l.ID, 1, "milk")
	require.NoError(t, err)
	l, err = s.AddItem(ctx, l.ID, 2, "bread")
	require.NoError(t, err)

	ok, err := s.DeleteItem(ctx, l.Items[0].ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.GetListByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"bread"}, contents(got))

	ok, err = s.DeleteItem(ctx, l.Items[0].ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func testUpdateListPartial(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")
	l := mustList(t, s, "Groceries", owner.ID)

	got, err := s.UpdateList(ctx, l.ID, list.Patch{Archived: ptr(true)})
	require.NoError(t, err)
	require.True(t, got.Archived)
	require.Equal(t, "Groceries", got.Name)

	got, err = s.UpdateList(ctx, l.ID, list.Patch{Name: ptr("Weekly shop")})
	require.NoError(t, err)
	require.True(t, got.Archived)
	require.Equal(t, "Weekly shop", got.Name)

	got, err = s.UpdateList(ctx, l.ID, list.Patch{Archived: ptr(false)})
	require.NoError(t, err)
	require.False(t, got.Archived)
}

func testOwnerReassignment(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")
	guest := mustUser(t, s, "guest")
	l := mustList(t, s, "Groceries", owner.ID)

	_, err := s.AddUserToList(ctx, l.ID, guest.ID)
	require.NoError(t, err)

	got, err := s.UpdateList(ctx, l.ID, list.Patch{Owner: ptr(guest.ID)})
	require.NoError(t, err)
	require.Equal(t, guest.ID, got.Owner)
	require.NotContains(t, got.InvitedUsers, guest.ID)

	reloaded, err := s.GetListByID(ctx, l.ID)
	require.NoError(t, err)
	require.Equal(t, got, reloaded)
}

func testACLIdempotent(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")
	guest := mustUser(t, s, "guest")
	l := mustList(t, s, "Groceries", owner.ID)

	first, err := s.AddUserToList(ctx, l.ID, guest.ID)
	require.NoError(t, err)
	second, err := s.AddUserToList(ctx, l.ID, guest.ID)
	require.NoError(t, err)
	require.Equal(t, []string{guest.ID}, first.InvitedUsers)
	require.Equal(t, first, second)

	removed, err := s.RemoveUserFromList(ctx, l.ID, guest.ID)
	require.NoError(t, err)
	require.Empty(t, removed.InvitedUsers)

	again, err := s.RemoveUserFromList(ctx, l.ID, guest.ID)
	require.NoError(t, err)
	require.Equal(t, removed, again)
}

func testListQueries(t *testing.T, s ports.Store) {
	ctx := context.Background()
	alice := mustUser(t, s, "alice")
	bob := mustUser(t, s, "bob")

	a1 := mustList(t, s, "A1", alice.ID)
	a2 := mustList(t, s, "A2", alice.ID)
	b1 := mustList(t, s, "B1", bob.ID)

	_, err := s.AddUserToList(ctx, b1.ID, alice.ID)
	require.NoError(t, err)

	owned, err := s.GetListsByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{a1.ID, a2.ID}, ids(owned))

	invited, err := s.GetInvitedLists(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []string{b1.ID}, ids(invited))
	require.Equal(t, []string{alice.ID}, invited[0].InvitedUsers)

	invited, err = s.GetInvitedLists(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, invited)
}

func testDeleteListCascades(t *testing.T, s ports.Store) {
	ctx := context.Background()
	owner := mustUser(t, s, "owner")
	guest := mustUser(t, s, "guest")
	l := mustList(t, s, "Groceries", owner.ID)

	l, err := s.AddItem(ctx, l.ID, 1, "milk")
	require.NoError(t, err)
	itemID := l.Items[0].ID
	_, err = s.AddUserToList(ctx, l.ID, guest.ID)
	require.NoError(t, err)

	ok, err := s.DeleteList(ctx, l.ID)
	require.NoError(t, err)
	require.True(t, ok)

	it, err := s.GetItemByID(ctx, itemID)
	require.NoError(t, err)
	require.Nil(t, it)

	byItem, err := s.GetListByItemID(ctx, itemID)
	require.NoError(t, err)
	require.Nil(t, byItem)

	invited, err := s.GetInvitedLists(ctx, guest.ID)
	require.NoError(t, err)
	require.Empty(t, invited)
}

func testDeleteUserCascades(t *testing.T, s ports.Store) {
	ctx := context.Background()
	alice := mustUser(t, s, "alice")
	bob := mustUser(t, s, "bob")

	owned := mustList(t, s, "Mine", alice.ID)
	owned, err := s.AddItem(ctx, owned.ID, 1, "milk")
	require.NoError(t, err)
	shared := mustList(t, s, "Shared", bob.ID)
	_, err = s.AddUserToList(ctx, shared.ID, alice.ID)
	require.NoError(t, err)

	ok, err := s.DeleteUser(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, ok)

	u, err := s.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Nil(t, u)

	gone, err := s.GetListByID(ctx, owned.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	it, err := s.GetItemByID(ctx, owned.Items[0].ID)
	require.NoError(t, err)
	require.Nil(t, it)

	kept, err := s.GetListByID(ctx, shared.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	require.Empty(t, kept.InvitedUsers)

	again, err := s.CreateUser(ctx, alice.Name, "hash")
	require.NoError(t, err, "name must be free after deletion")
	require.NotEqual(t, alice.ID, again.ID)
}

func testHealthCheck(t *testing.T, s ports.Store) {
	require.NotEmpty(t, s.Name())
	require.NoError(t, s.HealthCheck(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.HealthCheck(ctx)
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrNotFound))
}

func ids(lists []list.List) []string {
	out := make([]string, 0, len(lists))
	for _, l := range lists {
		out = append(out, l.ID)
	}
	return out
}

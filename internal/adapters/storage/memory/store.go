// Package memory provides an in-process ports.Store backed by maps. It keeps
// the same contract as the database backends and is used by the local profile
// and by tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/ports"
)

var _ ports.Store = (*Store)(nil)

type listRecord struct {
	seq  uint64
	list *list.List
}

// Store is a mutex-guarded in-memory store. Items are kept in insertion order
// and sorted on the way out.
type Store struct {
	mu sync.RWMutex

	users     map[string]*user.User
	userNames map[string]string // name -> id
	lists     map[string]*listRecord
	itemIndex map[string]string // item id -> list id
	seq       uint64
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:     make(map[string]*user.User),
		userNames: make(map[string]string),
		lists:     make(map[string]*listRecord),
		itemIndex: make(map[string]string),
	}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

// HealthCheck implements ports.HealthChecker. The memory store is always
// healthy while the context is live.
func (s *Store) HealthCheck(ctx context.Context) error { return ctx.Err() }

// Close implements ports.Store.
func (s *Store) Close(context.Context) error { return nil }

func (s *Store) CreateUser(_ context.Context, name, passwordHash string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userNames[name]; taken {
		return nil, fmt.Errorf("user name %q: %w", name, domain.ErrConflict)
	}

	u := &user.User{ID: uuid.NewString(), Name: name, PasswordHash: passwordHash}
	s.users[u.ID] = u
	s.userNames[name] = u.ID

	out := *u
	return &out, nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (s *Store) GetUserByName(_ context.Context, name string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userNames[name]
	if !ok {
		return nil, nil
	}
	out := *s.users[id]
	return &out, nil
}

func (s *Store) UpdateUser(_ context.Context, id string, patch user.Patch) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil && *patch.Name != u.Name {
		if _, taken := s.userNames[*patch.Name]; taken {
			return nil, fmt.Errorf("user name %q: %w", *patch.Name, domain.ErrConflict)
		}
		delete(s.userNames, u.Name)
		s.userNames[*patch.Name] = id
	}
	patch.Apply(u)

	out := *u
	return &out, nil
}

func (s *Store) DeleteUser(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false, nil
	}

	for listID, rec := range s.lists {
		if rec.list.Owner == id {
			s.dropListLocked(listID)
			continue
		}
		rec.list.InvitedUsers = slices.DeleteFunc(rec.list.InvitedUsers, func(v string) bool { return v == id })
	}

	delete(s.userNames, u.Name)
	delete(s.users, id)
	return true, nil
}

func (s *Store) CreateList(_ context.Context, name, ownerID string) (*list.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[ownerID]; !ok {
		return nil, fmt.Errorf("list owner %q: %w", ownerID, domain.ErrNotFound)
	}

	s.seq++
	l := &list.List{
		ID:           uuid.NewString(),
		Name:         name,
		Owner:        ownerID,
		Items:        []list.Item{},
		InvitedUsers: []string{},
	}
	s.lists[l.ID] = &listRecord{seq: s.seq, list: l}
	return snapshot(l), nil
}

func (s *Store) GetListByID(_ context.Context, id string) (*list.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.lists[id]
	if !ok {
		return nil, nil
	}
	return snapshot(rec.list), nil
}

func (s *Store) GetListByItemID(_ context.Context, itemID string) (*list.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listID, ok := s.itemIndex[itemID]
	if !ok {
		return nil, nil
	}
	return snapshot(s.lists[listID].list), nil
}

func (s *Store) GetListsByUserID(_ context.Context, ownerID string) ([]list.List, error) {
	return s.collect(func(l *list.List) bool { return l.Owner == ownerID }), nil
}

func (s *Store) GetInvitedLists(_ context.Context, userID string) ([]list.List, error) {
	return s.collect(func(l *list.List) bool { return l.IsInvited(userID) }), nil
}

func (s *Store) UpdateList(_ context.Context, id string, patch list.Patch) (*list.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lists[id]
	if !ok {
		return nil, nil
	}
	if patch.Owner != nil {
		if _, ok := s.users[*patch.Owner]; !ok {
			return nil, fmt.Errorf("list owner %q: %w", *patch.Owner, domain.ErrNotFound)
		}
	}
	patch.Apply(rec.list)
	return snapshot(rec.list), nil
}

func (s *Store) DeleteList(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return false, nil
	}
	s.dropListLocked(id)
	return true, nil
}

func (s *Store) GetItemByID(_ context.Context, itemID string) (*list.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listID, ok := s.itemIndex[itemID]
	if !ok {
		return nil, nil
	}
	it := s.lists[listID].list.FindItem(itemID)
	if it == nil {
		return nil, nil
	}
	out := *it
	return &out, nil
}

func (s *Store) AddItem(_ context.Context, listID string, order int, content string) (*list.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lists[listID]
	if !ok {
		return nil, nil
	}
	it := list.Item{ID: uuid.NewString(), Order: order, Content: content}
	rec.list.Items = append(rec.list.Items, it)
	s.itemIndex[it.ID] = listID
	return snapshot(rec.list), nil
}

func (s *Store) UpdateItem(_ context.Context, itemID string, patch list.ItemPatch) (*list.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listID, ok := s.itemIndex[itemID]
	if !ok {
		return nil, nil
	}
	l := s.lists[listID].list
	patch.Apply(l.FindItem(itemID))
	return snapshot(l), nil
}

func (s *Store) DeleteItem(_ context.Context, itemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listID, ok := s.itemIndex[itemID]
	if !ok {
		return false, nil
	}
	l := s.lists[listID].list
	l.Items = slices.DeleteFunc(l.Items, func(it list.Item) bool { return it.ID == itemID })
	delete(s.itemIndex, itemID)
	return true, nil
}

func (s *Store) AddUserToList(_ context.Context, listID, userID string) (*list.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lists[listID]
	if !ok {
		return nil, nil
	}
	if _, ok := s.users[userID]; !ok {
		return nil, fmt.Errorf("acl user %q: %w", userID, domain.ErrNotFound)
	}
	if !rec.list.IsInvited(userID) {
		rec.list.InvitedUsers = append(rec.list.InvitedUsers, userID)
	}
	return snapshot(rec.list), nil
}

func (s *Store) RemoveUserFromList(_ context.Context, listID, userID string) (*list.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lists[listID]
	if !ok {
		return nil, nil
	}
	rec.list.InvitedUsers = slices.DeleteFunc(rec.list.InvitedUsers, func(v string) bool { return v == userID })
	return snapshot(rec.list), nil
}

// dropListLocked removes a list and its item index entries. Callers hold mu.
func (s *Store) dropListLocked(id string) {
	for _, it := range s.lists[id].list.Items {
		delete(s.itemIndex, it.ID)
	}
	delete(s.lists, id)
}

func (s *Store) collect(match func(*list.List) bool) []list.List {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]*listRecord, 0)
	for _, rec := range s.lists {
		if match(rec.list) {
			recs = append(recs, rec)
		}
	}
	slices.SortFunc(recs, func(a, b *listRecord) int { return cmp.Compare(a.seq, b.seq) })

	out := make([]list.List, 0, len(recs))
	for _, rec := range recs {
		out = append(out, *snapshot(rec.list))
	}
	return out
}

// snapshot copies l so callers never share memory with the store.
func snapshot(l *list.List) *list.List {
	c := l.Clone()
	list.SortItems(c.Items)
	return c
}

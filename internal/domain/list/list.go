// Package list holds the list aggregate: a named, owned list together with its
// ordered items and the set of invited collaborators.
package list

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/arimodu/shopper/internal/domain"
)

// Field limits enforced before anything reaches storage.
const (
	MaxNameLength    = 256
	MaxContentLength = 4096
)

// List is the aggregate root. Items and InvitedUsers are always loaded and
// returned together with the list.
type List struct {
	ID           string
	Name         string
	Owner        string
	Archived     bool
	Items        []Item
	InvitedUsers []string
}

// Item is a single entry of a list. Order is caller supplied and not unique.
type Item struct {
	ID      string
	Order   int
	Content string
	IsDone  bool
}

// Patch describes a partial list update. Nil fields are left untouched.
type Patch struct {
	Name     *string
	Owner    *string
	Archived *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Owner == nil && p.Archived == nil
}

// Apply merges the present fields of p into l. A new owner is removed from
// the invited users so the owner never appears in its own ACL.
func (p Patch) Apply(l *List) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Archived != nil {
		l.Archived = *p.Archived
	}
	if p.Owner != nil {
		l.Owner = *p.Owner
		l.InvitedUsers = slices.DeleteFunc(l.InvitedUsers, func(id string) bool { return id == *p.Owner })
	}
}

// Validate checks the values that are present.
func (p Patch) Validate() error {
	fields := make(map[string]string)
	if p.Name != nil {
		if msg := nameProblem(*p.Name); msg != "" {
			fields["name"] = msg
		}
	}
	if p.Owner != nil && strings.TrimSpace(*p.Owner) == "" {
		fields["owner"] = "must not be empty"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ItemPatch describes a partial item update. Nil fields are left untouched;
// a non-nil IsDone pointing at false is an explicit "mark as not done".
type ItemPatch struct {
	Order   *int
	Content *string
	IsDone  *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Order == nil && p.Content == nil && p.IsDone == nil
}

// Apply merges the present fields of p into it.
func (p ItemPatch) Apply(it *Item) {
	if p.Order != nil {
		it.Order = *p.Order
	}
	if p.Content != nil {
		it.Content = *p.Content
	}
	if p.IsDone != nil {
		it.IsDone = *p.IsDone
	}
}

// Validate checks the values that are present.
func (p ItemPatch) Validate() error {
	if p.Content != nil {
		if msg := contentProblem(*p.Content); msg != "" {
			return domain.NewValidationError("content", msg)
		}
	}
	return nil
}

// ValidateName checks a list name.
func ValidateName(name string) error {
	if msg := nameProblem(name); msg != "" {
		return domain.NewValidationError("name", msg)
	}
	return nil
}

// ValidateContent checks item content.
func ValidateContent(content string) error {
	if msg := contentProblem(content); msg != "" {
		return domain.NewValidationError("content", msg)
	}
	return nil
}

func nameProblem(name string) string {
	switch {
	case strings.TrimSpace(name) == "":
		return domain.MsgRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		return "must be at most 256 characters"
	}
	return ""
}

func contentProblem(content string) string {
	switch {
	case strings.TrimSpace(content) == "":
		return domain.MsgRequired
	case utf8.RuneCountInString(content) > MaxContentLength:
		return "must be at most 4096 characters"
	}
	return ""
}

// IsInvited reports whether userID is in the list's ACL.
func (l *List) IsInvited(userID string) bool {
	return slices.Contains(l.InvitedUsers, userID)
}

// FindItem returns the item with the given id, or nil.
func (l *List) FindItem(itemID string) *Item {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return &l.Items[i]
		}
	}
	return nil
}

// SortItems orders items by Order. The sort is stable, so items with equal
// Order keep the insertion order they were stored in.
func SortItems(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

// Clone returns a deep copy of l.
func (l *List) Clone() *List {
	c := *l
	c.Items = slices.Clone(l.Items)
	c.InvitedUsers = slices.Clone(l.InvitedUsers)
	if c.Items == nil {
		c.Items = []Item{}
	}
	if c.InvitedUsers == nil {
		c.InvitedUsers = []string{}
	}
	return &c
}

package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
)

// Collection names.
const (
	usersCollection = "users"
	listsCollection = "lists"
)

type userDoc struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	PasswordHash string `bson:"passwordHash"`
}

func (d userDoc) toDomain() *user.User {
	return &user.User{ID: d.ID, Name: d.Name, PasswordHash: d.PasswordHash}
}

type itemDoc struct {
	ID      string `bson:"_id"`
	Order   int    `bson:"order"`
	Content string `bson:"content"`
	IsDone  bool   `bson:"isDone"`
}

// listDoc embeds items and the ACL so a list is read and written as one
// document. Items are stored in insertion order.
type listDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Owner        string    `bson:"owner"`
	Archived     bool      `bson:"archived"`
	CreatedAt    time.Time `bson:"createdAt"`
	Items        []itemDoc `bson:"items"`
	InvitedUsers []string  `bson:"invitedUsers"`
}

func (d listDoc) toDomain() *list.List {
	l := &list.List{
		ID:           d.ID,
		Name:         d.Name,
		Owner:        d.Owner,
		Archived:     d.Archived,
		Items:        make([]list.Item, 0, len(d.Items)),
		InvitedUsers: make([]string, 0, len(d.InvitedUsers)),
	}
	for _, it := range d.Items {
		l.Items = append(l.Items, it.toDomain())
	}
	l.InvitedUsers = append(l.InvitedUsers, d.InvitedUsers...)
	list.SortItems(l.Items)
	return l
}

func (d itemDoc) toDomain() list.Item {
	return list.Item{ID: d.ID, Order: d.Order, Content: d.Content, IsDone: d.IsDone}
}

// userSet builds the $set document for a user patch.
func userSet(p user.Patch) bson.D {
	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.PasswordHash != nil {
		set = append(set, bson.E{Key: "passwordHash", Value: *p.PasswordHash})
	}
	return set
}

// listUpdate builds the update document for a list patch. A new owner is
// pulled from invitedUsers in the same update.
func listUpdate(p list.Patch) bson.D {
	set := bson.D{}
	if p.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *p.Name})
	}
	if p.Archived != nil {
		set = append(set, bson.E{Key: "archived", Value: *p.Archived})
	}
	if p.Owner != nil {
		set = append(set, bson.E{Key: "owner", Value: *p.Owner})
	}

	update := bson.D{{Key: "$set", Value: set}}
	if p.Owner != nil {
		update = append(update, bson.E{Key: "$pull", Value: bson.D{{Key: "invitedUsers", Value: *p.Owner}}})
	}
	return update
}

// itemSet builds the positional $set document for an item patch.
func itemSet(p list.ItemPatch) bson.D {
	set := bson.D{}
	if p.Order != nil {
		set = append(set, bson.E{Key: "items.$.order", Value: *p.Order})
	}
	if p.Content != nil {
		set = append(set, bson.E{Key: "items.$.content", Value: *p.Content})
	}
	if p.IsDone != nil {
		set = append(set, bson.E{Key: "items.$.isDone", Value: *p.IsDone})
	}
	return set
}

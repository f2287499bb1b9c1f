// Package mongo implements ports.Store on MongoDB. Each list is a single
// document embedding its items and invited users; users live in their own
// collection with a unique index on name.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/ports"
)

var _ ports.Store = (*Store)(nil)

// Config holds the connection settings for the Mongo backend.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	// Transactions runs the user delete cascade in a multi-document
	// transaction. Requires a replica set.
	Transactions bool
}

// Store is a ports.Store backed by a MongoDB database.
type Store struct {
	client       *mongo.Client
	users        *mongo.Collection
	lists        *mongo.Collection
	transactions bool
	now          func() time.Time
}

// Open connects to MongoDB, pings the primary and ensures indexes.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := New(client, cfg.Database, cfg.Transactions)
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// New wraps a connected client. Call EnsureIndexes before first use on a
// fresh database.
func New(client *mongo.Client, database string, transactions bool) *Store {
	db := client.Database(database)
	return &Store{
		client:       client,
		users:        db.Collection(usersCollection),
		lists:        db.Collection(listsCollection),
		transactions: transactions,
		now:          time.Now,
	}
}

// EnsureIndexes creates the indexes the store relies on. It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_name_unique"),
	}); err != nil {
		return fmt.Errorf("create users indexes: %w", err)
	}

	if _, err := s.lists.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "invitedUsers", Value: 1}}},
		{Keys: bson.D{{Key: "items._id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("create lists indexes: %w", err)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "mongo" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

// Close implements ports.Store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// --- users ---

func (s *Store) CreateUser(ctx context.Context, name, passwordHash string) (*user.User, error) {
	doc := userDoc{ID: uuid.NewString(), Name: name, PasswordHash: passwordHash}
	if _, err := s.users.InsertOne(ctx, doc); err != nil {
		return nil, translate("create user", err)
	}
	return doc.toDomain(), nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	return s.findUser(ctx, "get user by id", bson.D{{Key: "_id", Value: id}})
}

func (s *Store) GetUserByName(ctx context.Context, name string) (*user.User, error) {
	return s.findUser(ctx, "get user by name", bson.D{{Key: "name", Value: name}})
}

func (s *Store) findUser(ctx context.Context, op string, filter bson.D) (*user.User, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(op, err)
	}
	return doc.toDomain(), nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch user.Patch) (*user.User, error) {
	if patch.IsEmpty() {
		return s.GetUserByID(ctx, id)
	}

	var doc userDoc
	err := s.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: userSet(patch)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("update user", err)
	}
	return doc.toDomain(), nil
}

// DeleteUser removes the lists the user owns, pulls the user from every ACL
// and finally deletes the user document. With transactions enabled the three
// steps commit together; otherwise they run children first so a failure never
// leaves references to a deleted user.
func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	if !s.transactions {
		deleted, err := s.deleteUserCascade(ctx, id)
		if err != nil {
			return false, translate("delete user", err)
		}
		return deleted, nil
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return false, translate("start session", err)
	}
	defer sess.EndSession(ctx)

	res, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return s.deleteUserCascade(sc, id)
	})
	if err != nil {
		return false, translate("delete user", err)
	}
	deleted, _ := res.(bool)
	return deleted, nil
}

func (s *Store) deleteUserCascade(ctx context.Context, id string) (bool, error) {
	if _, err := s.lists.DeleteMany(ctx, bson.D{{Key: "owner", Value: id}}); err != nil {
		return false, fmt.Errorf("delete owned lists: %w", err)
	}
	if _, err := s.lists.UpdateMany(ctx,
		bson.D{{Key: "invitedUsers", Value: id}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "invitedUsers", Value: id}}}},
	); err != nil {
		return false, fmt.Errorf("remove acl memberships: %w", err)
	}
	res, err := s.users.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, fmt.Errorf("delete user document: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// requireUser returns a wrapped domain.ErrNotFound when id does not name a
// user. Documents have no foreign keys, so references are checked here.
func (s *Store) requireUser(ctx context.Context, id string) error {
	n, err := s.users.CountDocuments(ctx, bson.D{{Key: "_id", Value: id}}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("user %q: %w", id, domain.ErrNotFound)
	}
	return nil
}

// --- lists ---

func (s *Store) CreateList(ctx context.Context, name, ownerID string) (*list.List, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, translate("create list", err)
	}

	doc := listDoc{
		ID:           uuid.NewString(),
		Name:         name,
		Owner:        ownerID,
		CreatedAt:    s.now().UTC(),
		Items:        []itemDoc{},
		InvitedUsers: []string{},
	}
	if _, err := s.lists.InsertOne(ctx, doc); err != nil {
		return nil, translate("create list", err)
	}
	return doc.toDomain(), nil
}

func (s *Store) GetListByID(ctx context.Context, id string) (*list.List, error) {
	return s.findList(ctx, "get list", bson.D{{Key: "_id", Value: id}})
}

func (s *Store) GetListByItemID(ctx context.Context, itemID string) (*list.List, error) {
	return s.findList(ctx, "get list by item", bson.D{{Key: "items._id", Value: itemID}})
}

func (s *Store) findList(ctx context.Context, op string, filter bson.D) (*list.List, error) {
	var doc listDoc
	err := s.lists.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(op, err)
	}
	return doc.toDomain(), nil
}

func (s *Store) GetListsByUserID(ctx context.Context, ownerID string) ([]list.List, error) {
	return s.findLists(ctx, "get owned lists", bson.D{{Key: "owner", Value: ownerID}})
}

func (s *Store) GetInvitedLists(ctx context.Context, userID string) ([]list.List, error) {
	return s.findLists(ctx, "get invited lists", bson.D{{Key: "invitedUsers", Value: userID}})
}

func (s *Store) findLists(ctx context.Context, op string, filter bson.D) ([]list.List, error) {
	cur, err := s.lists.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, translate(op, err)
	}
	var docs []listDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translate(op, err)
	}

	out := make([]list.List, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.toDomain())
	}
	return out, nil
}

// UpdateList sets the present patch fields. Ownership moves and the new
// owner's ACL entry is pulled in one atomic document update.
func (s *Store) UpdateList(ctx context.Context, id string, patch list.Patch) (*list.List, error) {
	if patch.IsEmpty() {
		return s.GetListByID(ctx, id)
	}
	if patch.Owner != nil {
		if err := s.requireUser(ctx, *patch.Owner); err != nil {
			return nil, translate("update list", err)
		}
	}
	return s.updateList(ctx, "update list", bson.D{{Key: "_id", Value: id}}, listUpdate(patch))
}

func (s *Store) updateList(ctx context.Context, op string, filter, update bson.D) (*list.List, error) {
	var doc listDoc
	err := s.lists.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(op, err)
	}
	return doc.toDomain(), nil
}

func (s *Store) DeleteList(ctx context.Context, id string) (bool, error) {
	res, err := s.lists.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, translate("delete list", err)
	}
	return res.DeletedCount > 0, nil
}

// --- items ---

func (s *Store) GetItemByID(ctx context.Context, itemID string) (*list.Item, error) {
	var doc listDoc
	err := s.lists.FindOne(ctx,
		bson.D{{Key: "items._id", Value: itemID}},
		options.FindOne().SetProjection(bson.D{{Key: "items.$", Value: 1}}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get item", err)
	}
	if len(doc.Items) == 0 {
		return nil, nil
	}
	it := doc.Items[0].toDomain()
	return &it, nil
}

func (s *Store) AddItem(ctx context.Context, listID string, order int, content string) (*list.List, error) {
	item := itemDoc{ID: uuid.NewString(), Order: order, Content: content}
	return s.updateList(ctx, "add item",
		bson.D{{Key: "_id", Value: listID}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "items", Value: item}}}},
	)
}

func (s *Store) UpdateItem(ctx context.Context, itemID string, patch list.ItemPatch) (*list.List, error) {
	if patch.IsEmpty() {
		return s.GetListByItemID(ctx, itemID)
	}
	return s.updateList(ctx, "update item",
		bson.D{{Key: "items._id", Value: itemID}},
		bson.D{{Key: "$set", Value: itemSet(patch)}},
	)
}

func (s *Store) DeleteItem(ctx context.Context, itemID string) (bool, error) {
	res, err := s.lists.UpdateOne(ctx,
		bson.D{{Key: "items._id", Value: itemID}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "items", Value: bson.D{{Key: "_id", Value: itemID}}}}}},
	)
	if err != nil {
		return false, translate("delete item", err)
	}
	return res.ModifiedCount > 0, nil
}

// --- acl ---

func (s *Store) AddUserToList(ctx context.Context, listID, userID string) (*list.List, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, translate("add user to list", err)
	}
	return s.updateList(ctx, "add user to list",
		bson.D{{Key: "_id", Value: listID}},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: "invitedUsers", Value: userID}}}},
	)
}

func (s *Store) RemoveUserFromList(ctx context.Context, listID, userID string) (*list.List, error) {
	return s.updateList(ctx, "remove user from list",
		bson.D{{Key: "_id", Value: listID}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "invitedUsers", Value: userID}}}},
	)
}

// translate wraps a driver error with context, mapping duplicate keys to
// domain.ErrConflict.
func translate(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

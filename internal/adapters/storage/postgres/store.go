// Package postgres implements ports.Store on PostgreSQL through pgx. Lists,
// items and ACL entries live in normalized tables joined by foreign keys with
// ON DELETE CASCADE; every read reassembles the full list aggregate.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arimodu/shopper/internal/domain"
	"github.com/arimodu/shopper/internal/domain/list"
	"github.com/arimodu/shopper/internal/domain/user"
	"github.com/arimodu/shopper/internal/ports"
)

var _ ports.Store = (*Store)(nil)

// PostgreSQL error codes translated into domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Config holds the connection settings for the Postgres backend.
type Config struct {
	URL      string
	MaxConns int32
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is a ports.Store backed by a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to Postgres, verifies the connection and applies pending
// migrations.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return New(pool), nil
}

// New wraps an existing pool. The schema must already be migrated.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "postgres" }

// HealthCheck implements ports.HealthChecker.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Close implements ports.Store.
func (s *Store) Close(context.Context) error {
	s.pool.Close()
	return nil
}

// --- users ---

const userColumns = `id, name, password_hash`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Name, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, name, passwordHash string) (*user.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx,
		`INSERT INTO users (id, name, password_hash) VALUES ($1, $2, $3) RETURNING `+userColumns,
		uuid.NewString(), name, passwordHash,
	))
	if err != nil {
		return nil, translate("create user", err)
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*user.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, translate("get user by id", err)
	}
	return u, nil
}

func (s *Store) GetUserByName(ctx context.Context, name string) (*user.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1`, name))
	if err != nil {
		return nil, translate("get user by name", err)
	}
	return u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, patch user.Patch) (*user.User, error) {
	u, err := scanUser(s.pool.QueryRow(ctx, `
		UPDATE users
		SET name = COALESCE($2::text, name),
		    password_hash = COALESCE($3::text, password_hash)
		WHERE id = $1
		RETURNING `+userColumns,
		id, patch.Name, patch.PasswordHash,
	))
	if err != nil {
		return nil, translate("update user", err)
	}
	return u, nil
}

// DeleteUser relies on ON DELETE CASCADE to remove owned lists, their items
// and every ACL row that references the user.
func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete user", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- lists ---

func (s *Store) CreateList(ctx context.Context, name, ownerID string) (*list.List, error) {
	l := &list.List{
		ID:           uuid.NewString(),
		Name:         name,
		Owner:        ownerID,
		Items:        []list.Item{},
		InvitedUsers: []string{},
	}
	if _, err := s.pool.Exec(ctx,
		`INSERT INTO lists (id, name, owner_id) VALUES ($1, $2, $3)`, l.ID, name, ownerID,
	); err != nil {
		return nil, translate("create list", err)
	}
	return l, nil
}

func (s *Store) GetListByID(ctx context.Context, id string) (*list.List, error) {
	l, err := loadList(ctx, s.pool, id)
	if err != nil {
		return nil, translate("get list", err)
	}
	return l, nil
}

func (s *Store) GetListByItemID(ctx context.Context, itemID string) (*list.List, error) {
	var listID string
	err := s.pool.QueryRow(ctx, `SELECT list_id FROM items WHERE id = $1`, itemID).Scan(&listID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get list by item", err)
	}
	return s.GetListByID(ctx, listID)
}

func (s *Store) GetListsByUserID(ctx context.Context, ownerID string) ([]list.List, error) {
	lists, err := loadLists(ctx, s.pool, `WHERE l.owner_id = $1`, ownerID)
	if err != nil {
		return nil, translate("get owned lists", err)
	}
	return lists, nil
}

func (s *Store) GetInvitedLists(ctx context.Context, userID string) ([]list.List, error) {
	lists, err := loadLists(ctx, s.pool,
		`WHERE EXISTS (SELECT 1 FROM list_acl a WHERE a.list_id = l.id AND a.user_id = $1)`, userID)
	if err != nil {
		return nil, translate("get invited lists", err)
	}
	return lists, nil
}

// UpdateList merges the patch and, when ownership moves, drops the new owner
// from the ACL in the same transaction.
func (s *Store) UpdateList(ctx context.Context, id string, patch list.Patch) (*list.List, error) {
	var out *list.List
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE lists
			SET name = COALESCE($2::text, name),
			    owner_id = COALESCE($3::text, owner_id),
			    archived = COALESCE($4::boolean, archived)
			WHERE id = $1`,
			id, patch.Name, patch.Owner, patch.Archived,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		if patch.Owner != nil {
			if _, err := tx.Exec(ctx,
				`DELETE FROM list_acl WHERE list_id = $1 AND user_id = $2`, id, *patch.Owner,
			); err != nil {
				return err
			}
		}
		out, err = loadList(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, translate("update list", err)
	}
	return out, nil
}

func (s *Store) DeleteList(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM lists WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete list", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- items ---

func (s *Store) GetItemByID(ctx context.Context, itemID string) (*list.Item, error) {
	var it list.Item
	err := s.pool.QueryRow(ctx,
		`SELECT id, "order", content, is_done FROM items WHERE id = $1`, itemID,
	).Scan(&it.ID, &it.Order, &it.Content, &it.IsDone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get item", err)
	}
	return &it, nil
}

func (s *Store) AddItem(ctx context.Context, listID string, order int, content string) (*list.List, error) {
	var out *list.List
	err := s.withLockedList(ctx, listID, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO items (id, list_id, "order", content) VALUES ($1, $2, $3, $4)`,
			uuid.NewString(), listID, order, content,
		); err != nil {
			return err
		}
		var err error
		out, err = loadList(ctx, tx, listID)
		return err
	})
	if err != nil {
		return nil, translate("add item", err)
	}
	return out, nil
}

func (s *Store) UpdateItem(ctx context.Context, itemID string, patch list.ItemPatch) (*list.List, error) {
	var out *list.List
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var listID string
		err := tx.QueryRow(ctx, `
			UPDATE items
			SET "order" = COALESCE($2::bigint, "order"),
			    content = COALESCE($3::text, content),
			    is_done = COALESCE($4::boolean, is_done)
			WHERE id = $1
			RETURNING list_id`,
			itemID, patch.Order, patch.Content, patch.IsDone,
		).Scan(&listID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		out, err = loadList(ctx, tx, listID)
		return err
	})
	if err != nil {
		return nil, translate("update item", err)
	}
	return out, nil
}

func (s *Store) DeleteItem(ctx context.Context, itemID string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	if err != nil {
		return false, translate("delete item", err)
	}
	return tag.RowsAffected() > 0, nil
}

// --- acl ---

func (s *Store) AddUserToList(ctx context.Context, listID, userID string) (*list.List, error) {
	var out *list.List
	err := s.withLockedList(ctx, listID, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO list_acl (list_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			listID, userID,
		); err != nil {
			return err
		}
		var err error
		out, err = loadList(ctx, tx, listID)
		return err
	})
	if err != nil {
		return nil, translate("add user to list", err)
	}
	return out, nil
}

func (s *Store) RemoveUserFromList(ctx context.Context, listID, userID string) (*list.List, error) {
	var out *list.List
	err := s.withLockedList(ctx, listID, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM list_acl WHERE list_id = $1 AND user_id = $2`, listID, userID,
		); err != nil {
			return err
		}
		var err error
		out, err = loadList(ctx, tx, listID)
		return err
	})
	if err != nil {
		return nil, translate("remove user from list", err)
	}
	return out, nil
}

// withLockedList runs fn in a transaction holding a row lock on the list.
// fn is not called when the list does not exist.
func (s *Store) withLockedList(ctx context.Context, listID string, fn func(pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		var id string
		err := tx.QueryRow(ctx, `SELECT id FROM lists WHERE id = $1 FOR UPDATE`, listID).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		return fn(tx)
	})
}

// --- aggregate assembly ---

// loadList reads one list with its items and ACL, or nil when absent.
func loadList(ctx context.Context, q querier, id string) (*list.List, error) {
	lists, err := loadLists(ctx, q, `WHERE l.id = $1`, id)
	if err != nil || len(lists) == 0 {
		return nil, err
	}
	return &lists[0], nil
}

// loadLists reads the lists matched by where, ordered by creation, and
// attaches their items and invited users with one query each.
func loadLists(ctx context.Context, q querier, where string, args ...any) ([]list.List, error) {
	rows, err := q.Query(ctx, `SELECT l.id, l.name, l.owner_id, l.archived FROM lists l `+where+` ORDER BY l.seq`, args...)
	if err != nil {
		return nil, err
	}
	lists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (list.List, error) {
		l := list.List{Items: []list.Item{}, InvitedUsers: []string{}}
		err := row.Scan(&l.ID, &l.Name, &l.Owner, &l.Archived)
		return l, err
	})
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return []list.List{}, nil
	}

	ids := make([]string, len(lists))
	byID := make(map[string]*list.List, len(lists))
	for i := range lists {
		ids[i] = lists[i].ID
		byID[lists[i].ID] = &lists[i]
	}

	itemRows, err := q.Query(ctx, `
		SELECT list_id, id, "order", content, is_done
		FROM items
		WHERE list_id = ANY($1)
		ORDER BY "order", seq`, ids)
	if err != nil {
		return nil, err
	}
	var (
		listID string
		it     list.Item
	)
	_, err = pgx.ForEachRow(itemRows, []any{&listID, &it.ID, &it.Order, &it.Content, &it.IsDone}, func() error {
		l := byID[listID]
		l.Items = append(l.Items, it)
		return nil
	})
	if err != nil {
		return nil, err
	}

	aclRows, err := q.Query(ctx, `
		SELECT list_id, user_id
		FROM list_acl
		WHERE list_id = ANY($1)
		ORDER BY seq`, ids)
	if err != nil {
		return nil, err
	}
	var userID string
	_, err = pgx.ForEachRow(aclRows, []any{&listID, &userID}, func() error {
		l := byID[listID]
		l.InvitedUsers = append(l.InvitedUsers, userID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lists, nil
}

// translate wraps a pgx error with context, mapping constraint violations to
// domain errors.
func translate(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, domain.ErrConflict)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, domain.ErrNotFound)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

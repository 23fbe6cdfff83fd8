// Package repo provides postgres access for users
package repo

import (
	"context"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/store"
	"roster/internal/services/users/domain"
)

// Repo is the storage port for users. The auth service shares it for
// registration and login lookups
type Repo interface {
	List(ctx context.Context, q domain.ListQuery) (repokit.PagedResult[domain.User], error)
	Get(ctx context.Context, id int64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Insert(ctx context.Context, email, passwordHash, role string) (domain.User, error)
	Update(ctx context.Context, id int64, email, passwordHash, role *string) (domain.User, error)
	Delete(ctx context.Context, id int64) error
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}

// PG binds the repo to a live queryer
type PG struct{}

// NewPG returns a postgres binder for the users repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

var sortable = repokit.SortMap{
	"id":    "id",
	"email": "email",
	"role":  "role",
}

const (
	userCols      = `id, email, password_hash, role`
	sqlGet        = `SELECT id, email, password_hash, role FROM users WHERE id = $1`
	sqlGetByEmail = `SELECT id, email, password_hash, role FROM users WHERE lower(email) = lower($1)`
	sqlInsert     = `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, role`
	sqlUpdate = `UPDATE users SET
			email = COALESCE($2, email),
			password_hash = COALESCE($3, password_hash),
			role = COALESCE($4, role)
		WHERE id = $1 RETURNING id, email, password_hash, role`
	sqlDelete = `DELETE FROM users WHERE id = $1`
	sqlTaken  = `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1) AND id <> $2)`
)

func scanUser(r store.Row) (domain.User, error) {
	var u domain.User
	err := r.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role)
	return u, err
}

func (d *queries) List(ctx context.Context, q domain.ListQuery) (repokit.PagedResult[domain.User], error) {
	c := &repokit.Cond{}
	if q.Email != nil {
		c.Contains("email", *q.Email)
	}
	if q.Role != nil {
		c.Eq("role", *q.Role)
	}
	return repokit.List(ctx, d.q, repokit.ListArgs{
		From:    "users",
		Columns: userCols,
	}, q.Spec, sortable, c, scanUser)
}

func (d *queries) Get(ctx context.Context, id int64) (domain.User, error) {
	return store.One(ctx, d.q, scanUser, sqlGet, id)
}

func (d *queries) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return store.One(ctx, d.q, scanUser, sqlGetByEmail, email)
}

func (d *queries) Insert(ctx context.Context, email, passwordHash, role string) (domain.User, error) {
	return store.One(ctx, d.q, scanUser, sqlInsert, email, passwordHash, role)
}

func (d *queries) Update(ctx context.Context, id int64, email, passwordHash, role *string) (domain.User, error) {
	return store.One(ctx, d.q, scanUser, sqlUpdate, id, email, passwordHash, role)
}

func (d *queries) Delete(ctx context.Context, id int64) error {
	tag, err := store.Exec(ctx, d.q, sqlDelete, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.ErrNotFound
	}
	return nil
}

func (d *queries) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return store.Scalar[bool](ctx, d.q, sqlTaken, email, excludeID)
}

// Package repo provides postgres access for profiles
package repo

import (
	"context"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/store"
	"roster/internal/services/profiles/domain"
)

// Repo is the storage port for profiles
type Repo interface {
	List(ctx context.Context, q domain.ListQuery) (repokit.PagedResult[domain.Profile], error)
	Get(ctx context.Context, id int64) (domain.Profile, error)
	Insert(ctx context.Context, name string) (domain.Profile, error)
	Update(ctx context.Context, id int64, name *string) (domain.Profile, error)
	Delete(ctx context.Context, id int64) error
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
}

// PG binds the repo to a live queryer
type PG struct{}

// NewPG returns a postgres binder for the profiles repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

// sortable maps accepted sort keys to order expressions
var sortable = repokit.SortMap{
	"id":   "id",
	"name": "name",
}

const (
	sqlGet    = `SELECT id, name FROM profiles WHERE id = $1`
	sqlInsert = `INSERT INTO profiles (name) VALUES ($1) RETURNING id, name`
	sqlUpdate = `UPDATE profiles SET name = COALESCE($2, name) WHERE id = $1 RETURNING id, name`
	sqlDelete = `DELETE FROM profiles WHERE id = $1`
	sqlTaken  = `SELECT EXISTS (SELECT 1 FROM profiles WHERE lower(name) = lower($1) AND id <> $2)`
)

func scanProfile(r store.Row) (domain.Profile, error) {
	var p domain.Profile
	err := r.Scan(&p.ID, &p.Name)
	return p, err
}

func (d *queries) List(ctx context.Context, q domain.ListQuery) (repokit.PagedResult[domain.Profile], error) {
	c := &repokit.Cond{}
	if q.Name != nil {
		c.Contains("name", *q.Name)
	}
	return repokit.List(ctx, d.q, repokit.ListArgs{
		From:    "profiles",
		Columns: "id, name",
	}, q.Spec, sortable, c, scanProfile)
}

func (d *queries) Get(ctx context.Context, id int64) (domain.Profile, error) {
	return store.One(ctx, d.q, scanProfile, sqlGet, id)
}

func (d *queries) Insert(ctx context.Context, name string) (domain.Profile, error) {
	return store.One(ctx, d.q, scanProfile, sqlInsert, name)
}

func (d *queries) Update(ctx context.Context, id int64, name *string) (domain.Profile, error) {
	return store.One(ctx, d.q, scanProfile, sqlUpdate, id, name)
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

func (d *queries) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	return store.Scalar[bool](ctx, d.q, sqlTaken, name, excludeID)
}

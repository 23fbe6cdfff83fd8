// Package repo provides postgres access for employees
package repo

import (
	"context"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/store"
	"roster/internal/services/employees/domain"
)

// Repo is the storage port for employees
type Repo interface {
	List(ctx context.Context, q domain.ListQuery) (repokit.PagedResult[domain.Employee], error)
	Get(ctx context.Context, id int64) (domain.Employee, error)
	Insert(ctx context.Context, fullName string, salary int, profileID int64) (domain.Employee, error)
	Update(ctx context.Context, id int64, fullName *string, salary *int, profileID *int64) (domain.Employee, error)
	Delete(ctx context.Context, id int64) error
	ProfileExists(ctx context.Context, profileID int64) (bool, error)
}

// PG binds the repo to a live queryer
type PG struct{}

// NewPG returns a postgres binder for the employees repo
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

type queries struct{ q repokit.Queryer }

// The list query always joins profiles so the profile name rides along
// and doubles as the "profile" sort expression
const (
	fromJoined = `employees e JOIN profiles p ON p.id = e.profile_id`
	colsJoined = `e.id, e.full_name, e.salary, e.profile_id, p.name`
)

var sortable = repokit.SortMap{
	"id":       "e.id",
	"fullname": "e.full_name",
	"salary":   "e.salary",
	"profile":  "p.name",
}

const (
	sqlGet = `SELECT e.id, e.full_name, e.salary, e.profile_id, p.name
		FROM employees e JOIN profiles p ON p.id = e.profile_id
		WHERE e.id = $1`
	sqlInsert = `INSERT INTO employees (full_name, salary, profile_id) VALUES ($1, $2, $3) RETURNING id`
	sqlUpdate = `UPDATE employees SET
			full_name = COALESCE($2, full_name),
			salary = COALESCE($3, salary),
			profile_id = COALESCE($4, profile_id)
		WHERE id = $1 RETURNING id`
	sqlDelete        = `DELETE FROM employees WHERE id = $1`
	sqlProfileExists = `SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`
)

func scanEmployee(r store.Row) (domain.Employee, error) {
	var e domain.Employee
	err := r.Scan(&e.ID, &e.FullName, &e.Salary, &e.ProfileID, &e.ProfileName)
	return e, err
}

func (d *queries) List(ctx context.Context, q domain.ListQuery) (repokit.PagedResult[domain.Employee], error) {
	c := &repokit.Cond{}
	if q.FullName != nil {
		c.Contains("e.full_name", *q.FullName)
	}
	if q.MinSalary != nil {
		c.GTE("e.salary", *q.MinSalary)
	}
	if q.MaxSalary != nil {
		c.LTE("e.salary", *q.MaxSalary)
	}
	if q.ProfileID != nil {
		c.Eq("e.profile_id", *q.ProfileID)
	}
	return repokit.List(ctx, d.q, repokit.ListArgs{
		From:    fromJoined,
		Columns: colsJoined,
		IDCol:   "e.id",
	}, q.Spec, sortable, c, scanEmployee)
}

func (d *queries) Get(ctx context.Context, id int64) (domain.Employee, error) {
	return store.One(ctx, d.q, scanEmployee, sqlGet, id)
}

func (d *queries) Insert(ctx context.Context, fullName string, salary int, profileID int64) (domain.Employee, error) {
	id, err := store.Scalar[int64](ctx, d.q, sqlInsert, fullName, salary, profileID)
	if err != nil {
		return domain.Employee{}, err
	}
	return d.Get(ctx, id)
}

func (d *queries) Update(ctx context.Context, id int64, fullName *string, salary *int, profileID *int64) (domain.Employee, error) {
	updated, err := store.One(ctx, d.q, func(r store.Row) (int64, error) {
		var n int64
		err := r.Scan(&n)
		return n, err
	}, sqlUpdate, id, fullName, salary, profileID)
	if err != nil {
		return domain.Employee{}, err
	}
	return d.Get(ctx, updated)
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

func (d *queries) ProfileExists(ctx context.Context, profileID int64) (bool, error) {
	return store.Scalar[bool](ctx, d.q, sqlProfileExists, profileID)
}

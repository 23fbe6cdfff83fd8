// Package service contains employee workflows
package service

import (
	"context"
	"strings"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/outcome"
	"roster/internal/services/employees/domain"
	"roster/internal/services/employees/repo"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc implements the service port
type Svc struct {
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("employees.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("employees.Service requires a non nil Repo binder")
	}
	return &Svc{binder: binder, db: db}
}

func (s *Svc) repo() repo.Repo { return s.binder.Bind(s.db) }

// List returns one page of employees matching the query.
// A min bound above the max bound simply matches nothing
func (s *Svc) List(ctx context.Context, q domain.ListQuery) outcome.Result[repokit.PagedResult[domain.Employee]] {
	page, err := s.repo().List(ctx, q)
	if err != nil {
		return outcome.Fail[repokit.PagedResult[domain.Employee]](ctx, err)
	}
	return outcome.OK(page)
}

// Get fetches a single employee by id
func (s *Svc) Get(ctx context.Context, id int64) outcome.Result[domain.Employee] {
	e, err := s.repo().Get(ctx, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return outcome.NotFoundf[domain.Employee]("employee %d not found", id)
		}
		return outcome.Fail[domain.Employee](ctx, err)
	}
	return outcome.OK(e)
}

// Create persists a new employee. The profile reference is pre-checked for
// fast feedback; the FK remains the final arbiter
func (s *Svc) Create(ctx context.Context, in domain.CreateEmployeeInput) outcome.Result[domain.Employee] {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return outcome.Invalidf[domain.Employee]("full_name must not be blank")
	}
	if in.Salary < 0 {
		return outcome.Invalidf[domain.Employee]("salary must not be negative")
	}

	// check and insert share one tx so the profile cannot vanish in between
	var e domain.Employee
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		ok, err := r.ProfileExists(ctx, in.ProfileID)
		if err != nil {
			return err
		}
		if !ok {
			return perr.InvalidArgf("profile %d does not exist", in.ProfileID)
		}
		e, err = r.Insert(ctx, name, in.Salary, in.ProfileID)
		return err
	})
	if err != nil {
		if perr.IsForeignKeyViolation(err) {
			return outcome.Invalidf[domain.Employee]("profile %d does not exist", in.ProfileID)
		}
		return outcome.Fail[domain.Employee](ctx, err)
	}
	return outcome.Created(e)
}

// Update applies the provided fields to an existing employee
func (s *Svc) Update(ctx context.Context, id int64, in domain.UpdateEmployeeInput) outcome.Result[domain.Employee] {
	var name *string
	if in.FullName != nil {
		n := strings.TrimSpace(*in.FullName)
		if n == "" {
			return outcome.Invalidf[domain.Employee]("full_name must not be blank")
		}
		name = &n
	}
	if in.Salary != nil && *in.Salary < 0 {
		return outcome.Invalidf[domain.Employee]("salary must not be negative")
	}
	if in.ProfileID != nil {
		ok, err := s.repo().ProfileExists(ctx, *in.ProfileID)
		if err != nil {
			return outcome.Fail[domain.Employee](ctx, err)
		}
		if !ok {
			return outcome.Invalidf[domain.Employee]("profile %d does not exist", *in.ProfileID)
		}
	}

	e, err := s.repo().Update(ctx, id, name, in.Salary, in.ProfileID)
	if err != nil {
		switch {
		case perr.IsCode(err, perr.ErrorCodeNotFound):
			return outcome.NotFoundf[domain.Employee]("employee %d not found", id)
		case perr.IsForeignKeyViolation(err):
			return outcome.Invalidf[domain.Employee]("referenced profile does not exist")
		}
		return outcome.Fail[domain.Employee](ctx, err)
	}
	return outcome.OK(e)
}

// Delete removes an employee
func (s *Svc) Delete(ctx context.Context, id int64) outcome.Result[struct{}] {
	if err := s.repo().Delete(ctx, id); err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return outcome.NotFoundf[struct{}]("employee %d not found", id)
		}
		return outcome.Fail[struct{}](ctx, err)
	}
	return outcome.Deleted[struct{}]()
}

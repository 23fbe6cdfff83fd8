// Package service contains profile workflows
package service

import (
	"context"
	"strings"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/outcome"
	"roster/internal/services/profiles/domain"
	"roster/internal/services/profiles/repo"
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
		panic("profiles.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("profiles.Service requires a non nil Repo binder")
	}
	return &Svc{binder: binder, db: db}
}

func (s *Svc) repo() repo.Repo { return s.binder.Bind(s.db) }

// List returns one page of profiles matching the query
func (s *Svc) List(ctx context.Context, q domain.ListQuery) outcome.Result[repokit.PagedResult[domain.Profile]] {
	page, err := s.repo().List(ctx, q)
	if err != nil {
		return outcome.Fail[repokit.PagedResult[domain.Profile]](ctx, err)
	}
	return outcome.OK(page)
}

// Get fetches a single profile by id
func (s *Svc) Get(ctx context.Context, id int64) outcome.Result[domain.Profile] {
	p, err := s.repo().Get(ctx, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return outcome.NotFoundf[domain.Profile]("profile %d not found", id)
		}
		return outcome.Fail[domain.Profile](ctx, err)
	}
	return outcome.OK(p)
}

// Create persists a new profile. Name uniqueness is pre-checked for fast
// feedback; the unique index remains the final arbiter
func (s *Svc) Create(ctx context.Context, in domain.CreateProfileInput) outcome.Result[domain.Profile] {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return outcome.Invalidf[domain.Profile]("name must not be blank")
	}

	taken, err := s.repo().NameTaken(ctx, name, 0)
	if err != nil {
		return outcome.Fail[domain.Profile](ctx, err)
	}
	if taken {
		return outcome.Conflictf[domain.Profile]("profile name %q already exists", name)
	}

	p, err := s.repo().Insert(ctx, name)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return outcome.Conflictf[domain.Profile]("profile name %q already exists", name)
		}
		return outcome.Fail[domain.Profile](ctx, err)
	}
	return outcome.Created(p)
}

// Update applies the provided fields to an existing profile
func (s *Svc) Update(ctx context.Context, id int64, in domain.UpdateProfileInput) outcome.Result[domain.Profile] {
	var name *string
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return outcome.Invalidf[domain.Profile]("name must not be blank")
		}
		name = &n

		taken, err := s.repo().NameTaken(ctx, n, id)
		if err != nil {
			return outcome.Fail[domain.Profile](ctx, err)
		}
		if taken {
			return outcome.Conflictf[domain.Profile]("profile name %q already exists", n)
		}
	}

	p, err := s.repo().Update(ctx, id, name)
	if err != nil {
		switch {
		case perr.IsCode(err, perr.ErrorCodeNotFound):
			return outcome.NotFoundf[domain.Profile]("profile %d not found", id)
		case perr.IsDuplicateKey(err):
			return outcome.Conflictf[domain.Profile]("profile name already exists")
		}
		return outcome.Fail[domain.Profile](ctx, err)
	}
	return outcome.OK(p)
}

// Delete removes a profile. A profile still referenced by employees stays put
func (s *Svc) Delete(ctx context.Context, id int64) outcome.Result[struct{}] {
	if err := s.repo().Delete(ctx, id); err != nil {
		switch {
		case perr.IsCode(err, perr.ErrorCodeNotFound):
			return outcome.NotFoundf[struct{}]("profile %d not found", id)
		case perr.IsForeignKeyViolation(err):
			return outcome.Conflictf[struct{}]("profile %d is assigned to employees", id)
		}
		return outcome.Fail[struct{}](ctx, err)
	}
	return outcome.Deleted[struct{}]()
}

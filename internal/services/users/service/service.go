// Package service contains user account workflows
package service

import (
	"context"
	"strings"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/outcome"
	"roster/internal/services/users/domain"
	"roster/internal/services/users/repo"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Hasher derives password hashes for credential updates
type Hasher interface {
	Hash(password string) (string, error)
}

// Svc implements the service port
type Svc struct {
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	hasher Hasher
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], hasher Hasher) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	if hasher == nil {
		panic("users.Service requires a non nil Hasher")
	}
	return &Svc{binder: binder, db: db, hasher: hasher}
}

func (s *Svc) repo() repo.Repo { return s.binder.Bind(s.db) }

// List returns one page of accounts matching the query
func (s *Svc) List(ctx context.Context, q domain.ListQuery) outcome.Result[repokit.PagedResult[domain.User]] {
	if q.Role != nil && !domain.ValidRole(*q.Role) {
		return outcome.Invalidf[repokit.PagedResult[domain.User]]("role must be one of viewer, editor, admin")
	}
	page, err := s.repo().List(ctx, q)
	if err != nil {
		return outcome.Fail[repokit.PagedResult[domain.User]](ctx, err)
	}
	return outcome.OK(page)
}

// Get fetches a single account by id
func (s *Svc) Get(ctx context.Context, id int64) outcome.Result[domain.User] {
	u, err := s.repo().Get(ctx, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return outcome.NotFoundf[domain.User]("user %d not found", id)
		}
		return outcome.Fail[domain.User](ctx, err)
	}
	return outcome.OK(u)
}

// Update applies the provided fields to an existing account. A new password
// is re-hashed before it touches the store
func (s *Svc) Update(ctx context.Context, id int64, in domain.UpdateUserInput) outcome.Result[domain.User] {
	var email *string
	if in.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*in.Email))
		if e == "" {
			return outcome.Invalidf[domain.User]("email must not be blank")
		}
		email = &e

		taken, err := s.repo().EmailTaken(ctx, e, id)
		if err != nil {
			return outcome.Fail[domain.User](ctx, err)
		}
		if taken {
			return outcome.Conflictf[domain.User]("email %q is already registered", e)
		}
	}
	if in.Role != nil && !domain.ValidRole(*in.Role) {
		return outcome.Invalidf[domain.User]("role must be one of viewer, editor, admin")
	}

	var hash *string
	if in.Password != nil {
		h, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return outcome.Fail[domain.User](ctx, err)
		}
		hash = &h
	}

	u, err := s.repo().Update(ctx, id, email, hash, in.Role)
	if err != nil {
		switch {
		case perr.IsCode(err, perr.ErrorCodeNotFound):
			return outcome.NotFoundf[domain.User]("user %d not found", id)
		case perr.IsDuplicateKey(err):
			return outcome.Conflictf[domain.User]("email is already registered")
		}
		return outcome.Fail[domain.User](ctx, err)
	}
	return outcome.OK(u)
}

// Delete removes an account
func (s *Svc) Delete(ctx context.Context, id int64) outcome.Result[struct{}] {
	if err := s.repo().Delete(ctx, id); err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return outcome.NotFoundf[struct{}]("user %d not found", id)
		}
		return outcome.Fail[struct{}](ctx, err)
	}
	return outcome.Deleted[struct{}]()
}

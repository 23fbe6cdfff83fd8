// Package service contains registration and login workflows
package service

import (
	"context"
	"strings"
	"time"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/outcome"
	"roster/internal/services/auth/domain"
	udom "roster/internal/services/users/domain"
	urepo "roster/internal/services/users/repo"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Hasher derives and verifies password hashes
type Hasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenSigner mints bearer tokens for authenticated accounts
type TokenSigner interface {
	Sign(userID int64, email, role string) (string, time.Time, error)
}

// Svc implements the service port over the users store
type Svc struct {
	binder repokit.Binder[urepo.Repo]
	db     repokit.TxRunner
	hasher Hasher
	signer TokenSigner
}

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[urepo.Repo], hasher Hasher, signer TokenSigner) *Svc {
	if db == nil {
		panic("auth.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("auth.Service requires a non nil users Repo binder")
	}
	if hasher == nil {
		panic("auth.Service requires a non nil Hasher")
	}
	if signer == nil {
		panic("auth.Service requires a non nil TokenSigner")
	}
	return &Svc{binder: binder, db: db, hasher: hasher, signer: signer}
}

func (s *Svc) repo() urepo.Repo { return s.binder.Bind(s.db) }

// Register creates a new account. The email is pre-checked for fast
// feedback; the unique index remains the final arbiter for races
func (s *Svc) Register(ctx context.Context, in domain.RegisterInput) outcome.Result[udom.User] {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return outcome.Invalidf[udom.User]("email must not be blank")
	}
	role := in.Role
	if role == "" {
		role = udom.RoleViewer
	}
	if !udom.ValidRole(role) {
		return outcome.Invalidf[udom.User]("role must be one of viewer, editor, admin")
	}

	taken, err := s.repo().EmailTaken(ctx, email, 0)
	if err != nil {
		return outcome.Fail[udom.User](ctx, err)
	}
	if taken {
		return outcome.Conflictf[udom.User]("email %q is already registered", email)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return outcome.Fail[udom.User](ctx, err)
	}

	u, err := s.repo().Insert(ctx, email, hash, role)
	if err != nil {
		if perr.IsDuplicateKey(err) {
			return outcome.Conflictf[udom.User]("email %q is already registered", email)
		}
		return outcome.Fail[udom.User](ctx, err)
	}
	return outcome.Created(u)
}

// Login verifies credentials and mints a bearer token
func (s *Svc) Login(ctx context.Context, in domain.LoginInput) outcome.Result[domain.Session] {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	u, err := s.repo().GetByEmail(ctx, email)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return outcome.NotFoundf[domain.Session]("no account registered for %q", email)
		}
		return outcome.Fail[domain.Session](ctx, err)
	}

	if !s.hasher.Compare(u.PasswordHash, in.Password) {
		return outcome.Invalidf[domain.Session]("incorrect password")
	}

	tok, exp, err := s.signer.Sign(u.ID, u.Email, u.Role)
	if err != nil {
		return outcome.Fail[domain.Session](ctx, err)
	}
	return outcome.OK(domain.Session{Token: tok, ExpiresAt: exp, User: u})
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/outcome"
	"roster/internal/platform/store"
	"roster/internal/services/auth/domain"
	udom "roster/internal/services/users/domain"
	urepo "roster/internal/services/users/repo"
)

type nopDB struct{}

func (nopDB) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopDB) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (nopDB) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (nopDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error  { return fn(nopDB{}) }

type fakeHasher struct{}

func (fakeHasher) Hash(pw string) (string, error) { return "hashed:" + pw, nil }
func (fakeHasher) Compare(hash, pw string) bool   { return hash == "hashed:"+pw }

type fakeSigner struct{ signed bool }

func (f *fakeSigner) Sign(userID int64, email, role string) (string, time.Time, error) {
	f.signed = true
	return "token-for-" + email, time.Now().Add(time.Hour), nil
}

type fakeRepo struct {
	byEmail    udom.User
	byEmailErr error

	insertOut  udom.User
	insertErr  error
	insertRole string

	taken    bool
	takenErr error
}

func (f *fakeRepo) List(context.Context, udom.ListQuery) (repokit.PagedResult[udom.User], error) {
	return repokit.PagedResult[udom.User]{}, nil
}
func (f *fakeRepo) Get(context.Context, int64) (udom.User, error) { return udom.User{}, nil }
func (f *fakeRepo) GetByEmail(context.Context, string) (udom.User, error) {
	return f.byEmail, f.byEmailErr
}
func (f *fakeRepo) Insert(_ context.Context, _, _, role string) (udom.User, error) {
	f.insertRole = role
	return f.insertOut, f.insertErr
}
func (f *fakeRepo) Update(context.Context, int64, *string, *string, *string) (udom.User, error) {
	return udom.User{}, nil
}
func (f *fakeRepo) Delete(context.Context, int64) error { return nil }
func (f *fakeRepo) EmailTaken(context.Context, string, int64) (bool, error) {
	return f.taken, f.takenErr
}

func newSvc(f *fakeRepo, s *fakeSigner) *Svc {
	return New(nopDB{},
		repokit.BindFunc[urepo.Repo](func(repokit.Queryer) urepo.Repo { return f }),
		fakeHasher{}, s)
}

func TestRegister_DefaultsToViewer(t *testing.T) {
	f := &fakeRepo{insertOut: udom.User{ID: 1, Email: "a@b.c", Role: udom.RoleViewer}}
	res := newSvc(f, &fakeSigner{}).Register(context.Background(), domain.RegisterInput{
		Email: "a@b.c", Password: "hunter2hunter2",
	})
	if res.Status() != outcome.StatusCreated {
		t.Fatalf("status = %v, want Created", res.Status())
	}
	if f.insertRole != udom.RoleViewer {
		t.Fatalf("role = %q, want viewer", f.insertRole)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := &fakeRepo{taken: true}
	res := newSvc(f, &fakeSigner{}).Register(context.Background(), domain.RegisterInput{
		Email: "a@b.c", Password: "hunter2hunter2",
	})
	if res.Status() != outcome.StatusConflict {
		t.Fatalf("status = %v, want Conflict", res.Status())
	}
}

func TestRegister_DuplicateRaceLosesToConstraint(t *testing.T) {
	f := &fakeRepo{taken: false, insertErr: &pgconn.PgError{Code: "23505"}}
	res := newSvc(f, &fakeSigner{}).Register(context.Background(), domain.RegisterInput{
		Email: "a@b.c", Password: "hunter2hunter2",
	})
	if res.Status() != outcome.StatusConflict {
		t.Fatalf("status = %v, want Conflict", res.Status())
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	f := &fakeRepo{byEmailErr: perr.ErrNotFound}
	res := newSvc(f, &fakeSigner{}).Login(context.Background(), domain.LoginInput{
		Email: "ghost@b.c", Password: "whatever",
	})
	if res.Status() != outcome.StatusNotFound {
		t.Fatalf("status = %v, want NotFound", res.Status())
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := &fakeRepo{byEmail: udom.User{ID: 1, Email: "a@b.c", PasswordHash: "hashed:right"}}
	s := &fakeSigner{}
	res := newSvc(f, s).Login(context.Background(), domain.LoginInput{
		Email: "a@b.c", Password: "wrong",
	})
	if res.Status() != outcome.StatusInvalidInput {
		t.Fatalf("status = %v, want InvalidInput", res.Status())
	}
	if s.signed {
		t.Fatal("no token may be minted for a failed login")
	}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeRepo{byEmail: udom.User{ID: 1, Email: "a@b.c", PasswordHash: "hashed:right", Role: udom.RoleAdmin}}
	res := newSvc(f, &fakeSigner{}).Login(context.Background(), domain.LoginInput{
		Email: "A@B.C", Password: "right",
	})
	if res.Status() != outcome.StatusSuccess {
		t.Fatalf("status = %v, want Success", res.Status())
	}
	sess, ok := res.Data()
	if !ok || sess.Token == "" {
		t.Fatal("login must return a session with a token")
	}
	if sess.User.Role != udom.RoleAdmin {
		t.Fatalf("session role = %q, want admin", sess.User.Role)
	}
}

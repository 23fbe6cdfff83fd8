package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"roster/internal/modkit/repokit"
	perr "roster/internal/platform/errors"
	"roster/internal/platform/outcome"
	"roster/internal/platform/store"
	"roster/internal/services/profiles/domain"
	"roster/internal/services/profiles/repo"
)

type nopDB struct{}

func (nopDB) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopDB) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (nopDB) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (nopDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error  { return fn(nopDB{}) }

type fakeRepo struct {
	listPage repokit.PagedResult[domain.Profile]
	listErr  error

	getOut domain.Profile
	getErr error

	insertOut domain.Profile
	insertErr error

	updateOut  domain.Profile
	updateErr  error
	updateName *string

	deleteErr error

	taken    bool
	takenErr error
}

func (f *fakeRepo) List(context.Context, domain.ListQuery) (repokit.PagedResult[domain.Profile], error) {
	return f.listPage, f.listErr
}
func (f *fakeRepo) Get(context.Context, int64) (domain.Profile, error) { return f.getOut, f.getErr }
func (f *fakeRepo) Insert(context.Context, string) (domain.Profile, error) {
	return f.insertOut, f.insertErr
}
func (f *fakeRepo) Update(_ context.Context, _ int64, name *string) (domain.Profile, error) {
	f.updateName = name
	return f.updateOut, f.updateErr
}
func (f *fakeRepo) Delete(context.Context, int64) error { return f.deleteErr }
func (f *fakeRepo) NameTaken(context.Context, string, int64) (bool, error) {
	return f.taken, f.takenErr
}

func newSvc(f *fakeRepo) *Svc {
	return New(nopDB{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f }))
}

func TestCreate_Exclusivity(t *testing.T) {
	f := &fakeRepo{insertOut: domain.Profile{ID: 1, Name: "engineering"}}
	res := newSvc(f).Create(context.Background(), domain.CreateProfileInput{Name: "engineering"})

	if res.Status() != outcome.StatusCreated {
		t.Fatalf("status = %v, want Created", res.Status())
	}
	if _, ok := res.Data(); !ok {
		t.Fatal("created result must carry data")
	}
	if res.Message() != "" {
		t.Fatalf("created result must not carry a message, got %q", res.Message())
	}
}

func TestCreate_BlankName(t *testing.T) {
	res := newSvc(&fakeRepo{}).Create(context.Background(), domain.CreateProfileInput{Name: "   "})
	if res.Status() != outcome.StatusInvalidInput {
		t.Fatalf("status = %v, want InvalidInput", res.Status())
	}
	if _, ok := res.Data(); ok {
		t.Fatal("failure result must not carry data")
	}
}

func TestCreate_PreCheckConflict(t *testing.T) {
	f := &fakeRepo{taken: true}
	res := newSvc(f).Create(context.Background(), domain.CreateProfileInput{Name: "ops"})
	if res.Status() != outcome.StatusConflict {
		t.Fatalf("status = %v, want Conflict", res.Status())
	}
}

func TestCreate_UniqueRaceLosesToConstraint(t *testing.T) {
	// pre-check passes, the unique index still fires
	f := &fakeRepo{taken: false, insertErr: &pgconn.PgError{Code: "23505"}}
	res := newSvc(f).Create(context.Background(), domain.CreateProfileInput{Name: "ops"})
	if res.Status() != outcome.StatusConflict {
		t.Fatalf("status = %v, want Conflict", res.Status())
	}
}

func TestGet_NotFound(t *testing.T) {
	f := &fakeRepo{getErr: perr.ErrNotFound}
	res := newSvc(f).Get(context.Background(), 42)
	if res.Status() != outcome.StatusNotFound {
		t.Fatalf("status = %v, want NotFound", res.Status())
	}
	if res.Message() == "" {
		t.Fatal("not found result should carry a message")
	}
}

func TestUpdate_NilFieldLeavesNameUntouched(t *testing.T) {
	f := &fakeRepo{updateOut: domain.Profile{ID: 7, Name: "kept"}}
	res := newSvc(f).Update(context.Background(), 7, domain.UpdateProfileInput{})
	if res.Status() != outcome.StatusSuccess {
		t.Fatalf("status = %v, want Success", res.Status())
	}
	if f.updateName != nil {
		t.Fatalf("nil input name must stay nil through the repo, got %q", *f.updateName)
	}
}

func TestUpdate_BlankName(t *testing.T) {
	blank := "  "
	res := newSvc(&fakeRepo{}).Update(context.Background(), 7, domain.UpdateProfileInput{Name: &blank})
	if res.Status() != outcome.StatusInvalidInput {
		t.Fatalf("status = %v, want InvalidInput", res.Status())
	}
}

func TestDelete_Outcomes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want outcome.Status
	}{
		{"ok", nil, outcome.StatusDeleted},
		{"missing", perr.ErrNotFound, outcome.StatusNotFound},
		{"referenced", &pgconn.PgError{Code: "23503"}, outcome.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := newSvc(&fakeRepo{deleteErr: tc.err}).Delete(context.Background(), 3)
			if res.Status() != tc.want {
				t.Fatalf("status = %v, want %v", res.Status(), tc.want)
			}
			if _, ok := res.Data(); ok {
				t.Fatal("delete result must never carry data")
			}
		})
	}
}

func TestList_ServerErrorDoesNotLeak(t *testing.T) {
	f := &fakeRepo{listErr: perr.DBf("pq: connection refused")}
	res := newSvc(f).List(context.Background(), domain.ListQuery{})
	if res.Status() != outcome.StatusError {
		t.Fatalf("status = %v, want Error", res.Status())
	}
	if res.Message() == "pq: connection refused" {
		t.Fatal("raw store error must not leak to callers")
	}
}

package outcome

import (
	"bytes"
	"context"
	stderrs "errors"
	"strings"
	"testing"

	perr "roster/internal/platform/errors"
	"roster/internal/platform/logger"
)

type widget struct {
	ID   int
	Name string
}

func TestStatusNamesAndFamilies(t *testing.T) {
	cases := []struct {
		status Status
		name   string
		ok     bool
	}{
		{StatusSuccess, "Success", true},
		{StatusCreated, "Created", true},
		{StatusDeleted, "Deleted", true},
		{StatusNotFound, "NotFound", false},
		{StatusInvalidInput, "InvalidInput", false},
		{StatusUnauthorized, "Unauthorized", false},
		{StatusForbidden, "Forbidden", false},
		{StatusConflict, "Conflict", false},
		{StatusError, "Error", false},
		{Status(200), "Error", false}, // unknown values collapse to Error
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.name {
			t.Fatalf("Status(%d).String() = %q, want %q", c.status, got, c.name)
		}
		if got := c.status.OK(); got != c.ok {
			t.Fatalf("Status(%d).OK() = %v, want %v", c.status, got, c.ok)
		}
	}
}

// data present iff status is Success or Created; message present otherwise
func TestExclusivityInvariant(t *testing.T) {
	w := widget{ID: 1, Name: "dev"}

	for _, r := range []Result[widget]{OK(w), Created(w)} {
		if d, ok := r.Data(); !ok || d != w {
			t.Fatalf("%s: expected payload", r.Status())
		}
		if r.Message() != "" {
			t.Fatalf("%s: success family must not carry a message", r.Status())
		}
	}

	failures := []Result[widget]{
		Deleted[widget](),
		NotFoundf[widget]("widget 1 not found"),
		Invalidf[widget]("bad ref"),
		Conflictf[widget]("name taken"),
		Unauthorizedf[widget]("no token"),
		Forbidden[widget](),
		ServerError[widget](),
	}
	for _, r := range failures {
		if _, ok := r.Data(); ok {
			t.Fatalf("%s: must not carry a payload", r.Status())
		}
	}
}

func TestMessageFormatting(t *testing.T) {
	r := NotFoundf[widget]("widget with id %d not found", 7)
	if r.Message() != "widget with id 7 not found" {
		t.Fatalf("message = %q", r.Message())
	}
	if r.Status() != StatusNotFound || r.OK() {
		t.Fatalf("status mismatch: %v", r.Status())
	}

	// Error outcomes never leak detail
	e := ServerError[widget]()
	if e.Message() != "an unexpected server error occurred" {
		t.Fatalf("ServerError message = %q", e.Message())
	}
}

func TestFromErrorReclassification(t *testing.T) {
	cases := []struct {
		err  error
		want Status
	}{
		{perr.NotFoundf("row gone"), StatusNotFound},
		{perr.DuplicateKeyf("email taken"), StatusConflict},
		{perr.Conflictf("blocked"), StatusConflict},
		{perr.InvalidArgf("bad id"), StatusInvalidInput},
		{perr.Newf(perr.ErrorCodeValidation, "short"), StatusInvalidInput},
		{perr.JSONErrf("trailing data"), StatusInvalidInput},
		{perr.Unauthorizedf("no token"), StatusUnauthorized},
		{perr.Forbiddenf("nope"), StatusForbidden},
		{perr.DBf("pool exhausted"), StatusError},
		{perr.Unavailablef("starting up"), StatusError},
		{stderrs.New("plain"), StatusError},
	}
	for _, c := range cases {
		r := FromError[widget](c.err)
		if r.Status() != c.want {
			t.Fatalf("FromError(%v) = %v, want %v", c.err, r.Status(), c.want)
		}
		if _, ok := r.Data(); ok {
			t.Fatalf("FromError must never carry a payload")
		}
	}

	// store detail must not leak through Error outcomes
	r := FromError[widget](perr.DBf("SQLSTATE 57014 at line 3"))
	if r.Message() != "an unexpected server error occurred" {
		t.Fatalf("leaked store detail: %q", r.Message())
	}

	// domain statuses keep their messages
	if m := FromError[widget](perr.DuplicateKeyf("email taken")).Message(); m != "email taken" {
		t.Fatalf("conflict message = %q", m)
	}
}

func TestMap(t *testing.T) {
	r := Created(widget{ID: 2, Name: "qa"})
	mapped := Map(r, func(w widget) string { return w.Name })
	if mapped.Status() != StatusCreated {
		t.Fatalf("Map changed status: %v", mapped.Status())
	}
	if d, ok := mapped.Data(); !ok || d != "qa" {
		t.Fatalf("Map payload = %q, ok=%v", d, ok)
	}

	nf := NotFoundf[widget]("gone")
	m2 := Map(nf, func(w widget) string { return w.Name })
	if _, ok := m2.Data(); ok || m2.Message() != "gone" || m2.Status() != StatusNotFound {
		t.Fatalf("Map should preserve failure outcomes")
	}
}

func TestFail_LogsUnclassifiedKeepsGenericMessage(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Level: "info", Format: "json", Writer: &buf})

	r := Fail[widget](context.Background(), stderrs.New("pq: connection refused"))
	if r.Status() != StatusError {
		t.Fatalf("status = %v, want Error", r.Status())
	}
	if strings.Contains(r.Message(), "refused") {
		t.Fatalf("client message leaks cause: %q", r.Message())
	}
	if !strings.Contains(buf.String(), "connection refused") {
		t.Fatalf("cause not logged: %s", buf.String())
	}

	// classified outcomes stay quiet
	buf.Reset()
	r2 := Fail[widget](context.Background(), perr.NotFoundf("widget 4 not found"))
	if r2.Status() != StatusNotFound || r2.Message() != "widget 4 not found" {
		t.Fatalf("classified outcome mangled: %v %q", r2.Status(), r2.Message())
	}
	if buf.Len() != 0 {
		t.Fatalf("classified outcome must not log, got %s", buf.String())
	}
}

package httpkit

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"roster/internal/modkit/repokit"
	perrs "roster/internal/platform/errors"
	"roster/internal/platform/net/http/bind"
)

// ListSpec parses the shared paging and sorting keys (page, pageSize,
// sortBy, order) into a QuerySpec. Values are not clamped here; the repo
// layer normalizes against its own sort allow-list
func ListSpec(r *http.Request) (repokit.QuerySpec, error) {
	var spec repokit.QuerySpec
	var err error

	if spec.Page, err = bind.QueryInt(r, "page", repokit.DefaultPage); err != nil {
		return spec, err
	}
	if spec.PageSize, err = bind.QueryInt(r, "pageSize", repokit.DefaultPageSize); err != nil {
		return spec, err
	}
	spec.SortBy = bind.QueryString(r, "sortBy", "")
	spec.SortDesc = strings.EqualFold(bind.QueryString(r, "order", ""), "desc")
	return spec, nil
}

// PathInt64 reads a chi URL parameter as an int64 id
func PathInt64(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	if raw == "" {
		return 0, perrs.InvalidArgf("%s is required", key)
	}
	id, err := bind.ParseInt64(raw)
	if err != nil {
		return 0, perrs.InvalidArgf("%s must be an integer", key)
	}
	return id, nil
}

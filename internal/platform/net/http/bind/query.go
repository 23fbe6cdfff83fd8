package bind

import (
	"net/http"
	"strconv"
	"strings"

	perr "roster/internal/platform/errors"
)

// QueryString returns the trimmed query value or def when absent or blank
func QueryString(r *http.Request, key, def string) string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def
	}
	return v
}

// QueryStringPtr returns a pointer to the trimmed query value, nil when absent or blank
func QueryStringPtr(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// QueryInt parses an integer query value, falling back to def when absent.
// A present but malformed value is a validation error
func QueryInt(r *http.Request, key string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, perr.InvalidArgf("%s must be an integer", key)
	}
	return n, nil
}

// QueryIntPtr parses an optional integer query value, nil when absent
func QueryIntPtr(r *http.Request, key string) (*int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, perr.InvalidArgf("%s must be an integer", key)
	}
	return &n, nil
}

// QueryInt64Ptr parses an optional 64-bit integer query value, nil when absent
func QueryInt64Ptr(r *http.Request, key string) (*int64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil
	}
	n, err := ParseInt64(v)
	if err != nil {
		return nil, perr.InvalidArgf("%s must be an integer", key)
	}
	return &n, nil
}

// ParseInt64 parses a decimal int64, for path and query fragments
func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// QueryFloatPtr parses an optional numeric query value, nil when absent
func QueryFloatPtr(r *http.Request, key string) (*float64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, perr.InvalidArgf("%s must be a number", key)
	}
	return &f, nil
}

// QueryBool parses a boolean query value, def when absent.
// Accepts the strconv boolean spellings plus "desc" conventions handled by callers
func QueryBool(r *http.Request, key string, def bool) (bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, perr.InvalidArgf("%s must be a boolean", key)
	}
	return b, nil
}

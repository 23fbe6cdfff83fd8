package httpkit

import (
	"net/http"
	"strings"

	perrs "roster/internal/platform/errors"
	pnet "roster/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// Email returns the authenticated user email from the request context
func Email(r *http.Request) (string, error) {
	em := pnet.UserEmail(r.Context())
	if em == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return em, nil
}

// Role returns the authenticated user role from the request context
func Role(r *http.Request) (string, error) {
	role := pnet.UserRole(r.Context())
	if role == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return role, nil
}

// MustUser returns the authenticated user id or panics
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// MustRole returns the authenticated user role or panics
func MustRole(r *http.Request) string {
	role, err := Role(r)
	if err != nil {
		panic(err)
	}
	return role
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// MustJWT returns the raw bearer token or panics
// only use on routes protected by the auth middleware
func MustJWT(r *http.Request) string {
	raw, err := JWT(r)
	if err != nil {
		panic(err)
	}
	return raw
}

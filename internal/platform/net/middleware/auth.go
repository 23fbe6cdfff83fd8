package middleware

import (
	"net/http"

	perr "roster/internal/platform/errors"
	pnet "roster/internal/platform/net"
)

// Principal is the authenticated identity extracted from a request
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// AuthPort is the seam the auth service implements
type AuthPort interface {
	// Parse returns the authenticated principal from the request or an error
	Parse(r *http.Request) (Principal, error)
}

// Renderer writes an error response. Callers wire the shared response table
// here so middleware rejections and handler failures share one rendering path
type Renderer func(w http.ResponseWriter, r *http.Request, err error)

// Auth rejects requests the port cannot authenticate and stores the
// principal on context. A nil port passes everything through
func Auth(p AuthPort, render Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			pr, err := p.Parse(r)
			if err != nil {
				render(w, r, err)
				return
			}
			ctx := pnet.WithUser(r.Context(), pr.UserID, pr.Email, pr.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows only principals whose role is in the allow list.
// An unauthenticated request gets 401, a wrong role gets 403
func RequireRole(render Renderer, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if pnet.UserID(ctx) == "" {
				render(w, r, perr.Unauthorizedf("missing bearer token"))
				return
			}
			if _, ok := allowed[pnet.UserRole(ctx)]; !ok {
				render(w, r, perr.Forbiddenf("insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

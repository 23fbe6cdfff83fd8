// Package domain holds user types and ports
package domain

import (
	"context"

	"roster/internal/modkit/repokit"
	"roster/internal/platform/outcome"
)

// Roles recognized by the API, in ascending privilege order
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// ValidRole reports whether role is one of the recognized roles
func ValidRole(role string) bool {
	return role == RoleViewer || role == RoleEditor || role == RoleAdmin
}

// User is an API account. The password hash never leaves the server
type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

// UpdateUserInput is the payload for Update; nil fields are left unchanged
type UpdateUserInput struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=viewer editor admin"`
}

// ListQuery carries the optional filters plus the paging window
type ListQuery struct {
	Email *string
	Role  *string
	Spec  repokit.QuerySpec
}

// ServicePort is the public surface of the users service.
// Creation happens through auth registration, not here
type ServicePort interface {
	List(ctx context.Context, q ListQuery) outcome.Result[repokit.PagedResult[User]]
	Get(ctx context.Context, id int64) outcome.Result[User]
	Update(ctx context.Context, id int64, in UpdateUserInput) outcome.Result[User]
	Delete(ctx context.Context, id int64) outcome.Result[struct{}]
}

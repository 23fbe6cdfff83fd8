// Package domain holds profile types and ports
package domain

import (
	"context"

	"roster/internal/modkit/repokit"
	"roster/internal/platform/outcome"
)

// Profile is a job profile employees are assigned to
type Profile struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CreateProfileInput is the payload for Create
type CreateProfileInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpdateProfileInput is the payload for Update; nil fields are left unchanged
type UpdateProfileInput struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// ListQuery carries the optional filter plus the paging window
type ListQuery struct {
	Name *string
	Spec repokit.QuerySpec
}

// ServicePort is the public surface of the profiles service
type ServicePort interface {
	List(ctx context.Context, q ListQuery) outcome.Result[repokit.PagedResult[Profile]]
	Get(ctx context.Context, id int64) outcome.Result[Profile]
	Create(ctx context.Context, in CreateProfileInput) outcome.Result[Profile]
	Update(ctx context.Context, id int64, in UpdateProfileInput) outcome.Result[Profile]
	Delete(ctx context.Context, id int64) outcome.Result[struct{}]
}

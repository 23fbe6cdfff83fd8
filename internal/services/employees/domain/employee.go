// Package domain holds employee types and ports
package domain

import (
	"context"

	"roster/internal/modkit/repokit"
	"roster/internal/platform/outcome"
)

// Employee is a staff member assigned to a profile.
// ProfileName is denormalized from the profiles join for read views
type Employee struct {
	ID          int64  `json:"id" db:"id"`
	FullName    string `json:"full_name" db:"full_name"`
	Salary      int    `json:"salary" db:"salary"`
	ProfileID   int64  `json:"profile_id" db:"profile_id"`
	ProfileName string `json:"profile_name" db:"profile_name"`
}

// CreateEmployeeInput is the payload for Create
type CreateEmployeeInput struct {
	FullName  string `json:"full_name" validate:"required,min=1,max=200"`
	Salary    int    `json:"salary" validate:"gte=0"`
	ProfileID int64  `json:"profile_id" validate:"required,gt=0"`
}

// UpdateEmployeeInput is the payload for Update; nil fields are left unchanged
type UpdateEmployeeInput struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Salary    *int    `json:"salary" validate:"omitempty,gte=0"`
	ProfileID *int64  `json:"profile_id" validate:"omitempty,gt=0"`
}

// ListQuery carries the optional filters plus the paging window.
// MinSalary and MaxSalary are inclusive bounds
type ListQuery struct {
	FullName  *string
	MinSalary *int
	MaxSalary *int
	ProfileID *int64
	Spec      repokit.QuerySpec
}

// ServicePort is the public surface of the employees service
type ServicePort interface {
	List(ctx context.Context, q ListQuery) outcome.Result[repokit.PagedResult[Employee]]
	Get(ctx context.Context, id int64) outcome.Result[Employee]
	Create(ctx context.Context, in CreateEmployeeInput) outcome.Result[Employee]
	Update(ctx context.Context, id int64, in UpdateEmployeeInput) outcome.Result[Employee]
	Delete(ctx context.Context, id int64) outcome.Result[struct{}]
}

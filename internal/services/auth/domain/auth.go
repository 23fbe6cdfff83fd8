// Package domain holds auth types and ports
package domain

import (
	"context"
	"time"

	"roster/internal/platform/outcome"
	udom "roster/internal/services/users/domain"
)

// RegisterInput is the payload for Register. Role defaults to viewer
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=viewer editor admin"`
}

// LoginInput is the payload for Login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is a successful login: a signed bearer token plus the account view
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      udom.User `json:"user"`
}

// ServicePort is the public surface of the auth service
type ServicePort interface {
	Register(ctx context.Context, in RegisterInput) outcome.Result[udom.User]
	Login(ctx context.Context, in LoginInput) outcome.Result[Session]
}

// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyUserID    ctxKey = "user_id"
	keyUserEmail ctxKey = "user_email"
	keyUserRole  ctxKey = "user_role"
)

// WithRequest annotates context with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithUser annotates context with the authenticated principal
func WithUser(ctx context.Context, userID, email, role string) context.Context {
	if userID != "" {
		ctx = context.WithValue(ctx, keyUserID, userID)
	}
	if email != "" {
		ctx = context.WithValue(ctx, keyUserEmail, email)
	}
	if role != "" {
		ctx = context.WithValue(ctx, keyUserRole, role)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// UserID returns the user id on the context if present
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(keyUserID).(string); ok {
		return v
	}
	return ""
}

// UserEmail returns the user email on the context if present
func UserEmail(ctx context.Context) string {
	if v, ok := ctx.Value(keyUserEmail).(string); ok {
		return v
	}
	return ""
}

// UserRole returns the user role on the context if present
func UserRole(ctx context.Context) string {
	if v, ok := ctx.Value(keyUserRole).(string); ok {
		return v
	}
	return ""
}

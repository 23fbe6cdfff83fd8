// Package outcome provides the uniform result envelope returned by every
// service operation. Expected business conditions (not found, conflict,
// invalid input) travel as statuses, never as Go errors; errors are reserved
// for store failures and programming defects and are reclassified via FromError
package outcome

import (
	"context"
	"fmt"

	perr "roster/internal/platform/errors"
	"roster/internal/platform/logger"
)

// Status is the closed set of outcome kinds
// Extending it requires a matching rule in the response translator
type Status uint8

const (
	// StatusSuccess means the operation completed with a payload
	StatusSuccess Status = iota

	// StatusCreated means a new entity was persisted; payload holds its representation
	StatusCreated

	// StatusDeleted means an entity was removed; no payload
	StatusDeleted

	// StatusNotFound means the referenced entity id does not exist
	StatusNotFound

	// StatusInvalidInput means a domain precondition failed
	StatusInvalidInput

	// StatusUnauthorized is for authorization outcomes the service itself determines
	StatusUnauthorized

	// StatusForbidden is for access the service itself denies
	StatusForbidden

	// StatusConflict means a uniqueness or referential constraint blocks the operation
	StatusConflict

	// StatusError is an unanticipated failure with a non-leaking message
	StatusError
)

// String returns the stable wire name of the status
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusCreated:
		return "Created"
	case StatusDeleted:
		return "Deleted"
	case StatusNotFound:
		return "NotFound"
	case StatusInvalidInput:
		return "InvalidInput"
	case StatusUnauthorized:
		return "Unauthorized"
	case StatusForbidden:
		return "Forbidden"
	case StatusConflict:
		return "Conflict"
	default:
		return "Error"
	}
}

// OK reports whether the status belongs to the success family
func (s Status) OK() bool {
	return s == StatusSuccess || s == StatusCreated || s == StatusDeleted
}

// genericErrMsg is the only message StatusError ever carries to callers
const genericErrMsg = "an unexpected server error occurred"

// Result is the outcome of a single service operation
// Constructed once per call, consumed immediately by the response translator.
// The constructors enforce the exclusivity invariant: data is present iff the
// status is Success or Created; a message is present otherwise
type Result[T any] struct {
	status  Status
	data    T
	hasData bool
	msg     string
}

// OK returns a Success result carrying data
func OK[T any](data T) Result[T] {
	return Result[T]{status: StatusSuccess, data: data, hasData: true}
}

// Created returns a Created result carrying the new representation
func Created[T any](data T) Result[T] {
	return Result[T]{status: StatusCreated, data: data, hasData: true}
}

// Deleted returns a Deleted result with no payload
func Deleted[T any]() Result[T] {
	return Result[T]{status: StatusDeleted}
}

// NotFoundf returns a NotFound result with a formatted message
func NotFoundf[T any](format string, a ...any) Result[T] {
	return Result[T]{status: StatusNotFound, msg: fmt.Sprintf(format, a...)}
}

// Invalidf returns an InvalidInput result with a formatted message
func Invalidf[T any](format string, a ...any) Result[T] {
	return Result[T]{status: StatusInvalidInput, msg: fmt.Sprintf(format, a...)}
}

// Conflictf returns a Conflict result with a formatted message
func Conflictf[T any](format string, a ...any) Result[T] {
	return Result[T]{status: StatusConflict, msg: fmt.Sprintf(format, a...)}
}

// Unauthorizedf returns an Unauthorized result with a formatted message
func Unauthorizedf[T any](format string, a ...any) Result[T] {
	return Result[T]{status: StatusUnauthorized, msg: fmt.Sprintf(format, a...)}
}

// Forbidden returns a Forbidden result; the translator renders it without a body
func Forbidden[T any]() Result[T] {
	return Result[T]{status: StatusForbidden}
}

// ServerError returns an Error result carrying only the generic non-leaking
// message. Log the underlying cause before returning this
func ServerError[T any]() Result[T] {
	return Result[T]{status: StatusError, msg: genericErrMsg}
}

// FromError reclassifies a store-level or platform error into a domain outcome.
// Constraint failures become Conflict or InvalidInput based on the constraint
// kind; anything unclassified surfaces as Error with the generic message
func FromError[T any](err error) Result[T] {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeNotFound:
		return Result[T]{status: StatusNotFound, msg: perr.WireFrom(err).Message}
	case perr.ErrorCodeDuplicateKey, perr.ErrorCodeConflict:
		return Result[T]{status: StatusConflict, msg: perr.WireFrom(err).Message}
	case perr.ErrorCodeInvalidArgument, perr.ErrorCodeValidation, perr.ErrorCodeJSON:
		return Result[T]{status: StatusInvalidInput, msg: perr.WireFrom(err).Message}
	case perr.ErrorCodeUnauthorized:
		return Result[T]{status: StatusUnauthorized, msg: perr.WireFrom(err).Message}
	case perr.ErrorCodeForbidden:
		return Result[T]{status: StatusForbidden}
	default:
		return Result[T]{status: StatusError, msg: genericErrMsg}
	}
}

// Fail reclassifies err like FromError and logs unclassified failures with
// full detail. Services use this on their store/adapter error paths so the
// client sees only the generic message while the cause lands in the log
func Fail[T any](ctx context.Context, err error) Result[T] {
	r := FromError[T](err)
	if r.status == StatusError {
		logger.C(ctx).Error().Err(err).Msg("unclassified service error")
	}
	return r
}

// Status returns the outcome kind
func (r Result[T]) Status() Status { return r.status }

// Data returns the payload and whether one is present
func (r Result[T]) Data() (T, bool) { return r.data, r.hasData }

// Message returns the human-facing message, empty for the success family
func (r Result[T]) Message() string { return r.msg }

// OK reports whether the outcome belongs to the success family
func (r Result[T]) OK() bool { return r.status.OK() }

// Map converts a Result[T] into a Result[U], preserving status and message.
// fn runs only when a payload is present
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := Result[U]{status: r.status, msg: r.msg}
	if r.hasData {
		out.data = fn(r.data)
		out.hasData = true
	}
	return out
}

package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the request conflicts with existing data,
// e.g. a duplicate payment or a reused transaction id.
var ErrConflict = errors.New("a data conflict occurred")

// ErrPreconditionFailed indicates a required precondition was not met,
// e.g. approving an application whose payment is still pending.
var ErrPreconditionFailed = errors.New("precondition failed")

// ErrForbidden indicates the caller is not allowed to access the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected server-side failure.
var ErrInternal = errors.New("internal error")

package services

import "errors"

// Error identifiers surfaced to API callers.
// Anything not listed here is reported as an internal error.
var (
	ErrNotAuthorized    = errors.New("you are not authorized")
	ErrAccountNotFound  = errors.New("user does not exist")
	ErrTripNotFound     = errors.New("trip not found")
	ErrStepNotFound     = errors.New("step not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrEmailExists      = errors.New("email already exists")
	ErrUsernameExists   = errors.New("this username already exists")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrSelfRelation     = errors.New("cannot follow yourself")
)

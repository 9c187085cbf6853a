package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is hit
	// without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrMissingUserID signals that the auth middleware did not place an
	// account id in the request context. Indicates a routing bug.
	ErrMissingUserID = errors.New("no user id in request context")
)

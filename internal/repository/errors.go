// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as services
// and handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors. For example, ErrUsernameExists signals
// that a registration lost against an existing account, while the not-found
// values mark lookups for rows that do not exist.
package repository

import "errors"

// ErrEventNotFound is returned when an event lookup matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrEventNotFound = errors.New("event not found")

// ErrMemberNotFound is returned when a member lookup matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrMemberNotFound = errors.New("member not found")

// ErrUserNotFound is returned when a login account lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// ErrUsernameExists is returned when a registration would reuse a taken
// username. Handlers should translate this into an HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrEventExists is returned when an insert would place a second event at
// the same date and location. Handlers should translate this into an HTTP
// 409 response.
var ErrEventExists = errors.New("event already exists at this date and location")

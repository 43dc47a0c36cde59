// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a
// uniqueness conflict during registration must surface as an HTTP 409
// naming the offending field, while a lookup miss becomes a 404.
package repository

import "errors"

// ErrUsernameExists is returned when an insert or update would violate
// the unique index on users.username. Handlers translate this into an
// HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when an insert or update would violate the
// unique index on users.email. Handlers translate this into an HTTP 409
// response.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a record with the requested id (or email,
// for login lookups) does not exist. Handlers translate this into an
// HTTP 404 response.
var ErrNotFound = errors.New("not found")

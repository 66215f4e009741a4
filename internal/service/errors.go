// Package service implements the business rules of the platform: input
// validation, conflict detection, registration, and mapping of stored
// entities to response shapes. Each failure is reported as one of the
// sentinel errors below (or one from the repository/storage packages) so
// handlers can pick a status code with errors.Is.
package service

import "errors"

// ErrPageOutOfRange is returned when a page number is negative or a page
// size is outside (0, MaxPageSize]. The check runs before any query.
var ErrPageOutOfRange = errors.New("page out of range")

// ErrEventConflict is returned when an event already occupies the exact
// same date and location.
var ErrEventConflict = errors.New("an event already exists at this location and time")

// ErrInvalidDateTime is returned when an event's date is not strictly in
// the future.
var ErrInvalidDateTime = errors.New("event date must be in the future")

// ErrInvalidPrice is returned when the ticket price is not strictly
// positive.
var ErrInvalidPrice = errors.New("price must be greater than zero")

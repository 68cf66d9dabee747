package domain

import "errors"

// Validation errors reject the request synchronously with no state change.
var (
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidTime     = errors.New("times must look like 2025-08-23T14:00")
	ErrEndBeforeStart  = errors.New("end must be after start")
)

// Conflict errors carry the user-facing reason for the rejection.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrChannelBusy      = errors.New("someone is already clocked in in this channel")
	ErrNoActiveShift    = errors.New("no active shift found or not clocked in")
)

// Clock-out confirmation outcomes. An expired token and a foreign responder
// are distinct: the latter must not consume the pending session.
var (
	ErrConfirmationExpired = errors.New("clock-out confirmation expired")
	ErrNotYourConfirmation = errors.New("this confirmation belongs to another user")
)

package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrSettingsNotFound    = errors.New("site settings not found")
	ErrInviteNotFound      = errors.New("calendar invite not found")
)

var (
	ErrReservationNotPending = errors.New("reservation is not in pending status")
	ErrReservationCancelled  = errors.New("reservation is already cancelled")
	ErrStatusConflict        = errors.New("reservation status changed concurrently")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrUnauthorized  = errors.New("admin credentials required")
	ErrAdminDisabled = errors.New("admin account is disabled")
)

var (
	ErrValidation  = errors.New("validation error")
	ErrInvalidDate = errors.New("invalid date")
)

// Calendar invite pipeline failures. Both surface as 5xx at the HTTP boundary.
var (
	ErrInviteEncoding = errors.New("calendar invite encoding failed")
	ErrInviteStorage  = errors.New("calendar invite storage failed")
)

package domain

import "errors"

// Sentinel errors for the identity domain. Use errors.Is() to check these.
// The set mirrors the credential failure modes the mobile client is written
// to distinguish, so each one keeps its own sentinel instead of collapsing
// into a generic auth error.
var (
	// ErrInvalidEmail indicates the e-mail address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrUserNotFound indicates no account exists for the given e-mail or id.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword indicates the password does not match the account.
	ErrWrongPassword = errors.New("wrong password")

	// ErrEmailAlreadyInUse indicates an account already exists for the e-mail.
	ErrEmailAlreadyInUse = errors.New("email already in use")

	// ErrWeakPassword indicates the password does not meet the minimum length.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrAccountDisabled indicates the account has been disabled.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrOperationNotAllowed indicates password sign-in is switched off.
	ErrOperationNotAllowed = errors.New("password sign-in is not enabled")
)

package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	identitydomain "github.com/aikombin/aikombin-server/services/identity/domain"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// User is the account aggregate for this bounded context.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Disabled     bool
	CreatedAt    time.Time
}

// NewUser constructs a User with a generated ID and current timestamp.
// The e-mail is normalized to lower case; the password hash must already
// be computed by the caller.
func NewUser(email, passwordHash string) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           uuid.New(),
		Email:        normalized,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// NormalizeEmail validates and lower-cases an e-mail address.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", identitydomain.ErrInvalidEmail
	}
	return strings.ToLower(email), nil
}

// ValidatePassword checks the minimum password policy.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return identitydomain.ErrWeakPassword
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/aikombin/aikombin-server/services/identity/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Save persists a new User. Returns ErrEmailAlreadyInUse when the
	// e-mail is already registered.
	Save(ctx context.Context, user *models.User) error

	// GetByEmail retrieves a User by normalized e-mail.
	// Returns ErrUserNotFound if no account exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID retrieves a User by id. Returns ErrUserNotFound if not found.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/aikombin/aikombin-server/pkg/database"
	identitydomain "github.com/aikombin/aikombin-server/services/identity/domain"
	"github.com/aikombin/aikombin-server/services/identity/domain/models"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(database *database.Database) *UserRepository {
	return &UserRepository{db: database}
}

const insertUser = `
INSERT INTO identity_users (id, email, password_hash, disabled, created_at)
VALUES ($1, $2, $3, $4, $5)`

// Save persists a new User.
// Returns ErrEmailAlreadyInUse on unique constraint violations.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	_, err := r.db.DB().ExecContext(ctx, insertUser,
		user.ID, user.Email, user.PasswordHash, user.Disabled, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return identitydomain.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const selectUserByEmail = `
SELECT id, email, password_hash, disabled, created_at
FROM identity_users
WHERE email = $1`

// GetByEmail retrieves a User by normalized e-mail.
// Returns ErrUserNotFound if no account exists.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx, selectUserByEmail, email)
	return scanUser(row)
}

const selectUserByID = `
SELECT id, email, password_hash, disabled, created_at
FROM identity_users
WHERE id = $1`

// GetByID retrieves a User by id. Returns ErrUserNotFound if not found.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.DB().QueryRowContext(ctx, selectUserByID, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Disabled, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identitydomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

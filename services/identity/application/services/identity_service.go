package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aikombin/aikombin-server/pkg/logger"
	"github.com/aikombin/aikombin-server/pkg/mailer"
	identitydomain "github.com/aikombin/aikombin-server/services/identity/domain"
	"github.com/aikombin/aikombin-server/services/identity/domain/models"
	"github.com/aikombin/aikombin-server/services/identity/domain/repositories"
)

// IdentityService handles account creation and credential checks.
// Session and bearer-token issuance live in the HTTP layer; this service
// only answers "who is this" questions.
type IdentityService struct {
	repo           repositories.UserRepository
	mail           mailer.Mailer
	log            logger.Logger
	passwordSignIn bool
}

// NewIdentityService wires an IdentityService. mail may be nil (no welcome
// e-mail is sent).
func NewIdentityService(repo repositories.UserRepository, mail mailer.Mailer, log logger.Logger, passwordSignIn bool) *IdentityService {
	return &IdentityService{
		repo:           repo,
		mail:           mail,
		log:            log,
		passwordSignIn: passwordSignIn,
	}
}

// SignUp registers a new account. The welcome e-mail is best-effort and never
// fails the registration.
func (s *IdentityService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	if !s.passwordSignIn {
		return nil, identitydomain.ErrOperationNotAllowed
	}
	if err := models.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := models.NewUser(email, string(hash))
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	if s.mail != nil {
		if err := s.mail.Send(user.Email, "Welcome to AIKombin", "Your closet is ready. Snap your first outfit!"); err != nil {
			s.log.WarnContext(ctx, "welcome mail failed", "user_id", user.ID, "error", err)
		}
	}
	return user, nil
}

// SignIn checks the credentials and returns the account on success.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	if !s.passwordSignIn {
		return nil, identitydomain.ErrOperationNotAllowed
	}

	normalized, err := models.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user.Disabled {
		return nil, identitydomain.ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, identitydomain.ErrWrongPassword
	}
	return user, nil
}

// CurrentUser loads the account for an authenticated user id.
func (s *IdentityService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Disabled {
		return nil, identitydomain.ErrAccountDisabled
	}
	return user, nil
}

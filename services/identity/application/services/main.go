package services

import (
	"github.com/aikombin/aikombin-server/pkg/app"
	"github.com/aikombin/aikombin-server/services/identity/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Identity *IdentityService
}

// New wires the identity application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		Identity: NewIdentityService(repo, a.Mailer, a.Logger, a.Config.PasswordAuthEnabled),
	}
}

package services

import (
	"github.com/aikombin/aikombin-server/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Closet *ClosetService
}

// New wires the closet application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	return &Services{
		Closet: NewClosetService(a.Records),
	}
}

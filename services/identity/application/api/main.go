package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/aikombin/aikombin-server/pkg/app"
	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/services/identity/application/handlers"
	appsvcs "github.com/aikombin/aikombin-server/services/identity/application/services"
)

// IdentityRoutes registers auth endpoints on the provided chi router.
// Sign-up and sign-in are public; the rest require a session.
func IdentityRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", handlers.NewPostSignUpHandler(svcs, a.SessionStore, a.Tokens).Execute)
		r.Post("/signin", handlers.NewPostSignInHandler(svcs, a.SessionStore, a.Tokens).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Post("/signout", handlers.NewPostSignOutHandler(a.SessionStore).Execute)
			r.Get("/me", handlers.NewGetMeHandler(svcs).Execute)
		})
	})
}

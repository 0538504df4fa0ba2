package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/aikombin/aikombin-server/pkg/app"
	"github.com/aikombin/aikombin-server/pkg/auth"
	closetappsvcs "github.com/aikombin/aikombin-server/services/closet/application/services"
	"github.com/aikombin/aikombin-server/services/outfit/application/handlers"
	appsvcs "github.com/aikombin/aikombin-server/services/outfit/application/services"
)

// OutfitRoutes registers the session-authenticated outfit endpoints on the
// provided chi router.
func OutfitRoutes(r chi.Router, a *app.Application) {
	closetSvcs := closetappsvcs.New(a)
	svcs := appsvcs.New(a, closetSvcs.Closet)

	r.Group(func(r chi.Router) {
		r.Route("/outfits", func(r chi.Router) {
			r.Get("/", handlers.NewGetOutfitsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostOutfitHandler(svcs).Execute)
			r.Post("/analyze", handlers.NewPostAnalyzeHandler(svcs).Execute)
			r.Post("/{id}/favorite", handlers.NewPostFavoriteHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteOutfitHandler(svcs).Execute)

			composer := handlers.NewComposerHandler(svcs)
			r.Route("/composer", func(r chi.Router) {
				r.Get("/", composer.State)
				r.Post("/select", composer.Select)
				r.Post("/clear", composer.Clear)
				r.Post("/finish", composer.Finish)
				r.Post("/cancel", composer.Cancel)
				r.Post("/finalize", composer.Finalize)
			})
		})
	})
}

// V1Routes registers the bearer-token outfit endpoints. Detection is public
// so the capture screen can analyze before an account exists; everything else
// requires a token.
func V1Routes(r chi.Router, a *app.Application) {
	closetSvcs := closetappsvcs.New(a)
	svcs := appsvcs.New(a, closetSvcs.Closet)

	r.Post("/analyze", handlers.NewPostDetectHandler(svcs).Execute)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireBearer(a.Tokens, a.Logger))
		v1 := handlers.NewV1OutfitsHandler(svcs, closetSvcs.Closet)
		r.Route("/outfits", func(r chi.Router) {
			r.Get("/", v1.Page)
			r.Post("/", v1.Create)
		})
	})
}

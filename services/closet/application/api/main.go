package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/aikombin/aikombin-server/pkg/app"
	"github.com/aikombin/aikombin-server/pkg/auth"
	"github.com/aikombin/aikombin-server/services/closet/application/handlers"
	appsvcs "github.com/aikombin/aikombin-server/services/closet/application/services"
)

// ClosetRoutes registers closet endpoints on the provided chi router.
func ClosetRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/clothes", func(r chi.Router) {
			r.Get("/", handlers.NewGetClothesHandler(svcs).Execute)
			r.Post("/", handlers.NewPostClothingItemHandler(svcs).Execute)
		})
	})
}

// V1Routes registers the bearer-token wardrobe endpoints.
func V1Routes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	wardrobe := handlers.NewWardrobeHandler(svcs, a.Photos)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireBearer(a.Tokens, a.Logger))
		r.Route("/wardrobe", func(r chi.Router) {
			r.Get("/", wardrobe.Page)
			r.Post("/", wardrobe.Upload)
		})
	})
}

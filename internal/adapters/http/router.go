// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arimodu/shopper/internal/adapters/http/handlers"
)

// Routes groups the handlers mounted by NewRouter. RequireSession guards
// every /api/v1 route except register and login.
type Routes struct {
	Auth           *handlers.AuthHandler
	User           *handlers.UserHandler
	List           *handlers.ListHandler
	Item           *handlers.ItemHandler
	Health         *handlers.HealthHandler
	RequireSession func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(rt Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", rt.Health.Liveness)
	r.Get("/health/ready", rt.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", rt.Auth.Register)
		r.Post("/auth/login", rt.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(rt.RequireSession)

			r.Post("/auth/logout", rt.Auth.Logout)

			r.Get("/user/me", rt.User.Me)
			r.Patch("/user/me", rt.User.UpdateMe)
			r.Delete("/user/me", rt.User.DeleteMe)

			// Static segments are matched before {listId}.
			r.Post("/list/create", rt.List.CreateList)
			r.Put("/list/acl", rt.List.AddUser)
			r.Delete("/list/acl", rt.List.RemoveUser)
			r.Get("/list/{listId}", rt.List.GetList)
			r.Patch("/list/{listId}", rt.List.UpdateList)
			r.Delete("/list/{listId}", rt.List.DeleteList)

			r.Post("/item/create", rt.Item.CreateItem)
			r.Get("/item/{itemId}", rt.Item.GetItem)
			r.Patch("/item/{itemId}", rt.Item.UpdateItem)
			r.Delete("/item/{itemId}", rt.Item.DeleteItem)
		})
	})

	return r
}

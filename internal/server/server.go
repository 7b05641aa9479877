// Package server Hermes
//
// The Hermes keeps viewer-local state of a social client: feed, explore, messages, notifications and profiles.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	mm "github.com/Decentr-net/hermes/internal/middleware"
	"github.com/Decentr-net/hermes/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 4096

// TokenHeader is a header which carries session token.
const TokenHeader = "X-Session-Token"

type server struct {
	s service.Service
	v *validator.Validate
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout, cacheTTL time.Duration) {
	r.Use(
		middleware.RequestID,
		mm.Logger,
		middleware.StripSlashes,
		cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", TokenHeader},
		}).Handler,
		middleware.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
		v: validator.New(),
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/session", srv.login)
		r.Delete("/session", srv.logout)

		r.Put("/views/{view}", srv.mount)
		r.Delete("/views/{view}", srv.unmount)

		r.Get("/feed", srv.getFeed)
		r.Post("/feed", srv.createPost)
		r.Post("/posts/{id}/like", srv.toggleLike)
		r.Post("/posts/{id}/save", srv.toggleSave)

		r.Get("/explore", srv.explore)
		r.Get("/explore/tags", mm.Cached(cacheTTL, srv.listTags))
		r.Get("/explore/topics", mm.Cached(cacheTTL, srv.listTopics))

		r.Get("/conversations", srv.listConversations)
		r.Post("/conversations/{id}/select", srv.selectConversation)
		r.Get("/conversations/{id}/messages", srv.listMessages)
		r.Post("/conversations/{id}/messages", srv.sendMessage)

		r.Get("/notifications", srv.listNotifications)
		r.Post("/notifications/read-all", srv.markAllRead)
		r.Post("/notifications/{id}/read", srv.markRead)

		r.Get("/profiles", srv.getProfile)
		r.Get("/profiles/{id}", srv.getProfile)
		r.Post("/profiles/{id}/follow", srv.toggleFollow)

		r.Get("/users/suggested", srv.listSuggestedUsers)
	})
}

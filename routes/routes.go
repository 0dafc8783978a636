package routes

import (
	"github.com/Dosada05/mahjong-club/handlers"
	appMiddleware "github.com/Dosada05/mahjong-club/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	identity *appMiddleware.Identity,
	playerHandler *handlers.PlayerHandler,
	sessionHandler *handlers.SessionHandler,
	roundHandler *handlers.RoundHandler,
	dashboardHandler *handlers.DashboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Публичные маршруты: вход в клуб и справочные списки
	router.Post("/players", playerHandler.Join)
	router.Get("/players", playerHandler.List)
	router.Get("/sessions", sessionHandler.List)
	router.Get("/ws/sessions/{sessionID}", webSocketHandler.ServeWs)

	// Маршруты, требующие идентичности игрока
	router.Group(func(r chi.Router) {
		r.Use(identity.Authenticate)

		r.Get("/dashboard", dashboardHandler.Get)
		r.Post("/logout", playerHandler.Logout)
		r.Post("/players/avatar", playerHandler.UploadAvatar)

		r.Post("/sessions", sessionHandler.Create)
		r.Post("/sessions/{sessionID}/membership", sessionHandler.ToggleMembership)

		r.Post("/rounds", roundHandler.Complete)
		r.Post("/rounds/{roundID}/membership", roundHandler.ToggleMembership)
	})
}

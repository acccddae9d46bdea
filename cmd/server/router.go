package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/social-api/internal/api"
	apiMiddleware "github.com/phrazzld/social-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(app.metrics.Middleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	r.Use(authMiddleware.OptionalAuth)
	if app.rateLimiter != nil {
		r.Use(app.rateLimiter.Handler)
	}

	accountHandler := api.NewAccountHandler(app.accountService, app.jwtService, app.logger)
	messageHandler := api.NewMessageHandler(app.messageService, app.logger)

	r.Post("/register", accountHandler.Register)
	r.Post("/login", accountHandler.Login)

	r.Post("/messages", messageHandler.CreateMessage)
	r.Get("/messages", messageHandler.GetAllMessages)
	r.Get("/messages/{messageId}", messageHandler.GetMessage)
	r.Delete("/messages/{messageId}", messageHandler.DeleteMessage)
	r.Patch("/messages/{messageId}", messageHandler.UpdateMessage)

	r.Get("/accounts/{accountId}/messages", messageHandler.GetMessagesByAccount)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle(apiMiddleware.MetricsPath, app.metrics.Handler())

	return r
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskflow/taskflow-api/internal/api"
	apimiddleware "github.com/taskflow/taskflow-api/internal/api/middleware"
	"github.com/taskflow/taskflow-api/internal/platform/metrics"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)
	r.Use(metrics.Middleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	taskHandler := api.NewTaskHandler(app.taskService)
	commentHandler := api.NewCommentHandler(app.commentService)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService, app.principalResolver)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)

		// Everything below passes the gate: requests with a bearer token are
		// authenticated or rejected, requests without one pass through.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Public listing
			r.Get("/tasks", taskHandler.ListTasks)

			// Endpoints requiring an authenticated caller
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.RequirePrincipal)

				r.Get("/tasks/user", taskHandler.ListUserTasks)
				r.Get("/tasks/cart", taskHandler.ListCartTasks)
				r.Get("/tasks/offered", taskHandler.ListOfferedTasks)
				r.Get("/tasks/{id}", taskHandler.GetTask)
				r.Post("/tasks", taskHandler.CreateTask)
				r.Put("/tasks/{id}", taskHandler.UpdateTask)
				r.Delete("/tasks/{id}", taskHandler.DeleteTask)
				r.Put("/tasks/{id}/cart/add", taskHandler.AddToCart)
				r.Put("/tasks/{id}/cart/remove", taskHandler.RemoveFromCart)
				r.Put("/tasks/{id}/offered/add", taskHandler.AddToOffered)
				r.Put("/tasks/{id}/offered/remove", taskHandler.RemoveFromOffered)

				r.Post("/comments", commentHandler.CreateComment)
				r.Put("/comments/{id}", commentHandler.UpdateComment)
				r.Delete("/comments/{id}", commentHandler.DeleteComment)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	return r
}

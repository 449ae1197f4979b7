package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/nourix/protocol-coach/docs"
	"github.com/nourix/protocol-coach/internal/api/handler"
	"github.com/nourix/protocol-coach/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler           *handler.UserHandler
	recommendationHandler *handler.RecommendationHandler
	feedbackHandler       *handler.FeedbackHandler
	swapHandler           *handler.SwapHandler
	foodHandler           *handler.FoodHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	recommendationHandler *handler.RecommendationHandler,
	feedbackHandler *handler.FeedbackHandler,
	swapHandler *handler.SwapHandler,
	foodHandler *handler.FoodHandler,
) *Router {
	return &Router{
		userHandler:           userHandler,
		recommendationHandler: recommendationHandler,
		feedbackHandler:       feedbackHandler,
		swapHandler:           swapHandler,
		foodHandler:           foodHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users and their per-user engine endpoints
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)
				r.Post("/recommendations", rt.recommendationHandler.Recommend)
				r.Post("/feedback", rt.feedbackHandler.Submit)
				r.Get("/weights", rt.feedbackHandler.GetWeights)
				r.Post("/swaps", rt.swapHandler.Search)
			})
		})

		// Nutrition catalog
		r.Get("/foods", rt.foodHandler.List)
	})

	return r
}

// Protocol Coach API
//
// REST API for personalized nutrition protocol recommendations.
//
//	@title			Protocol Coach API
//	@version		1.0
//	@description	Profile-driven protocol prioritization with constraint solving, nutrient targeting, and feedback learning.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			recommendations
//	@tag.description	Protocol recommendation endpoints
//
//	@tag.name			feedback
//	@tag.description	Feedback and learned-weight endpoints
//
//	@tag.name			swaps
//	@tag.description	Meal substitution search endpoints
//
//	@tag.name			foods
//	@tag.description	Food catalog endpoints
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/nourix/protocol-coach/internal/api"
	"github.com/nourix/protocol-coach/internal/api/handler"
	"github.com/nourix/protocol-coach/internal/config"
	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/internal/feedback"
	"github.com/nourix/protocol-coach/internal/langfuse"
	"github.com/nourix/protocol-coach/internal/llm"
	"github.com/nourix/protocol-coach/internal/nutrition"
	"github.com/nourix/protocol-coach/internal/repository"
	"github.com/nourix/protocol-coach/internal/seed"
	"github.com/nourix/protocol-coach/internal/service"
	"github.com/nourix/protocol-coach/internal/swap"
	"github.com/nourix/protocol-coach/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "protocol-coach-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Food{}, &domain.ProtocolWeights{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	weightsRepo := repository.NewWeightsRepository(db)

	// Load the food catalog into the in-memory nutrition index
	foods, err := foodRepo.LoadAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load food catalog: %v", err)
	}
	log.Printf("Loaded %d foods into nutrition index", len(foods))
	index := nutrition.NewIndex(foods)
	searcher := swap.NewSearcher(index)

	// Langfuse client for feedback scores (no-op when not configured)
	lfClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Coach system prompt: managed in Langfuse with a local file fallback.
	// An empty prompt falls back to the built-in default.
	systemPrompt := ""
	if cfg.CoachPromptName != "" || cfg.CoachPromptSavePath != "" {
		systemPrompt, err = langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.CoachPromptName,
			PromptLabel: cfg.CoachPromptLabel,
			SavePath:    cfg.CoachPromptSavePath,
		})
		if err != nil {
			log.Printf("Warning: coach prompt unavailable, using built-in default: %v", err)
			systemPrompt = ""
		}
	}

	// Initialize OpenAI coach client (may be nil if not configured)
	coachClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel, systemPrompt)
	if coachClient == nil {
		log.Println("Warning: OpenAI API key not configured, recommendations will omit coach explanations")
	}

	// Feedback learner over the persisted weight store
	learner := feedback.NewLearner(weightsRepo, feedback.DefaultLearningRate)

	// Initialize services
	userService := service.NewUserService(userRepo)
	recommendationService := service.NewRecommendationService(userRepo, learner, coachClient, index)
	feedbackService := service.NewFeedbackService(userRepo, learner, lfClient)
	swapService := service.NewSwapService(searcher, userRepo)
	foodService := service.NewFoodService(foodRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	swapHandler := handler.NewSwapHandler(swapService)
	foodHandler := handler.NewFoodHandler(foodService)

	// Setup router
	router := api.NewRouter(userHandler, recommendationHandler, feedbackHandler, swapHandler, foodHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

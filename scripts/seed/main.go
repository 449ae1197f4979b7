// Seeds the database with demo users and the starter food catalog.
// Usage: go run scripts/seed/main.go
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/nourix/protocol-coach/internal/config"
	"github.com/nourix/protocol-coach/internal/repository"
	"github.com/nourix/protocol-coach/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)

	foods, err := foodRepo.LoadAll(ctx)
	if err != nil {
		log.Fatalf("Failed to load foods: %v", err)
	}
	fmt.Printf("\nFood catalog: %d entries\n", len(foods))

	fmt.Println("\nSample user IDs for testing:")
	for _, id := range []string{
		"11111111-1111-1111-1111-111111111111",
		"22222222-2222-2222-2222-222222222222",
		"33333333-3333-3333-3333-333333333333",
	} {
		user, err := userRepo.GetByID(ctx, uuid.MustParse(id))
		if err != nil {
			continue
		}
		fmt.Printf("  %s (%s)\n", user.ID, user.Name)
	}
}

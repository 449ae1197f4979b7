package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nourix/protocol-coach/internal/domain"
)

// openTestDB connects to the database named by TEST_DATABASE_URL, or skips.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := db.AutoMigrate(&domain.ProtocolWeights{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func testUserKey(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func TestWeightsRepository_GetMissing(t *testing.T) {
	repo := NewWeightsRepository(openTestDB(t))

	w, err := repo.Get(context.Background(), testUserKey("missing"))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if w != nil {
		t.Errorf("Get = %v, want nil for unknown user", w)
	}
}

func TestWeightsRepository_UpdateThenGet(t *testing.T) {
	repo := NewWeightsRepository(openTestDB(t))
	key := testUserKey("jamie")

	updated, err := repo.Update(context.Background(), key, func(w map[string]float64) map[string]float64 {
		if w != nil {
			t.Errorf("first update saw existing weights: %v", w)
		}
		return map[string]float64{"sleep_protocol": 0.85}
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated["sleep_protocol"] != 0.85 {
		t.Errorf("Update = %v, want sleep_protocol 0.85", updated)
	}

	got, err := repo.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got["sleep_protocol"] != 0.85 {
		t.Errorf("Get = %v, want sleep_protocol 0.85", got)
	}
}

func TestWeightsRepository_ConcurrentFirstUpdates(t *testing.T) {
	// Two first-ever updates for the same user must both land: before the
	// placeholder insert, SELECT FOR UPDATE on a nonexistent row took no
	// lock, and concurrent transactions could each read empty weights and
	// overwrite the other's increment.
	repo := NewWeightsRepository(openTestDB(t))
	key := testUserKey("concurrent")

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := repo.Update(context.Background(), key, func(w map[string]float64) map[string]float64 {
				if w == nil {
					w = make(map[string]float64)
				}
				w["count"]++
				return w
			})
			if err != nil {
				errs <- err
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := repo.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got["count"] != float64(workers) {
		t.Errorf("count = %v after %d concurrent updates, want %d (lost update)", got["count"], workers, workers)
	}
}

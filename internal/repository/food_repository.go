package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nourix/protocol-coach/internal/domain"
	"github.com/nourix/protocol-coach/pkg/pagination"
	"gorm.io/gorm"
)

type FoodRepository interface {
	// LoadAll returns every food row for building the in-memory index.
	LoadAll(ctx context.Context) ([]*domain.Food, error)
	GetByKey(ctx context.Context, key string) (*domain.Food, error)
	List(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error)
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) LoadAll(ctx context.Context) ([]*domain.Food, error) {
	var foods []*domain.Food
	if err := r.db.WithContext(ctx).Order("key ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) GetByKey(ctx context.Context, key string) (*domain.Food, error) {
	var food domain.Food
	err := r.db.WithContext(ctx).First(&food, "key = ?", strings.ToLower(strings.TrimSpace(key))).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) List(ctx context.Context, filter domain.FoodFilter) ([]domain.Food, error) {
	query := r.db.WithContext(ctx).Order("key ASC")

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		query = query.Where("key LIKE ?", "%"+q+"%")
	}
	if filter.Tag != "" {
		// Tags are stored as a jsonb array; @> matches containment.
		tagJSON, _ := json.Marshal([]string{filter.Tag})
		query = query.Where("tags @> ?", string(tagJSON))
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where("key > ?", cursor.Key)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var foods []domain.Food
	if err := query.Find(&foods).Error; err != nil {
		return nil, err
	}

	return foods, nil
}

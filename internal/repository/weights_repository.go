package repository

import (
	"context"

	"github.com/nourix/protocol-coach/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeightsRepository persists per-user learned protocol weights.
// Update runs its mutation under a row lock so concurrent feedback
// submissions for the same user cannot lose writes.
type WeightsRepository interface {
	Get(ctx context.Context, userKey string) (map[string]float64, error)
	Update(ctx context.Context, userKey string, fn func(weights map[string]float64) map[string]float64) (map[string]float64, error)
}

type weightsRepository struct {
	db *gorm.DB
}

func NewWeightsRepository(db *gorm.DB) WeightsRepository {
	return &weightsRepository{db: db}
}

func (r *weightsRepository) Get(ctx context.Context, userKey string) (map[string]float64, error) {
	var row domain.ProtocolWeights
	err := r.db.WithContext(ctx).First(&row, "user_key = ?", userKey).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return row.Weights, nil
}

func (r *weightsRepository) Update(ctx context.Context, userKey string, fn func(weights map[string]float64) map[string]float64) (map[string]float64, error) {
	var updated map[string]float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// SELECT FOR UPDATE takes no lock when the row does not exist yet,
		// so two first-ever updates could both read empty weights and the
		// later commit would erase the earlier one. Inserting an empty row
		// first guarantees the locked read below always has a row to lock.
		seed := domain.ProtocolWeights{UserKey: userKey, Weights: map[string]float64{}}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_key"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		var row domain.ProtocolWeights
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&row, "user_key = ?", userKey).Error; err != nil {
			return err
		}

		var current map[string]float64
		if len(row.Weights) > 0 {
			current = row.Weights
		}
		updated = fn(current)

		return tx.Model(&domain.ProtocolWeights{}).
			Where("user_key = ?", userKey).
			Update("weights", updated).Error
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

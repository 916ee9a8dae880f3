package postgres

import (
	"context"
	"fmt"

	"runGuard/business/recommend"
	"runGuard/domain"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	DB *gorm.DB
}

var _ recommend.HistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// GetRecentHistory returns the newest runs first.
func (r *HistoryRepository) GetRecentHistory(ctx context.Context, userID string, limit int) ([]domain.HistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = domain.HistoryWindow
	}

	var records []domain.HistoryRecord
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}

	return records, nil
}

func (r *HistoryRepository) AppendRun(ctx context.Context, record domain.HistoryRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if err := r.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"runGuard/business/recommend"
	"runGuard/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

var _ recommend.FeedbackRepository = (*FeedbackRepository)(nil)

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) SaveFeedback(ctx context.Context, feedback domain.RouteFeedback) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if err := r.DB.WithContext(ctx).Create(&feedback).Error; err != nil {
		return fmt.Errorf("failed to insert route feedback: %w", err)
	}
	return nil
}

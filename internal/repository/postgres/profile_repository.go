package postgres

import (
	"context"
	"errors"
	"fmt"

	"runGuard/business/recommend"
	"runGuard/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	DB *gorm.DB
}

var _ recommend.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.UserPreferenceProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var p domain.UserPreferenceProfile
	err := r.DB.WithContext(ctx).First(&p, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return &p, nil
}

// SaveProfile writes the whole profile in one statement.
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile domain.UserPreferenceProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"fitness_level",
				"difficulty_band",
				"min_distance_km",
				"max_distance_km",
				"preferred_terrain",
				"preferred_times",
				"preferred_difficulty",
				"safety_priority",
				"scenery_priority",
				"updated_at",
			}),
		}).
		Create(&profile).Error
}

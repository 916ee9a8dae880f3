package domain

import (
	"time"

	"gorm.io/datatypes"
)

// DifficultyBand groups the 1-10 difficulty scale.
type DifficultyBand string

const (
	BandEasy     DifficultyBand = "easy"
	BandModerate DifficultyBand = "moderate"
	BandHard     DifficultyBand = "hard"
)

// BandForDifficulty maps a 1-10 difficulty onto its band.
func BandForDifficulty(difficulty int) DifficultyBand {
	switch {
	case difficulty <= 3:
		return BandEasy
	case difficulty <= 6:
		return BandModerate
	default:
		return BandHard
	}
}

const (
	PreferenceMin     = 1.0
	PreferenceMax     = 10.0
	PreferenceDefault = 5.0
)

// UserPreferenceProfile holds a runner's declared and learned preferences.
// Zero values mean "unknown" and are skipped by the preference calculator.
//
// Ranking reads only FitnessLevel, DifficultyBand, the distance range and
// PreferredTerrain. PreferredTimes and the learned priorities are stored for
// clients; feedback reaches ranking only through the DifficultyBand the
// learner re-derives from PreferredDifficulty.
type UserPreferenceProfile struct {
	UserID           string                          `gorm:"primaryKey;column:user_id" json:"user_id"`
	FitnessLevel     int                             `gorm:"column:fitness_level" json:"fitness_level"`
	DifficultyBand   DifficultyBand                  `gorm:"column:difficulty_band" json:"difficulty_band"`
	MinDistanceKm    float64                         `gorm:"column:min_distance_km" json:"min_distance_km"`
	MaxDistanceKm    float64                         `gorm:"column:max_distance_km" json:"max_distance_km"`
	PreferredTerrain datatypes.JSONSlice[string]     `gorm:"column:preferred_terrain;type:jsonb" json:"preferred_terrain"`
	PreferredTimes   datatypes.JSONSlice[TimeBucket] `gorm:"column:preferred_times;type:jsonb" json:"preferred_times"`

	// learned by feedback, always within [PreferenceMin, PreferenceMax]
	PreferredDifficulty float64 `gorm:"column:preferred_difficulty;not null" json:"preferred_difficulty"`
	SafetyPriority      float64 `gorm:"column:safety_priority;not null" json:"safety_priority"`
	SceneryPriority     float64 `gorm:"column:scenery_priority;not null" json:"scenery_priority"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserPreferenceProfile) TableName() string {
	return "user_preferences"
}

// NewDefaultProfile returns the profile a user starts with on first interaction.
func NewDefaultProfile(userID string) UserPreferenceProfile {
	return UserPreferenceProfile{
		UserID:              userID,
		PreferredDifficulty: PreferenceDefault,
		SafetyPriority:      PreferenceDefault,
		SceneryPriority:     PreferenceDefault,
	}
}

// HasDistanceRange reports whether a usable distance range is set.
func (p UserPreferenceProfile) HasDistanceRange() bool {
	return p.MaxDistanceKm > 0 && p.MaxDistanceKm >= p.MinDistanceKm
}

// PrefersTerrain reports whether terrain is one of the preferred terrains.
func (p UserPreferenceProfile) PrefersTerrain(terrain string) bool {
	for _, t := range p.PreferredTerrain {
		if t == terrain {
			return true
		}
	}
	return false
}

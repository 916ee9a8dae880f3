package domain

import "time"

// HistoryRecord is one completed run. Records are append-only.
type HistoryRecord struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	UserID      string           `gorm:"column:user_id;not null;index:idx_run_history_user_completed,priority:1" json:"user_id" validate:"required"`
	RouteID     string           `gorm:"column:route_id;not null" json:"route_id" validate:"required"`
	DistanceKm  float64          `gorm:"column:distance_km" json:"distance_km" validate:"gt=0"`
	DurationMin float64          `gorm:"column:duration_min" json:"duration_min" validate:"gte=0"`
	Effort      float64          `gorm:"column:effort" json:"effort" validate:"gte=0,lte=10"`
	Rating      float64          `gorm:"column:rating" json:"rating" validate:"gte=0,lte=5"`
	Weather     WeatherCondition `gorm:"column:weather" json:"weather"`
	CompletedAt time.Time        `gorm:"column:completed_at;not null;index:idx_run_history_user_completed,priority:2,sort:desc" json:"completed_at"`
}

func (HistoryRecord) TableName() string {
	return "run_history"
}

// HistoryWindow is the number of most recent runs considered "typical".
const HistoryWindow = 30

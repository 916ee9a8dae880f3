package domain

import "time"

// FeedbackRatings is a runner's post-run rating. Dimension ratings of 0 mean "not rated".
type FeedbackRatings struct {
	Overall    int     `json:"overall" validate:"gte=1,lte=5"`
	Difficulty float64 `json:"difficulty" validate:"gte=0,lte=10"`
	Safety     float64 `json:"safety" validate:"gte=0,lte=10"`
	Scenery    float64 `json:"scenery" validate:"gte=0,lte=10"`
}

// RouteFeedback is the persisted feedback log entry.
type RouteFeedback struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	UserID     string    `gorm:"column:user_id;not null;index" json:"user_id"`
	RouteID    string    `gorm:"column:route_id;not null" json:"route_id"`
	Overall    int       `gorm:"column:overall;not null" json:"overall"`
	Difficulty float64   `gorm:"column:difficulty" json:"difficulty"`
	Safety     float64   `gorm:"column:safety" json:"safety"`
	Scenery    float64   `gorm:"column:scenery" json:"scenery"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RouteFeedback) TableName() string {
	return "route_feedback"
}

package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.routes (
//     id                  TEXT PRIMARY KEY,
//     name                TEXT NOT NULL,
//     distance_km         NUMERIC NOT NULL,
//     difficulty          SMALLINT NOT NULL,
//     terrain             TEXT,
//     safety_rating       NUMERIC,
//     popularity          NUMERIC,
//     rating_count        INTEGER,
//     lighting            SMALLINT,
//     time_suitability    JSONB,
//     weather_suitability JSONB,
//     features            JSONB,
//     catalog_order       INTEGER,
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

// LightingLevel is the ordinal lighting quality of a route after dark.
type LightingLevel int

const (
	LightingUnknown  LightingLevel = 0
	LightingPoor     LightingLevel = 1
	LightingModerate LightingLevel = 2
	LightingGood     LightingLevel = 3
)

// Route is a candidate item ranked by the recommendation engine.
// It is read-only for the duration of a ranking pass.
type Route struct {
	ID           string        `gorm:"primaryKey;column:id" json:"id"`
	Name         string        `gorm:"column:name;not null" json:"name"`
	DistanceKm   float64       `gorm:"column:distance_km;not null" json:"distance_km"`
	Difficulty   int           `gorm:"column:difficulty;not null" json:"difficulty"`
	Terrain      string        `gorm:"column:terrain" json:"terrain"`
	SafetyRating float64       `gorm:"column:safety_rating" json:"safety_rating"`
	Popularity   float64       `gorm:"column:popularity" json:"popularity"`
	RatingCount  int           `gorm:"column:rating_count" json:"rating_count"`
	Lighting     LightingLevel `gorm:"column:lighting" json:"lighting"`

	TimeSuitability    datatypes.JSONType[map[TimeBucket]float64]       `gorm:"column:time_suitability;type:jsonb" json:"time_suitability"`
	WeatherSuitability datatypes.JSONType[map[WeatherCondition]float64] `gorm:"column:weather_suitability;type:jsonb" json:"weather_suitability"`
	Features           datatypes.JSONSlice[string]                      `gorm:"column:features;type:jsonb" json:"features"`

	CatalogOrder int       `gorm:"column:catalog_order" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (Route) TableName() string {
	return "routes"
}

// TimeSuitabilityFor returns the route's own suitability value for a bucket.
func (r Route) TimeSuitabilityFor(bucket TimeBucket) (float64, bool) {
	m := r.TimeSuitability.Data()
	if m == nil {
		return 0, false
	}
	v, ok := m[bucket]
	return v, ok
}

// WeatherSuitabilityFor returns the route's own multiplier for a weather condition.
func (r Route) WeatherSuitabilityFor(cond WeatherCondition) (float64, bool) {
	m := r.WeatherSuitability.Data()
	if m == nil {
		return 0, false
	}
	v, ok := m[cond]
	return v, ok
}

// HasFeature reports whether the route carries the given amenity/attribute tag.
func (r Route) HasFeature(feature string) bool {
	for _, f := range r.Features {
		if f == feature {
			return true
		}
	}
	return false
}

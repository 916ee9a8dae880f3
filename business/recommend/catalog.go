package recommend

import (
	"runGuard/domain"

	"gorm.io/datatypes"
)

// FallbackCatalog is the built-in route list served while the route store is
// unavailable or empty. It returns a fresh copy on every call.
func FallbackCatalog() []domain.Route {
	return []domain.Route{
		{
			ID:           "fallback-riverside-loop",
			Name:         "Riverside Loop",
			DistanceKm:   5,
			Difficulty:   3,
			Terrain:      "park",
			SafetyRating: 8.5,
			Popularity:   4.6,
			RatingCount:  128,
			Lighting:     domain.LightingGood,
			TimeSuitability: datatypes.NewJSONType(map[domain.TimeBucket]float64{
				domain.BucketDawn:      0.8,
				domain.BucketMorning:   0.9,
				domain.BucketAfternoon: 0.7,
				domain.BucketEvening:   0.9,
				domain.BucketNight:     0.7,
			}),
			WeatherSuitability: datatypes.NewJSONType(map[domain.WeatherCondition]float64{
				domain.ConditionLightRain: 0.8,
			}),
			Features:     datatypes.JSONSlice[string]{"scenic", "water", "lit"},
			CatalogOrder: 1,
		},
		{
			ID:           "fallback-city-track",
			Name:         "City Stadium Track",
			DistanceKm:   3,
			Difficulty:   2,
			Terrain:      "track",
			SafetyRating: 9,
			Popularity:   4.2,
			RatingCount:  64,
			Lighting:     domain.LightingGood,
			TimeSuitability: datatypes.NewJSONType(map[domain.TimeBucket]float64{
				domain.BucketMorning: 0.8,
				domain.BucketNoon:    0.6,
				domain.BucketEvening: 0.9,
				domain.BucketNight:   0.8,
			}),
			Features:     datatypes.JSONSlice[string]{"toilets", "lit"},
			CatalogOrder: 2,
		},
		{
			ID:           "fallback-hill-trail",
			Name:         "Ridge Hill Trail",
			DistanceKm:   10,
			Difficulty:   7,
			Terrain:      "trail",
			SafetyRating: 6,
			Popularity:   4.4,
			RatingCount:  37,
			Lighting:     domain.LightingPoor,
			TimeSuitability: datatypes.NewJSONType(map[domain.TimeBucket]float64{
				domain.BucketDawn:    0.7,
				domain.BucketMorning: 0.9,
				domain.BucketNoon:    0.5,
			}),
			WeatherSuitability: datatypes.NewJSONType(map[domain.WeatherCondition]float64{
				domain.ConditionRain:      0.5,
				domain.ConditionHeavyRain: 0.3,
				domain.ConditionFog:       0.5,
			}),
			Features:     datatypes.JSONSlice[string]{"scenic"},
			CatalogOrder: 3,
		},
		{
			ID:           "fallback-harbour-road",
			Name:         "Harbour Road Out-and-Back",
			DistanceKm:   8,
			Difficulty:   5,
			Terrain:      "road",
			SafetyRating: 7,
			Popularity:   3.9,
			RatingCount:  22,
			Lighting:     domain.LightingModerate,
			Features:     datatypes.JSONSlice[string]{"water"},
			CatalogOrder: 4,
		},
	}
}

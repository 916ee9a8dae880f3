package recommend

import (
	"time"

	"runGuard/domain"
)

// BucketForTime maps a wall-clock time onto one of the seven day buckets.
func BucketForTime(t time.Time) domain.TimeBucket {
	h := t.Hour()
	switch {
	case h >= 5 && h < 7:
		return domain.BucketDawn
	case h >= 7 && h < 11:
		return domain.BucketMorning
	case h >= 11 && h < 14:
		return domain.BucketNoon
	case h >= 14 && h < 17:
		return domain.BucketAfternoon
	case h >= 17 && h < 19:
		return domain.BucketEvening
	case h >= 19 && h < 23:
		return domain.BucketNight
	default:
		return domain.BucketLateNight
	}
}

const neutralTimeScore = 0.5

// TimeMatch scores how suitable a route is for the given bucket.
// Routes without a value for the night bucket fall back to their lighting.
func TimeMatch(route domain.Route, bucket domain.TimeBucket) float64 {
	if v, ok := route.TimeSuitabilityFor(bucket); ok {
		return clamp01(v)
	}
	if bucket.IsNight() {
		return lightingScore(route.Lighting)
	}
	return neutralTimeScore
}

func lightingScore(l domain.LightingLevel) float64 {
	switch {
	case l >= domain.LightingGood:
		return 0.8
	case l == domain.LightingModerate:
		return 0.5
	default:
		return 0.2
	}
}

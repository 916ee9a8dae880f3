package recommend

import (
	"fmt"

	"runGuard/domain"
)

const (
	ReasonWeather    = "Great running weather right now"
	ReasonTime       = "Well suited to this time of day"
	ReasonDifficulty = "Matches the distance and effort of your recent runs"
	ReasonPreference = "Fits your route preferences"
	ReasonSafety     = "Highly rated for safety"
	ReasonNovelty    = "A route you have not run yet"
)

// feature tags and the observation each one adds, in output order
var featureReasons = []struct {
	feature string
	reason  string
}{
	{"scenic", "Scenic views along the way"},
	{"water", "Drinking water on the route"},
	{"toilets", "Toilets available along the route"},
	{"lit", "Street lighting after dark"},
}

// Explanation is the reasoning attached to a scored route.
type Explanation struct {
	Flags     domain.ReasonFlags
	Reasons   []string
	Archetype domain.Archetype
}

// Explain derives flags, reasons and the archetype from a route's sub-scores.
func Explain(b domain.ScoreBreakdown, route domain.Route, bucket domain.TimeBucket, t Thresholds) Explanation {
	flags := domain.ReasonFlags{
		WeatherMatch:    b.Weather > t.Weather,
		TimeMatch:       b.Time > t.Time,
		DifficultyMatch: b.History > t.Difficulty,
		PreferenceMatch: b.Preference > t.Preference,
		NoveltyFactor:   b.Novelty > t.Novelty,
		SafetyFactor:    b.Safety > t.Safety,
	}

	reasons := make([]string, 0, 8)
	if flags.WeatherMatch {
		reasons = append(reasons, ReasonWeather)
	}
	if flags.TimeMatch {
		reasons = append(reasons, ReasonTime)
	}
	if flags.DifficultyMatch {
		reasons = append(reasons, ReasonDifficulty)
	}
	if flags.PreferenceMatch {
		reasons = append(reasons, ReasonPreference)
	}
	if flags.SafetyFactor {
		reasons = append(reasons, ReasonSafety)
	}
	if flags.NoveltyFactor {
		reasons = append(reasons, ReasonNovelty)
	}

	if b.Popularity > t.Popular && route.RatingCount >= t.PopularMinRating {
		reasons = append(reasons, fmt.Sprintf("Popular with runners (%.1f from %d ratings)", route.Popularity, route.RatingCount))
	}
	for _, fr := range featureReasons {
		if route.HasFeature(fr.feature) {
			reasons = append(reasons, fr.reason)
		}
	}

	return Explanation{
		Flags:     flags,
		Reasons:   reasons,
		Archetype: classify(flags, b, route, bucket, t),
	}
}

// classify picks exactly one archetype, first match wins.
func classify(f domain.ReasonFlags, b domain.ScoreBreakdown, route domain.Route, bucket domain.TimeBucket, t Thresholds) domain.Archetype {
	switch {
	case f.WeatherMatch && f.TimeMatch && f.DifficultyMatch:
		return domain.ArchetypePerfectMatch
	case b.Popularity > t.PopularArchetype:
		return domain.ArchetypePopular
	case route.Difficulty >= t.ChallengeLevel:
		return domain.ArchetypeChallenge
	case f.NoveltyFactor:
		return domain.ArchetypeExploration
	case f.SafetyFactor && bucket.IsNight():
		return domain.ArchetypeSafeNight
	default:
		return domain.ArchetypeGeneral
	}
}

package domain

// Archetype is the single classification tag attached to a recommendation.
type Archetype string

const (
	ArchetypePerfectMatch Archetype = "perfect_match"
	ArchetypePopular      Archetype = "popular"
	ArchetypeChallenge    Archetype = "challenge"
	ArchetypeExploration  Archetype = "exploration"
	ArchetypeSafeNight    Archetype = "safe_night"
	ArchetypeGeneral      Archetype = "general"
)

// ReasonFlags records which signals crossed their thresholds.
type ReasonFlags struct {
	WeatherMatch    bool `json:"weather_match"`
	TimeMatch       bool `json:"time_match"`
	DifficultyMatch bool `json:"difficulty_match"`
	PreferenceMatch bool `json:"preference_match"`
	NoveltyFactor   bool `json:"novelty_factor"`
	SafetyFactor    bool `json:"safety_factor"`
}

// Score is produced once per (user, route, context) and never mutated.
type Score struct {
	Value     float64     `json:"value"`
	Flags     ReasonFlags `json:"flags"`
	Archetype Archetype   `json:"archetype"`
}

// ScoreBreakdown exposes every clamped sub-score that fed the aggregate.
type ScoreBreakdown struct {
	Preference float64 `json:"preference"`
	History    float64 `json:"history"`
	Weather    float64 `json:"weather"`
	Time       float64 `json:"time"`
	Safety     float64 `json:"safety"`
	Popularity float64 `json:"popularity"`
	Novelty    float64 `json:"novelty"`
}

type Recommendation struct {
	Route     Route          `json:"route"`
	Score     Score          `json:"score"`
	Reasons   []string       `json:"reasons"`
	Archetype Archetype      `json:"archetype"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

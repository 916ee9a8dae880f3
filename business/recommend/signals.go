package recommend

import (
	"math"

	"runGuard/domain"
)

const neutralScore = 0.5

// Signal keys, also used as weight names in the scoring config.
const (
	SignalPreference = "preference"
	SignalHistory    = "history"
	SignalWeather    = "weather"
	SignalTime       = "time"
	SignalSafety     = "safety"
	SignalPopularity = "popularity"
	SignalNovelty    = "novelty"
)

// Signal is one scoring factor. Evaluate must be pure and return a value in [0,1].
type Signal interface {
	Key() string
	Evaluate(in *RankInput, route domain.Route) float64
}

// RankInput is the per-request state shared by every signal.
type RankInput struct {
	Profile      domain.UserPreferenceProfile
	History      HistorySummary
	Snapshot     domain.ContextSnapshot
	weatherScore float64
}

func newRankInput(profile domain.UserPreferenceProfile, history []domain.HistoryRecord, snapshot domain.ContextSnapshot) *RankInput {
	return &RankInput{
		Profile:      profile,
		History:      Summarize(history),
		Snapshot:     snapshot,
		weatherScore: WeatherSuitability(snapshot.Weather),
	}
}

// DefaultSignals returns every signal the aggregator knows a weight for.
func DefaultSignals() []Signal {
	return []Signal{
		preferenceSignal{},
		historySignal{},
		weatherSignal{},
		timeSignal{},
		safetySignal{},
		popularitySignal{},
		noveltySignal{},
	}
}

// evaluateSignals runs every signal against a route and fills the breakdown.
func evaluateSignals(signals []Signal, in *RankInput, route domain.Route) domain.ScoreBreakdown {
	var b domain.ScoreBreakdown
	for _, s := range signals {
		v := clamp01(s.Evaluate(in, route))
		switch s.Key() {
		case SignalPreference:
			b.Preference = v
		case SignalHistory:
			b.History = v
		case SignalWeather:
			b.Weather = v
		case SignalTime:
			b.Time = v
		case SignalSafety:
			b.Safety = v
		case SignalPopularity:
			b.Popularity = v
		case SignalNovelty:
			b.Novelty = v
		}
	}
	return b
}

type preferenceSignal struct{}

func (preferenceSignal) Key() string { return SignalPreference }
func (preferenceSignal) Evaluate(in *RankInput, route domain.Route) float64 {
	return PreferenceMatch(in.Profile, route)
}

type historySignal struct{}

func (historySignal) Key() string { return SignalHistory }
func (historySignal) Evaluate(in *RankInput, route domain.Route) float64 {
	return HistoryMatch(in.History, route)
}

type weatherSignal struct{}

func (weatherSignal) Key() string { return SignalWeather }
func (weatherSignal) Evaluate(in *RankInput, route domain.Route) float64 {
	return routeWeatherScore(in.weatherScore, route, in.Snapshot.Weather.Condition)
}

type timeSignal struct{}

func (timeSignal) Key() string { return SignalTime }
func (timeSignal) Evaluate(in *RankInput, route domain.Route) float64 {
	return TimeMatch(route, in.Snapshot.TimeBucket)
}

type safetySignal struct{}

func (safetySignal) Key() string { return SignalSafety }
func (safetySignal) Evaluate(_ *RankInput, route domain.Route) float64 {
	return clamp01(route.SafetyRating / 10)
}

type popularitySignal struct{}

func (popularitySignal) Key() string { return SignalPopularity }
func (popularitySignal) Evaluate(_ *RankInput, route domain.Route) float64 {
	return clamp01(route.Popularity / 5)
}

type noveltySignal struct{}

func (noveltySignal) Key() string { return SignalNovelty }
func (noveltySignal) Evaluate(in *RankInput, route domain.Route) float64 {
	return Novelty(in.History, route.ID)
}

// per-factor credit; fitness is the top tier
const (
	distanceCredit   = 0.25
	terrainCredit    = 0.2
	bandCredit       = 0.2
	fitnessCreditMax = 0.15
)

// PreferenceMatch scores a route against the runner's declared preferences.
// Factors without profile data are skipped; the earned credit is averaged
// over the number of factors evaluated.
func PreferenceMatch(p domain.UserPreferenceProfile, route domain.Route) float64 {
	var (
		earned    float64
		evaluated int
	)

	if p.HasDistanceRange() {
		evaluated++
		earned += distanceCredit * distanceFit(route.DistanceKm, p.MinDistanceKm, p.MaxDistanceKm)
	}

	if len(p.PreferredTerrain) > 0 {
		evaluated++
		if p.PrefersTerrain(route.Terrain) {
			earned += terrainCredit
		}
	}

	if p.DifficultyBand != "" {
		evaluated++
		if domain.BandForDifficulty(route.Difficulty) == p.DifficultyBand {
			earned += bandCredit
		}
	}

	if p.FitnessLevel > 0 {
		evaluated++
		earned += fitnessCloseness(p.FitnessLevel, route.Difficulty)
	}

	if evaluated == 0 {
		return neutralScore
	}
	return clamp01(earned / float64(evaluated))
}

// distanceFit is 1 inside [min,max] and the ratio of the nearer bound otherwise.
func distanceFit(d, lo, hi float64) float64 {
	switch {
	case d >= lo && d <= hi:
		return 1
	case d < lo:
		if lo <= 0 {
			return 0
		}
		return clamp01(d / lo)
	default:
		if d <= 0 {
			return 0
		}
		return clamp01(hi / d)
	}
}

func fitnessCloseness(fitness, difficulty int) float64 {
	diff := math.Abs(float64(fitness - difficulty))
	switch {
	case diff <= 1:
		return fitnessCreditMax
	case diff <= 2:
		return 0.10
	case diff <= 3:
		return 0.05
	default:
		return 0
	}
}

// HistorySummary is the runner's "typical" run over the recent window.
type HistorySummary struct {
	Count         int
	AvgDistanceKm float64
	AvgEffort     float64
	AvgRating     float64
	completed     map[string]struct{}
}

// Summarize averages the newest domain.HistoryWindow records. Records must be newest first.
func Summarize(records []domain.HistoryRecord) HistorySummary {
	if len(records) > domain.HistoryWindow {
		records = records[:domain.HistoryWindow]
	}

	s := HistorySummary{completed: make(map[string]struct{}, len(records))}
	if len(records) == 0 {
		return s
	}

	var dist, effort, rating float64
	for _, r := range records {
		dist += r.DistanceKm
		effort += r.Effort
		rating += r.Rating
		s.completed[r.RouteID] = struct{}{}
	}

	n := float64(len(records))
	s.Count = len(records)
	s.AvgDistanceKm = dist / n
	s.AvgEffort = effort / n
	s.AvgRating = rating / n
	return s
}

// Completed reports whether the runner has finished the route within the window.
func (s HistorySummary) Completed(routeID string) bool {
	_, ok := s.completed[routeID]
	return ok
}

// HistoryMatch compares a route with the runner's typical distance and effort.
func HistoryMatch(s HistorySummary, route domain.Route) float64 {
	if s.Count == 0 {
		return neutralScore
	}

	score := 0.0

	distDiff := math.Abs(route.DistanceKm - s.AvgDistanceKm)
	switch {
	case distDiff <= 1:
		score += 0.4
	case distDiff <= 2:
		score += 0.25
	case distDiff <= 3:
		score += 0.1
	}

	effortDiff := math.Abs(float64(route.Difficulty) - s.AvgEffort)
	switch {
	case effortDiff <= 1:
		score += 0.3
	case effortDiff <= 2:
		score += 0.15
	}

	if s.AvgRating >= 4 {
		score += 0.3
	}

	return clamp01(score)
}

const (
	noveltyCompleted = 0.2
	noveltyUnseen    = 1.0
)

// Novelty rewards routes the runner has not completed yet.
// TODO: decay novelty for routes similar to completed ones once a similarity measure is agreed with product.
func Novelty(s HistorySummary, routeID string) float64 {
	if s.Completed(routeID) {
		return noveltyCompleted
	}
	return noveltyUnseen
}

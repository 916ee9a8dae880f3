package recommend

import (
	"fmt"
	"math"
)

// Weights are the aggregator coefficients per signal. They must sum to 1.
type Weights struct {
	Preference float64 `yaml:"preference"`
	History    float64 `yaml:"history"`
	Weather    float64 `yaml:"weather"`
	Time       float64 `yaml:"time"`
	Safety     float64 `yaml:"safety"`
	Popularity float64 `yaml:"popularity"`
	Novelty    float64 `yaml:"novelty"`
}

// Thresholds decide which reasoning flags are raised.
type Thresholds struct {
	Weather    float64 `yaml:"weather"`
	Time       float64 `yaml:"time"`
	Difficulty float64 `yaml:"difficulty"`
	Preference float64 `yaml:"preference"`
	Novelty    float64 `yaml:"novelty"`
	Safety     float64 `yaml:"safety"`
	// popularity is checked by the explanation builder, not a flag
	Popular          float64 `yaml:"popular"`
	PopularMinRating int     `yaml:"popular_min_ratings"`
	PopularArchetype float64 `yaml:"popular_archetype"`
	ChallengeLevel   int     `yaml:"challenge_difficulty"`
}

type Config struct {
	Weights      Weights    `yaml:"weights"`
	Thresholds   Thresholds `yaml:"thresholds"`
	DefaultLimit int        `yaml:"default_limit"`
	MaxLimit     int        `yaml:"max_limit"`
}

const (
	defaultWPreference = 0.25
	defaultWHistory    = 0.20
	defaultWWeather    = 0.20
	defaultWTime       = 0.15
	defaultWSafety     = 0.10
	defaultWPopularity = 0.05
	defaultWNovelty    = 0.05

	defaultLimit = 6
	maxLimit     = 50

	weightSumTolerance = 1e-6
)

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Preference: defaultWPreference,
			History:    defaultWHistory,
			Weather:    defaultWWeather,
			Time:       defaultWTime,
			Safety:     defaultWSafety,
			Popularity: defaultWPopularity,
			Novelty:    defaultWNovelty,
		},
		Thresholds: Thresholds{
			Weather:          0.7,
			Time:             0.7,
			Difficulty:       0.6,
			Preference:       0.5,
			Novelty:          0.8,
			Safety:           0.8,
			Popular:          0.8,
			PopularMinRating: 10,
			PopularArchetype: 0.9,
			ChallengeLevel:   7,
		},
		DefaultLimit: defaultLimit,
		MaxLimit:     maxLimit,
	}
}

func (w Weights) values() []float64 {
	return []float64{w.Preference, w.History, w.Weather, w.Time, w.Safety, w.Popularity, w.Novelty}
}

func (w Weights) Sum() float64 {
	sum := 0.0
	for _, v := range w.values() {
		sum += v
	}
	return sum
}

// Validate rejects negative weights and weights that do not sum to 1.
func (w Weights) Validate() error {
	for _, v := range w.values() {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("weights must be non-negative, got %v", v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1, got %.6f", sum)
	}
	return nil
}

func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit %d is below default_limit %d", c.MaxLimit, c.DefaultLimit)
	}
	return nil
}

// normalizeLimit applies the default for non-positive limits and the cap.
func (c Config) normalizeLimit(limit int) int {
	if limit <= 0 {
		limit = c.DefaultLimit
	}
	if limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	return limit
}

//go:build !integration

package recommend

import (
	"testing"

	"runGuard/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestExplain_ReasonOrder(t *testing.T) {
	r := route("r", 5, 4)
	r.Popularity = 4.5
	r.RatingCount = 12
	r.Features = datatypes.JSONSlice[string]{"lit", "scenic"}

	b := domain.ScoreBreakdown{Preference: 0.6, History: 0.7, Weather: 0.9, Time: 0.8, Safety: 0.9, Popularity: 0.9, Novelty: 1}
	exp := Explain(b, r, domain.BucketMorning, DefaultConfig().Thresholds)

	assert.Equal(t, []string{
		ReasonWeather,
		ReasonTime,
		ReasonDifficulty,
		ReasonPreference,
		ReasonSafety,
		ReasonNovelty,
		"Popular with runners (4.5 from 12 ratings)",
		"Scenic views along the way",
		"Street lighting after dark",
	}, exp.Reasons)
	assert.Equal(t, domain.ArchetypePerfectMatch, exp.Archetype)
}

func TestExplain_ThresholdsAreStrict(t *testing.T) {
	b := domain.ScoreBreakdown{Preference: 0.5, History: 0.6, Weather: 0.7, Time: 0.7, Safety: 0.8, Novelty: 0.8}
	exp := Explain(b, route("r", 5, 4), domain.BucketMorning, DefaultConfig().Thresholds)

	assert.Equal(t, domain.ReasonFlags{}, exp.Flags)
	assert.Empty(t, exp.Reasons)
	assert.Equal(t, domain.ArchetypeGeneral, exp.Archetype)
}

func TestExplain_PopularNeedsEnoughRatings(t *testing.T) {
	r := route("r", 5, 4)
	r.Popularity = 5
	r.RatingCount = 3
	exp := Explain(domain.ScoreBreakdown{Popularity: 1}, r, domain.BucketMorning, DefaultConfig().Thresholds)

	assert.Empty(t, exp.Reasons)
	assert.Equal(t, domain.ArchetypePopular, exp.Archetype)
}

func TestExplain_ArchetypePriority(t *testing.T) {
	th := DefaultConfig().Thresholds
	easy := route("easy", 5, 3)
	hard := route("hard", 5, 8)

	tests := []struct {
		name   string
		b      domain.ScoreBreakdown
		r      domain.Route
		bucket domain.TimeBucket
		want   domain.Archetype
	}{
		{"perfect beats popular", domain.ScoreBreakdown{Weather: 1, Time: 1, History: 1, Popularity: 1}, hard, domain.BucketMorning, domain.ArchetypePerfectMatch},
		{"popular beats challenge", domain.ScoreBreakdown{Popularity: 0.95}, hard, domain.BucketMorning, domain.ArchetypePopular},
		{"challenge beats exploration", domain.ScoreBreakdown{Novelty: 1}, hard, domain.BucketMorning, domain.ArchetypeChallenge},
		{"exploration beats safe night", domain.ScoreBreakdown{Novelty: 1, Safety: 1}, easy, domain.BucketNight, domain.ArchetypeExploration},
		{"safe night", domain.ScoreBreakdown{Novelty: 0.2, Safety: 1}, easy, domain.BucketNight, domain.ArchetypeSafeNight},
		{"safe late night is general", domain.ScoreBreakdown{Novelty: 0.2, Safety: 1}, easy, domain.BucketLateNight, domain.ArchetypeGeneral},
		{"safe by day is general", domain.ScoreBreakdown{Novelty: 0.2, Safety: 1}, easy, domain.BucketNoon, domain.ArchetypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explain(tt.b, tt.r, tt.bucket, th).Archetype)
		})
	}
}

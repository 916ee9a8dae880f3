package recommend

import "runGuard/domain"

// Aggregate is the weighted dot product of the sub-scores. Sub-scores are
// already clamped by their signals.
func Aggregate(b domain.ScoreBreakdown, w Weights) float64 {
	total := b.Preference*w.Preference +
		b.History*w.History +
		b.Weather*w.Weather +
		b.Time*w.Time +
		b.Safety*w.Safety +
		b.Popularity*w.Popularity +
		b.Novelty*w.Novelty

	return clamp01(total)
}

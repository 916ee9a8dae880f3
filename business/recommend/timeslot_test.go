//go:build !integration

package recommend

import (
	"testing"
	"time"

	"runGuard/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestBucketForTime(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 3, 1, h, 30, 0, 0, time.UTC) }

	want := map[int]domain.TimeBucket{
		0: domain.BucketLateNight, 4: domain.BucketLateNight,
		5: domain.BucketDawn, 6: domain.BucketDawn,
		7: domain.BucketMorning, 10: domain.BucketMorning,
		11: domain.BucketNoon, 13: domain.BucketNoon,
		14: domain.BucketAfternoon, 16: domain.BucketAfternoon,
		17: domain.BucketEvening, 18: domain.BucketEvening,
		19: domain.BucketNight, 22: domain.BucketNight,
		23: domain.BucketLateNight,
	}
	for h, b := range want {
		assert.Equal(t, b, BucketForTime(at(h)), "hour %d", h)
	}
}

func TestTimeMatch(t *testing.T) {
	r := route("r", 5, 4)
	r.TimeSuitability = datatypes.NewJSONType(map[domain.TimeBucket]float64{
		domain.BucketMorning: 0.9,
		domain.BucketNoon:    1.7,
	})

	assert.InDelta(t, 0.9, TimeMatch(r, domain.BucketMorning), 1e-9)
	assert.InDelta(t, 1.0, TimeMatch(r, domain.BucketNoon), 1e-9, "table values are clamped")
	assert.InDelta(t, 0.5, TimeMatch(r, domain.BucketAfternoon), 1e-9)

	r.Lighting = domain.LightingGood
	assert.InDelta(t, 0.8, TimeMatch(r, domain.BucketNight), 1e-9)
	r.Lighting = domain.LightingModerate
	assert.InDelta(t, 0.5, TimeMatch(r, domain.BucketNight), 1e-9)
	r.Lighting = domain.LightingPoor
	assert.InDelta(t, 0.2, TimeMatch(r, domain.BucketNight), 1e-9)
	assert.InDelta(t, 0.5, TimeMatch(r, domain.BucketLateNight), 1e-9, "no lighting fallback after night")
}

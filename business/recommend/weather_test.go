//go:build !integration

package recommend

import (
	"testing"

	"runGuard/domain"

	"github.com/stretchr/testify/assert"
)

func TestWeatherSuitability_Examples(t *testing.T) {
	assert.InDelta(t, 1.0, WeatherSuitability(clearWeather()), 1e-9)

	rain := clearWeather()
	rain.Condition = domain.ConditionRain
	assert.InDelta(t, 0.1, WeatherSuitability(rain), 1e-9)
}

func TestWeatherSuitability_Factors(t *testing.T) {
	tests := []struct {
		name string
		w    domain.Weather
		want float64
	}{
		{"cool", domain.Weather{TemperatureC: 12, Condition: domain.ConditionClear, Humidity: 55}, 0.8},
		{"cold", domain.Weather{TemperatureC: 6, Condition: domain.ConditionClear, Humidity: 55}, 0.6},
		{"freezing", domain.Weather{TemperatureC: -3, Condition: domain.ConditionClear, Humidity: 55}, 0.3},
		{"hot", domain.Weather{TemperatureC: 38, Condition: domain.ConditionClear, Humidity: 55}, 0.3},
		{"overcast", domain.Weather{TemperatureC: 20, Condition: domain.ConditionOvercast, Humidity: 55}, 0.9},
		{"fog", domain.Weather{TemperatureC: 20, Condition: domain.ConditionFog, Humidity: 55}, 0.2},
		{"unknown condition", domain.Weather{TemperatureC: 20, Condition: "hail", Humidity: 55}, 0.7},
		{"breezy", domain.Weather{TemperatureC: 20, Condition: domain.ConditionClear, Humidity: 55, WindSpeedKmh: 15}, 0.8},
		{"windy", domain.Weather{TemperatureC: 20, Condition: domain.ConditionClear, Humidity: 55, WindSpeedKmh: 40}, 0.5},
		{"dry", domain.Weather{TemperatureC: 20, Condition: domain.ConditionClear, Humidity: 35}, 0.9},
		{"humid", domain.Weather{TemperatureC: 20, Condition: domain.ConditionClear, Humidity: 95}, 0.7},
		{"everything bad", domain.Weather{TemperatureC: 40, Condition: domain.ConditionHeavyRain, Humidity: 95, WindSpeedKmh: 60}, 0.3 * 0.1 * 0.5 * 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WeatherSuitability(tt.w), 1e-9)
		})
	}
}

func TestWeatherSuitability_WindMonotonic(t *testing.T) {
	for _, temp := range []float64{-10, 7, 12, 20, 33, 45} {
		for _, hum := range []float64{10, 35, 55, 75, 99} {
			prev := 2.0
			for wind := 0.0; wind <= 60; wind += 0.5 {
				w := domain.Weather{TemperatureC: temp, Condition: domain.ConditionCloudy, Humidity: hum, WindSpeedKmh: wind}
				got := WeatherSuitability(w)
				assert.GreaterOrEqual(t, got, 0.0)
				assert.LessOrEqual(t, got, 1.0)
				assert.LessOrEqual(t, got, prev, "temp=%v hum=%v wind=%v", temp, hum, wind)
				prev = got
			}
		}
	}
}

func TestRouteWeatherScore_AppliesRouteMultiplier(t *testing.T) {
	r := FallbackCatalog()[2] // hill trail: rain multiplier 0.5
	assert.InDelta(t, 0.05, routeWeatherScore(0.1, r, domain.ConditionRain), 1e-9)
	assert.InDelta(t, 0.8, routeWeatherScore(0.8, r, domain.ConditionClear), 1e-9)
}

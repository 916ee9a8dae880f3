package recommend

import "runGuard/domain"

var conditionScores = map[domain.WeatherCondition]float64{
	domain.ConditionClear:        1.0,
	domain.ConditionSunny:        1.0,
	domain.ConditionPartlyCloudy: 1.0,
	domain.ConditionCloudy:       0.9,
	domain.ConditionOvercast:     0.9,
	domain.ConditionLightRain:    0.4,
	domain.ConditionRain:         0.1,
	domain.ConditionHeavyRain:    0.1,
	domain.ConditionSnow:         0.2,
	domain.ConditionFog:          0.2,
}

const unknownConditionScore = 0.7

// WeatherSuitability scores a weather reading for running. The four factors
// multiply, so a single adverse factor dominates the result.
func WeatherSuitability(w domain.Weather) float64 {
	return clamp01(
		temperatureScore(w.TemperatureC) *
			conditionScore(w.Condition) *
			windScore(w.WindSpeedKmh) *
			humidityScore(w.Humidity),
	)
}

func temperatureScore(c float64) float64 {
	switch {
	case c >= 15 && c <= 25:
		return 1.0
	case c >= 10 && c <= 30:
		return 0.8
	case c >= 5 && c <= 35:
		return 0.6
	default:
		return 0.3
	}
}

func conditionScore(cond domain.WeatherCondition) float64 {
	if v, ok := conditionScores[cond]; ok {
		return v
	}
	return unknownConditionScore
}

func windScore(kmh float64) float64 {
	switch {
	case kmh <= 10:
		return 1.0
	case kmh <= 20:
		return 0.8
	default:
		return 0.5
	}
}

func humidityScore(h float64) float64 {
	switch {
	case h >= 40 && h <= 70:
		return 1.0
	case h >= 30 && h <= 80:
		return 0.9
	default:
		return 0.7
	}
}

// routeWeatherScore applies the route's own multiplier for the condition, if any.
func routeWeatherScore(base float64, route domain.Route, cond domain.WeatherCondition) float64 {
	if m, ok := route.WeatherSuitabilityFor(cond); ok {
		return clamp01(base * clamp01(m))
	}
	return clamp01(base)
}

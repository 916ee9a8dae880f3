package domain

// WeatherCondition is the discrete weather condition reported by the weather supplier.
type WeatherCondition string

const (
	ConditionClear        WeatherCondition = "clear"
	ConditionSunny        WeatherCondition = "sunny"
	ConditionPartlyCloudy WeatherCondition = "partly_cloudy"
	ConditionCloudy       WeatherCondition = "cloudy"
	ConditionOvercast     WeatherCondition = "overcast"
	ConditionLightRain    WeatherCondition = "light_rain"
	ConditionRain         WeatherCondition = "rain"
	ConditionHeavyRain    WeatherCondition = "heavy_rain"
	ConditionSnow         WeatherCondition = "snow"
	ConditionFog          WeatherCondition = "fog"
)

// TimeBucket is one of seven ordered segments of the day.
type TimeBucket string

const (
	BucketDawn      TimeBucket = "dawn"       // 05-07
	BucketMorning   TimeBucket = "morning"    // 07-11
	BucketNoon      TimeBucket = "noon"       // 11-14
	BucketAfternoon TimeBucket = "afternoon"  // 14-17
	BucketEvening   TimeBucket = "evening"    // 17-19
	BucketNight     TimeBucket = "night"      // 19-23
	BucketLateNight TimeBucket = "late_night" // 23-05
)

// TimeBuckets lists the buckets in day order.
var TimeBuckets = []TimeBucket{
	BucketDawn,
	BucketMorning,
	BucketNoon,
	BucketAfternoon,
	BucketEvening,
	BucketNight,
	BucketLateNight,
}

// Valid reports whether b is one of the known buckets.
func (b TimeBucket) Valid() bool {
	for _, known := range TimeBuckets {
		if b == known {
			return true
		}
	}
	return false
}

// IsNight reports whether the bucket is the night bucket. late_night is
// scored like any other daytime bucket.
func (b TimeBucket) IsNight() bool {
	return b == BucketNight
}

// Weather is a single reading from the weather supplier.
type Weather struct {
	TemperatureC float64          `json:"temperature" validate:"gte=-60,lte=60"`
	Condition    WeatherCondition `json:"condition" validate:"required"`
	Humidity     float64          `json:"humidity" validate:"gte=0,lte=100"`
	WindSpeedKmh float64          `json:"wind_speed" validate:"gte=0,lte=250"`
}

// GeoPoint is an optional position of the runner.
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// ContextSnapshot is the per-request environment the engine ranks against.
type ContextSnapshot struct {
	Weather    Weather    `json:"weather"`
	TimeBucket TimeBucket `json:"time_of_day"`
	Location   *GeoPoint  `json:"location,omitempty" validate:"omitempty"`
}

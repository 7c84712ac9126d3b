package models

// ForecastPeriod is one period of the 36-hour forecast with every weather
// element flattened into a field. Fields whose element is missing upstream
// stay empty.
type ForecastPeriod struct {
	StartTime string `json:"startTime" example:"2025-07-25 18:00:00"`
	EndTime   string `json:"endTime" example:"2025-07-26 06:00:00"`
	Weather   string `json:"weather" example:"多雲時晴"`
	Rain      string `json:"rain" example:"20%"`
	MinTemp   string `json:"minTemp" example:"27°C"`
	MaxTemp   string `json:"maxTemp" example:"33°C"`
	Comfort   string `json:"comfort" example:"舒適至悶熱"`
	WindSpeed string `json:"windSpeed" example:"偏南風 平均風速1-2級(每秒2公尺)"`
}

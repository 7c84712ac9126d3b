package models

type WeatherData struct {
	City       string           `json:"city" example:"臺北市"`
	UpdateTime string           `json:"updateTime" example:"三十六小時天氣預報"`
	Forecasts  []ForecastPeriod `json:"forecasts"`
}

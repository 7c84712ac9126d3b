package models

// Response is the success envelope. SunTimes is only present for the combined
// weather endpoint.
type Response struct {
	Success  bool        `json:"success" example:"true"`
	Data     WeatherData `json:"data"`
	SunTimes *SunTimes   `json:"sunTimes,omitempty"`
}

// ErrorResponse is the error envelope returned for every failed request.
type ErrorResponse struct {
	Error   string `json:"error" example:"no matching data"`
	Message string `json:"message,omitempty" example:"unable to retrieve weather data for 臺北市"`
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"cwa-weather/internal/cities"
	"cwa-weather/internal/services/weather"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// IndexResponse lists what the API offers
type IndexResponse struct {
	Message   string            `json:"message" example:"Welcome to the CWA weather forecast API"`
	Endpoints map[string]string `json:"endpoints"`
	Cities    []string          `json:"cities"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2025-07-25T10:00:00.000Z"`
}

// @Summary API directory
// @Description Lists the available endpoints and city codes
// @Tags System
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func (r *routes) handleIndex(c *fiber.Ctx) error {
	return c.JSON(IndexResponse{
		Message: "Welcome to the CWA weather forecast API",
		Endpoints: map[string]string{
			"weatherAndSunTimes": "/api/weather?city=your_city",
			"forecast":           "/api/forecast?city=your_city",
			"health":             "/api/health",
			"docs":               "/swagger/index.html",
		},
		Cities: cities.Codes(),
	})
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/health [get]
func (r *routes) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(timestampLayout),
	})
}

// GetWeather godoc
// @Summary Get forecast with sunrise and sunset
// @Description Retrieves the CWA 36-hour forecast together with today's sunrise and sunset for a city
// @Tags Weather
// @Produce json
// @Param city query string false "City code (default: taipei)" example(taipei)
// @Success 200 {object} models.Response "Successful response"
// @Failure 404 {object} models.ErrorResponse "No data for the city"
// @Failure 500 {object} models.ErrorResponse "Server or configuration error"
// @Router /api/weather [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:3000/api/weather?city=chiayi-city"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	city := c.Query("city", cities.DefaultCode)

	resp, err := r.service.WeatherWithSun(c.UserContext(), city)
	if err != nil {
		return r.writeError(c, err, city, weather.FallbackMessage)
	}

	return c.JSON(resp)
}

// GetForecast godoc
// @Summary Get 36-hour forecast
// @Description Retrieves the CWA 36-hour forecast for a city
// @Tags Weather
// @Produce json
// @Param city query string false "City code (default: taipei)" example(taipei)
// @Success 200 {object} models.Response "Successful response"
// @Failure 404 {object} models.ErrorResponse "No data for the city"
// @Failure 500 {object} models.ErrorResponse "Server or configuration error"
// @Router /api/forecast [get]
func (r *routes) handleForecastCall(c *fiber.Ctx) error {
	city := c.Query("city", cities.DefaultCode)

	resp, err := r.service.WeatherOnly(c.UserContext(), city)
	if err != nil {
		return r.writeError(c, err, city, weather.FallbackWeatherMessage)
	}

	return c.JSON(resp)
}

func (r *routes) writeError(c *fiber.Ctx, err error, city, fallback string) error {
	status, body := weather.Normalize(err, fallback)
	if status == fiber.StatusInternalServerError {
		r.l.Error(err, map[string]any{
			"city":  city,
			"label": body.Error,
		})
	}

	return c.Status(status).JSON(body)
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	_ "cwa-weather/docs"
	"cwa-weather/internal/services/weather"
	"cwa-weather/pkg/logger"
)

type routes struct {
	service *weather.WeatherService
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	l *logger.Logger,
) {
	r := &routes{
		service: weatherService,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	app.Get("/", r.handleIndex)

	// API routes
	api := app.Group("/api")
	api.Get("/health", r.handleHealth)
	api.Get("/weather", r.handleWeatherCall)
	api.Get("/forecast", r.handleForecastCall)
}

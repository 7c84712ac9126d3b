package repositories

import (
	"context"
	"net/http"

	"cwa-weather/config"
	"cwa-weather/internal/models"
	"cwa-weather/pkg/logger"
)

// HTTPClient is satisfied by *http.Client and lets tests swap the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForecastRepository fetches the 36-hour forecast for an upstream location name.
type ForecastRepository interface {
	FetchForecast(ctx context.Context, locationName string) (models.WeatherData, error)
}

// SunTimesRepository fetches sunrise and sunset times for an upstream location name.
type SunTimesRepository interface {
	FetchSunTimes(ctx context.Context, locationName string) (models.SunTimes, error)
}

// InitCWARepositories builds both CWA repositories over a shared client.
func InitCWARepositories(cfg *config.Config, l *logger.Logger, httpClient HTTPClient) (*CWAForecastRepository, *CWASunTimesRepository) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &cwaClient{
		baseURL:    cfg.CWA.BaseURL,
		apiKey:     cfg.CWA.APIKey,
		httpClient: httpClient,
		l:          l,
	}

	return &CWAForecastRepository{client: c}, &CWASunTimesRepository{client: c}
}

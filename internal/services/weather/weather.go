package weather

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cwa-weather/internal/cities"
	"cwa-weather/internal/models"
	"cwa-weather/internal/repositories"
	"cwa-weather/pkg/logger"
)

const (
	FallbackWeatherMessage = "unable to retrieve weather data"
	FallbackMessage        = "unable to retrieve data"
)

// WeatherService represents the weather service.
type WeatherService struct {
	forecasts repositories.ForecastRepository
	sunTimes  repositories.SunTimesRepository
	apiKey    string
	resolve   cities.Resolver
	l         *logger.Logger
}

func NewWeatherService(
	forecasts repositories.ForecastRepository,
	sunTimes repositories.SunTimesRepository,
	apiKey string,
	resolve cities.Resolver,
	l *logger.Logger,
) *WeatherService {
	if resolve == nil {
		resolve = cities.Resolve
	}

	return &WeatherService{
		forecasts: forecasts,
		sunTimes:  sunTimes,
		apiKey:    apiKey,
		resolve:   resolve,
		l:         l,
	}
}

// WeatherOnly returns the 36-hour forecast for a city code.
func (s *WeatherService) WeatherOnly(ctx context.Context, cityCode string) (models.Response, error) {
	if s.apiKey == "" {
		s.l.Warning("CWA API key is not configured", map[string]any{"city": cityCode})
		return models.Response{}, ErrMissingAPIKey
	}

	locationName := s.resolve(cityCode)

	data, err := s.forecasts.FetchForecast(ctx, locationName)
	if err != nil {
		s.l.Warning("failed to fetch forecast", map[string]any{
			"city":     cityCode,
			"location": locationName,
			"err":      err.Error(),
		})
		return models.Response{}, err
	}

	s.l.Info("successfully fetched forecast", map[string]any{
		"city":    cityCode,
		"periods": len(data.Forecasts),
	})

	return models.Response{Success: true, Data: data}, nil
}

// WeatherWithSun returns the forecast together with today's sunrise and
// sunset. Both upstream calls run concurrently; the first failure cancels
// the other and is returned.
func (s *WeatherService) WeatherWithSun(ctx context.Context, cityCode string) (models.Response, error) {
	if s.apiKey == "" {
		s.l.Warning("CWA API key is not configured", map[string]any{"city": cityCode})
		return models.Response{}, ErrMissingAPIKey
	}

	locationName := s.resolve(cityCode)

	var (
		data models.WeatherData
		sun  models.SunTimes
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data, err = s.forecasts.FetchForecast(gCtx, locationName)
		return err
	})

	g.Go(func() error {
		var err error
		sun, err = s.sunTimes.FetchSunTimes(gCtx, locationName)
		return err
	})

	if err := g.Wait(); err != nil {
		s.l.Warning("failed to fetch weather with sun times", map[string]any{
			"city":     cityCode,
			"location": locationName,
			"err":      err.Error(),
		})
		return models.Response{}, err
	}

	s.l.Info("successfully fetched weather with sun times", map[string]any{
		"city":    cityCode,
		"periods": len(data.Forecasts),
		"date":    sun.Date,
	})

	return models.Response{Success: true, Data: data, SunTimes: &sun}, nil
}

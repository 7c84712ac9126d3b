package weather_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cwa-weather/internal/cities"
	"cwa-weather/internal/models"
	"cwa-weather/internal/repositories"
	"cwa-weather/internal/services/weather"
	"cwa-weather/pkg/logger"
)

// MockForecastRepository implements ForecastRepository for testing
type MockForecastRepository struct {
	data        models.WeatherData
	err         error
	block       bool
	callCount   int
	lastRequest string
}

func (m *MockForecastRepository) FetchForecast(ctx context.Context, locationName string) (models.WeatherData, error) {
	m.callCount++
	m.lastRequest = locationName

	if m.block {
		<-ctx.Done()
		return models.WeatherData{}, ctx.Err()
	}
	if m.err != nil {
		return models.WeatherData{}, m.err
	}
	return m.data, nil
}

// MockSunTimesRepository implements SunTimesRepository for testing
type MockSunTimesRepository struct {
	sun         models.SunTimes
	err         error
	delay       time.Duration
	callCount   int
	lastRequest string
}

func (m *MockSunTimesRepository) FetchSunTimes(ctx context.Context, locationName string) (models.SunTimes, error) {
	m.callCount++
	m.lastRequest = locationName

	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return models.SunTimes{}, ctx.Err()
		case <-time.After(m.delay):
		}
	}
	if m.err != nil {
		return models.SunTimes{}, m.err
	}
	return m.sun, nil
}

func testLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", "test", io.Discard)
}

func taipeiWeather() models.WeatherData {
	return models.WeatherData{
		City:       "臺北市",
		UpdateTime: "三十六小時天氣預報",
		Forecasts: []models.ForecastPeriod{
			{StartTime: "2025-07-25 18:00:00", EndTime: "2025-07-26 06:00:00", Weather: "多雲時晴", Rain: "10%", MinTemp: "28°C", MaxTemp: "31°C"},
		},
	}
}

func taipeiSun() models.SunTimes {
	return models.SunTimes{Date: "2025-07-25", SunRiseTime: "05:17", SunSetTime: "18:41"}
}

func TestWeatherService_WeatherWithSun_Success(t *testing.T) {
	forecasts := &MockForecastRepository{data: taipeiWeather()}
	sun := &MockSunTimesRepository{sun: taipeiSun()}
	service := weather.NewWeatherService(forecasts, sun, "test-key", cities.Resolve, testLogger())

	resp, err := service.WeatherWithSun(context.Background(), "taipei")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, taipeiWeather(), resp.Data)
	require.NotNil(t, resp.SunTimes)
	assert.Equal(t, taipeiSun(), *resp.SunTimes)

	assert.Equal(t, "臺北市", forecasts.lastRequest)
	assert.Equal(t, "臺北市", sun.lastRequest)
	assert.Equal(t, 1, forecasts.callCount)
	assert.Equal(t, 1, sun.callCount)
}

func TestWeatherService_WeatherWithSun_UnknownCodePassesThrough(t *testing.T) {
	forecasts := &MockForecastRepository{data: taipeiWeather()}
	sun := &MockSunTimesRepository{sun: taipeiSun()}
	service := weather.NewWeatherService(forecasts, sun, "test-key", nil, testLogger())

	_, err := service.WeatherWithSun(context.Background(), "臺北市")
	require.NoError(t, err)

	assert.Equal(t, "臺北市", forecasts.lastRequest)
}

func TestWeatherService_WeatherWithSun_SunFailureIsNeverPartial(t *testing.T) {
	forecasts := &MockForecastRepository{data: taipeiWeather()}
	sun := &MockSunTimesRepository{err: &repositories.NotFoundError{LocationName: "臺北市", Message: "unable to retrieve sunrise/sunset data for 臺北市"}}
	service := weather.NewWeatherService(forecasts, sun, "test-key", cities.Resolve, testLogger())

	resp, err := service.WeatherWithSun(context.Background(), "taipei")
	require.Error(t, err)

	assert.False(t, resp.Success)
	assert.Nil(t, resp.SunTimes)
	assert.Empty(t, resp.Data.Forecasts)

	status, body := weather.Normalize(err, weather.FallbackMessage)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, weather.LabelNoData, body.Error)
	assert.Equal(t, "unable to retrieve sunrise/sunset data for 臺北市", body.Message)
}

func TestWeatherService_WeatherWithSun_ForecastFailure(t *testing.T) {
	forecasts := &MockForecastRepository{err: &repositories.UpstreamError{Dataset: "F-C0032-001", Status: http.StatusUnauthorized, Message: "Unauthorized"}}
	sun := &MockSunTimesRepository{sun: taipeiSun()}
	service := weather.NewWeatherService(forecasts, sun, "test-key", cities.Resolve, testLogger())

	_, err := service.WeatherWithSun(context.Background(), "taipei")

	var upstream *repositories.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.Status)
}

func TestWeatherService_WeatherWithSun_FirstFailureCancelsOther(t *testing.T) {
	forecasts := &MockForecastRepository{block: true}
	sunErr := &repositories.UpstreamError{Dataset: "A-B0062-001", Status: http.StatusBadGateway}
	sun := &MockSunTimesRepository{err: sunErr}
	service := weather.NewWeatherService(forecasts, sun, "test-key", cities.Resolve, testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := service.WeatherWithSun(context.Background(), "taipei")
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, sunErr)
	case <-time.After(2 * time.Second):
		t.Fatal("WeatherWithSun did not return after the sun times fetch failed")
	}
}

func TestWeatherService_WeatherWithSun_PropagatesContext(t *testing.T) {
	forecasts := &MockForecastRepository{data: taipeiWeather()}
	sun := &MockSunTimesRepository{sun: taipeiSun(), delay: 50 * time.Millisecond}
	service := weather.NewWeatherService(forecasts, sun, "test-key", cities.Resolve, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.WeatherWithSun(ctx, "taipei")
	assert.ErrorIs(t, err, context.Canceled, "the caller's context reaches both fetches")
}

func TestWeatherService_MissingAPIKey(t *testing.T) {
	forecasts := &MockForecastRepository{data: taipeiWeather()}
	sun := &MockSunTimesRepository{sun: taipeiSun()}
	service := weather.NewWeatherService(forecasts, sun, "", cities.Resolve, testLogger())

	_, err := service.WeatherWithSun(context.Background(), "taipei")
	assert.ErrorIs(t, err, weather.ErrMissingAPIKey)

	_, err = service.WeatherOnly(context.Background(), "taipei")
	assert.ErrorIs(t, err, weather.ErrMissingAPIKey)

	assert.Zero(t, forecasts.callCount)
	assert.Zero(t, sun.callCount)

	status, body := weather.Normalize(err, weather.FallbackWeatherMessage)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, weather.LabelConfiguration, body.Error)
	assert.Contains(t, body.Message, "CWA_API_KEY")
}

func TestWeatherService_WeatherOnly(t *testing.T) {
	forecasts := &MockForecastRepository{data: taipeiWeather()}
	sun := &MockSunTimesRepository{sun: taipeiSun()}
	service := weather.NewWeatherService(forecasts, sun, "test-key", cities.Resolve, testLogger())

	resp, err := service.WeatherOnly(context.Background(), "taipei")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, taipeiWeather(), resp.Data)
	assert.Nil(t, resp.SunTimes)
	assert.Zero(t, sun.callCount, "the forecast-only operation never asks for sun times")
}

func TestWeatherService_WeatherOnly_NotFound(t *testing.T) {
	forecasts := &MockForecastRepository{err: &repositories.NotFoundError{LocationName: "atlantis", Message: "unable to retrieve weather data for atlantis"}}
	service := weather.NewWeatherService(forecasts, &MockSunTimesRepository{}, "test-key", cities.Resolve, testLogger())

	_, err := service.WeatherOnly(context.Background(), "atlantis")

	status, body := weather.Normalize(err, weather.FallbackWeatherMessage)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, weather.LabelNoData, body.Error)
	assert.Contains(t, body.Message, "atlantis")
	assert.Equal(t, "atlantis", forecasts.lastRequest)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantLabel   string
		wantMessage string
	}{
		{
			name:        "upstream status with body message",
			err:         &repositories.UpstreamError{Status: http.StatusUnauthorized, Message: "Unauthorized"},
			wantStatus:  http.StatusUnauthorized,
			wantLabel:   weather.LabelNoData,
			wantMessage: "Unauthorized",
		},
		{
			name:        "upstream status without body message",
			err:         &repositories.UpstreamError{Status: http.StatusBadGateway},
			wantStatus:  http.StatusBadGateway,
			wantLabel:   weather.LabelNoData,
			wantMessage: weather.FallbackMessage,
		},
		{
			name:        "upstream 500 is a server error",
			err:         &repositories.UpstreamError{Status: http.StatusInternalServerError, Message: "boom"},
			wantStatus:  http.StatusInternalServerError,
			wantLabel:   weather.LabelServerError,
			wantMessage: "boom",
		},
		{
			name:        "network failure without status",
			err:         &repositories.UpstreamError{Err: errors.New("connection refused")},
			wantStatus:  http.StatusInternalServerError,
			wantLabel:   weather.LabelServerError,
			wantMessage: weather.FallbackMessage,
		},
		{
			name:        "location not found",
			err:         &repositories.NotFoundError{LocationName: "臺北市", Message: "unable to retrieve weather data for 臺北市"},
			wantStatus:  http.StatusNotFound,
			wantLabel:   weather.LabelNoData,
			wantMessage: "unable to retrieve weather data for 臺北市",
		},
		{
			name:        "unknown error",
			err:         errors.New("unexpected"),
			wantStatus:  http.StatusInternalServerError,
			wantLabel:   weather.LabelServerError,
			wantMessage: weather.FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := weather.Normalize(tt.err, weather.FallbackMessage)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantLabel, body.Error)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

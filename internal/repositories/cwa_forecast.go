package repositories

import (
	"context"
	"net/url"

	"cwa-weather/internal/models"
)

// CWAForecastRepository reads the F-C0032-001 36-hour forecast dataset.
type CWAForecastRepository struct {
	client *cwaClient
}

type forecastResponse struct {
	Records struct {
		DatasetDescription string             `json:"datasetDescription"`
		Location           []forecastLocation `json:"location"`
	} `json:"records"`
}

type forecastLocation struct {
	LocationName   string           `json:"locationName"`
	WeatherElement []weatherElement `json:"weatherElement"`
}

type weatherElement struct {
	ElementName string        `json:"elementName"`
	Time        []elementTime `json:"time"`
}

type elementTime struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Parameter struct {
		ParameterName string `json:"parameterName"`
	} `json:"parameter"`
}

func (r *CWAForecastRepository) FetchForecast(ctx context.Context, locationName string) (models.WeatherData, error) {
	var response forecastResponse
	params := url.Values{"locationName": {locationName}}
	if err := r.client.getDataset(ctx, forecastDataset, params, &response); err != nil {
		return models.WeatherData{}, err
	}

	var location *forecastLocation
	for i := range response.Records.Location {
		if response.Records.Location[i].LocationName == locationName {
			location = &response.Records.Location[i]
			break
		}
	}
	if location == nil {
		return models.WeatherData{}, newNotFoundError("unable to retrieve weather data for %s", locationName)
	}

	r.client.l.Debug("parsed forecast response", map[string]any{
		"location": location.LocationName,
		"elements": len(location.WeatherElement),
	})

	return models.WeatherData{
		City:       location.LocationName,
		UpdateTime: response.Records.DatasetDescription,
		Forecasts:  flattenElements(location.WeatherElement),
	}, nil
}

// flattenElements turns the index-aligned element series into one record per
// period. The first series decides how many periods there are and their
// boundaries; shorter series leave their field empty.
func flattenElements(elements []weatherElement) []models.ForecastPeriod {
	if len(elements) == 0 {
		return []models.ForecastPeriod{}
	}

	periods := make([]models.ForecastPeriod, len(elements[0].Time))
	for i, t := range elements[0].Time {
		periods[i].StartTime = t.StartTime
		periods[i].EndTime = t.EndTime

		for _, element := range elements {
			if i >= len(element.Time) {
				continue
			}
			value := element.Time[i].Parameter.ParameterName

			switch element.ElementName {
			case "Wx":
				periods[i].Weather = value
			case "PoP":
				periods[i].Rain = value + "%"
			case "MinT":
				periods[i].MinTemp = value + "°C"
			case "MaxT":
				periods[i].MaxTemp = value + "°C"
			case "CI":
				periods[i].Comfort = value
			case "WS":
				periods[i].WindSpeed = value
			}
		}
	}

	return periods
}

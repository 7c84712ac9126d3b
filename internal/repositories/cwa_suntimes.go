package repositories

import (
	"context"
	"net/url"

	"cwa-weather/internal/models"
)

// CWASunTimesRepository reads the A-B0062-001 sunrise/sunset dataset.
type CWASunTimesRepository struct {
	client *cwaClient
}

type sunTimesResponse struct {
	Records struct {
		Locations struct {
			Location []struct {
				CountyName string `json:"CountyName"`
				Time       []struct {
					Date        string `json:"Date"`
					SunRiseTime string `json:"SunRiseTime"`
					SunSetTime  string `json:"SunSetTime"`
				} `json:"time"`
			} `json:"location"`
		} `json:"locations"`
	} `json:"records"`
}

// FetchSunTimes returns the first day listed for the county; later days are dropped.
func (r *CWASunTimesRepository) FetchSunTimes(ctx context.Context, locationName string) (models.SunTimes, error) {
	var response sunTimesResponse
	params := url.Values{"CountyName": {locationName}}
	if err := r.client.getDataset(ctx, sunTimesDataset, params, &response); err != nil {
		return models.SunTimes{}, err
	}

	for _, location := range response.Records.Locations.Location {
		if location.CountyName != locationName {
			continue
		}
		if len(location.Time) == 0 {
			break
		}

		first := location.Time[0]
		return models.SunTimes{
			Date:        first.Date,
			SunRiseTime: first.SunRiseTime,
			SunSetTime:  first.SunSetTime,
		}, nil
	}

	return models.SunTimes{}, newNotFoundError("unable to retrieve sunrise/sunset data for %s", locationName)
}

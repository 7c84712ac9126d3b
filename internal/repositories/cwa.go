package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"cwa-weather/pkg/logger"
)

const (
	forecastDataset = "F-C0032-001"
	sunTimesDataset = "A-B0062-001"
)

type cwaClient struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

// getDataset requests a CWA datastore resource and decodes the JSON body into out.
func (c *cwaClient) getDataset(ctx context.Context, dataset string, params url.Values, out any) error {
	params.Set("Authorization", c.apiKey)
	endpoint := fmt.Sprintf("%s/v1/rest/datastore/%s?%s", strings.TrimRight(c.baseURL, "/"), dataset, params.Encode())

	c.l.Debug("making CWA API request", map[string]any{
		"dataset": dataset,
		"params":  redact(params),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &UpstreamError{Dataset: dataset, Err: errors.Wrap(err, "failed to create request")}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Dataset: dataset, Err: errors.Wrap(err, "failed to do request")}
	}
	defer resp.Body.Close()

	c.l.Debug("received CWA API response", map[string]any{
		"dataset": dataset,
		"status":  resp.StatusCode,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Dataset: dataset, Status: failedStatus(resp.StatusCode), Err: errors.Wrap(err, "failed to read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &errBody)

		return &UpstreamError{
			Dataset: dataset,
			Status:  resp.StatusCode,
			Message: errBody.Message,
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &UpstreamError{Dataset: dataset, Err: errors.Wrap(err, "failed to parse JSON response")}
	}

	return nil
}

// failedStatus keeps a non-2xx status so a truncated error body is still
// classified by the status upstream sent.
func failedStatus(status int) int {
	if status < 200 || status > 299 {
		return status
	}
	return 0
}

func redact(params url.Values) string {
	safe := url.Values{}
	for k, v := range params {
		if k == "Authorization" {
			continue
		}
		safe[k] = v
	}
	return safe.Encode()
}

package weather

import (
	"errors"
	"net/http"

	"cwa-weather/internal/models"
	"cwa-weather/internal/repositories"
)

const (
	LabelServerError   = "server error"
	LabelNoData        = "no matching data"
	LabelConfiguration = "server configuration error"

	configurationMessage = "CWA_API_KEY is not set; add it to the environment or the .env file"
)

// ErrMissingAPIKey is returned before any upstream call when no CWA API key is configured.
var ErrMissingAPIKey = errors.New(configurationMessage)

// Normalize maps any failure of a weather operation to a status code and the
// error envelope. fallback is used when the error carries no message meant
// for the client.
func Normalize(err error, fallback string) (int, models.ErrorResponse) {
	if errors.Is(err, ErrMissingAPIKey) {
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   LabelConfiguration,
			Message: configurationMessage,
		}
	}

	status := http.StatusInternalServerError
	message := fallback

	var notFound *repositories.NotFoundError
	var upstream *repositories.UpstreamError
	switch {
	case errors.As(err, &notFound):
		status = notFound.StatusCode()
		message = notFound.Message
	case errors.As(err, &upstream):
		if upstream.StatusCode() != 0 {
			status = upstream.StatusCode()
		}
		if upstream.Message != "" {
			message = upstream.Message
		}
	}

	label := LabelNoData
	if status == http.StatusInternalServerError {
		label = LabelServerError
	}

	return status, models.ErrorResponse{Error: label, Message: message}
}

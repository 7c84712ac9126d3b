package repositories

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"cwa-weather/config"
	"cwa-weather/pkg/logger"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		AppName: "test-app",
		CWA: config.CWAConfig{
			BaseURL: baseURL,
			APIKey:  "test-key",
		},
	}
}

func testLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", "test", io.Discard)
}

func fixture(t *testing.T, name string) string {
	t.Helper()

	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

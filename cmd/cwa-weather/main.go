package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cwa-weather/config"
	"cwa-weather/internal/cities"
	v1 "cwa-weather/internal/controllers/http/v1"
	"cwa-weather/internal/repositories"
	"cwa-weather/internal/services/weather"
	"cwa-weather/pkg/httpserver"
	"cwa-weather/pkg/logger"
	"cwa-weather/pkg/observe"
)

// @title CWA Weather API
// @version 1.0.0
// @description Proxy over the Taiwan Central Weather Administration open data API returning the 36-hour forecast and sunrise/sunset times per city.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Forecast and sunrise/sunset operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.SentryDSN != "" {
		var err error
		if hook, err = observe.NewSentryHook(cnf.AppEnv, cnf.AppName, cnf.SentryDSN, cnf.AppEnv == "development"); err != nil {
			fmt.Fprintln(os.Stderr, "sentry disabled:", err)
		} else {
			writers = append(writers, hook)
		}
	}

	l := logger.NewZapLogger(cnf.AppName, cnf.AppEnv, writers...)
	if hook != nil {
		hook.SetLogger(l)
	}

	if cnf.CWA.APIKey == "" {
		l.Warning("CWA_API_KEY is not set, weather requests will fail until it is configured")
	}

	app := httpserver.InitFiberServer(cnf.AppName, l)

	forecasts, sunTimes := repositories.InitCWARepositories(cnf, l, http.DefaultClient)

	service := weather.NewWeatherService(forecasts, sunTimes, cnf.CWA.APIKey, cities.Resolve, l)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port": cnf.Port,
		"env":  cnf.AppEnv,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}

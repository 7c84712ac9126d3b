package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultCWABaseURL = "https://opendata.cwa.gov.tw/api"
)

type Config struct {
	AppName    string    `envconfig:"APP_NAME" yaml:"app_name" validate:"required"`
	AppVersion string    `envconfig:"APP_VERSION" yaml:"app_version"`
	AppEnv     string    `envconfig:"APP_ENV" yaml:"app_env" validate:"oneof=development production test"`
	Port       string    `envconfig:"PORT" yaml:"port" validate:"required,numeric"`
	SentryDSN  string    `envconfig:"SENTRY_DSN" yaml:"sentry_dsn" validate:"omitempty,url"`
	CWA        CWAConfig `yaml:"cwa"`
}

// CWAConfig holds the upstream settings, read from CWA_BASE_URL and
// CWA_API_KEY. An empty APIKey is not a startup
// error: requests fail with a configuration error until it is set.
type CWAConfig struct {
	BaseURL string `split_words:"true" yaml:"base_url" validate:"required,url"`
	APIKey  string `split_words:"true" yaml:"api_key"`
}

func defaults() Config {
	return Config{
		AppName:    "cwa-weather",
		AppVersion: "1.0.0",
		AppEnv:     "development",
		Port:       "3000",
		CWA: CWAConfig{
			BaseURL: DefaultCWABaseURL,
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path and the environment, in that order of precedence (lowest first).
// Variables from a .env file in the working directory are loaded into the
// environment without overriding ones already set.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cnf := defaults()

	if err := loadFile(path, &cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return &cnf, nil
}

// loadFile overlays the YAML file onto cnf. A missing file is not an error.
func loadFile(path string, cnf *Config) error {
	yamlData, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func NewConfig() *Config {
	cnf, err := Load(DefaultConfigPath)
	if err != nil {
		panic(err)
	}
	return cnf
}

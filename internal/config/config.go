package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/soccer-tracker/internal/platform/logging"
)

// ErrMissingAPIKey is returned by Load when FOOTBALL_API_KEY is absent. Callers treat it as fatal.
var ErrMissingAPIKey = errors.New("FOOTBALL_API_KEY is not set")

const (
	DefaultFootballAPIBaseURL = "https://v3.football.api-sports.io"
	DefaultFootballAPIHost    = "v3.football.api-sports.io"
)

// Config stores runtime configuration shared by the API server and the terminal client.
type Config struct {
	AppEnv                       string
	ServiceName                  string
	ServiceVersion               string
	HTTPAddr                     string
	ReadTimeout                  time.Duration
	WriteTimeout                 time.Duration
	CORSAllowedOrigins           []string
	FootballAPIKey               string
	FootballAPIBaseURL           string
	FootballAPIHost              string
	FootballAPITimeout           time.Duration
	FootballAPICircuitEnabled    bool
	FootballAPICircuitFailures   int
	FootballAPICircuitOpenTime   time.Duration
	FootballAPICircuitHalfOpenRq int
	OverviewWorkers              int
	SessionIdleTimeout           time.Duration
	SwaggerEnabled               bool
	UptraceEnabled               bool
	UptraceDSN                   string
	PyroscopeEnabled             bool
	PyroscopeServerAddress       string
	PyroscopeAppName             string
	PyroscopeAuthToken           string
	PyroscopeUploadRate          time.Duration
	PprofEnabled                 bool
	PprofAddr                    string
	LogLevel                     logging.Level
}

func Load() (Config, error) {
	apiKey := strings.TrimSpace(os.Getenv("FOOTBALL_API_KEY"))
	if apiKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	// Zero falls back to the football client's own bound on shared requests.
	apiTimeout, err := time.ParseDuration(getEnv("FOOTBALL_API_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_TIMEOUT: %w", err)
	}
	if apiTimeout < 0 {
		return Config{}, fmt.Errorf("FOOTBALL_API_TIMEOUT must be >= 0")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(getEnv("FOOTBALL_API_BASE_URL", DefaultFootballAPIBaseURL)), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return Config{}, fmt.Errorf("FOOTBALL_API_BASE_URL must be an http(s) url, got %q", baseURL)
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("FOOTBALL_API_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailures, err := getEnvAsInt("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	circuitOpen, err := time.ParseDuration(getEnv("FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	circuitHalfOpen, err := getEnvAsInt("FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	overviewWorkers, err := getEnvAsInt("OVERVIEW_WORKERS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse OVERVIEW_WORKERS: %w", err)
	}
	if overviewWorkers <= 0 {
		return Config{}, fmt.Errorf("OVERVIEW_WORKERS must be > 0")
	}

	sessionIdle, err := time.ParseDuration(getEnv("SESSION_IDLE_TIMEOUT", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SESSION_IDLE_TIMEOUT: %w", err)
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	serviceName := getEnv("SERVICE_NAME", "soccer-tracker")

	return Config{
		AppEnv:                       appEnv,
		ServiceName:                  serviceName,
		ServiceVersion:               getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:                     getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:                  readTimeout,
		WriteTimeout:                 writeTimeout,
		CORSAllowedOrigins:           splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		FootballAPIKey:               apiKey,
		FootballAPIBaseURL:           baseURL,
		FootballAPIHost:              strings.TrimSpace(getEnv("FOOTBALL_API_HOST", DefaultFootballAPIHost)),
		FootballAPITimeout:           apiTimeout,
		FootballAPICircuitEnabled:    circuitEnabled,
		FootballAPICircuitFailures:   circuitFailures,
		FootballAPICircuitOpenTime:   circuitOpen,
		FootballAPICircuitHalfOpenRq: circuitHalfOpen,
		OverviewWorkers:              overviewWorkers,
		SessionIdleTimeout:           sessionIdle,
		SwaggerEnabled:               swaggerEnabled,
		UptraceEnabled:               uptraceEnabled,
		UptraceDSN:                   uptraceDSN,
		PyroscopeEnabled:             pyroscopeEnabled,
		PyroscopeServerAddress:       pyroscopeServerAddress,
		PyroscopeAppName:             getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:           getEnv("PYROSCOPE_AUTH_TOKEN", ""),
		PyroscopeUploadRate:          pyroscopeUploadRate,
		PprofEnabled:                 pprofEnabled,
		PprofAddr:                    getEnv("PPROF_ADDR", "127.0.0.1:6060"),
		LogLevel:                     logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

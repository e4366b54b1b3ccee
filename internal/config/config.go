package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cofipei/chart-api/internal/helpers"
)

const (
	defaultPort      = "8000"
	defaultChartDPI  = 300
	defaultReportDPI = 100
	defaultRPS       = 10
	defaultBurst     = 20
)

// Config holds runtime settings read from the environment.
type Config struct {
	Stage   string
	Port    string
	GinMode string

	// API key gate. APIKeyHash takes precedence over APIKey.
	APIKey     string
	APIKeyARN  string
	APIKeyHash string

	// Exposes GET /get-api-key outside prod. Demo only.
	ExposeAPIKeyEndpoint bool

	ChartDPI  float64
	ReportDPI float64

	// Empty means every origin is allowed.
	CORSAllowedOrigins []string

	RateLimitRPS   int
	RateLimitBurst int
}

// Load reads the configuration from environment variables. Call godotenv.Load
// beforehand when a .env file should be honoured.
func Load() *Config {
	return &Config{
		Stage:   helpers.NormalizeStage(os.Getenv("STAGE")),
		Port:    getEnv("API_PORT", defaultPort),
		GinMode: getEnv("GIN_MODE", "debug"),

		APIKey:     os.Getenv("CHART_API_KEY"),
		APIKeyARN:  os.Getenv("CHART_API_KEY_ARN"),
		APIKeyHash: os.Getenv("CHART_API_KEY_HASH"),

		ExposeAPIKeyEndpoint: getEnvBool("EXPOSE_API_KEY_ENDPOINT", false),

		ChartDPI:  getEnvFloat("CHART_DPI", defaultChartDPI),
		ReportDPI: getEnvFloat("REPORT_DPI", defaultReportDPI),

		CORSAllowedOrigins: helpers.SplitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),

		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", defaultRPS),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", defaultBurst),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if !helpers.IsValidStage(c.Stage) {
		errors = append(errors, fmt.Sprintf("invalid stage '%s': must be one of %s, %s, %s",
			c.Stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIKey == "" && c.APIKeyARN == "" && c.APIKeyHash == "" {
		errors = append(errors, "one of CHART_API_KEY, CHART_API_KEY_ARN or CHART_API_KEY_HASH is required")
	}

	if c.ChartDPI < 10 || c.ChartDPI > 600 {
		errors = append(errors, fmt.Sprintf("invalid CHART_DPI %.0f: must be between 10 and 600", c.ChartDPI))
	}
	if c.ReportDPI < 10 || c.ReportDPI > 600 {
		errors = append(errors, fmt.Sprintf("invalid REPORT_DPI %.0f: must be between 10 and 600", c.ReportDPI))
	}

	if c.RateLimitRPS < 1 {
		errors = append(errors, fmt.Sprintf("invalid RATE_LIMIT_RPS %d: must be positive", c.RateLimitRPS))
	}
	if c.RateLimitBurst < c.RateLimitRPS {
		errors = append(errors, fmt.Sprintf("invalid RATE_LIMIT_BURST %d: must be >= RATE_LIMIT_RPS", c.RateLimitBurst))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// IsProduction reports whether the service runs in the prod stage.
func (c *Config) IsProduction() bool {
	return c.Stage == helpers.StageProd
}

// APIKeyEndpointEnabled reports whether the demo key endpoint may be registered.
func (c *Config) APIKeyEndpointEnabled() bool {
	return c.ExposeAPIKeyEndpoint && !c.IsProduction()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Admin auth for rate/currency maintenance endpoints
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AdminUsername     string
	AdminPasswordHash string // bcrypt

	// Central bank rate scraping
	BOJRatesURL        string
	ScrapeInterval     time.Duration
	ScrapeMaxRetries   int
	ScrapeRetryDelay   time.Duration
	ScrapeHTTPTimeout  time.Duration
	ScrapeOnStartup    bool
	DisableRateScraper bool

	// CSV seed data
	SeedDataDir string

	// Per-IP limit for the public calculation endpoints, in ulule/limiter
	// notation (e.g. "60-M" for sixty requests per minute).
	CalculateRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "customs-calculator")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("BOJ_RATES_URL", "https://boj.org.jm/market/foreign-exchange/indicative-rates/")
	viper.SetDefault("SCRAPE_INTERVAL", "60m")
	viper.SetDefault("SCRAPE_MAX_RETRIES", 3)
	viper.SetDefault("SCRAPE_RETRY_DELAY", "5m")
	viper.SetDefault("SCRAPE_HTTP_TIMEOUT", "60s")
	viper.SetDefault("SCRAPE_ON_STARTUP", true)
	viper.SetDefault("DISABLE_RATE_SCRAPER", false)
	viper.SetDefault("SEED_DATA_DIR", "data")
	viper.SetDefault("CALCULATE_RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiryDuration = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Admin login will be unavailable.")
	}

	cfg.BOJRatesURL = viper.GetString("BOJ_RATES_URL")
	cfg.ScrapeInterval = parseDurationOr("SCRAPE_INTERVAL", 60*time.Minute)
	cfg.ScrapeMaxRetries = viper.GetInt("SCRAPE_MAX_RETRIES")
	cfg.ScrapeRetryDelay = parseDurationOr("SCRAPE_RETRY_DELAY", 5*time.Minute)
	cfg.ScrapeHTTPTimeout = parseDurationOr("SCRAPE_HTTP_TIMEOUT", 60*time.Second)
	cfg.ScrapeOnStartup = viper.GetBool("SCRAPE_ON_STARTUP")
	cfg.DisableRateScraper = viper.GetBool("DISABLE_RATE_SCRAPER")

	cfg.SeedDataDir = viper.GetString("SEED_DATA_DIR")
	cfg.CalculateRateLimit = viper.GetString("CALCULATE_RATE_LIMIT")

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s (%q). Defaulting to %s.\n", key, raw, fallback)
		return fallback
	}
	return d
}

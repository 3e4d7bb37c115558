package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Mail      MailConfig
	Analytics AnalyticsConfig
	App       AppConfig
}

type ServerConfig struct {
	Port string
}

type SiteConfig struct {
	// URL is the canonical public URL, e.g. https://mysite.example.
	URL        string
	ContentDir string
	PublicDir  string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// ContactEmail is the destination for contact form submissions.
	ContactEmail string
}

type AnalyticsConfig struct {
	// CollectorURL is the endpoint tracking events are forwarded to.
	// Empty disables forwarding; events are logged instead.
	CollectorURL string
}

type AppConfig struct {
	Environment string
	Version     string
	// ContactRateLimit is the per-IP contact submissions allowed per minute.
	ContactRateLimit int
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Site: SiteConfig{
			URL:        getEnv("SITE_URL", "http://localhost:3000"),
			ContentDir: getEnv("CONTENT_DIR", "content"),
			PublicDir:  getEnv("PUBLIC_DIR", "public"),
		},
		Mail: MailConfig{
			Host:         getEnv("SMTP_HOST", "localhost"),
			Port:         getEnvAsInt("SMTP_PORT", 587),
			User:         getEnv("SMTP_USER", ""),
			Password:     getEnv("SMTP_PASSWORD", ""),
			From:         getEnv("SMTP_FROM", "noreply@localhost"),
			ContactEmail: getEnv("CONTACT_EMAIL", ""),
		},
		Analytics: AnalyticsConfig{
			CollectorURL: getEnv("ANALYTICS_URL", ""),
		},
		App: AppConfig{
			Environment:      getEnv("APP_ENV", "development"),
			Version:          getEnv("APP_VERSION", "1.0.0"),
			ContactRateLimit: getEnvAsInt("CONTACT_RATE_LIMIT", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Site.URL == "" {
		return fmt.Errorf("SITE_URL is required")
	}

	if c.App.Environment == "production" && c.Mail.ContactEmail == "" {
		return fmt.Errorf("CONTACT_EMAIL is required in production")
	}

	return nil
}

// IsProduction reports whether the service runs in production mode.
// Production mode hides field-level validation detail from API responses.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

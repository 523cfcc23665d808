package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Schedule ScheduleConfig
	Cron     CronConfig
	SMTP     SMTPConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ScheduleConfig holds the expected-start policy used to classify check-ins.
type ScheduleConfig struct {
	WorkStart    string // "HH:MM"
	GraceMinutes int
	Timezone     string
}

// CronConfig holds the daily absence-generation trigger settings.
type CronConfig struct {
	Enabled      bool
	AbsenceHour  int // local hour at which missing records are materialized
	PollInterval time.Duration
}

// SMTPConfig holds the critical-absence alert mailer settings.
// Alerts are disabled when Host is empty.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AlertsTo []string
}

func Load() (*Config, error) {
	// Missing .env is fine in production, env vars may come from the runtime.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "plantsec_hr"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	graceMinutes, err := strconv.Atoi(getEnv("SCHEDULE_GRACE_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_GRACE_MINUTES: %w", err)
	}

	config.Schedule = ScheduleConfig{
		WorkStart:    getEnv("SCHEDULE_WORK_START", "08:00"),
		GraceMinutes: graceMinutes,
		Timezone:     getEnv("SCHEDULE_TIMEZONE", "America/Mexico_City"),
	}

	absenceHour, err := strconv.Atoi(getEnv("CRON_ABSENCE_HOUR", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_ABSENCE_HOUR: %w", err)
	}

	pollInterval, err := time.ParseDuration(getEnv("CRON_POLL_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_POLL_INTERVAL: %w", err)
	}

	config.Cron = CronConfig{
		Enabled:      getEnv("CRON_ENABLED", "true") == "true",
		AbsenceHour:  absenceHour,
		PollInterval: pollInterval,
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		AlertsTo: getEnvSlice("ALERT_RECIPIENTS"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.Parse("15:04", c.Schedule.WorkStart); err != nil {
		return fmt.Errorf("invalid SCHEDULE_WORK_START: %w", err)
	}
	if c.Schedule.GraceMinutes < 0 {
		return fmt.Errorf("SCHEDULE_GRACE_MINUTES must not be negative")
	}
	if c.Cron.AbsenceHour < 0 || c.Cron.AbsenceHour > 23 {
		return fmt.Errorf("CRON_ABSENCE_HOUR must be between 0 and 23")
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("invalid SCHEDULE_TIMEZONE: %w", err)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Leave      LeaveConfig
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
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds attendance policy settings
type AttendanceConfig struct {
	// StandardShiftHours is the threshold above which worked time counts
	// as extra hours.
	StandardShiftHours float64
}

// LeaveConfig holds the annual allotment per balance-tracked leave type.
// Unpaid leave carries no allotment and is never balance-checked.
type LeaveConfig struct {
	PaidAllotment   int
	SickAllotment   int
	CasualAllotment int
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployments where the environment is
	// injected directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "workpoint-hrm"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// Attendance policy
	shiftHours, err := strconv.ParseFloat(getEnv("STANDARD_SHIFT_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid STANDARD_SHIFT_HOURS: %w", err)
	}
	config.Attendance = AttendanceConfig{
		StandardShiftHours: shiftHours,
	}

	// Leave allotments
	config.Leave, err = loadLeaveConfig()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadLeaveConfig() (LeaveConfig, error) {
	paid, err := strconv.Atoi(getEnv("LEAVE_PAID_ALLOTMENT", "12"))
	if err != nil {
		return LeaveConfig{}, fmt.Errorf("invalid LEAVE_PAID_ALLOTMENT: %w", err)
	}
	sick, err := strconv.Atoi(getEnv("LEAVE_SICK_ALLOTMENT", "10"))
	if err != nil {
		return LeaveConfig{}, fmt.Errorf("invalid LEAVE_SICK_ALLOTMENT: %w", err)
	}
	casual, err := strconv.Atoi(getEnv("LEAVE_CASUAL_ALLOTMENT", "8"))
	if err != nil {
		return LeaveConfig{}, fmt.Errorf("invalid LEAVE_CASUAL_ALLOTMENT: %w", err)
	}
	return LeaveConfig{
		PaidAllotment:   paid,
		SickAllotment:   sick,
		CasualAllotment: casual,
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.StandardShiftHours <= 0 {
		return fmt.Errorf("STANDARD_SHIFT_HOURS must be positive")
	}
	if c.Leave.PaidAllotment < 0 || c.Leave.SickAllotment < 0 || c.Leave.CasualAllotment < 0 {
		return fmt.Errorf("leave allotments must not be negative")
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

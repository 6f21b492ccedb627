package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/hanoutdz/landingapi/pkg/errors"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Sheets      SheetsConfig
	SMTP        SMTPConfig
	Pipeline    PipelineConfig
}

// SheetsConfig configures the durable order record. When Enabled, SheetID
// and CredentialsJSON are mandatory.
type SheetsConfig struct {
	Enabled         bool
	SheetID         string
	CredentialsJSON string
}

// SMTPConfig configures the merchant notification mail.
type SMTPConfig struct {
	Enabled   bool
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
}

// PipelineConfig bounds the persistence step.
type PipelineConfig struct {
	RetryAttempts int
	Timeout       time.Duration
	RetryDelay    time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHEETS_ENABLED", "false")
	viper.SetDefault("SMTP_ENABLED", "false")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", "465")
	viper.SetDefault("RETRY_ATTEMPTS", "3")
	viper.SetDefault("TIMEOUT_MS", "10000")
	viper.SetDefault("RETRY_DELAY_MS", "500")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	smtpPort, err := getIntOrViper("SMTP_PORT", 465)
	if err != nil {
		return nil, err
	}
	retryAttempts, err := getIntOrViper("RETRY_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}
	timeoutMs, err := getIntOrViper("TIMEOUT_MS", 10000)
	if err != nil {
		return nil, err
	}
	retryDelayMs, err := getIntOrViper("RETRY_DELAY_MS", 500)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Sheets: SheetsConfig{
			Enabled:         getBoolOrViper("SHEETS_ENABLED", false),
			SheetID:         getEnvOrViper("GOOGLE_SHEET_ID", ""),
			CredentialsJSON: getEnvOrViper("GOOGLE_CREDENTIALS_JSON", ""),
		},
		SMTP: SMTPConfig{
			Enabled:   getBoolOrViper("SMTP_ENABLED", false),
			Host:      getEnvOrViper("SMTP_HOST", "smtp.gmail.com"),
			Port:      smtpPort,
			Username:  getEnvOrViper("SMTP_FROM_EMAIL", ""),
			Password:  getEnvOrViper("SMTP_PASSWORD", ""),
			From:      getEnvOrViper("SMTP_FROM_EMAIL", ""),
			Recipient: getEnvOrViper("ORDER_NOTIFICATION_EMAIL", ""),
		},
		Pipeline: PipelineConfig{
			RetryAttempts: retryAttempts,
			Timeout:       time.Duration(timeoutMs) * time.Millisecond,
			RetryDelay:    time.Duration(retryDelayMs) * time.Millisecond,
		},
	}

	// Validate required fields
	if cfg.Sheets.Enabled {
		if cfg.Sheets.SheetID == "" {
			return nil, &errors.ErrConfig{Reason: "GOOGLE_SHEET_ID is required when SHEETS_ENABLED is true"}
		}
		if cfg.Sheets.CredentialsJSON == "" {
			return nil, &errors.ErrConfig{Reason: "GOOGLE_CREDENTIALS_JSON is required when SHEETS_ENABLED is true"}
		}
	}
	if cfg.SMTP.Enabled {
		if cfg.SMTP.Username == "" || cfg.SMTP.Password == "" {
			return nil, &errors.ErrConfig{Reason: "SMTP_FROM_EMAIL and SMTP_PASSWORD are required when SMTP_ENABLED is true"}
		}
	}
	if cfg.Pipeline.RetryAttempts < 1 {
		return nil, &errors.ErrConfig{Reason: "RETRY_ATTEMPTS must be at least 1"}
	}
	if cfg.Pipeline.Timeout <= 0 {
		return nil, &errors.ErrConfig{Reason: "TIMEOUT_MS must be positive"}
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getBoolOrViper(key string, defaultValue bool) bool {
	raw := getEnvOrViper(key, strconv.FormatBool(defaultValue))
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return val
}

func getIntOrViper(key string, defaultValue int) (int, error) {
	raw := getEnvOrViper(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return val, nil
}

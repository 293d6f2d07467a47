// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by the tracker
const EnvPrefix = "EXPENSE"

// Display styles understood by the terminal renderer
var displayStyles = []string{"auto", "dark", "light", "notty"}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Store struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"store" yaml:"store"`

	Display struct {
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
		Style          string `mapstructure:"style" yaml:"style"`
	} `mapstructure:"display" yaml:"display"`

	Entry struct {
		MinAmount      string   `mapstructure:"min_amount" yaml:"min_amount"`
		PaymentMethods []string `mapstructure:"payment_methods" yaml:"payment_methods"`
	} `mapstructure:"entry" yaml:"entry"`
}

// MinimumAmount returns entry.min_amount as a decimal.
func (c *Config) MinimumAmount() decimal.Decimal {
	amount, err := models.ParseAmount(c.Entry.MinAmount)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-tracker")
	v.AddConfigPath(".expense-tracker")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. The store path also answers to the short EXPENSE_FILE name
	if err := v.BindEnv("store.file", EnvPrefix+"_STORE_FILE", EnvPrefix+"_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind store file environment variables: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("store.file", "expenses.csv")

	v.SetDefault("display.currency_symbol", "₹")
	v.SetDefault("display.style", "auto")

	v.SetDefault("entry.min_amount", "1.00")
	v.SetDefault("entry.payment_methods", models.PaymentMethods())
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Store.File) == "" {
		return fmt.Errorf("store.file must not be empty")
	}

	if !contains(displayStyles, config.Display.Style) {
		return fmt.Errorf("invalid display style: %s (must be one of %s)",
			config.Display.Style, strings.Join(displayStyles, ", "))
	}

	minimum, err := models.ParseAmount(config.Entry.MinAmount)
	if err != nil {
		return fmt.Errorf("entry.min_amount must be a number, got: %s", config.Entry.MinAmount)
	}
	if minimum.IsNegative() {
		return fmt.Errorf("entry.min_amount must not be negative, got: %s", config.Entry.MinAmount)
	}

	if len(config.Entry.PaymentMethods) == 0 {
		return fmt.Errorf("entry.payment_methods must list at least one method")
	}

	return nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

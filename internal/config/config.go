// Package config loads the configuration from an optional YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/moneywise/backend/internal/calc"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var ErrAPIURLMissing = errors.New("the api_url must be configured, e.g. with the environment variable API_URL")

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type CashflowsConfig struct {
	PageSize      int           `mapstructure:"page_size"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type WebhookConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}

type SeedConfig struct {
	Categories map[string][]string `mapstructure:"categories"`
}

type Config struct {
	APIURL           string          `mapstructure:"api_url"`
	Port             int             `mapstructure:"port"`
	CORSAllowOrigins string          `mapstructure:"cors_allow_origins"`
	EnablePprof      bool            `mapstructure:"enable_pprof"`
	Locale           string          `mapstructure:"locale"`
	Currency         string          `mapstructure:"currency"`
	Database         DatabaseConfig  `mapstructure:"database"`
	Cashflows        CashflowsConfig `mapstructure:"cashflows"`
	Cache            CacheConfig     `mapstructure:"cache"`
	Webhook          WebhookConfig   `mapstructure:"webhook"`
	Sentry           SentryConfig    `mapstructure:"sentry"`
	Seed             SeedConfig      `mapstructure:"seed"`
}

var defaults = map[string]any{
	"api_url":                  "",
	"port":                     8080,
	"cors_allow_origins":       "",
	"enable_pprof":             false,
	"locale":                   "en",
	"currency":                 "IDR",
	"database.path":            "data/moneywise.db",
	"cashflows.page_size":      10,
	"cashflows.retry_attempts": 3,
	"cashflows.retry_delay":    "1s",
	"cache.enabled":            true,
	"webhook.url":              "",
	"webhook.timeout":          "10s",
	"sentry.dsn":               "",
	"sentry.environment":       "production",
}

// Unprefixed environment variables that are honoured in addition to
// the MONEYWISE_ prefixed ones
var legacyEnv = map[string]string{
	"api_url":            "API_URL",
	"port":               "PORT",
	"cors_allow_origins": "CORS_ALLOW_ORIGINS",
	"enable_pprof":       "ENABLE_PPROF",
	"sentry.dsn":         "SENTRY_DSN",
}

// Load reads the configuration.
//
// If path is empty, config.yaml in the working directory is read if it
// exists. Environment variables override the file, e.g.
// MONEYWISE_WEBHOOK_URL for webhook.url.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("MONEYWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		prefixed := "MONEYWISE_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, env); err != nil {
			return nil, fmt.Errorf("bind env: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	c.Seed.Categories = titleKeys(c.Seed.Categories)

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return ErrAPIURLMissing
	}

	if _, err := url.Parse(c.APIURL); err != nil {
		return fmt.Errorf("api_url: %w", err)
	}

	if c.Cashflows.PageSize < 1 {
		return fmt.Errorf("cashflows.page_size must be positive, is %d", c.Cashflows.PageSize)
	}

	if c.Cashflows.RetryAttempts < 0 {
		return fmt.Errorf("cashflows.retry_attempts must not be negative, is %d", c.Cashflows.RetryAttempts)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("locale: %w", err)
	}

	if c.Currency != "" {
		if _, err := currency.ParseISO(c.Currency); err != nil {
			return fmt.Errorf("currency: %w", err)
		}
	}

	return nil
}

// URL returns the parsed API URL.
func (c *Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// Language returns the tag for the configured locale.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}

	return tag
}

// CurrencyUnit returns the configured currency, or the currency of the
// locale's region when none is configured.
func (c *Config) CurrencyUnit() currency.Unit {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return calc.DefaultCurrency(c.Language())
	}

	return unit
}

// titleKeys restores the capitalization of type names since viper
// lowercases all keys.
func titleKeys(categories map[string][]string) map[string][]string {
	if len(categories) == 0 {
		return nil
	}

	caser := cases.Title(language.English)
	titled := make(map[string][]string, len(categories))
	for name, list := range categories {
		titled[caser.String(name)] = list
	}

	return titled
}

package app

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"

	"github.com/odyssey-erp/invoicing/internal/sales/invoices"
)

// Config holds runtime configuration for the invoice command.
type Config struct {
	Lang        string `envconfig:"INVOICE_LANG" default:"en"`
	FirstNumber int64  `envconfig:"INVOICE_FIRST_NUMBER" default:"1"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.FirstNumber < 1 {
		return nil, errors.New("invoice first number must be at least 1")
	}
	return &cfg, nil
}

// Language returns the report language closest to the configured one.
func (c *Config) Language() language.Tag {
	if c == nil {
		return language.English
	}
	return invoices.MatchLanguage(c.Lang)
}

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration, injected explicitly into each
// component at startup. No process-wide singletons.
type Config struct {
	// HTTP
	HTTPAddr    string   `env:"HTTP_ADDR" envDefault:":8080"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Record store
	StoreBackend  string `env:"STORE_BACKEND" envDefault:"sheets"` // "sheets" or "memory"
	SheetsBaseURL string `env:"SHEETS_BASE_URL" envDefault:"https://sheets.googleapis.com"`
	SpreadsheetID string `env:"SPREADSHEET_ID"`
	SheetsToken   string `env:"SHEETS_TOKEN"`

	// Outgoing mail
	MailHost string `env:"MAIL_HOST"`
	MailPort int    `env:"MAIL_PORT" envDefault:"587"`
	MailUser string `env:"MAIL_USER"`
	MailPass string `env:"MAIL_PASS"`

	// Send-from identities, "key:Display Name:address" comma-separated,
	// e.g. "charles:Charles:charles@example.com,alexandria:Alexandria:alex@example.com"
	SenderAccounts string `env:"SENDER_ACCOUNTS"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // "json" or "text"
}

// SenderAccount is one parsed send-from identity.
type SenderAccount struct {
	Key     string
	Name    string
	Address string
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.StoreBackend != "sheets" && cfg.StoreBackend != "memory" {
		return nil, fmt.Errorf("STORE_BACKEND must be \"sheets\" or \"memory\", got %q", cfg.StoreBackend)
	}
	if cfg.StoreBackend == "sheets" {
		if cfg.SpreadsheetID == "" {
			return nil, fmt.Errorf("SPREADSHEET_ID is required for the sheets backend")
		}
		if cfg.SheetsToken == "" {
			return nil, fmt.Errorf("SHEETS_TOKEN is required for the sheets backend")
		}
	}

	if _, err := cfg.Accounts(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Accounts parses SENDER_ACCOUNTS into identities.
func (c *Config) Accounts() ([]SenderAccount, error) {
	if strings.TrimSpace(c.SenderAccounts) == "" {
		return nil, nil
	}

	var accounts []SenderAccount
	for _, raw := range strings.Split(c.SenderAccounts, ",") {
		parts := strings.SplitN(strings.TrimSpace(raw), ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
			return nil, fmt.Errorf("SENDER_ACCOUNTS entry %q is not key:name:address", raw)
		}
		accounts = append(accounts, SenderAccount{
			Key:     parts[0],
			Name:    parts[1],
			Address: parts[2],
		})
	}
	return accounts, nil
}

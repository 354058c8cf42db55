package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level unified.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Journal  JournalConfig  `yaml:"journal"`
	Charts   ChartsConfig   `yaml:"charts"`
	Import   ImportConfig   `yaml:"import"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// JournalConfig locates the journal file.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// ChartsConfig points at optional chart-of-accounts override files. Each is
// a CSV of account_name,category rows layered over the built-in defaults.
type ChartsConfig struct {
	IncomePath  string `yaml:"income_path,omitempty"`
	BalancePath string `yaml:"balance_path,omitempty"`
}

// ImportConfig controls bank CSV import.
type ImportConfig struct {
	CashAccount string `yaml:"cash_account"`
}

// Load reads a unified.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Journal:  JournalConfig{Path: "journal.csv"},
		Charts: ChartsConfig{
			IncomePath:  "accounts/income-chart.csv",
			BalancePath: "accounts/balance-chart.csv",
		},
		Import: ImportConfig{CashAccount: "Cash"},
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
)

const (
	xdgAppName = "lifestyle"
	configFile = "config.json"

	DefaultSheetName = "Daily Tasks"
	DefaultFormat    = "text"
	DefaultLogLevel  = "info"
)

type Config struct {
	// SpreadsheetID is the Google Sheets document read by `lifestyle sheets`.
	SpreadsheetID string `json:"spreadsheet_id,omitempty"`
	SheetName     string `json:"sheet_name" validate:"required"`
	Format        string `json:"format" validate:"oneof=text json yaml"`
	// Timezone is an IANA name; empty means the system zone.
	Timezone string `json:"timezone,omitempty" validate:"omitempty,timezone"`
	LogLevel string `json:"log_level" validate:"oneof=debug info warn error"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		SheetName: DefaultSheetName,
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
	}
}

// applyDefaults fills fields left empty in a config file.
func (c *Config) applyDefaults() {
	if c.SheetName == "" {
		c.SheetName = DefaultSheetName
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func GetConfigPath() (string, error) {
	xdgHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgHome, ".config", xdgAppName, configFile), nil
}

func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields Default().
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

func SaveTo(path string, cfg *Config) error {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to open config file for writing: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}

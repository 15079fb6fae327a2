package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/mhewson/rolematch/pkg/core/matching"
)

// EventCalendar defines the recurring schedule for one competition format.
// The rrule's BYDAY entries determine which weekdays volunteers can be
// scheduled on.
type EventCalendar struct {
	RRule string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	ListenAddr           string                   `yaml:"listenAddr,omitempty"`
	DatabaseURL          string                   `yaml:"databaseURL" validate:"required"`
	MatchDataPath        string                   `yaml:"matchDataPath" validate:"required"`
	RoleLinksPath        string                   `yaml:"roleLinksPath,omitempty"`
	UploadsDir           string                   `yaml:"uploadsDir,omitempty"`
	AssumeStudent        bool                     `yaml:"assumeStudent,omitempty"`
	EliminateUnqualified bool                     `yaml:"eliminateUnqualified,omitempty"`
	Calendars            map[string]EventCalendar `yaml:"calendars,omitempty" validate:"dive"`
	ExportSheetID        string                   `yaml:"exportSheetID,omitempty"`
	ExportSheetTab       string                   `yaml:"exportSheetTab,omitempty"`
}

const (
	DefaultListenAddr = ":5001"
	DefaultUploadsDir = "uploads"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from rolematch_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = DefaultUploadsDir
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax and weekday coverage for each calendar
	for name, calendar := range cfg.Calendars {
		rule, err := rrule.StrToRRule(calendar.RRule)
		if err != nil {
			return fmt.Errorf("invalid rrule in calendars[%s]: %w", name, err)
		}
		if len(rule.OrigOptions.Byweekday) == 0 {
			return fmt.Errorf("calendars[%s]: rrule must name at least one BYDAY weekday", name)
		}
	}

	return nil
}

// EventCalendars converts the configured rrules into scheduling calendars
// keyed by commitment type. Calendars that fail to parse were already
// rejected by Validate, so this only errors on configs built by hand.
func (c *Config) EventCalendars() (map[matching.CommitmentType]matching.Calendar, error) {
	calendars := make(map[matching.CommitmentType]matching.Calendar, len(c.Calendars))

	for name, calendar := range c.Calendars {
		rule, err := rrule.StrToRRule(calendar.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in calendars[%s]: %w", name, err)
		}

		days := make(matching.Calendar, 0, len(rule.OrigOptions.Byweekday))
		for _, wd := range rule.OrigOptions.Byweekday {
			// rrule counts weekdays from Monday, time.Weekday from Sunday
			days = append(days, time.Weekday((wd.Day()+1)%7))
		}

		calendars[matching.CommitmentType(name)] = days
	}

	return calendars, nil
}

// findConfigFile searches for rolematch_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "rolematch_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}

package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Constants
const (
	DefaultSourceFile   = "public-holidays-hk/en.json"
	DefaultOutputFile   = "public-holidays-hk/holidays.csv"
	DefaultDatabaseFile = "public-holidays-hk/holidays.db"
	TmpSuffix           = ".tmp"
	FilePermissions     = 0644
	DirPermissions      = 0755

	// Date layouts
	SourceDateLayout = "20060102"
	OutputDateLayout = "2006-01-02"

	// CSV
	CSVHeader = "holiday_date,holiday_name,holiday_period"

	// Source document keys
	KeyContainer      = "calendarContainer"
	KeyContainerAlias = "vcalendar"
	KeyEvents         = "events"
	KeyEventsAlias    = "vevent"
	KeyDTStart        = "dtstart"
	KeyDTEnd          = "dtend"
	KeySummary        = "summary"
)

// Config holds the file locations used by a run
type Config struct {
	SourceFile   string `yaml:"source_file"`
	OutputFile   string `yaml:"output_file"`
	DatabaseFile string `yaml:"database_file"`
	Verbose      bool   `yaml:"verbose"`
}

// DefaultConfig returns the fixed paths the tool uses when nothing is configured
func DefaultConfig() Config {
	return Config{
		SourceFile:   DefaultSourceFile,
		OutputFile:   DefaultOutputFile,
		DatabaseFile: DefaultDatabaseFile,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Keys present but blank fall back to the defaults
	if cfg.SourceFile == "" {
		cfg.SourceFile = DefaultSourceFile
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.DatabaseFile == "" {
		cfg.DatabaseFile = DefaultDatabaseFile
	}
	return cfg, nil
}

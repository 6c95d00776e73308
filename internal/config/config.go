// Package config loads report run settings from a file, the environment and
// flags, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SHELTER_INPUT_PATH.
const EnvPrefix = "SHELTER"

// Configuration validation errors.
var (
	ErrMissingInputPath   = errors.New("input.path is required")
	ErrMissingOutputPath  = errors.New("output.path is required")
	ErrInvalidInputFormat = errors.New("input.format must be one of: csv, jsonl, xlsx, parquet")
	ErrInvalidOutput      = errors.New("output.format must be one of: pdf, text")
	ErrInvalidExport      = errors.New("export.format must be one of: csv, jsonl, parquet")
	ErrNoAllowedStatuses  = errors.New("report.allowed_statuses must list at least one status")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrUnsupportedFile    = errors.New("config file must be .json, .yaml, .yml or .toml")
)

type Config struct {
	Input   InputConfig   `json:"input" yaml:"input" toml:"input"`
	Output  OutputConfig  `json:"output" yaml:"output" toml:"output"`
	Export  ExportConfig  `json:"export" yaml:"export" toml:"export"`
	Report  ReportConfig  `json:"report" yaml:"report" toml:"report"`
	Logging LoggingConfig `json:"logging" yaml:"logging" toml:"logging"`
}

type InputConfig struct {
	Path      string `json:"path" yaml:"path" toml:"path" validate:"required"`
	Format    string `json:"format" yaml:"format" toml:"format" validate:"omitempty,oneof=csv jsonl xlsx parquet"`
	Delimiter string `json:"delimiter" yaml:"delimiter" toml:"delimiter"`
	Sheet     string `json:"sheet" yaml:"sheet" toml:"sheet"`
	Strict    bool   `json:"strict" yaml:"strict" toml:"strict"`
}

type OutputConfig struct {
	Path   string `json:"path" yaml:"path" toml:"path" validate:"required"`
	Format string `json:"format" yaml:"format" toml:"format" validate:"omitempty,oneof=pdf text"`
}

// ExportConfig optionally writes the full cleaned table. Empty Path disables it.
type ExportConfig struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	Format string `json:"format" yaml:"format" toml:"format" validate:"omitempty,oneof=csv jsonl parquet"`
}

type ReportConfig struct {
	Title           string   `json:"title" yaml:"title" toml:"title"`
	AllowedStatuses []string `json:"allowed_statuses" yaml:"allowed_statuses" toml:"allowed_statuses" split_words:"true" validate:"min=1,dive,required"`
}

type LoggingConfig struct {
	Level string `json:"level" yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the settings of the standard daily report.
func Default() *Config {
	return &Config{
		Input:   InputConfig{Path: "raw_shelter_data.csv"},
		Output:  OutputConfig{Path: "Daily_Shelter_Report.pdf", Format: "pdf"},
		Report:  ReportConfig{AllowedStatuses: []string{"ACTIVE", "ARRIVED"}},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load starts from Default, overlays the file at path (if any) and then
// SHELTER_* environment variables. The result is not yet validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	case ".toml":
		err = toml.Unmarshal(b, c)
	default:
		return fmt.Errorf("config %s: %w", path, ErrUnsupportedFile)
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Input.Format = strings.ToLower(strings.TrimSpace(c.Input.Format))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Export.Format = strings.ToLower(strings.TrimSpace(c.Export.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration, returning the first problem found.
func (c *Config) Validate() error {
	c.normalize()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return fieldError(verrs[0])
}

func fieldError(fe validator.FieldError) error {
	ns := fe.StructNamespace()
	switch {
	case ns == "Config.Input.Path":
		return ErrMissingInputPath
	case ns == "Config.Input.Format":
		return ErrInvalidInputFormat
	case ns == "Config.Output.Path":
		return ErrMissingOutputPath
	case ns == "Config.Output.Format":
		return ErrInvalidOutput
	case ns == "Config.Export.Format":
		return ErrInvalidExport
	case strings.HasPrefix(ns, "Config.Report.AllowedStatuses"):
		return ErrNoAllowedStatuses
	case ns == "Config.Logging.Level":
		return ErrInvalidLogLevel
	default:
		return fmt.Errorf("config: %s failed %q validation", fe.Namespace(), fe.Tag())
	}
}

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config holds everything a single pricing run needs. Precedence:
// config file > environment variables > struct defaults.
type Config struct {
	Files   FilesConfig   `yaml:"files" envconfig:"FILES"`
	Option  OptionConfig  `yaml:"option" envconfig:"OPTION"`
	Solver  SolverConfig  `yaml:"solver" envconfig:"SOLVER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// FilesConfig names the input feed and the output report.
type FilesConfig struct {
	Input  string `yaml:"input" envconfig:"INPUT" default:"Exp_Octubre.csv" validate:"required"`
	Output string `yaml:"output" envconfig:"OUTPUT" default:"output.csv" validate:"required"`
}

// OptionConfig describes the contract being priced. Rate is the nominal
// annual rate; the pipeline converts it to its continuously-compounded
// equivalent before pricing.
type OptionConfig struct {
	NominalRate float64 `yaml:"nominal_rate" envconfig:"NOMINAL_RATE" default:"1.0" validate:"gte=0"`
	Strike      float64 `yaml:"strike" envconfig:"STRIKE" default:"1033" validate:"gt=0"`
	Expiration  string  `yaml:"expiration" envconfig:"EXPIRATION" default:"20/10/2023" validate:"required"`
}

// SolverConfig tunes the implied-volatility bisection.
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance" envconfig:"TOLERANCE" default:"0.00001" validate:"gt=0"`
	MaxIterations int     `yaml:"max_iterations" envconfig:"MAX_ITERATIONS" default:"500" validate:"gt=0"`
	BracketLow    float64 `yaml:"bracket_low" envconfig:"BRACKET_LOW" default:"0.00001" validate:"gt=0"`
	BracketHigh   float64 `yaml:"bracket_high" envconfig:"BRACKET_HIGH" default:"5" validate:"gt=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/pricer.log"`
}

// Load builds the run configuration from environment variables and an
// optional YAML file. An empty path skips the file overlay; a named file
// that does not exist is an error.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("OPTCLI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints plus the cross-field solver bracket.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Solver.BracketLow >= c.Solver.BracketHigh {
		return fmt.Errorf("solver bracket_low (%g) must be below bracket_high (%g)",
			c.Solver.BracketLow, c.Solver.BracketHigh)
	}
	return nil
}

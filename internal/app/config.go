package app

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/vk/mazewalk/internal/config"
)

// Modes select what Run does with the loaded maze.
const (
	ModeRun    = "run"
	ModeShow   = "show"
	ModeExport = "export"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode string `validate:"required,oneof=run show export"`
	// MazePaths are .hcl/.yaml files or directories. Empty selects the
	// built-in sample maze.
	MazePaths []string `validate:"dive,required"`
	// Root overrides the maze's default root label.
	Root string `validate:"omitempty,label"`

	Strategy   string `validate:"required,oneof=recursive accumulate eager two-phase"`
	Discipline string `validate:"required,oneof=lifo fifo stack queue"`
	RoundTrip  bool
	Steps      bool
	Show       bool

	LogFormat       string `validate:"required,oneof=text json"`
	LogLevel        string `validate:"required,oneof=debug info warn error"`
	HealthcheckPort int    `validate:"min=0,max=65535"`
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeRun,
		Strategy:   "recursive",
		Discipline: "lifo",
		LogFormat:  "text",
		LogLevel:   "warn",
	}
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if err := config.ValidateStruct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			e := validationErrs[0]
			return nil, fmt.Errorf("invalid %s %q: must satisfy '%s'", e.Field(), fmt.Sprint(e.Value()), e.ActualTag()+paramSuffix(e.Param()))
		}
		return nil, err
	}
	if cfg.Steps && cfg.Strategy != "two-phase" {
		return nil, errors.New("steps mode requires the two-phase strategy")
	}
	if cfg.Steps && cfg.RoundTrip {
		return nil, errors.New("steps mode cannot be combined with a round trip")
	}
	return &cfg, nil
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

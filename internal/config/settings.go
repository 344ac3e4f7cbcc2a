package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rgehrsitz/paygo/internal/region"
)

// Settings are application-level preferences, read from an optional YAML
// file and overridden by PAYGO_* environment variables.
type Settings struct {
	// Environment selects the logger profile: development or production
	Environment string `env:"PAYGO_ENVIRONMENT" env-default:"development" yaml:"environment"`
	// Format is the default output format for the calculate command
	Format string `env:"PAYGO_FORMAT" env-default:"console" yaml:"format"`
	// RegionsFile replaces the builtin province/city table when set
	RegionsFile string `env:"PAYGO_REGIONS_FILE" yaml:"regionsFile"`
	// City preselects a region for forms that do not name one
	City string `env:"PAYGO_CITY" env-default:"440300" yaml:"city"`
}

// LoadSettings reads settings from path, or from the environment alone when
// path is empty.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&s)
	} else {
		err = cleanenv.ReadConfig(path, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read settings: %w", err)
	}
	return &s, nil
}

// Catalog returns the region table the settings point at.
func (s *Settings) Catalog() (*region.Catalog, error) {
	if s.RegionsFile == "" {
		return region.Builtin(), nil
	}
	return region.LoadFromFile(s.RegionsFile)
}

// NewInputParser builds a parser over the configured region table.
func (s *Settings) NewInputParser() (*InputParser, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	ip := NewInputParser()
	ip.Catalog = c
	ip.DefaultCity = s.City
	return ip, nil
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
)

const (
	DefaultWindowWidth  = 1400
	DefaultWindowHeight = 900

	MinWindowWidth  = 800
	MinWindowHeight = 600
	MaxWindowWidth  = 10000 // Arbitrary large value for upper bound
	MaxWindowHeight = 10000 // Arbitrary large value for upper bound

	// ConfigVersion is the schema version assumed when a config file omits one
	ConfigVersion = "1.0.0"
	// SupportedConfigVersions is the semver constraint a config file must satisfy
	SupportedConfigVersions = "^1.0.0"
)

// AppConfig holds the user-editable settings. The app reads this file but never writes it.
type AppConfig struct {
	Version      string `yaml:"version"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	LogLevel     string `yaml:"log_level"`
	PDFDirectory string `yaml:"pdf_directory,omitempty"` // Default directory suggested when saving PDFs
}

// DefaultConfig returns a new AppConfig with default values
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Version:      ConfigVersion,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		LogLevel:     DefaultLogLevel,
		PDFDirectory: "", // Empty means the dialog picks its own starting directory
	}
}

// Validate checks the configuration for basic validity.
func (c *AppConfig) Validate() error {
	if err := checkConfigVersion(c.Version); err != nil {
		return err
	}
	if c.WindowWidth < MinWindowWidth || c.WindowWidth > MaxWindowWidth {
		return fmt.Errorf("window width %d is out of range (%d-%d)", c.WindowWidth, MinWindowWidth, MaxWindowWidth)
	}
	if c.WindowHeight < MinWindowHeight || c.WindowHeight > MaxWindowHeight {
		return fmt.Errorf("window height %d is out of range (%d-%d)", c.WindowHeight, MinWindowHeight, MaxWindowHeight)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level specified: '%s'", c.LogLevel)
	}
	if c.PDFDirectory != "" && !filepath.IsAbs(c.PDFDirectory) {
		return fmt.Errorf("pdf directory must be an absolute path: '%s'", c.PDFDirectory)
	}
	return nil
}

// checkConfigVersion ensures the file was written for a schema this build understands
func checkConfigVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid config version '%s': %w", version, err)
	}
	constraint, err := semver.NewConstraint(SupportedConfigVersions)
	if err != nil {
		return fmt.Errorf("invalid version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("config version %s is not supported (want %s)", v, SupportedConfigVersions)
	}
	return nil
}

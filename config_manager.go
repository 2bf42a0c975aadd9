package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"
)

// ConfigManager owns the loaded configuration and its file watcher
type ConfigManager struct {
	config  *AppConfig
	path    string
	watcher *ConfigWatcher
	log     zerolog.Logger
	mutex   sync.RWMutex
}

// NewConfigManager creates a manager holding the default configuration
func NewConfigManager(log zerolog.Logger) *ConfigManager {
	return &ConfigManager{
		config: DefaultConfig(),
		log:    log.With().Str("component", "config").Logger(),
	}
}

// getConfigPath returns the full path to the config file
func getConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, ConfigDirName, ConfigFileName), nil
}

// readConfigFile parses a config file on top of the defaults and validates it
func readConfigFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Load resolves the config path and loads the file if present.
// A missing or broken file keeps the current configuration.
func (m *ConfigManager) Load() {
	path, err := getConfigPath()
	if err != nil {
		m.log.Warn().Err(err).Msg("Using default config")
		return
	}
	m.LoadFrom(path)
}

// LoadFrom loads the config file at path
func (m *ConfigManager) LoadFrom(path string) {
	m.mutex.Lock()
	m.path = path
	m.mutex.Unlock()

	cfg, err := readConfigFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			m.log.Debug().Str("path", path).Msg("Config file not found, using current config")
		} else {
			m.log.Warn().Err(err).Msg("Keeping current config")
		}
		return
	}

	m.mutex.Lock()
	m.config = cfg
	m.mutex.Unlock()

	if err := applyLogLevel(cfg.LogLevel); err != nil {
		m.log.Warn().Err(err).Msg("Failed to apply log level")
	}
	m.log.Info().Str("path", path).Msg("Config loaded")
}

// Reload re-reads the config file from its last known path
func (m *ConfigManager) Reload() {
	m.mutex.RLock()
	path := m.path
	m.mutex.RUnlock()

	if path == "" {
		return
	}
	m.LoadFrom(path)
}

// Config returns a copy of the current configuration
func (m *ConfigManager) Config() AppConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return *m.config
}

// PDFDirectory returns the configured default directory for saved PDFs
func (m *ConfigManager) PDFDirectory() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.config.PDFDirectory
}

// Path returns the config file path, or "" before Load
func (m *ConfigManager) Path() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.path
}
